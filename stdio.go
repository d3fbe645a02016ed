// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package rudd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"unsafe"
)

// Stats returns information about the BDD: the size of the tables and the
// performance of the caches.
func (b *BDD) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", b.varnum)
	res += fmt.Sprintf("Allocated:  %d\n", len(b.nodes))
	res += fmt.Sprintf("Produced:   %d\n", b.produced)
	res += fmt.Sprintf("Size:       %s\n", humanSize(len(b.nodes), unsafe.Sizeof(node{})))
	res += "==============\n"
	res += b.cacheStat()
	return res
}

// humanSize returns a human readable version of a size in bytes
func humanSize(b int, unit uintptr) string {
	b = b * int(unit)
	const K = 1024
	if b < K {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(K), 0
	for n := b / K; n >= K; n /= K {
		div *= K
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// ******************************************************************************************************

// Print returns a one-line description of node n.
func (b *BDD) Print(n Node) string {
	if b.err != nil {
		return fmt.Sprintf("node %d: error %s", n, b.err)
	}
	if n == 0 {
		return "False"
	}
	if n == 1 {
		return "True"
	}
	if n < 0 {
		return "Error"
	}
	if int(n) >= len(b.nodes) {
		return fmt.Sprintf("Error (%d not a valid index)", n)
	}
	return fmt.Sprintf("(%d[%d] ? %d : %d)", n, b.level(n), b.low(n), b.high(n))
}

// PrintSet outputs a textual representation of the BDD with root n, with one
// line for every node reachable from n.
func (b *BDD) PrintSet(w io.Writer, n Node) error {
	if b.err != nil {
		fmt.Fprintf(w, "ERROR: %s\n", b.err)
		return b.err
	}
	if err := b.checkptr(n); err != nil {
		return fmt.Errorf("%w: %d", err, n)
	}
	if n == 0 {
		_, err := fmt.Fprintln(w, "False")
		return err
	}
	if n == 1 {
		_, err := fmt.Fprintln(w, "True")
		return err
	}
	fmt.Fprintf(w, "node: %d\n", n)
	nodes := []int{}
	for k := range b.reachable(n) {
		nodes = append(nodes, int(k))
	}
	return b.print_string(w, nodes)
}

func (b *BDD) print_string(w io.Writer, nodes []int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	sort.Ints(nodes)
	for _, n := range nodes {
		if n > 1 {
			fmt.Fprintf(tw, "%d\t[%d\t] ? \t%d\t : %d\n", n, b.level(Node(n)), b.low(Node(n)), b.high(Node(n)))
		}
	}
	return tw.Flush()
}

// ******************************************************************************************************

// PrintDot writes a graph-like description of the BDD with root n using the
// DOT format. Constants are drawn as boxes labeled 0 and 1, other nodes are
// labeled with their variable, low branches are dashed and high branches are
// solid. Nodes are listed in depth-first order, low branch first.
func (b *BDD) PrintDot(w io.Writer, n Node) error {
	if err := b.checkptr(n); err != nil {
		return fmt.Errorf("%w: %d", err, n)
	}
	bw := bufio.NewWriter(w)
	b.print_dot(bw, n)
	return bw.Flush()
}

// FPrintDot writes the DOT description of the BDD with root n in file
// filename, or on the standard output if filename is "-".
func (b *BDD) FPrintDot(filename string, n Node) error {
	if filename == "-" {
		return b.PrintDot(os.Stdout, n)
	}
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer out.Close()
	return b.PrintDot(out, n)
}

func (b *BDD) print_dot(w *bufio.Writer, n Node) {
	fmt.Fprintln(w, "digraph BDD{")
	fmt.Fprintln(w, "  rankdir=TB;")
	fmt.Fprintln(w, "  0 [shape=box,label=\"0\"];")
	fmt.Fprintln(w, "  1 [shape=box,label=\"1\"];")
	seen := make(map[Node]bool)
	var dfs func(Node)
	dfs = func(k Node) {
		if k < 2 || seen[k] {
			return
		}
		seen[k] = true
		fmt.Fprintf(w, "  %d [label=\"x%d\"];\n", k, b.level(k))
		fmt.Fprintf(w, "  %d -> %d [style=dashed];\n", k, b.low(k))
		fmt.Fprintf(w, "  %d -> %d [style=solid];\n", k, b.high(k))
		dfs(b.low(k))
		dfs(b.high(k))
	}
	dfs(n)
	fmt.Fprintln(w, "}")
}
