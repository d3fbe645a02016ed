// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

import (
	"fmt"
	"sort"
)

// Branch names used to tag the edges of a Graph.
const (
	FalseBranch = "false-branch"
	TrueBranch  = "true-branch"
)

// Graph is a flat description of the nodes reachable from a root, meant to be
// laid out by an external renderer.
type Graph struct {
	Root  Node     `json:"root"`
	Nodes []Vertex `json:"nodes"`
	Edges []Edge   `json:"links"`
}

// Vertex is a node in a Graph. Row and Col give a layered position: non
// constant nodes are on the row of their level and are ranked, inside a row,
// in the order they are first met in a depth-first traversal (low branch
// first). Constants are on row Varnum.
type Vertex struct {
	ID       Node   `json:"id"`
	Label    string `json:"label"`
	Level    int    `json:"level"`
	Terminal bool   `json:"terminal"`
	Value    bool   `json:"value,omitempty"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

// Edge is a branch in a Graph, from a non constant node to one of its
// children. Style is "dashed" for false branches and "solid" for true
// branches.
type Edge struct {
	Source Node   `json:"source"`
	Target Node   `json:"target"`
	Branch string `json:"branch"`
	Style  string `json:"style"`
}

// Diagram returns the Graph of the nodes reachable from n. Every reachable
// node occurs exactly once. Non constant nodes come first, sorted by level,
// followed by the constants reachable from n (False before True). Each non
// constant node contributes exactly two edges, its false branch followed by
// its true branch.
func (b *BDD) Diagram(n Node) (*Graph, error) {
	if err := b.checkptr(n); err != nil {
		return nil, fmt.Errorf("%w: %d", err, n)
	}
	g := &Graph{Root: n}
	order := []Node{}
	seen := make(map[Node]bool)
	var walk func(Node)
	walk = func(k Node) {
		if seen[k] {
			return
		}
		seen[k] = true
		order = append(order, k)
		if k > 1 {
			walk(b.low(k))
			walk(b.high(k))
		}
	}
	walk(n)

	inner := []Node{}
	for _, k := range order {
		if k > 1 {
			inner = append(inner, k)
		}
	}
	// stable sort keeps the depth-first order inside a level
	sort.SliceStable(inner, func(i, j int) bool { return b.level(inner[i]) < b.level(inner[j]) })
	col := make(map[int32]int)
	for _, k := range inner {
		lvl := b.level(k)
		g.Nodes = append(g.Nodes, Vertex{
			ID:    k,
			Label: fmt.Sprintf("x%d", lvl),
			Level: int(lvl),
			Row:   int(lvl),
			Col:   col[lvl],
		})
		col[lvl]++
		g.Edges = append(g.Edges,
			Edge{Source: k, Target: b.low(k), Branch: FalseBranch, Style: "dashed"},
			Edge{Source: k, Target: b.high(k), Branch: TrueBranch, Style: "solid"})
	}
	for _, k := range []Node{bddzero, bddone} {
		if seen[k] {
			g.Nodes = append(g.Nodes, Vertex{
				ID:       k,
				Label:    fmt.Sprintf("%d", k),
				Level:    int(b.varnum),
				Terminal: true,
				Value:    k == bddone,
				Row:      int(b.varnum),
				Col:      int(k),
			})
		}
	}
	return g, nil
}
