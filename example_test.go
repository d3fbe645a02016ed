// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd_test

import (
	"fmt"
	"os"

	"github.com/dalzilio/rudd/v2"
	"github.com/dalzilio/rudd/v2/dfa"
)

// This example shows the basic usage of the package: create a BDD, compute some
// expressions and output the result.
func Example_basic() {
	// Create a new BDD with 6 variables, an initial node table of 10 000 nodes
	// and operation caches bounded to (about) 3 000 entries.
	bdd, _ := rudd.New(6, rudd.Nodesize(10000), rudd.Cachesize(3000))
	// n1 is a set comprising the three variables {x2, x3, x5}. It can also be
	// interpreted as the Boolean expression: x2 & x3 & x5
	n1 := bdd.Makeset([]int{2, 3, 5})
	// n2 == x1 | !x3 | x4
	n2 := bdd.Or(bdd.Ithvar(1), bdd.NIthvar(3), bdd.Ithvar(4))
	// n3 == ∃ x2,x3,x5 . (n2 & x3)
	n3 := bdd.AndExist(n1, n2, bdd.Ithvar(3))
	// You can print the result or export a BDD in Graphviz's DOT format
	fmt.Printf("Number of sat. assignments: %s\n", bdd.Satcount(n3))
	// Output:
	// Number of sat. assignments: 48
}

// This example exports the conjunction of two negated variables in the DOT
// format.
func ExampleBDD_PrintDot() {
	bdd, _ := rudd.New(2)
	n := bdd.And(bdd.NIthvar(0), bdd.NIthvar(1))
	bdd.PrintDot(os.Stdout, n)
	// Output:
	// digraph BDD{
	//   rankdir=TB;
	//   0 [shape=box,label="0"];
	//   1 [shape=box,label="1"];
	//   4 [label="x0"];
	//   4 -> 3 [style=dashed];
	//   4 -> 0 [style=solid];
	//   3 [label="x1"];
	//   3 -> 1 [style=dashed];
	//   3 -> 0 [style=solid];
	// }
}

// This example encodes an automaton over {0,1} accepting the words that
// contain the factor "10", then tests some words.
func Example_automaton() {
	s := &dfa.Snapshot{
		Nodes: []dfa.State{
			{ID: "s0", IsInitial: true},
			{ID: "s1"},
			{ID: "s2", IsFinal: true},
		},
		Links: []dfa.Link{
			{Source: "s0", Target: "s0", Label: "0"},
			{Source: "s0", Target: "s1", Label: "1"},
			{Source: "s1", Target: "s2", Label: "0"},
			{Source: "s1", Target: "s1", Label: "1"},
			{Source: "s2", Target: "s2", Label: "0,1"},
		},
	}
	e, _ := dfa.Encode(s)
	for _, w := range []string{"1", "10", "11", "110"} {
		fmt.Printf("%s: %v\n", w, e.AcceptsWord(w))
	}
	fmt.Println(e.Decode(e.Reachable()))
	// Output:
	// 1: false
	// 10: true
	// 11: false
	// 110: true
	// [s0 s1 s2]
}
