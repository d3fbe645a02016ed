// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

// Node is a reference to an element of a BDD. It represents the atomic unit of
// interactions and computations within a BDD. It is the index of a vertex in
// the node table of the BDD that returned it.
type Node int

const (
	bddzero Node = 0 // constant False
	bddone  Node = 1 // constant True
)

type node struct {
	level int32 // Order of the variable in the BDD
	low   Node  // Reference to the false branch
	high  Node  // Reference to the true branch
}

// uniqueKey is the key used in the unicity table.
type uniqueKey struct {
	level int32
	low   Node
	high  Node
}

// ************************************************************

func (b *BDD) level(n Node) int32 {
	return b.nodes[n].level
}

func (b *BDD) low(n Node) Node {
	return b.nodes[n].low
}

func (b *BDD) high(n Node) Node {
	return b.nodes[n].high
}

// checkptr returns an error if n is not a valid index in the node table.
func (b *BDD) checkptr(n Node) error {
	if n < 0 || int(n) >= len(b.nodes) {
		return errBadNode
	}
	return nil
}
