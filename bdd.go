// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

import (
	"go.uber.org/zap"
)

// BDD is a manager for Binary Decision Diagrams. It owns the node table, the
// unicity table and the operation caches; every Node returned by its methods
// is an index into its node table.
//
// A BDD is not safe for concurrent use. It is meant to be created for a single
// query and discarded afterwards.
type BDD struct {
	varnum       int32              // number of BDD variables
	nodes        []node             // List of all the BDD nodes. Constants are always kept at index 0 and 1
	unique       map[uniqueKey]Node // Unicity table, used to associate each triplet to a single node
	produced     int                // Total number of new nodes ever produced
	uniqueAccess int                // accesses to the unique node table
	uniqueHit    int                // entries actually found in the the unique node table
	uniqueMiss   int                // entries not found in the the unique node table
	itecache     *cache             // Cache for ITE results
	quantcache   *cache             // Cache for exist results
	replacecache *cache             // Cache for replace results
	quantset     []int32            // Current variable set for quant.
	quantsetID   int32              // Current id used in quantset
	quantlast    int32              // Current last variable to be quant.
	replaceid    int                // Last id given to a Replacer
	err          error              // Error status to help chain operations
	log          *zap.Logger        // Debug traces
	checkorder   bool               // see option Checkorder
}

// New returns a new BDD with varnum variables, numbered from 0 to varnum-1. We
// accept a value of 0, in which case only the two constants can be used.
// Options, such as Nodesize or Cachesize, are used to configure the
// implementation.
func New(varnum int, options ...Option) (*BDD, error) {
	if (varnum < 0) || (varnum > int(_MAXVAR)) {
		return nil, ErrVarnum
	}
	config := makeconfigs(varnum)
	for _, f := range options {
		f(config)
	}
	b := &BDD{
		varnum:     int32(varnum),
		log:        config.logger,
		checkorder: config.checkorder,
	}
	b.nodes = make([]node, 2, config.nodesize)
	b.unique = make(map[uniqueKey]Node, config.nodesize)
	// Constants have the highest level and point to themselves. We do not add
	// them to the unique table.
	b.nodes[0] = node{level: b.varnum, low: 0, high: 0}
	b.nodes[1] = node{level: b.varnum, low: 1, high: 1}
	b.quantset = make([]int32, varnum)
	b.itecache = newcache(config.cachesize)
	b.quantcache = newcache(config.cachesize)
	b.replacecache = newcache(config.cachesize)
	b.log.Debug("new bdd",
		zap.Int("varnum", varnum),
		zap.Int("nodesize", config.nodesize),
		zap.Int("cachesize", config.cachesize),
		zap.Bool("checkorder", config.checkorder))
	return b, nil
}

// ************************************************************

// Varnum returns the number of defined variables.
func (b *BDD) Varnum() int {
	return int(b.varnum)
}

// Size returns the number of nodes in the node table, including the two
// constants.
func (b *BDD) Size() int {
	return len(b.nodes)
}

// Logger returns the logger used by the BDD.
func (b *BDD) Logger() *zap.Logger {
	return b.log
}

// True returns the constant true BDD
func (b *BDD) True() Node {
	return bddone
}

// False returns the constant false BDD
func (b *BDD) False() Node {
	return bddzero
}

// From returns a (constant) Node from a boolean value.
func (b *BDD) From(v bool) Node {
	if v {
		return bddone
	}
	return bddzero
}

// Constant is a synonym for From.
func (b *BDD) Constant(v bool) Node {
	return b.From(v)
}

// Makenode returns the node with the given level and branches, creating it
// only if needed. It returns low if low and high are equal. The level must be
// in the range [0..Varnum) and strictly smaller than the level of low and high
// (see option Checkorder); only the range is checked, and we set the error
// status and return False if it is not respected.
func (b *BDD) Makenode(level int, low, high Node) Node {
	if (level < 0) || (int32(level) >= b.varnum) {
		return b.seterror("unknown variable (%d) in call to Makenode", level)
	}
	if b.checkptr(low) != nil || b.checkptr(high) != nil {
		return b.seterror("wrong operand in call to Makenode (%d, %d)", low, high)
	}
	return b.makenode(int32(level), low, high)
}

// Ithvar returns a BDD representing the i'th variable on success, otherwise we
// set the error status in the BDD and returns the constant False. The requested
// variable must be in the range [0..Varnum).
func (b *BDD) Ithvar(i int) Node {
	return b.Literal(i, true)
}

// NIthvar returns a bdd representing the negation of the i'th variable on
// success, otherwise the constant false bdd. See *ithvar* for further info.
func (b *BDD) NIthvar(i int) Node {
	return b.Literal(i, false)
}

// Literal returns the function that is true exactly when variable i has value
// bit.
func (b *BDD) Literal(i int, bit bool) Node {
	if (i < 0) || (int32(i) >= b.varnum) {
		return b.seterror("unknown variable used (%d) in call to ithvar", i)
	}
	if bit {
		return b.makenode(int32(i), bddzero, bddone)
	}
	return b.makenode(int32(i), bddone, bddzero)
}

// Label returns the variable (index) corresponding to node n in the BDD. We set
// the BDD to its error state and return -1 if we try to access a constant node.
func (b *BDD) Label(n Node) int {
	if b.checkptr(n) != nil {
		b.seterror("illegal access to node %d in call to Label", n)
		return -1
	}
	if n < 2 {
		b.seterror("try to access label of constant node")
		return -1
	}
	return int(b.level(n))
}

// Low returns the false branch of a BDD. We return False if there is an error
// and set the error flag in the BDD.
func (b *BDD) Low(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror("illegal access to node %d in call to Low", n)
	}
	return b.low(n)
}

// High returns the true branch of a BDD. We return False if there is an error
// and set the error flag in the BDD.
func (b *BDD) High(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror("illegal access to node %d in call to High", n)
	}
	return b.high(n)
}

// ************************************************************

// And returns the logical 'and' of a sequence of nodes.
func (b *BDD) And(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return bddone
	}
	return b.Ite(n[0], b.And(n[1:]...), bddzero)
}

// Or returns the logical 'or' of a sequence of BDDs.
func (b *BDD) Or(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return bddzero
	}
	return b.Ite(n[0], bddone, b.Or(n[1:]...))
}

// Imp returns the logical 'implication' between two BDDs.
func (b *BDD) Imp(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPimp)
}

// Equiv returns the logical 'bi-implication' between two BDDs.
func (b *BDD) Equiv(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPbiimp)
}

// Xor returns the logical 'exclusive or' between two BDDs.
func (b *BDD) Xor(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPxor)
}

// Equal tests equivalence between nodes. Since diagrams are reduced and
// ordered, two nodes denote the same function exactly when they are equal.
func (b *BDD) Equal(n1, n2 Node) bool {
	return n1 == n2
}

// AndExist returns the "relational composition" of two nodes with respect to
// varset, meaning the result of (Exists varset . n1 & n2).
func (b *BDD) AndExist(varset, n1, n2 Node) Node {
	return b.Exist(b.And(n1, n2), varset)
}
