// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

import (
	"fmt"
	"math"
	"math/big"
	"sort"
)

// Scanset returns the set of variables (levels) found when following the high
// branch of node n. This is the dual of function Makeset. The result may be nil
// if there is an error. The result is not necessarily sorted (but follows the
// level order).
func (b *BDD) Scanset(n Node) []int {
	if b.checkptr(n) != nil {
		b.seterror("wrong operand in call to Scanset (%d)", n)
		return nil
	}
	if n < 2 {
		return nil
	}
	res := []int{}
	for i := n; i > 1; i = b.high(i) {
		res = append(res, int(b.level(i)))
	}
	return res
}

// Makeset returns a node corresponding to the conjunction (the cube) of all the
// variable in varset, in their positive form. It is such that
// scanset(Makeset(a)) == a. It returns False and sets the error condition in b
// if one of the variables is outside the scope of the BDD (see documentation
// for function *Ithvar*). Since BDD are canonical, the result does not depend
// on the order of varset or on duplicates.
func (b *BDD) Makeset(varset []int) Node {
	res := bddone
	for _, level := range varset {
		v := b.Ithvar(level)
		if b.err != nil {
			return bddzero
		}
		res = b.And(res, v)
	}
	return res
}

// Not returns the negation of the expression corresponding to node n, computed
// as ite(n, False, True).
func (b *BDD) Not(n Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror("wrong operand in call to Not (%d)", n)
	}
	return b.ite(n, bddzero, bddone)
}

func (b *BDD) not(n Node) Node {
	return b.ite(n, bddzero, bddone)
}

// Apply performs all of the basic bdd operations with two operands, such as
// AND, OR etc. Left and right are the operand and opr is the requested
// operation and must be one of the following:
//
//  Identifier    Description             Truth table
//
//  OPand         logical and             [0,0,0,1]
//  OPxor         logical xor             [0,1,1,0]
//  OPor          logical or              [0,1,1,1]
//  OPnand        logical not-and         [1,1,1,0]
//  OPnor         logical not-or          [1,0,0,0]
//  OPimp         implication             [1,1,0,1]
//  OPbiimp       equivalence             [1,0,0,1]
//  OPdiff        set difference          [0,0,1,0]
//  OPless        less than               [0,1,0,0]
//  OPinvimp      reverse implication     [1,0,1,1]
//
// Every operator is reduced to a call to Ite.
func (b *BDD) Apply(left Node, right Node, op Operator) Node {
	if b.checkptr(left) != nil {
		return b.seterror("wrong operand in call to Apply %s(left: %d, right: ...)", op, left)
	}
	if b.checkptr(right) != nil {
		return b.seterror("wrong operand in call to Apply %s(left: ..., right: %d)", op, right)
	}
	// we deal with the cases where the two operands are constants
	if (left < 2) && (right < 2) && op >= 0 && int(op) < len(opres) {
		return Node(opres[op][left][right])
	}
	switch op {
	case OPand:
		return b.ite(left, right, bddzero)
	case OPxor:
		return b.ite(left, b.not(right), right)
	case OPor:
		return b.ite(left, bddone, right)
	case OPnand:
		return b.ite(left, b.not(right), bddone)
	case OPnor:
		return b.ite(left, bddzero, b.not(right))
	case OPimp:
		return b.ite(left, right, bddone)
	case OPbiimp:
		return b.ite(left, right, b.not(right))
	case OPdiff:
		return b.ite(left, b.not(right), bddzero)
	case OPless:
		return b.ite(left, bddzero, right)
	case OPinvimp:
		return b.ite(left, bddone, b.not(right))
	}
	return b.seterror("unauthorized operation (%s) in apply", op)
}

// Ite, short for if-then-else operator, computes the BDD for the expression [(f
// /\ g) \/ (not f /\ h)] more efficiently than doing the three operations
// separately.
func (b *BDD) Ite(f, g, h Node) Node {
	if b.checkptr(f) != nil {
		return b.seterror("wrong operand in call to Ite (f: %d)", f)
	}
	if b.checkptr(g) != nil {
		return b.seterror("wrong operand in call to Ite (g: %d)", g)
	}
	if b.checkptr(h) != nil {
		return b.seterror("wrong operand in call to Ite (h: %d)", h)
	}
	return b.ite(f, g, h)
}

// ite_low returns n if p is strictly higher than q or r, otherwise it returns
// n.low. This is used in function ite to know which node to follow: we always
// follow the smallest(s) nodes.
func (b *BDD) ite_low(p, q, r int32, n Node) Node {
	if (p > q) || (p > r) {
		return n
	}
	return b.low(n)
}

func (b *BDD) ite_high(p, q, r int32, n Node) Node {
	if (p > q) || (p > r) {
		return n
	}
	return b.high(n)
}

// min3 returns the smallest value between p, q and r. This is used in function
// ite to compute the smallest level.
func min3(p, q, r int32) int32 {
	if p <= q {
		if p <= r { // p <= q && p <= r
			return p
		}
		return r // r < p <= q
	}
	if q <= r { // q < p && q <= r
		return q
	}
	return r // r < q < p
}

func (b *BDD) ite(f, g, h Node) Node {
	switch {
	case g == h:
		return g
	case f == 1:
		return g
	case f == 0:
		return h
	case (g == 1) && (h == 0):
		return f
	}
	if res, ok := b.matchite(f, g, h); ok {
		return res
	}
	p := b.level(f)
	q := b.level(g)
	r := b.level(h)
	high := b.ite(b.ite_high(p, q, r, f), b.ite_high(q, p, r, g), b.ite_high(r, p, q, h))
	low := b.ite(b.ite_low(p, q, r, f), b.ite_low(q, p, r, g), b.ite_low(r, p, q, h))
	res := b.makenode(min3(p, q, r), low, high)
	return b.setite(f, g, h, res)
}

// Exist returns the existential quantification of n for the variables in
// varset, where varset is a node built with a method such as Makeset. We return
// False and set the error flag in b if there is an error.
func (b *BDD) Exist(n, varset Node) Node {
	if b.checkptr(n) != nil {
		return b.seterror("wrong node in call to Exist (n: %d)", n)
	}
	if b.checkptr(varset) != nil {
		return b.seterror("wrong varset in call to Exist (%d)", varset)
	}
	if varset < 2 { // we have an empty set or a constant
		return n
	}
	if err := b.quantset2cache(varset); err != nil {
		return bddzero
	}
	return b.quant(n, varset)
}

// Exists is a shortcut for Exist(n, Makeset(vars)).
func (b *BDD) Exists(n Node, vars ...int) Node {
	varset := b.Makeset(vars)
	if b.err != nil {
		return bddzero
	}
	return b.Exist(n, varset)
}

func (b *BDD) quant(n, varset Node) Node {
	if (n < 2) || (b.level(n) > b.quantlast) {
		return n
	}
	if res, ok := b.matchquant(n, varset); ok {
		return res
	}
	low := b.quant(b.low(n), varset)
	high := b.quant(b.high(n), varset)
	var res Node
	if b.quantset[b.level(n)] == b.quantsetID {
		res = b.ite(low, bddone, high)
	} else {
		res = b.makenode(b.level(n), low, high)
	}
	return b.setquant(n, varset, res)
}

// quantset2cache takes a variable list, similar to the ones generated with
// Makeset, and set the variables in the quantification cache.
func (b *BDD) quantset2cache(n Node) error {
	if n < 2 {
		b.seterror("illegal variable (%d) in varset to cache", n)
		return b.err
	}
	b.quantsetID++
	if b.quantsetID == math.MaxInt32 {
		b.quantset = make([]int32, b.varnum)
		b.quantsetID = 1
	}
	for i := n; i > 1; i = b.high(i) {
		b.quantset[b.level(i)] = b.quantsetID
		b.quantlast = b.level(i)
	}
	return nil
}

// Satcount computes the number of satisfying variable assignments for the
// function denoted by n. We return a result using arbitrary-precision
// arithmetic to avoid possible overflows. The result is zero (and we set the
// error flag of b) if there is an error.
func (b *BDD) Satcount(n Node) *big.Int {
	res := big.NewInt(0)
	if b.checkptr(n) != nil {
		b.seterror("wrong operand in call to Satcount (%d)", n)
		return res
	}
	// We compute 2^level with a bit shift 1 << level
	res.SetBit(res, int(b.level(n)), 1)
	satc := make(map[Node]*big.Int)
	return res.Mul(res, b.satcount(n, satc))
}

func (b *BDD) satcount(n Node, satc map[Node]*big.Int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	// we use satc to memoize the value of satcount for each nodes
	res, ok := satc[n]
	if ok {
		return res
	}
	level := b.level(n)
	low := b.low(n)
	high := b.high(n)

	res = big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, int(b.level(low)-level-1), 1)
	res.Add(res, two.Mul(two, b.satcount(low, satc)))
	two = big.NewInt(0)
	two.SetBit(two, int(b.level(high)-level-1), 1)
	res.Add(res, two.Mul(two, b.satcount(high, satc)))
	satc[n] = res
	return res
}

// Allsat Iterates through all legal variable assignments for n and calls the
// function f on each of them. We pass an int slice of length varnum to f where
// each entry is either  0 if the variable is false, 1 if it is true, and -1 if
// it is a don't care. We stop and return an error if f returns an error at some
// point.
//
// The following is an example of a callback handler that counts the number of
// possible assignments (such that we do not count don't care twice):
//
//	acc := new(int)
//	b.Allsat(n, func(varset []int) error {
//		*acc++
//		return nil
//	})
func (b *BDD) Allsat(n Node, f func([]int) error) error {
	if b.checkptr(n) != nil {
		return fmt.Errorf("wrong node in call to Allsat (%d)", n)
	}
	prof := make([]int, b.varnum)
	for k := range prof {
		prof[k] = -1
	}
	return b.allsat(n, prof, f)
}

func (b *BDD) allsat(n Node, prof []int, f func([]int) error) error {
	if n == 1 {
		return f(prof)
	}
	if n == 0 {
		return nil
	}

	if low := b.low(n); low != 0 {
		prof[b.level(n)] = 0
		for v := b.level(low) - 1; v > b.level(n); v-- {
			prof[v] = -1
		}
		if err := b.allsat(low, prof, f); err != nil {
			return err
		}
	}

	if high := b.high(n); high != 0 {
		prof[b.level(n)] = 1
		for v := b.level(high) - 1; v > b.level(n); v-- {
			prof[v] = -1
		}
		if err := b.allsat(high, prof, f); err != nil {
			return err
		}
	}
	return nil
}

// Allnodes applies function f over all the nodes accessible from the nodes in
// the sequence n..., or all the nodes in the table if n is absent. The
// parameters to function f are the id, level, and id's of the low and high
// successors of each node. The two constant nodes (True and False) have always
// the id 1 and 0, respectively, and are always visited first.
//
// Nodes are visited by increasing id. We stop the computation and return an
// error if f returns an error at some point.
func (b *BDD) Allnodes(f func(id, level, low, high int) error, n ...Node) error {
	for _, v := range n {
		if b.checkptr(v) != nil {
			return fmt.Errorf("wrong node in call to Allnodes (%d)", v)
		}
	}
	var ids []Node
	if len(n) == 0 {
		ids = make([]Node, 0, len(b.nodes))
		for k := 2; k < len(b.nodes); k++ {
			ids = append(ids, Node(k))
		}
	} else {
		seen := b.reachable(n...)
		ids = make([]Node, 0, len(seen))
		for k := range seen {
			if k > 1 {
				ids = append(ids, k)
			}
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}
	if err := f(0, int(b.level(0)), 0, 0); err != nil {
		return err
	}
	if err := f(1, int(b.level(1)), 1, 1); err != nil {
		return err
	}
	for _, k := range ids {
		if err := f(int(k), int(b.level(k)), int(b.low(k)), int(b.high(k))); err != nil {
			return err
		}
	}
	return nil
}

// reachable returns the set of nodes reachable from the nodes in n, constants
// included.
func (b *BDD) reachable(n ...Node) map[Node]struct{} {
	seen := make(map[Node]struct{})
	var mark func(Node)
	mark = func(k Node) {
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		if k > 1 {
			mark(b.low(k))
			mark(b.high(k))
		}
	}
	for _, k := range n {
		mark(k)
	}
	return seen
}
