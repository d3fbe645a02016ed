// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package dfa encodes a finite automaton into a Binary Decision Diagram, as a
Boolean relation over bit-vectors, and answers queries (image, reachable
states, word acceptance) symbolically.

States and symbols are numbered and encoded in binary. With kQ bits per state
and kA bits per symbol, the BDD has 2*kQ + kA variables, in three consecutive
ranges: the current state x, the symbol a, and the next state x'. The
transition relation T(x, a, x') holds for every transition (q, a, q') of the
automaton; I(x) and F(x) are the initial and final predicates.

Each call to Encode creates a new BDD, owned by the returned Encoding. Nodes
returned by an Encoding are only meaningful for its BDD.
*/
package dfa

import (
	"math/bits"

	"github.com/dalzilio/rudd/v2"
	"go.uber.org/zap"
)

// Encoding is the relational encoding of an automaton.
type Encoding struct {
	I rudd.Node // initial predicate, over x
	T rudd.Node // transition relation, over x, a and x'
	F rudd.Node // final predicate, over x

	bdd         *rudd.BDD
	states      []string
	stateIndex  map[string]int
	symbols     []string
	symbolIndex map[string]int
	xbits       []int
	abits       []int
	xpbits      []int
	xa          rudd.Node     // cube of the variables in x and a
	toCurrent   rudd.Replacer // renaming x' to x
	log         *zap.Logger
}

// width returns the number of bits needed to encode n different values.
func width(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

func interval(base, length int) []int {
	res := make([]int, length)
	for i := range res {
		res[i] = base + i
	}
	return res
}

// Encode builds a new BDD and computes the predicates I, T and F for the
// automaton s. States are numbered in the order of s.Nodes and symbols in the
// order of their first occurrence in s.Links. Options are passed to rudd.New.
//
// An automaton without initial state has I = False and accepts no word. Links
// using undeclared states contribute no transition, see Snapshot.Validate to
// detect them.
func Encode(s *Snapshot, options ...rudd.Option) (*Encoding, error) {
	e := &Encoding{
		stateIndex:  make(map[string]int, len(s.Nodes)),
		symbolIndex: make(map[string]int),
	}
	for _, q := range s.Nodes {
		if _, ok := e.stateIndex[q.ID]; ok {
			continue
		}
		e.stateIndex[q.ID] = len(e.states)
		e.states = append(e.states, q.ID)
	}
	e.symbols = s.Alphabet()
	for k, a := range e.symbols {
		e.symbolIndex[a] = k
	}

	kQ := width(len(e.states))
	if kQ < 1 {
		kQ = 1
	}
	kA := width(len(e.symbols))
	e.xbits = interval(0, kQ)
	e.abits = interval(kQ, kA)
	e.xpbits = interval(kQ+kA, kQ)

	bdd, err := rudd.New(2*kQ+kA, options...)
	if err != nil {
		return nil, err
	}
	e.bdd = bdd
	e.log = bdd.Logger()
	e.log.Debug("relational encoding",
		zap.Int("states", len(e.states)),
		zap.Int("symbols", len(e.symbols)),
		zap.Int("stateBits", kQ),
		zap.Int("symbolBits", kA))

	// T(x, a, x')
	e.T = bdd.False()
	for _, l := range s.Links {
		for _, a := range Symbols(l.Label) {
			cube := bdd.And(bdd.And(e.EncodeState(l.Source), e.EncodeSymbol(a)), e.EncodeNextState(l.Target))
			e.T = bdd.Or(e.T, cube)
		}
	}

	// I(x) and F(x)
	e.I = bdd.False()
	if q0, ok := s.Initial(); ok {
		e.I = e.EncodeState(q0)
	}
	e.F = bdd.False()
	for _, q := range s.Nodes {
		if q.IsFinal {
			e.F = bdd.Or(e.F, e.EncodeState(q.ID))
		}
	}

	e.xa = bdd.Makeset(append(append([]int{}, e.xbits...), e.abits...))
	if e.toCurrent, err = bdd.NewReplacer(e.xpbits, e.xbits); err != nil {
		return nil, err
	}
	e.log.Debug("relation built", zap.Int("nodes", bdd.Size()))
	return e, nil
}

// ************************************************************

// BDD returns the BDD owning the nodes of e.
func (e *Encoding) BDD() *rudd.BDD {
	return e.bdd
}

// States returns the list of states, in the order used for their encoding.
func (e *Encoding) States() []string {
	return append([]string{}, e.states...)
}

// Symbols returns the alphabet, in the order used for its encoding.
func (e *Encoding) Symbols() []string {
	return append([]string{}, e.symbols...)
}

// StateBits returns the variables used for the current state.
func (e *Encoding) StateBits() []int {
	return append([]int{}, e.xbits...)
}

// SymbolBits returns the variables used for symbols. The result is empty when
// the alphabet has less than two symbols.
func (e *Encoding) SymbolBits() []int {
	return append([]int{}, e.abits...)
}

// NextStateBits returns the variables used for the next state.
func (e *Encoding) NextStateBits() []int {
	return append([]int{}, e.xpbits...)
}

// ************************************************************

// code returns the conjunction of literals such that variable vars[i] equals
// bit i of num.
func (e *Encoding) code(vars []int, num int) rudd.Node {
	res := e.bdd.True()
	for i, v := range vars {
		res = e.bdd.And(res, e.bdd.Literal(v, (num>>i)&1 == 1))
	}
	return res
}

// EncodeState returns the predicate, over x, true exactly for state q. The
// result is False if q is not a state of the automaton.
func (e *Encoding) EncodeState(q string) rudd.Node {
	k, ok := e.stateIndex[q]
	if !ok {
		return e.bdd.False()
	}
	return e.code(e.xbits, k)
}

// EncodeNextState is similar to EncodeState, over the variables in x'.
func (e *Encoding) EncodeNextState(q string) rudd.Node {
	k, ok := e.stateIndex[q]
	if !ok {
		return e.bdd.False()
	}
	return e.code(e.xpbits, k)
}

// EncodeSymbol returns the predicate, over a, true exactly for symbol a. The
// result is True when there are no symbol bits, and False if a is not in the
// alphabet.
func (e *Encoding) EncodeSymbol(a string) rudd.Node {
	k, ok := e.symbolIndex[a]
	if !ok {
		return e.bdd.False()
	}
	return e.code(e.abits, k)
}

// ************************************************************

// image computes the successors of the states in S, over x, by the relation
// rel: we quantify over x and a, then rename x' into x.
func (e *Encoding) image(S, rel rudd.Node) rudd.Node {
	conj := e.bdd.And(S, rel)
	return e.bdd.Replace(e.bdd.Exist(conj, e.xa), e.toCurrent)
}

// Post returns the set of states, over x, reachable in one transition from a
// state in S.
func (e *Encoding) Post(S rudd.Node) rudd.Node {
	return e.image(S, e.T)
}

// Run returns the set of states, over x, reached from the initial state after
// reading the symbols in word, in sequence. A missing transition contributes no
// state, and the result is False if the run blocks.
func (e *Encoding) Run(word []string) rudd.Node {
	S := e.I
	for _, a := range word {
		S = e.image(S, e.bdd.And(e.T, e.EncodeSymbol(a)))
	}
	return S
}

// Accepts reports whether the automaton accepts the sequence of symbols in
// word, that is if Run(word) contains a final state.
func (e *Encoding) Accepts(word []string) bool {
	return e.bdd.And(e.Run(word), e.F) != e.bdd.False()
}

// AcceptsWord is similar to Accepts where each rune of word is a symbol.
func (e *Encoding) AcceptsWord(word string) bool {
	symbols := make([]string, 0, len(word))
	for _, r := range word {
		symbols = append(symbols, string(r))
	}
	return e.Accepts(symbols)
}

// Reachable returns the set of states, over x, reachable from the initial
// state. It is the least fixpoint of R = I | Post(R).
func (e *Encoding) Reachable() rudd.Node {
	R := e.I
	for {
		next := e.bdd.Or(R, e.Post(R))
		if next == R {
			return R
		}
		R = next
	}
}

// Decode returns the states in S, a predicate over x, in the order used for
// their encoding.
func (e *Encoding) Decode(S rudd.Node) []string {
	res := []string{}
	for k, q := range e.states {
		if e.bdd.And(S, e.code(e.xbits, k)) != e.bdd.False() {
			res = append(res, q)
		}
	}
	return res
}
