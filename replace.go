// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

import (
	"fmt"
	"math"
)

// Replacer is the type of association lists used to replace variables in a BDD
// node.
type Replacer interface {
	Replace(int32) (int32, bool)
	Id() int
}

type replacer struct {
	id    int     // unique identifier used for caching intermediate results
	image []int32 // map the level of old variables to the level of new variables
	last  int32   // last index in the Replacer, to speed up computations
}

func (r *replacer) String() string {
	res := fmt.Sprintf("replacer(last: %d)[", r.last)
	first := true
	for k, v := range r.image {
		if k != int(v) {
			if !first {
				res += ", "
			}
			first = false
			res += fmt.Sprintf("%d<-%d", k, v)
		}
	}
	return res + "]"
}

func (r *replacer) Replace(level int32) (int32, bool) {
	if level > r.last {
		return level, false
	}
	return r.image[level], true
}

func (r *replacer) Id() int {
	return r.id
}

// NewReplacer returns a Replacer for substituting variable oldvars[k] with
// newvars[k]. We return an error if the two slices do not have the same length
// or if we find the same index twice in either of them. All values must be in
// [0..Varnum). The identifier of the Replacer, used to memoize results, is
// only meaningful for b.
func (b *BDD) NewReplacer(oldvars []int, newvars []int) (Replacer, error) {
	res := &replacer{last: -1}
	if len(oldvars) != len(newvars) {
		return nil, fmt.Errorf("unmatched length of slices")
	}
	if b.replaceid == math.MaxInt32 {
		return nil, fmt.Errorf("too many replacers created")
	}
	b.replaceid++
	res.id = b.replaceid
	varnum := b.Varnum()
	support := make([]bool, varnum)
	res.image = make([]int32, varnum)
	for k := range res.image {
		res.image[k] = int32(k)
	}
	for k, v := range oldvars {
		if v < 0 || v >= varnum {
			return nil, fmt.Errorf("invalid variable in oldvars (%d)", v)
		}
		if newvars[k] < 0 || newvars[k] >= varnum {
			return nil, fmt.Errorf("invalid variable in newvars (%d)", newvars[k])
		}
		if support[v] {
			return nil, fmt.Errorf("duplicate variable (%d) in oldvars", v)
		}
		support[v] = true
		res.image[v] = int32(newvars[k])
		if int32(v) > res.last {
			res.last = int32(v)
		}
	}
	seen := make([]bool, varnum)
	for _, v := range newvars {
		if seen[v] {
			return nil, fmt.Errorf("duplicate variable (%d) in newvars", v)
		}
		seen[v] = true
	}
	return res, nil
}

// ************************************************************

// Replace takes a Replacer and computes the result of n after replacing old
// variables with new ones. See type Replacer. Nodes are rebuilt with Makenode,
// so the result is reduced, but it is the responsibility of the caller to
// choose a Replacer that preserves the variable order of every node in n.
func (b *BDD) Replace(n Node, r Replacer) Node {
	if b.checkptr(n) != nil {
		return b.seterror("wrong operand in call to Replace (%d)", n)
	}
	if r == nil {
		return b.seterror("nil replacer in call to Replace")
	}
	return b.replace(n, r)
}

func (b *BDD) replace(n Node, r Replacer) Node {
	if n < 2 {
		return n
	}
	image, ok := r.Replace(b.level(n))
	if !ok {
		return n
	}
	if res, ok := b.matchreplace(n, r.Id()); ok {
		return res
	}
	low := b.replace(b.low(n), r)
	high := b.replace(b.high(n), r)
	res := b.makenode(image, low, high)
	return b.setreplace(n, r.Id(), res)
}
