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
	"fmt"
	"math/big"
)

// cacheop is the tag of an operation stored in a cache.
type cacheop int

// Tags used to distinguish between entries of the operation caches.
const (
	cacheid_ITE cacheop = iota
	cacheid_EXIST
	cacheid_REPLACE
)

// cacheKey is the key of a memoized operation: the operator tag and (up to)
// three operands. For quantifications, the variable set is given by its cube,
// which is canonical; for renamings it is the id of the Replacer.
type cacheKey struct {
	op cacheop
	a  int
	b  int
	c  int
}

// cacheData is a unit of information stored in a bounded cache.
type cacheData struct {
	key  cacheKey
	res  Node
	used bool
}

// cache is used for caching ite/exist/replace results. When table is nil, we
// use an unbounded map and never forget a result. Otherwise the cache is a
// direct-mapped table where a new entry overwrites the one in its slot.
type cache struct {
	table   []cacheData
	entries map[cacheKey]Node
	opHit   int // entries found in the cache
	opMiss  int // entries not found in the cache
}

func newcache(size int) *cache {
	bc := &cache{}
	if size <= 0 {
		bc.entries = make(map[cacheKey]Node)
		return bc
	}
	// we never check if the creation of the slice panic because of lack of memory
	bc.table = make([]cacheData, primeGte(size))
	return bc
}

func (bc *cache) slot(k cacheKey) int {
	return _TRIPLE(k.a, k.b, k.c+int(k.op), len(bc.table))
}

func (bc *cache) match(k cacheKey) (Node, bool) {
	if bc.table == nil {
		res, ok := bc.entries[k]
		bc.count(ok)
		return res, ok
	}
	entry := bc.table[bc.slot(k)]
	ok := entry.used && entry.key == k
	bc.count(ok)
	return entry.res, ok
}

func (bc *cache) set(k cacheKey, res Node) Node {
	if bc.table == nil {
		bc.entries[k] = res
		return res
	}
	bc.table[bc.slot(k)] = cacheData{key: k, res: res, used: true}
	return res
}

func (bc *cache) count(hit bool) {
	if hit {
		bc.opHit++
		return
	}
	bc.opMiss++
}

func (bc *cache) size() int {
	if bc.table == nil {
		return len(bc.entries)
	}
	return len(bc.table)
}

// ************************************************************

func (b *BDD) matchite(f, g, h Node) (Node, bool) {
	return b.itecache.match(cacheKey{cacheid_ITE, int(f), int(g), int(h)})
}

func (b *BDD) setite(f, g, h, res Node) Node {
	return b.itecache.set(cacheKey{cacheid_ITE, int(f), int(g), int(h)}, res)
}

func (b *BDD) matchquant(n, varset Node) (Node, bool) {
	return b.quantcache.match(cacheKey{op: cacheid_EXIST, a: int(n), b: int(varset)})
}

func (b *BDD) setquant(n, varset, res Node) Node {
	return b.quantcache.set(cacheKey{op: cacheid_EXIST, a: int(n), b: int(varset)}, res)
}

func (b *BDD) matchreplace(n Node, id int) (Node, bool) {
	return b.replacecache.match(cacheKey{op: cacheid_REPLACE, a: int(n), b: id})
}

func (b *BDD) setreplace(n Node, id int, res Node) Node {
	return b.replacecache.set(cacheKey{op: cacheid_REPLACE, a: int(n), b: id}, res)
}

// ************************************************************

// cacheStat returns information about the cache performance: the number of
// accesses to the unique node table, the number of times a node was (not)
// found there, and the hit and miss count of the operator caches.
func (b *BDD) cacheStat() string {
	res := fmt.Sprintf("Unique Access:  %d\n", b.uniqueAccess)
	res += fmt.Sprintf("Unique Hit:     %d\n", b.uniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d\n", b.uniqueMiss)
	for _, c := range []struct {
		name string
		*cache
	}{{"ITE", b.itecache}, {"Exist", b.quantcache}, {"Replace", b.replacecache}} {
		res += fmt.Sprintf("%-8s Size: %d  Hits: %d  Miss: %d\n", c.name, c.size(), c.opHit, c.opMiss)
	}
	return res
}

// ************************************************************

// _TRIPLE and _PAIR give the slot of an entry in a bounded cache.

func _TRIPLE(a, b, c, len int) int {
	return int(_PAIR64(uint64(c), _PAIR(a, b, len), uint64(len)))
}

// _PAIR maps (bijectively) a pair of integer (a, b) into a unique integer,
// before taking the modulo.
func _PAIR(a, b, len int) uint64 {
	return (((uint64(a+b) * uint64(a+b+1)) / 2) + uint64(a)) % uint64(len)
}

func _PAIR64(a, b, len uint64) uint64 {
	return (((((a + b) % len) * ((a + b + 1) % len)) / 2) + a) % len
}

func hasEasyFactors(src int) bool {
	for _, n := range []int{3, 5, 7, 11, 13} {
		if src != n && src%n == 0 {
			return true
		}
	}
	return false
}

// primeGte returns the smallest odd prime greater or equal to src. Bounded
// caches have a prime number of slots.
func primeGte(src int) int {
	if src < 3 {
		return 3
	}
	if src%2 == 0 {
		src++
	}
	for ; ; src += 2 {
		if hasEasyFactors(src) {
			continue
		}
		// ProbablyPrime is 100% accurate for inputs less than 2⁶⁴.
		if big.NewInt(int64(src)).ProbablyPrime(0) {
			return src
		}
	}
}
