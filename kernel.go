// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

import (
	"fmt"

	"go.uber.org/zap"
)

// _MAXVAR is the maximal number of levels in the BDD. We keep the same bound
// than BuDDy, even if we do not use the extra bits for markings.
const _MAXVAR int32 = 0x1FFFFF

// _DEFAULTNODESIZE is the initial capacity of the node table when no Nodesize
// option is given.
const _DEFAULTNODESIZE int = 1024

// makenode is the canonicalizing constructor of the BDD. It returns low when
// the two children are equal, an existing node if the triplet (level, low,
// high) is already in the unicity table, and a fresh node otherwise.
func (b *BDD) makenode(level int32, low, high Node) Node {
	b.uniqueAccess++
	// check whether children are equal, in which case we can skip the node
	if low == high {
		return low
	}
	if b.checkorder {
		b.verifyorder(level, low, high)
	}
	key := uniqueKey{level, low, high}
	if res, ok := b.unique[key]; ok {
		b.uniqueHit++
		return res
	}
	b.uniqueMiss++
	res := Node(len(b.nodes))
	b.nodes = append(b.nodes, node{level: level, low: low, high: high})
	b.unique[key] = res
	b.produced++
	return res
}

// verifyorder panics if a node of the given level would point to a node with
// a smaller or equal level.
func (b *BDD) verifyorder(level int32, low, high Node) {
	if level < b.level(low) && level < b.level(high) {
		return
	}
	err := fmt.Errorf("%w: node at level %d with children %d[%d] and %d[%d]",
		ErrOrder, level, low, b.level(low), high, b.level(high))
	b.log.Debug("variable order violated", zap.Error(err))
	panic(err)
}
