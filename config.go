// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

import "go.uber.org/zap"

// configs is used to store the values of different parameters of the BDD
type configs struct {
	varnum     int         // number of BDD variables
	nodesize   int         // initial capacity of the node table
	cachesize  int         // number of entries in each operation cache (0 if unbounded)
	checkorder bool        // panic when a node breaks the variable order
	logger     *zap.Logger // destination of debug traces
}

// Option is the type of configuration options accepted by New.
type Option func(*configs)

func makeconfigs(varnum int) *configs {
	c := &configs{varnum: varnum}
	c.nodesize = _DEFAULTNODESIZE
	c.logger = zap.NewNop()
	return c
}

// Nodesize is a configuration option (function). Used as a parameter in New it
// sets a preferred initial capacity for the node table. The table grows during
// computation and is never shrunk.
func Nodesize(size int) Option {
	return func(c *configs) {
		if size > 2 {
			c.nodesize = size
		}
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New it
// bounds the number of entries in each of the operation caches. With a positive
// size, caches are direct-mapped tables (with a prime number of slots, at least
// size) and a new result overwrites the entry found in its slot. The default
// value (0) means that caches are unbounded and keep every result for the
// lifetime of the BDD.
func Cachesize(size int) Option {
	return func(c *configs) {
		if size >= 0 {
			c.cachesize = size
		}
	}
}

// Checkorder is a configuration option (function). Used as a parameter in New
// with value true, every new node is checked against the variable order and
// the BDD panics with an error wrapping ErrOrder when a node of level v points
// to a node with a level less or equal to v. The default is to trust the
// caller.
func Checkorder(check bool) Option {
	return func(c *configs) {
		c.checkorder = check
	}
}

// Logger is a configuration option (function). Used as a parameter in New it
// sets the logger used for debug traces. The default is a no-op logger.
func Logger(logger *zap.Logger) Option {
	return func(c *configs) {
		if logger != nil {
			c.logger = logger
		}
	}
}
