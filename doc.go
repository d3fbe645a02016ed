// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package rudd defines a concrete type for Binary Decision Diagrams (BDD), a data
structure used to efficiently represent Boolean functions over a fixed set of
variables or, equivalently, sets of Boolean vectors with a fixed size.

Basics

Each BDD has a fixed number of variables, Varnum, declared when it is
initialized (using the function New) and each variable is represented by an
(integer) index in the interval [0..Varnum), called a level. Levels also give
the global variable order: along every path from a root to a constant, levels
are strictly increasing.

Most operations return a Node, the integer index of a "vertex" in the node
table of the BDD. Each vertex includes a variable level and the indexes of its
low and high branches. We use the convention that 1 (respectively 0) is the
index of the constant function True (respectively False). A Node has no
meaning outside of the BDD that produced it.

Ephemeral managers

A BDD is meant to be created for one query, used, and dropped. The unicity
table and the operation caches only grow: there is no reference counting and
no garbage collection of unreachable nodes, memory is reclaimed by the Go
runtime when the whole BDD is discarded. Option Cachesize can be used to bound
the operation caches (entries are then overwritten on collisions); the node
table itself is never bounded. The number of nodes can grow exponentially with
the number of variables and no operation can be cancelled, this is an inherent
limit of the approach.

Variable order

Function Makenode, and therefore every operation, relies on the caller to
respect the variable order: a node of level v must only point to nodes with a
level strictly greater than v. This precondition is not checked by default and
violating it silently breaks canonicity. Use the option Checkorder to make the
BDD panic with ErrOrder instead.

Recursion

Operations (Ite, Exist, Replace, ...) are implemented as recursive descents
over the diagram with memoization. The depth of the recursion is bounded by the
number of variables, and goroutine stacks grow as needed, so we do not use an
explicit work stack.

Relational encoding of automata

Package github.com/dalzilio/rudd/v2/dfa uses this package to encode a
deterministic finite automaton as a transition relation over bit-vectors and
computes images, reachable states and word acceptance symbolically.
*/
package rudd
