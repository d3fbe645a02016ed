// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package rudd

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrOrder is the error used when a node would break the variable order of
// the BDD. It is only raised (with a panic) when the BDD is created with
// Checkorder(true).
var ErrOrder = errors.New("variable order violated")

// ErrVarnum is returned by New when the number of variables is out of range.
var ErrVarnum = errors.New("bad number of variables")

var errBadNode = errors.New("not a valid node")

// Error returns the error status of the BDD. We return an empty string if
// there are no errors.
func (b *BDD) Error() string {
	if b.err == nil {
		return ""
	}
	return b.err.Error()
}

// Errored returns true if there was an error during a computation.
func (b *BDD) Errored() bool {
	return b.err != nil
}

// seterror records an error in the status of the BDD and returns the constant
// False, so that it can be used as the result of a failed operation.
func (b *BDD) seterror(format string, a ...interface{}) Node {
	if b.err != nil {
		b.err = fmt.Errorf(format+"; %w", append(a, b.err)...)
		return bddzero
	}
	b.err = fmt.Errorf(format, a...)
	b.log.Debug("bdd error", zap.Error(b.err))
	return bddzero
}
