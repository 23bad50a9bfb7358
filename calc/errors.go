// SPDX-License-Identifier: MIT

package calc

import "errors"

var (
	// ErrSyntax indicates a malformed formula.
	ErrSyntax = errors.New("calc: syntax error")
	// ErrUnknownFunc indicates a call to an unsupported function.
	ErrUnknownFunc = errors.New("calc: unknown function")
	// ErrArity indicates a wrong number of function arguments.
	ErrArity = errors.New("calc: wrong number of arguments")
	// ErrUnboundVar indicates a variable with no band bound to it.
	ErrUnboundVar = errors.New("calc: unbound variable")
	// ErrShapeMismatch indicates input bands of differing size.
	ErrShapeMismatch = errors.New("calc: input bands differ in shape")
	// ErrNoInputs indicates no input band was supplied.
	ErrNoInputs = errors.New("calc: no input bands")
)
