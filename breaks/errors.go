// SPDX-License-Identifier: MIT

package breaks

import "errors"

var (
	// ErrInvalidParameters indicates a bad category count or progression factor.
	ErrInvalidParameters = errors.New("breaks: invalid parameters")
	// ErrUnknownMethod indicates an unrecognized classification method.
	ErrUnknownMethod = errors.New("breaks: unknown method")
	// ErrEmptySample indicates that no valid samples remain to classify.
	ErrEmptySample = errors.New("breaks: empty sample set")
	// ErrInvalidRange indicates min > max or a NaN/Inf bound.
	ErrInvalidRange = errors.New("breaks: invalid range")
	// ErrBrokenSequence is returned by Validate when a breakpoint sequence
	// violates length, ordering or closure.
	ErrBrokenSequence = errors.New("breaks: malformed breakpoint sequence")
)
