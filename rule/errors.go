// SPDX-License-Identifier: MIT

package rule

import "errors"

var (
	// ErrTooFewBreaks indicates fewer than two breakpoints (no interval).
	ErrTooFewBreaks = errors.New("rule: at least two breakpoints required")
	// ErrNotSorted indicates a decreasing breakpoint.
	ErrNotSorted = errors.New("rule: breakpoints must be non-decreasing")
	// ErrNonFinite indicates a NaN or infinite breakpoint.
	ErrNonFinite = errors.New("rule: breakpoints must be finite")
)
