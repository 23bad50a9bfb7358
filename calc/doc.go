// SPDX-License-Identifier: MIT

// Package calc is an in-process raster calculator: it compiles a band-algebra
// formula once with github.com/expr-lang/expr and evaluates it cell by cell
// over one or more bands.
//
// Formulas use expr syntax: arithmetic, comparisons and calls. Comparisons
// and logical functions yield 1 or 0 once folded into a cell value.
// Functions: logical_and, logical_or (n-ary), logical_not, where(cond, a, b),
// abs, minimum, maximum; any other call is rejected before compilation.
// Variables are single upper-case letters bound to bands (A, B, ...).
//
// The package also carries the null normalizer: SetNull rewrites a set of
// marker values into one canonical no-data sentinel.
//
// Errors:
//
//   - ErrSyntax: malformed formula.
//   - ErrUnknownFunc / ErrArity: bad function name or argument count.
//   - ErrUnboundVar: formula references a band that was not supplied.
//   - ErrShapeMismatch: input bands differ in size.
//   - ErrNoInputs: nothing to evaluate over.
package calc
