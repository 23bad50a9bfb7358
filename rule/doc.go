// SPDX-License-Identifier: MIT

// Package rule turns an ordered breakpoint sequence into a classification
// rule usable two ways:
//
//   - Direct form: Classify(v) finds the interval by binary search; used for
//     per-feature (column) classification.
//   - Symbolic form: Expression/Formula render the same rule as a sum of
//     interval indicators, "logical_and(A>=lo,A<hi)*k + ...", for a raster
//     calculator that evaluates it over a whole grid in one pass.
//
// Interval convention: for n breakpoints, class k (1-based) covers
// [b[k-1], b[k]) and the final class covers [b[n-2], b[n-1]]. Values outside
// [b[0], b[n-1]] and NaN are unclassified. Both forms agree on every value,
// boundaries included.
//
// Errors:
//
//   - ErrTooFewBreaks: fewer than two breakpoints.
//   - ErrNotSorted: a breakpoint is smaller than its predecessor.
//   - ErrNonFinite: a breakpoint is NaN or ±Inf.
package rule
