// SPDX-License-Identifier: MIT

// Package breaks generates ordered breakpoint sequences that split a numeric
// range into a fixed number of classes.
//
// What:
//
//   - Equidistant: equal-width intervals over [min, max].
//   - Quantiles:   sample quantiles (quartiles, quintiles, deciles or any q)
//     computed with linear interpolation between order statistics.
//   - Progressive: geometric widths, each interval factor× wider than the previous.
//   - WeberFechner: perceptual progression min + fp^i·(span/fp^n), closes on max exactly.
//
// Every generator returns categories+1 values: non-decreasing, first = min,
// last = max. Method is the tagged variant that selects a generator; it is
// resolved once (ParseMethod) and then dispatched exhaustively by Generate.
//
// Complexity:
//
//   - Equidistant, Progressive, WeberFechner: O(n) time, O(n) memory (n = categories).
//   - Quantiles: O(m log m) time for sorting m samples, O(m) memory (a sorted copy).
//
// Errors:
//
//   - ErrInvalidParameters: categories < 1, factor ≤ 0 or non-finite, and for
//     Weber-Fechner factor < 1.
//   - ErrUnknownMethod: unrecognized method name or kind.
//   - ErrEmptySample: no samples to classify.
//   - ErrInvalidRange: min > max or a non-finite bound.
package breaks
