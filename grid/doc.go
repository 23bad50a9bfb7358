// Package grid holds dense raster bands of float64 cells and extracts the
// valid samples a classification runs on.
//
// What:
//
//   - Band wraps a rectangular [][]float64 with an optional no-data value and
//     statistics (min, max, mean, valid count) computed once at construction.
//   - Raster groups same-shaped bands addressed by 1-based index.
//   - Extract returns (min, max, samples) for one band, with min/max taken
//     from the band statistics.
//
// No-data filtering in Extract is asymmetric on purpose: a negative sentinel
// is treated as a lower-bound artifact (keep v > s), a positive one as an
// upper-bound artifact (keep v < s), NaN keeps non-NaN cells and zero keeps
// v ≠ 0. Callers must declare the sentinel that matches their data.
//
// Complexity:
//
//   - NewBand: O(W×H) time and memory (deep copy + statistics).
//   - Extract: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrShapeMismatch: bands of a raster differ in size.
//   - ErrBandIndex: band index outside 1..Count.
//   - ErrEmptySample: no valid cells remain after filtering.
package grid
