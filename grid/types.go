// Package grid defines the band and raster types.
package grid

import "math"

// BandOptions configures a new band.
type BandOptions struct {
	// NoData is the sentinel marking invalid cells; only read when HasNoData.
	NoData float64
	// HasNoData reports whether the band declares a sentinel.
	HasNoData bool
}

// DefaultBandOptions returns options with no declared sentinel.
func DefaultBandOptions() BandOptions {
	return BandOptions{}
}

// WithNoData returns options declaring the given sentinel.
func WithNoData(v float64) BandOptions {
	return BandOptions{NoData: v, HasNoData: true}
}

// Stats are band statistics over the cells Keep accepts, the same cells
// Extract samples. Min/Max/Mean are NaN when Valid is zero.
type Stats struct {
	Min, Max, Mean float64
	Valid          int
}

// Band is a single raster band. Cells are private and only handed out as
// copies (At, Rows, Flatten), so the cached statistics always describe them.
// cells[y][x] holds the cell at column x, row y.
type Band struct {
	Width, Height int
	NoData        float64
	HasNoData     bool
	cells         [][]float64
	stats         Stats
}

// Raster is an ordered set of same-shaped bands.
type Raster struct {
	Width, Height int
	bands         []*Band
}

// IsNoData reports whether v is NaN or equals the declared sentinel.
func (b *Band) IsNoData(v float64) bool {
	if math.IsNaN(v) {
		return true
	}
	return b.HasNoData && v == b.NoData
}
