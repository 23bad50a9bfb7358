package grid

import (
	"math"

	"github.com/katalvlaran/classbreak/breaks"
)

// Keep reports whether v survives no-data filtering for the band's sentinel:
//
//	sentinel < 0   keep v > sentinel
//	sentinel > 0   keep v < sentinel
//	sentinel = 0   keep v != 0
//	sentinel NaN   keep !NaN(v)
//	no sentinel    keep !NaN(v)
func (b *Band) Keep(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if !b.HasNoData || math.IsNaN(b.NoData) {
		return true
	}
	switch {
	case b.NoData < 0:
		return v > b.NoData
	case b.NoData > 0:
		return v < b.NoData
	default:
		return v != 0
	}
}

// Extract returns the valid samples of band i (1-based) with the range taken
// from the band statistics.
//
// Errors: ErrBandIndex, ErrEmptySample.
func Extract(r *Raster, i int) (breaks.Sample, error) {
	b, err := r.Band(i)
	if err != nil {
		return breaks.Sample{}, err
	}
	return ExtractBand(b)
}

// ExtractBand is Extract for a single band.
func ExtractBand(b *Band) (breaks.Sample, error) {
	values := make([]float64, 0, b.stats.Valid)
	for _, row := range b.cells {
		for _, v := range row {
			if b.Keep(v) {
				values = append(values, v)
			}
		}
	}
	if len(values) == 0 || b.stats.Valid == 0 {
		return breaks.Sample{}, ErrEmptySample
	}

	return breaks.Sample{Min: b.stats.Min, Max: b.stats.Max, Values: values}, nil
}
