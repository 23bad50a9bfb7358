package grid

import "math"

// NewBand constructs a Band from a non-empty, rectangular 2D slice.
// It deep-copies the input and computes the band statistics.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewBand(values [][]float64, opts BandOptions) (*Band, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]float64, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]float64, w)
		copy(cells[y], values[y])
	}
	b := &Band{
		Width:     w,
		Height:    h,
		NoData:    opts.NoData,
		HasNoData: opts.HasNoData,
		cells:     cells,
	}
	b.stats = b.computeStats()

	return b, nil
}

// Filled returns a w×h band with every cell set to v.
func Filled(w, h int, v float64, opts BandOptions) (*Band, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	rows := make([][]float64, h)
	for y := range rows {
		rows[y] = make([]float64, w)
		for x := range rows[y] {
			rows[y][x] = v
		}
	}
	return NewBand(rows, opts)
}

// Stats returns the statistics computed at construction.
func (b *Band) Stats() Stats {
	return b.stats
}

// InBounds reports whether (x,y) lies within the band.
// Complexity: O(1).
func (b *Band) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the cell at (x,y); ok is false out of bounds.
func (b *Band) At(x, y int) (float64, bool) {
	if !b.InBounds(x, y) {
		return 0, false
	}
	return b.cells[y][x], true
}

// Len returns the number of cells.
func (b *Band) Len() int {
	return b.Width * b.Height
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (b *Band) Coordinate(idx int) (x, y int) {
	return idx % b.Width, idx / b.Width
}

// index maps (x,y) to a row-major index: y*Width + x.
func (b *Band) index(x, y int) int {
	return y*b.Width + x
}

// Rows returns a copy of the cells, one slice per row.
func (b *Band) Rows() [][]float64 {
	out := make([][]float64, b.Height)
	for y, row := range b.cells {
		out[y] = make([]float64, b.Width)
		copy(out[y], row)
	}
	return out
}

// Flatten returns the cells in row-major order.
func (b *Band) Flatten() []float64 {
	out := make([]float64, b.Len())
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			out[b.index(x, y)] = b.cells[y][x]
		}
	}
	return out
}

// Map builds a same-shaped band whose cells are fn applied to each cell.
func (b *Band) Map(fn func(v float64) float64, opts BandOptions) (*Band, error) {
	rows := make([][]float64, b.Height)
	for y := 0; y < b.Height; y++ {
		rows[y] = make([]float64, b.Width)
		for x := 0; x < b.Width; x++ {
			rows[y][x] = fn(b.cells[y][x])
		}
	}
	return NewBand(rows, opts)
}

func (b *Band) computeStats() Stats {
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, row := range b.cells {
		for _, v := range row {
			if !b.Keep(v) {
				continue
			}
			s.Valid++
			sum += v
			if v < s.Min {
				s.Min = v
			}
			if v > s.Max {
				s.Max = v
			}
		}
	}
	if s.Valid == 0 {
		return Stats{Min: math.NaN(), Max: math.NaN(), Mean: math.NaN()}
	}
	s.Mean = sum / float64(s.Valid)

	return s
}

// NewRaster groups bands of identical shape. Returns ErrEmptyGrid for no
// bands and ErrShapeMismatch when dimensions differ.
func NewRaster(bands ...*Band) (*Raster, error) {
	if len(bands) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := bands[0].Width, bands[0].Height
	for _, b := range bands[1:] {
		if b.Width != w || b.Height != h {
			return nil, ErrShapeMismatch
		}
	}
	cp := make([]*Band, len(bands))
	copy(cp, bands)

	return &Raster{Width: w, Height: h, bands: cp}, nil
}

// Count returns the number of bands.
func (r *Raster) Count() int {
	return len(r.bands)
}

// Band returns the band at the 1-based index i.
func (r *Raster) Band(i int) (*Band, error) {
	if i < 1 || i > len(r.bands) {
		return nil, ErrBandIndex
	}
	return r.bands[i-1], nil
}
