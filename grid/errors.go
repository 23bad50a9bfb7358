package grid

import (
	"errors"

	"github.com/katalvlaran/classbreak/breaks"
)

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrShapeMismatch indicates bands of differing dimensions.
	ErrShapeMismatch = errors.New("grid: bands must share width and height")
	// ErrBandIndex indicates a requested band index is out of range.
	ErrBandIndex = errors.New("grid: band index out of range")
	// ErrEmptySample is breaks.ErrEmptySample, so callers can match either.
	ErrEmptySample = breaks.ErrEmptySample
)
