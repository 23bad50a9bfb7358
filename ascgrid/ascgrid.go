// SPDX-License-Identifier: MIT

// Package ascgrid reads and writes single-band rasters in the ESRI ASCII grid
// format and stores them as files in a directory.
//
// A file is a six-line header followed by nrows lines of ncols values:
//
//	ncols        4
//	nrows        2
//	xllcorner    0.0
//	yllcorner    0.0
//	cellsize     30.0
//	NODATA_value -9999
//	1 2 3 4
//	5 6 -9999 8
//
// NODATA_value is optional; xllcenter/yllcenter are accepted in place of
// the corner keys.
package ascgrid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/classbreak/grid"
)

// ErrFormat indicates a malformed ASCII grid.
var ErrFormat = errors.New("ascgrid: malformed ASCII grid")

// Header is the georeferencing part of a file.
type Header struct {
	Cols, Rows int
	X, Y       float64 // lower-left corner, or center when Center is set
	CellSize   float64
	Center     bool
}

// Read parses an ASCII grid into a band and its header.
func Read(r io.Reader) (*grid.Band, Header, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	sc.Split(bufio.ScanWords)

	var h Header
	opts := grid.DefaultBandOptions()
	var first string
	for {
		if !sc.Scan() {
			return nil, h, fmt.Errorf("header: %w", ErrFormat)
		}
		key := strings.ToLower(sc.Text())
		if _, err := strconv.ParseFloat(key, 64); err == nil {
			first = sc.Text()
			break
		}
		if !sc.Scan() {
			return nil, h, fmt.Errorf("header %q without value: %w", key, ErrFormat)
		}
		val := sc.Text()
		if err := setHeader(&h, &opts, key, val); err != nil {
			return nil, h, err
		}
	}
	if h.Cols <= 0 || h.Rows <= 0 {
		return nil, h, fmt.Errorf("ncols/nrows must be positive: %w", ErrFormat)
	}

	rows := make([][]float64, h.Rows)
	next := first
	for y := 0; y < h.Rows; y++ {
		rows[y] = make([]float64, h.Cols)
		for x := 0; x < h.Cols; x++ {
			if next == "" {
				if !sc.Scan() {
					return nil, h, fmt.Errorf("want %d×%d cells: %w", h.Cols, h.Rows, ErrFormat)
				}
				next = sc.Text()
			}
			v, err := strconv.ParseFloat(next, 64)
			if err != nil {
				return nil, h, fmt.Errorf("cell (%d,%d) %q: %w", x, y, next, ErrFormat)
			}
			rows[y][x] = v
			next = ""
		}
	}
	if err := sc.Err(); err != nil {
		return nil, h, err
	}

	b, err := grid.NewBand(rows, opts)
	return b, h, err
}

func setHeader(h *Header, opts *grid.BandOptions, key, val string) error {
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fmt.Errorf("header %s=%q: %w", key, val, ErrFormat)
	}
	switch key {
	case "ncols":
		h.Cols = int(num)
	case "nrows":
		h.Rows = int(num)
	case "xllcorner":
		h.X = num
	case "yllcorner":
		h.Y = num
	case "xllcenter":
		h.X, h.Center = num, true
	case "yllcenter":
		h.Y, h.Center = num, true
	case "cellsize":
		h.CellSize = num
	case "nodata_value":
		*opts = grid.WithNoData(num)
	default:
		return fmt.Errorf("unknown header %q: %w", key, ErrFormat)
	}
	return nil
}

// Write renders b with header h; h.Cols and h.Rows are taken from b.
func Write(w io.Writer, b *grid.Band, h Header) error {
	bw := bufio.NewWriter(w)
	xKey, yKey := "xllcorner", "yllcorner"
	if h.Center {
		xKey, yKey = "xllcenter", "yllcenter"
	}
	fmt.Fprintf(bw, "ncols %d\nnrows %d\n", b.Width, b.Height)
	fmt.Fprintf(bw, "%s %s\n%s %s\n", xKey, ftoa(h.X), yKey, ftoa(h.Y))
	fmt.Fprintf(bw, "cellsize %s\n", ftoa(h.CellSize))
	if b.HasNoData {
		fmt.Fprintf(bw, "NODATA_value %s\n", ftoa(b.NoData))
	}
	for _, row := range b.Rows() {
		for x, v := range row {
			if x > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(ftoa(v))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
