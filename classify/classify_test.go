package classify_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/classbreak/breaks"
	"github.com/katalvlaran/classbreak/classify"
	"github.com/katalvlaran/classbreak/grid"
	"github.com/katalvlaran/classbreak/logger"
	"github.com/katalvlaran/classbreak/rule"
	"github.com/katalvlaran/classbreak/table"
)

func mustRule(t *testing.T, b ...float64) *rule.Rule {
	t.Helper()
	r, err := rule.New(b)
	require.NoError(t, err)
	return r
}

func mustRaster(t *testing.T, rows [][]float64, opts grid.BandOptions) *grid.Raster {
	t.Helper()
	b, err := grid.NewBand(rows, opts)
	require.NoError(t, err)
	r, err := grid.NewRaster(b)
	require.NoError(t, err)
	return r
}

//----------------------------------------------------------------------------//
// Grid path
//----------------------------------------------------------------------------//

// TestGrid_Equidistant runs the whole grid flow.
func TestGrid_Equidistant(t *testing.T) {
	src := mustRaster(t, [][]float64{{0, 10, 20}, {30, -9999, 40}}, grid.WithNoData(-9999))
	m, err := breaks.NewEquidistant(4)
	require.NoError(t, err)
	store := classify.NewMemStore()

	res, err := classify.Grid(src, 1, m, classify.WithStore(store))
	require.NoError(t, err)
	assert.Equal(t, "equidistant_4cats", res.Name)
	assert.Equal(t, []float64{0, 10, 20, 30, 40}, res.Breaks)
	assert.Equal(t, 5, res.Samples)
	assert.False(t, res.Degenerate)
	assert.Equal(t, []float64{1, 2, 3, 4, 0, 4}, res.Output.Flatten())
	assert.Equal(t, classify.DefaultNoData, res.Output.NoData)
	assert.Equal(t, []string{"equidistant_4cats"}, store.Names(), "intermediate removed")
}

// TestGrid_PositiveSentinel spreads the classes over the kept cells only;
// cells above the sentinel stay unclassified.
func TestGrid_PositiveSentinel(t *testing.T) {
	src := mustRaster(t, [][]float64{{1, 2, 3, 4}, {5, 6, 255, 300}}, grid.WithNoData(255))
	m, err := breaks.NewEquidistant(4)
	require.NoError(t, err)

	res, err := classify.Grid(src, 1, m)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2.25, 3.5, 4.75, 6}, res.Breaks, 1e-9)
	assert.Equal(t, 6, res.Samples)
	assert.Equal(t, []float64{1, 1, 2, 3, 4, 4, 0, 0}, res.Output.Flatten())
}

// TestApplyGrid_AllSentinel yields an all-sentinel output without error.
func TestApplyGrid_AllSentinel(t *testing.T) {
	b, err := grid.Filled(4, 3, -9999, grid.WithNoData(-9999))
	require.NoError(t, err)

	out, err := classify.ApplyGrid(b, mustRule(t, 0, 1, 2), "empty", classify.WithNoData(255))
	require.NoError(t, err)
	for _, v := range out.Flatten() {
		assert.Equal(t, 255.0, v)
	}
	assert.Equal(t, 0, out.Stats().Valid)
}

// TestApplyGrid_OutOfRule maps values outside the rule to no-data.
func TestApplyGrid_OutOfRule(t *testing.T) {
	b, err := grid.NewBand([][]float64{{-5, 0, 5, 10, 15}}, grid.DefaultBandOptions())
	require.NoError(t, err)

	out, err := classify.ApplyGrid(b, mustRule(t, 0, 5, 10), "oor", classify.WithNoData(-1))
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 1, 2, 2, -1}, out.Flatten())
}

// TestApplyGrid_NoDataClash refuses a sentinel that is also a label.
func TestApplyGrid_NoDataClash(t *testing.T) {
	b, _ := grid.Filled(1, 1, 1, grid.DefaultBandOptions())
	_, err := classify.ApplyGrid(b, mustRule(t, 0, 1, 2), "x", classify.WithNoData(2))
	assert.ErrorIs(t, err, classify.ErrNoDataClash)

	_, err = classify.ApplyGrid(b, mustRule(t, 0, 1, 2), "")
	assert.ErrorIs(t, err, classify.ErrEmptyName)
	_, err = classify.ApplyGrid(nil, mustRule(t, 0, 1, 2), "x")
	assert.ErrorIs(t, err, classify.ErrNilSource)
}

// TestNoData_NonFinite returns an error for a NaN or infinite sentinel.
func TestNoData_NonFinite(t *testing.T) {
	b, _ := grid.Filled(1, 1, 1, grid.DefaultBandOptions())
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.NotPanics(t, func() {
			_, err := classify.ApplyGrid(b, mustRule(t, 0, 1, 2), "x", classify.WithNoData(v))
			assert.ErrorIs(t, err, classify.ErrInvalidNoData)
		})
	}

	src := mustRaster(t, [][]float64{{1, 2}, {3, 4}}, grid.DefaultBandOptions())
	m, err := breaks.NewEquidistant(2)
	require.NoError(t, err)
	_, err = classify.Grid(src, 1, m, classify.WithNoData(math.NaN()))
	assert.ErrorIs(t, err, classify.ErrInvalidNoData)
}

// failingStore refuses to store one name.
type failingStore struct {
	*classify.MemStore
	refuse string
}

var errDisk = errors.New("disk full")

func (s failingStore) Put(name string, b *grid.Band) error {
	if name == s.refuse {
		return errDisk
	}
	return s.MemStore.Put(name, b)
}

// TestApplyGrid_KeepsIntermediateOnFailure ensures the intermediate artifact
// survives when the final one cannot be stored.
func TestApplyGrid_KeepsIntermediateOnFailure(t *testing.T) {
	b, _ := grid.NewBand([][]float64{{1, 2}}, grid.DefaultBandOptions())
	store := failingStore{MemStore: classify.NewMemStore(), refuse: "final"}

	_, err := classify.ApplyGrid(b, mustRule(t, 1, 2), "final", classify.WithStore(store))
	assert.ErrorIs(t, err, errDisk)
	assert.Equal(t, []string{"tp_final"}, store.Names())
}

// failingNormalizer always fails.
type failingNormalizer struct{}

func (failingNormalizer) SetNull(*grid.Band, []float64, float64) (*grid.Band, error) {
	return nil, errDisk
}

// TestApplyGrid_NormalizerFailure keeps the intermediate and stores no final.
func TestApplyGrid_NormalizerFailure(t *testing.T) {
	b, _ := grid.NewBand([][]float64{{1, 2}}, grid.DefaultBandOptions())
	store := classify.NewMemStore()
	_, err := classify.ApplyGrid(b, mustRule(t, 1, 2), "final",
		classify.WithStore(store), classify.WithNormalizer(failingNormalizer{}))
	assert.ErrorIs(t, err, errDisk)
	assert.Equal(t, []string{"tp_final"}, store.Names())
}

// TestGrid_Errors propagates extractor and generator failures.
func TestGrid_Errors(t *testing.T) {
	src := mustRaster(t, [][]float64{{-9999, -9999}}, grid.WithNoData(-9999))
	m, _ := breaks.NewEquidistant(3)

	_, err := classify.Grid(src, 1, m)
	assert.ErrorIs(t, err, breaks.ErrEmptySample)
	_, err = classify.Grid(src, 2, m)
	assert.ErrorIs(t, err, grid.ErrBandIndex)
	_, err = classify.Grid(nil, 1, m)
	assert.ErrorIs(t, err, classify.ErrNilSource)

	ok := mustRaster(t, [][]float64{{1, 2}}, grid.DefaultBandOptions())
	_, err = classify.Grid(ok, 1, breaks.Method{Kind: breaks.Kind(42), Categories: 3})
	assert.ErrorIs(t, err, breaks.ErrUnknownMethod)
	_, err = classify.Grid(ok, 1, breaks.Method{Kind: breaks.Progressive, Categories: 3})
	assert.ErrorIs(t, err, breaks.ErrInvalidParameters)
}

//----------------------------------------------------------------------------//
// Column path
//----------------------------------------------------------------------------//

// TestColumn_Quartiles classifies a column and checks labels.
func TestColumn_Quartiles(t *testing.T) {
	tbl := table.FromColumn("v", []float64{1, 2, 3, 4, 5, 6, 7, 8})
	m, err := breaks.NewQuantile(4)
	require.NoError(t, err)

	res, err := classify.Column(tbl, "v", m)
	require.NoError(t, err)
	assert.Equal(t, "quartiles", res.Name)
	assert.InDeltaSlice(t, []float64{1, 2.75, 4.5, 6.25, 8}, res.Breaks, 1e-9)
	assert.Equal(t, int64(8), res.Assigned)

	classes, err := tbl.Classes("quartiles")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 2, 3, 3, 4, 4}, classes)
}

// TestColumn_Idempotent re-runs on the same table without schema growth.
func TestColumn_Idempotent(t *testing.T) {
	tbl := table.FromColumn("v", []float64{0, 3, 20, 46.7, 99, 100, 6.6})
	m, err := breaks.NewProgressive(2, 4)
	require.NoError(t, err)

	_, err = classify.Column(tbl, "v", m)
	require.NoError(t, err)
	first, err := tbl.Classes(m.ShortName())
	require.NoError(t, err)

	_, err = classify.Column(tbl, "v", m)
	require.NoError(t, err)
	second, err := tbl.Classes(m.ShortName())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	fields, err := tbl.Fields()
	require.NoError(t, err)
	assert.Len(t, fields, 2)
}

// TestPaths_AgreeOnBoundaries gives boundary values the same class on grids
// and columns.
func TestPaths_AgreeOnBoundaries(t *testing.T) {
	values := []float64{0, 20, 40, 60, 80, 100, 19.99, 50}
	r := mustRule(t, 0, 20, 40, 60, 80, 100)

	b, err := grid.NewBand([][]float64{values}, grid.DefaultBandOptions())
	require.NoError(t, err)
	out, err := classify.ApplyGrid(b, r, "g")
	require.NoError(t, err)

	tbl := table.FromColumn("v", values)
	_, err = classify.ApplyColumn(tbl, "v", r, "c")
	require.NoError(t, err)
	classes, err := tbl.Classes("c")
	require.NoError(t, err)

	for i, v := range out.Flatten() {
		assert.Equal(t, int(v), classes[i], "value %v", values[i])
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 5, 1, 3}, classes)
}

// recordingTable logs transaction boundaries and can fail a class.
type recordingTable struct {
	*table.Memory
	events   *[]string
	failOn   int
	inFlight *bool
}

func (r recordingTable) Begin() (table.Tx, error) {
	if *r.inFlight {
		return nil, errors.New("interleaved transaction")
	}
	tx, err := r.Memory.Begin()
	if err != nil {
		return nil, err
	}
	*r.inFlight = true
	*r.events = append(*r.events, "begin")
	return recordingTx{Tx: tx, t: r}, nil
}

type recordingTx struct {
	table.Tx
	t recordingTable
}

func (x recordingTx) Assign(src, dst string, iv rule.Interval) (int64, error) {
	if iv.Class == x.t.failOn {
		return 0, errDisk
	}
	*x.t.events = append(*x.t.events, "assign")
	return x.Tx.Assign(src, dst, iv)
}

func (x recordingTx) Commit() error {
	*x.t.inFlight = false
	*x.t.events = append(*x.t.events, "commit")
	return x.Tx.Commit()
}

func (x recordingTx) Rollback() error {
	*x.t.inFlight = false
	*x.t.events = append(*x.t.events, "rollback")
	return x.Tx.Rollback()
}

// TestApplyColumn_SequentialTransactions checks one finished transaction per
// interval, in order.
func TestApplyColumn_SequentialTransactions(t *testing.T) {
	var events []string
	inFlight := false
	tbl := recordingTable{Memory: table.FromColumn("v", []float64{1, 2, 3}), events: &events, inFlight: &inFlight}

	n, err := classify.ApplyColumn(tbl, "v", mustRule(t, 1, 2, 3), "c")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, []string{"begin", "assign", "commit", "begin", "assign", "commit"}, events)
}

// TestApplyColumn_PartialFailure leaves earlier intervals committed and the
// rest unset.
func TestApplyColumn_PartialFailure(t *testing.T) {
	var events []string
	inFlight := false
	tbl := recordingTable{
		Memory:   table.FromColumn("v", []float64{0, 15, 25, 35}),
		events:   &events,
		failOn:   3,
		inFlight: &inFlight,
	}

	n, err := classify.ApplyColumn(tbl, "v", mustRule(t, 0, 10, 20, 30, 40), "c")
	assert.ErrorIs(t, err, errDisk)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, "rollback", events[len(events)-1])

	classes, err := tbl.Classes("c")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, rule.Unclassified, rule.Unclassified}, classes)
}

// TestColumn_Errors covers a missing field and a degenerate column.
func TestColumn_Errors(t *testing.T) {
	m, _ := breaks.NewEquidistant(3)
	_, err := classify.Column(table.FromColumn("v", []float64{1}), "w", m)
	assert.ErrorIs(t, err, table.ErrMissingField)
	_, err = classify.Column(nil, "v", m)
	assert.ErrorIs(t, err, classify.ErrNilSource)

	var buf bytes.Buffer
	tbl := table.FromColumn("v", []float64{7, 7})
	res, err := classify.Column(tbl, "v", m, classify.WithLogger(logger.New(&buf, zerolog.DebugLevel)), classify.WithName("cls"))
	require.NoError(t, err)
	assert.True(t, res.Degenerate)
	assert.Equal(t, "cls", res.Name)
	assert.Contains(t, buf.String(), "degenerate")

	classes, err := tbl.Classes("cls")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, classes)
}
