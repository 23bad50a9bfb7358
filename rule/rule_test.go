package rule_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/classbreak/breaks"
	"github.com/katalvlaran/classbreak/calc"
	"github.com/katalvlaran/classbreak/rule"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors rejects short, unsorted and non-finite sequences.
func TestNew_Errors(t *testing.T) {
	_, err := rule.New([]float64{1})
	assert.ErrorIs(t, err, rule.ErrTooFewBreaks)
	_, err = rule.New([]float64{0, 2, 1})
	assert.ErrorIs(t, err, rule.ErrNotSorted)
	_, err = rule.New([]float64{0, math.Inf(1)})
	assert.ErrorIs(t, err, rule.ErrNonFinite)
	_, err = rule.New([]float64{math.NaN(), 1})
	assert.ErrorIs(t, err, rule.ErrNonFinite)
}

// TestNew_Copies ensures the rule owns its breakpoints.
func TestNew_Copies(t *testing.T) {
	b := []float64{0, 1, 2}
	r, err := rule.New(b)
	require.NoError(t, err)
	b[1] = 5
	assert.Equal(t, []float64{0, 1, 2}, r.Breaks())
	assert.Equal(t, 2, r.Categories())
	assert.Equal(t, 0.0, r.Min())
	assert.Equal(t, 2.0, r.Max())
}

//----------------------------------------------------------------------------//
// Direct form
//----------------------------------------------------------------------------//

// TestClassify_Boundaries checks half-open intervals and the closed final one.
func TestClassify_Boundaries(t *testing.T) {
	r, err := rule.New([]float64{0, 20, 40, 60, 80, 100})
	require.NoError(t, err)

	cases := []struct {
		v     float64
		class int
		ok    bool
	}{
		{-0.001, rule.Unclassified, false},
		{0, 1, true},
		{19.999, 1, true},
		{20, 2, true},
		{40, 3, true},
		{79.5, 4, true},
		{80, 5, true},
		{100, 5, true},
		{100.001, rule.Unclassified, false},
		{math.NaN(), rule.Unclassified, false},
	}
	for _, tc := range cases {
		class, ok := r.Classify(tc.v)
		assert.Equal(t, tc.ok, ok, "v=%v", tc.v)
		assert.Equal(t, tc.class, class, "v=%v", tc.v)
	}
}

// TestClassify_Duplicates handles collapsed intervals.
func TestClassify_Duplicates(t *testing.T) {
	r, err := rule.New([]float64{0, 5, 5, 10})
	require.NoError(t, err)
	class, ok := r.Classify(5)
	assert.True(t, ok)
	assert.Equal(t, 3, class, "empty [5,5) is skipped")

	flat, err := rule.New([]float64{7, 7, 7})
	require.NoError(t, err)
	class, ok = flat.Classify(7)
	assert.True(t, ok)
	assert.Equal(t, 2, class, "degenerate range lands in the last class")
}

// TestIntervals_Partition ensures adjacent intervals share bounds, only the
// last is closed, and every value in range falls in exactly one interval.
func TestIntervals_Partition(t *testing.T) {
	b, err := breaks.ProgressiveBreaks(2, 4, 0, 100)
	require.NoError(t, err)
	r, err := rule.New(b)
	require.NoError(t, err)

	ivs := r.Intervals()
	require.Len(t, ivs, 4)
	for i, iv := range ivs {
		assert.Equal(t, i+1, iv.Class)
		assert.Equal(t, i == len(ivs)-1, iv.Closed)
		if i > 0 {
			assert.Equal(t, ivs[i-1].High, iv.Low, "no gap at %d", i)
		}
	}
	for _, v := range append(b, 3, 33, 99.999) {
		hits := 0
		for _, iv := range ivs {
			if iv.Contains(v) {
				hits++
			}
		}
		assert.Equal(t, 1, hits, "v=%v", v)
	}
}

//----------------------------------------------------------------------------//
// Symbolic form
//----------------------------------------------------------------------------//

// TestFormula_Render checks the rendered expression text.
func TestFormula_Render(t *testing.T) {
	r, err := rule.New([]float64{0, 2.5, 10})
	require.NoError(t, err)
	assert.Equal(t, "logical_and(A>=0,A<2.5)*1 + logical_and(A>=2.5, A<=10)*2", r.Formula(""))
	assert.Equal(t, "logical_and(B>=0,B<2.5)*1 + logical_and(B>=2.5, B<=10)*2", r.Formula("B"))

	single, err := rule.New([]float64{-1e-7, 1e21})
	require.NoError(t, err)
	assert.Equal(t, "logical_and(A>=-1e-07, A<=1e+21)*1", single.Formula(""))
}

// TestForms_Agree evaluates the symbolic form through the calculator and
// compares it with Classify over random values and every boundary.
func TestForms_Agree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	samples := make([]float64, 200)
	for i := range samples {
		samples[i] = rng.ExpFloat64()*37.3 - 12.1
	}
	s, err := breaks.NewSample(samples)
	require.NoError(t, err)

	methods := []breaks.Method{
		{Kind: breaks.Equidistant, Categories: 5},
		{Kind: breaks.Quantile, Categories: 10},
		{Kind: breaks.Progressive, Categories: 6, Factor: 1.7},
		{Kind: breaks.WeberFechner, Categories: 5, Factor: 2},
	}
	for _, m := range methods {
		t.Run(m.ShortName(), func(t *testing.T) {
			b, err := breaks.Generate(m, s)
			require.NoError(t, err)
			r, err := rule.New(b)
			require.NoError(t, err)
			prog, err := calc.Compile(r.Formula(""))
			require.NoError(t, err)

			values := append([]float64{}, b...)
			for i := 0; i < 1000; i++ {
				values = append(values, s.Min+rng.Float64()*(s.Max-s.Min))
			}
			values = append(values, math.Nextafter(s.Min, math.Inf(-1)), math.Nextafter(s.Max, math.Inf(1)))

			for _, v := range values {
				direct, ok := r.Classify(v)
				symbolic := prog.Eval(v)
				if !ok {
					assert.Equal(t, 0.0, symbolic, "v=%v", v)
					continue
				}
				assert.Equal(t, float64(direct), symbolic, "v=%v", v)
			}
		})
	}
}
