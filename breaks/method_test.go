package breaks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/classbreak/breaks"
)

// TestParseMethod covers names, aliases, case folding and defaults.
func TestParseMethod(t *testing.T) {
	cases := []struct {
		name       string
		categories int
		factor     float64
		want       breaks.Method
	}{
		{"Equidistant", 0, 0, breaks.Method{Kind: breaks.Equidistant, Categories: 5}},
		{"equal-interval", 7, 0, breaks.Method{Kind: breaks.Equidistant, Categories: 7}},
		{"QUARTILES", 9, 0, breaks.Method{Kind: breaks.Quantile, Categories: 4}},
		{"quintiles", 0, 0, breaks.Method{Kind: breaks.Quantile, Categories: 5}},
		{"Deciles", 0, 0, breaks.Method{Kind: breaks.Quantile, Categories: 10}},
		{"quantile:7", 0, 0, breaks.Method{Kind: breaks.Quantile, Categories: 7}},
		{"quantile(3)", 0, 0, breaks.Method{Kind: breaks.Quantile, Categories: 3}},
		{" Progressive ", 4, 1.5, breaks.Method{Kind: breaks.Progressive, Categories: 4, Factor: 1.5}},
		{"geometric", 0, 0, breaks.Method{Kind: breaks.Progressive, Categories: 5, Factor: 2}},
		{"WF", 0, 0, breaks.Method{Kind: breaks.WeberFechner, Categories: 5, Factor: 2}},
		{"Weber-Fechner", 3, 3, breaks.Method{Kind: breaks.WeberFechner, Categories: 3, Factor: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := breaks.ParseMethod(tc.name, tc.categories, tc.factor)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m)
		})
	}
}

// TestParseMethod_Errors ensures bad names and parameters never no-op.
func TestParseMethod_Errors(t *testing.T) {
	_, err := breaks.ParseMethod("jenks", 5, 2)
	assert.ErrorIs(t, err, breaks.ErrUnknownMethod)

	_, err = breaks.ParseMethod("", 5, 2)
	assert.ErrorIs(t, err, breaks.ErrUnknownMethod)

	_, err = breaks.ParseMethod("quantile:x", 5, 2)
	assert.ErrorIs(t, err, breaks.ErrUnknownMethod)

	_, err = breaks.ParseMethod("quantile:0", 5, 2)
	assert.ErrorIs(t, err, breaks.ErrInvalidParameters)

	_, err = breaks.ParseMethod("progressive", 5, -1)
	assert.ErrorIs(t, err, breaks.ErrInvalidParameters)
}

// TestShortName checks the artifact naming convention.
func TestShortName(t *testing.T) {
	cases := []struct {
		m    breaks.Method
		want string
	}{
		{breaks.Method{Kind: breaks.Equidistant, Categories: 5}, "equidistant_5cats"},
		{breaks.Method{Kind: breaks.Quantile, Categories: 4}, "quartiles"},
		{breaks.Method{Kind: breaks.Quantile, Categories: 5}, "quintiles"},
		{breaks.Method{Kind: breaks.Quantile, Categories: 10}, "deciles"},
		{breaks.Method{Kind: breaks.Quantile, Categories: 7}, "quantiles_7"},
		{breaks.Method{Kind: breaks.Progressive, Categories: 5, Factor: 2}, "pg_2_5cats"},
		{breaks.Method{Kind: breaks.WeberFechner, Categories: 4, Factor: 1.5}, "wf_1_5_4cats"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.m.ShortName())
	}
}

// TestKindString checks the canonical kind names.
func TestKindString(t *testing.T) {
	assert.Equal(t, "equidistant", breaks.Equidistant.String())
	assert.Equal(t, "quantile", breaks.Quantile.String())
	assert.Equal(t, "progressive", breaks.Progressive.String())
	assert.Equal(t, "weber-fechner", breaks.WeberFechner.String())
	assert.Equal(t, "unknown", breaks.Kind(0).String())
}
