// SPDX-License-Identifier: MIT

package coda_test

import (
	"math"
	"testing"

	"github.com/adamlenart/CoDa/coda"
	"github.com/adamlenart/CoDa/matrix"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsAndTotal(t *testing.T) {
	t.Parallel()

	c := MustNew(t, [][]float64{{1, 2, 3}, {4, 4, 4}})
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 3, c.Parts())
	require.Equal(t, []string{"c1", "c2"}, c.RowLabels())
	require.Equal(t, []string{"p1", "p2", "p3"}, c.ColumnLabels())
	require.Equal(t, []float64{6, 12}, c.Total())

	// Total hands out a copy.
	tot := c.Total()
	tot[0] = 0
	require.Equal(t, []float64{6, 12}, c.Total())

	v, err := c.AtLabel("c1", "p3")
	require.NoError(t, err)
	require.Equal(t, 3.0, v, "raw values are kept unclosed")
}

func TestNew_Labels(t *testing.T) {
	t.Parallel()

	c := MustNew(t, [][]float64{{1, 2}},
		coda.WithRowLabels("site-a"), coda.WithColumnLabels("sand", "clay"))
	require.Equal(t, []string{"site-a"}, c.RowLabels())
	require.Equal(t, []string{"sand", "clay"}, c.ColumnLabels())

	_, err := coda.New([][]float64{{1, 2}}, coda.WithColumnLabels("sand"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.PanicsWithValue(t, coda.PanicEmptyLabel_TestOnly, func() { coda.WithColumnLabels("a", "") })
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		values  [][]float64
		wantErr error
	}{
		{"zero", [][]float64{{1, 0, 2}}, coda.ErrNonPositive},
		{"negative", [][]float64{{1, 2}, {-1, 2}}, coda.ErrNonPositive},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrBadShape},
		{"nan", [][]float64{{math.NaN(), 1}}, matrix.ErrNaNInf},
		{"total overflows", [][]float64{{1, 2, 3}, {1e308, 1e308, 1}}, coda.ErrTotalNotFinite},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := coda.New(tc.values)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNew_NoValidatePositive(t *testing.T) {
	t.Parallel()

	c, err := coda.New([][]float64{{0, 1}}, coda.WithNoValidatePositive())
	require.NoError(t, err)
	require.Equal(t, []float64{1}, c.Total())

	_, err = coda.New([][]float64{{0, 1}}, coda.WithNoValidatePositive(), coda.WithValidatePositive())
	require.ErrorIs(t, err, coda.ErrNonPositive, "last option wins")

	_, err = coda.New([][]float64{{1e308, 1e308}}, coda.WithNoValidatePositive())
	require.ErrorIs(t, err, coda.ErrTotalNotFinite, "total check ignores the positivity policy")
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()

	c := MustNew(t, nil)
	require.Zero(t, c.Rows())
	require.Zero(t, c.Parts())
	require.Empty(t, c.Total())

	closed, err := c.Close()
	require.NoError(t, err)
	require.Zero(t, closed.Rows())
}

func TestFromMatrix(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewLabeled([][]float64{{2, 2}}, matrix.WithColumnLabels("x", "y"))
	require.NoError(t, err)

	c, err := coda.FromMatrix(m)
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, c.ColumnLabels())
	require.Same(t, m, c.Values())

	r, err := coda.FromMatrix(m, coda.WithColumnLabels("a", "b"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, r.ColumnLabels())
	require.Equal(t, []string{"x", "y"}, m.ColumnLabels(), "source untouched")

	_, err = coda.FromMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	neg, err := matrix.NewLabeled([][]float64{{-1, 2}})
	require.NoError(t, err)
	_, err = coda.FromMatrix(neg)
	require.ErrorIs(t, err, coda.ErrNonPositive)

	huge, err := matrix.NewLabeled([][]float64{{1e308, 1e308}})
	require.NoError(t, err)
	_, err = coda.FromMatrix(huge)
	require.ErrorIs(t, err, coda.ErrTotalNotFinite)
}

func TestAsComposition(t *testing.T) {
	t.Parallel()

	var typedNil *coda.CompositionalData
	_, err := coda.AsComposition(nil)
	require.ErrorIs(t, err, coda.ErrNotCompositionalData)
	_, err = coda.AsComposition(typedNil)
	require.ErrorIs(t, err, coda.ErrNotCompositionalData)

	// Embedding promotes the capability.
	type sample struct{ *coda.CompositionalData }
	_, err = coda.AsComposition(sample{})
	require.ErrorIs(t, err, coda.ErrNotCompositionalData)

	c := MustNew(t, [][]float64{{1, 2}})
	got, err := coda.AsComposition(sample{c})
	require.NoError(t, err)
	require.Same(t, c, got)
}

func TestNilReceiver(t *testing.T) {
	t.Parallel()

	var c *coda.CompositionalData
	_, err := c.Close()
	require.ErrorIs(t, err, coda.ErrNotCompositionalData)
	_, err = c.At(0, 0)
	require.ErrorIs(t, err, coda.ErrNotCompositionalData)
	require.Zero(t, c.Rows())
	require.Equal(t, "<nil>", c.String())
}

func TestSub(t *testing.T) {
	t.Parallel()

	c := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	s, err := c.Sub([]string{"c2"}, []string{"p1", "p3"})
	require.NoError(t, err)
	RequireValues(t, [][]float64{{4, 6}}, s, 0)

	_, err = c.Sub(nil, []string{"p9"})
	require.ErrorIs(t, err, matrix.ErrUnknownLabel)
}
