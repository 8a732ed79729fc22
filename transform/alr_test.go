// SPDX-License-Identifier: MIT

package transform_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"testing"

	"github.com/adamlenart/CoDa/coda"
	"github.com/adamlenart/CoDa/matrix"
	"github.com/adamlenart/CoDa/transform"
	"github.com/stretchr/testify/require"
)

func TestALR_Scenario(t *testing.T) {
	t.Parallel()

	c := MustComposition(t, [][]float64{{1, 2, 3}, {4, 4, 4}})
	got, err := transform.ALR(c, transform.WithDivisor("p3"))
	require.NoError(t, err)
	require.Equal(t, []string{"p1", "p2"}, got.ColumnLabels())
	require.Equal(t, []string{"c1", "c2"}, got.RowLabels())
	RequireValues(t, [][]float64{
		{math.Log(1.0 / 3), math.Log(2.0 / 3)},
		{0, 0},
	}, got, 1e-12)
}

func TestALR_DefaultDivisorIsLastColumn(t *testing.T) {
	t.Parallel()

	c := MustComposition(t, RandComposition(10, 4, 8))
	def, err := transform.ALR(c)
	require.NoError(t, err)
	explicit, err := transform.ALR(c, transform.WithDivisor("p4"))
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(def, explicit, matrix.WithEpsilon(0)))
}

func TestALR_MiddleDivisor(t *testing.T) {
	t.Parallel()

	c := MustComposition(t, [][]float64{{2, 4, 8}}, coda.WithColumnLabels("a", "b", "c"))
	got, err := transform.ALR(c, transform.WithDivisor("b"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, got.ColumnLabels())
	RequireValues(t, [][]float64{{math.Log(0.5), math.Log(2)}}, got, 1e-12)
}

func TestALR_ScaleInvariant(t *testing.T) {
	t.Parallel()

	raw := MustComposition(t, [][]float64{{1, 2, 3}})
	scaled := MustComposition(t, [][]float64{{7, 14, 21}})
	a, err := transform.ALR(raw)
	require.NoError(t, err)
	b, err := transform.ALR(scaled)
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(a, b))
}

func TestALR_RatioBeyondFloatRange(t *testing.T) {
	t.Parallel()

	c := MustComposition(t, [][]float64{{1e300, 1e-300}, {1e-300, 1e300}})
	got, err := transform.ALR(c)
	require.NoError(t, err)
	want := 600 * math.Ln10
	RequireValues(t, [][]float64{{want}, {-want}}, got, 1e-9)
}

func TestALR_SinglePart(t *testing.T) {
	t.Parallel()

	c := MustComposition(t, [][]float64{{5}, {7}})
	got, err := transform.ALR(c)
	require.NoError(t, err)
	r, k := got.Shape()
	require.Equal(t, 2, r)
	require.Zero(t, k)
}

func TestALR_Errors(t *testing.T) {
	t.Parallel()

	var typedNil *coda.CompositionalData
	tests := []struct {
		name    string
		c       coda.Compositional
		opts    []transform.Option
		wantErr error
	}{
		{"nil", nil, nil, coda.ErrNotCompositionalData},
		{"typed nil", typedNil, nil, coda.ErrNotCompositionalData},
		{"no parts", MustComposition(t, nil), nil, transform.ErrTooFewParts},
		{"unknown divisor", MustComposition(t, [][]float64{{1, 2}}), []transform.Option{transform.WithDivisor("p9")}, matrix.ErrUnknownLabel},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, err := transform.ALR(tc.c, tc.opts...)
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, out)
		})
	}
}

func TestALR_Logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c := MustComposition(t, [][]float64{{1, 2, 3}})
	_, err := transform.ALR(c, transform.WithLogger(logger))
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "alr", rec["msg"])
	require.Equal(t, "p3", rec["divisor"])
	require.Equal(t, true, rec["default_divisor"])
	require.EqualValues(t, 2, rec["coordinates"])
}

func TestLastColumn(t *testing.T) {
	t.Parallel()

	l, ok := transform.LastColumn([]string{"a", "b"})
	require.True(t, ok)
	require.Equal(t, "b", l)

	_, ok = transform.LastColumn(nil)
	require.False(t, ok)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, transform.PanicEmptyDivisor_TestOnly, func() { transform.WithDivisor("") })
	require.PanicsWithValue(t, transform.PanicEmptyOriginal_TestOnly, func() { transform.WithOriginalColumns() })
	require.PanicsWithValue(t, transform.PanicEmptyOriginal_TestOnly, func() { transform.WithOriginalColumns("a", "") })
	require.PanicsWithValue(t, transform.PanicNilLogger_TestOnly, func() { transform.WithLogger(nil) })
}
