// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels and Labeled.
//   • Keep all data finite and strictly positive unless a test says otherwise.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/adamlenart/CoDa/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions, forcing
// the generic (non-*Dense) fallback path in kernels under test.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c, "NewFilledDense: value count")
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, d.Set(i, j, vals[i*c+j]))
		}
	}

	return d
}

// MustLabeled BUILDS a Labeled from nested rows or fails the test.
func MustLabeled(t testing.TB, values [][]float64, opts ...matrix.Option) *matrix.Labeled {
	t.Helper()
	l, err := matrix.NewLabeled(values, opts...)
	require.NoError(t, err)

	return l
}

// RandPositiveRows RETURNS r rows of c deterministic values in [0.1, 10.1).
func RandPositiveRows(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = 0.1 + rng.Float64()*10
		}
	}

	return out
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareClose ASSERTS |got[i,j]-want[i][j]| ≤ tol for every cell, shape included.
func CompareClose(t testing.TB, want [][]float64, got interface {
	Rows() int
	Cols() int
	At(i, j int) (float64, error)
}, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), got.Cols(), "cols of row %d", i)
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			if math.IsInf(want[i][j], 0) || math.IsNaN(want[i][j]) {
				require.Equal(t, math.IsNaN(want[i][j]), math.IsNaN(v), "NaN at [%d,%d]", i, j)
				if !math.IsNaN(v) {
					require.Equal(t, want[i][j], v, "[%d,%d]", i, j)
				}
				continue
			}
			require.InDelta(t, want[i][j], v, tol, "[%d,%d]", i, j)
		}
	}
}
