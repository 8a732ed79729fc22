// SPDX-License-Identifier: MIT
// Package transform_test contains shared fixtures for log-ratio tests.

package transform_test

import (
	"math/rand"
	"testing"

	"github.com/adamlenart/CoDa/coda"
	"github.com/adamlenart/CoDa/matrix"
	"github.com/stretchr/testify/require"
)

// MustComposition BUILDS a CompositionalData or fails the test.
func MustComposition(t testing.TB, values [][]float64, opts ...coda.Option) *coda.CompositionalData {
	t.Helper()
	c, err := coda.New(values, opts...)
	require.NoError(t, err)

	return c
}

// RandComposition RETURNS r×c strictly positive values in [0.1, 10.1).
func RandComposition(r, c int, seed int64) [][]float64 {
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

// RequireValues ASSERTS m holds want cell by cell within tol.
func RequireValues(t testing.TB, want [][]float64, m *matrix.Labeled, tol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, tol, "[%d,%d]", i, j)
		}
	}
}
