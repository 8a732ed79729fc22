// SPDX-License-Identifier: MIT

package matrix

// Test-bridge for private kernels.
//
// Purpose:
//   - Expose UNEXPORTED ew* micro-kernels to matrix_test ONLY, so fast-path
//     (*Dense) and generic fallback results can be compared without widening
//     the production API. Compiled only with `go test`.

// EwMap_TestOnly forwards to ewMap.
func EwMap_TestOnly(X Matrix, f func(float64) float64) (Matrix, error) {
	return ewMap(X, "test", f)
}

// EwHadamard_TestOnly forwards to ewHadamard.
func EwHadamard_TestOnly(a, b Matrix) (Matrix, error) { return ewHadamard(a, b) }

// EwDivRows_TestOnly forwards to ewDivRows.
func EwDivRows_TestOnly(X Matrix, div []float64) (Matrix, error) { return ewDivRows(X, div) }

// EwRowSums_TestOnly forwards to ewRowSums.
func EwRowSums_TestOnly(X Matrix) ([]float64, error) { return ewRowSums(X) }

// EwRowMax_TestOnly forwards to ewRowMax.
func EwRowMax_TestOnly(X Matrix) ([]float64, error) { return ewRowMax(X) }

// EwSubRows_TestOnly forwards to ewSubRows.
func EwSubRows_TestOnly(X Matrix, shift []float64) (Matrix, error) { return ewSubRows(X, shift) }

// EwAllClose_TestOnly forwards to ewAllClose.
func EwAllClose_TestOnly(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// NewDenseZeroOK_TestOnly forwards to newDenseZeroOK.
func NewDenseZeroOK_TestOnly(rows, cols int) (*Dense, error) { return newDenseZeroOK(rows, cols) }

// PanicEpsilonInvalid_TestOnly and PanicEmptyLabel_TestOnly avoid magic strings in tests.
const (
	PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
	PanicEmptyLabel_TestOnly     = panicEmptyLabel
)
