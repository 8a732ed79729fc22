// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) shared
//     by the Labeled operations (closure, power, perturbation, log-ratios).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels). Labeled wraps them.
//   - Outputs are always fresh *Dense; inputs are never mutated.
//   - Zero-size inputs (0×N, N×0) produce zero-size outputs of the same shape.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - Non-finite results (log of 0, 0^-1, ...) are written as-is: kernels do not
//     apply the ingestion policy to computed values.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping.
const (
	opHadamard = "Hadamard"
	opDivRows  = "DivideRows"
	opRowSums  = "RowSums"
	opRowMax   = "RowMax"
	opSubRows  = "SubtractRows"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag: "tag: %w".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ewMap computes out[i,j] = f(X[i,j]).
// Time: O(r*c). Space: O(r*c). Deterministic flat loop on Dense fast-path.
func ewMap(X Matrix, tag string, f func(float64) float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Dense fast-path: direct flat slice iteration.
	if d, ok := X.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
		for idx, v := range d.data {
			out.data[idx] = f(v)
		}
		return out, nil
	}

	// Generic fallback via At.
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out.data[i*c+j] = f(v)
		}
	}
	return out, nil
}

// ewHadamard computes out[i,j] = a[i,j] * b[i,j] for identical shapes.
// Time: O(r*c). Space: O(r*c).
func ewHadamard(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	r, c := a.Rows(), a.Cols()
	out, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Dense fast-path: both operands flat.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			floats.MulTo(out.data, da.data, db.data)
			return out, nil
		}
	}

	// Generic fallback.
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			out.data[i*c+j] = av * bv
		}
	}
	return out, nil
}

// ewDivRows computes out[i,j] = X[i,j] / div[i].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
//
// Division (not multiplication by 1/div) keeps exact results for exact
// quotients such as 4/4.
func ewDivRows(X Matrix, div []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opDivRows, err)
	}
	r, c := X.Rows(), X.Cols()
	if len(div) != r {
		return nil, matrixErrorf(opDivRows, ErrDimensionMismatch)
	}
	out, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, matrixErrorf(opDivRows, err)
	}

	// Dense fast-path.
	if d, ok := X.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
		for i := 0; i < r; i++ {
			dst, src := out.rowSlice(i), d.rowSlice(i)
			dv := div[i]
			for j := range src {
				dst[j] = src[j] / dv
			}
		}
		return out, nil
	}

	// Generic fallback.
	var v float64
	for i := 0; i < r; i++ {
		dv := div[i] // read once per row
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opDivRows, err)
			}
			out.data[i*c+j] = v / dv
		}
	}
	return out, nil
}

// ewRowSums returns s where s[i] = Σ_j X[i,j].
// Time: O(r*c). Space: O(r).
func ewRowSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := X.Rows(), X.Cols()
	sums := make([]float64, r)

	// Dense fast-path: gonum reduction over each row slice.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			sums[i] = floats.Sum(d.rowSlice(i))
		}
		return sums, nil
	}

	// Generic fallback.
	for i := 0; i < r; i++ {
		var s float64
		for j := 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			s += v
		}
		sums[i] = s
	}
	return sums, nil
}

// ewRowMax returns m where m[i] = max_j X[i,j]. Rows without columns give 0.
// NaN entries are skipped; an all-NaN row gives NaN (floats.Max semantics).
// Time: O(r*c). Space: O(r).
func ewRowMax(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowMax, err)
	}
	r, c := X.Rows(), X.Cols()
	maxes := make([]float64, r)
	if c == 0 {
		return maxes, nil
	}

	// Dense fast-path: gonum reduction over each row slice.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			maxes[i] = floats.Max(d.rowSlice(i))
		}
		return maxes, nil
	}

	// Generic fallback.
	for i := 0; i < r; i++ {
		mx := math.NaN()
		for j := 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opRowMax, err)
			}
			if !math.IsNaN(v) && (v > mx || math.IsNaN(mx)) {
				mx = v
			}
		}
		maxes[i] = mx
	}
	return maxes, nil
}

// ewSubRows computes out[i,j] = X[i,j] - shift[i].
// Time: O(r*c). Space: O(r*c).
func ewSubRows(X Matrix, shift []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opSubRows, err)
	}
	r, c := X.Rows(), X.Cols()
	if len(shift) != r {
		return nil, matrixErrorf(opSubRows, ErrDimensionMismatch)
	}
	out, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, matrixErrorf(opSubRows, err)
	}

	// Dense fast-path: copy then gonum scalar add on each row.
	if d, ok := X.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
		copy(out.data, d.data)
		for i := 0; i < r; i++ {
			floats.AddConst(-shift[i], out.rowSlice(i))
		}
		return out, nil
	}

	// Generic fallback.
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opSubRows, err)
			}
			out.data[i*c+j] = v - shift[i]
		}
	}
	return out, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
//   - NaN never compares close; equal infinities do.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j) // shape validated above
			bv, _ = b.At(i, j)
			if av == bv {
				continue // covers equal infinities
			}
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil // NaN lands here too
			}
		}
	}

	return true, nil
}
