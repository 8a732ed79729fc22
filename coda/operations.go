// SPDX-License-Identifier: MIT
// Package: coda
//
// Purpose:
//   - Simplex algebra: closure, powering, perturbation.
//   - Each operation is a composition of matrix kernels followed by closure;
//     the receiver is never mutated.
//
// Determinism:
//   - Fixed i→j loops in the underlying kernels; identical input gives
//     bit-identical output.

package coda

import (
	"errors"
	"fmt"

	"github.com/adamlenart/CoDa/matrix"
)

// Close returns every row divided by its total, so each row sums to 1 up to
// rounding. An empty composition closes to an empty matrix.
// Complexity: O(r*c).
func (c *CompositionalData) Close() (*matrix.Labeled, error) {
	if c == nil {
		return nil, codaErrorf(opClose, ErrNotCompositionalData)
	}
	out, err := c.values.DivideRows(c.total)
	if err != nil {
		return nil, codaErrorf(opClose, err)
	}

	return out, nil
}

// Power raises every part to exponent and closes the result: the simplex
// analogue of scalar multiplication. Power(1) equals Close().
//
// Errors: matrix.ErrNaNInf for a non-finite exponent.
// Complexity: O(r*c).
func (c *CompositionalData) Power(exponent float64) (*matrix.Labeled, error) {
	if c == nil {
		return nil, codaErrorf(opPower, ErrNotCompositionalData)
	}
	powered, err := c.values.Pow(exponent)
	if err != nil {
		return nil, codaErrorf(opPower, err)
	}
	out, err := closeRows(powered)
	if err != nil {
		return nil, codaErrorf(opPower, err)
	}

	return out, nil
}

// Perturb multiplies part-wise by other and closes the result: the simplex
// analogue of vector addition. The receiver's labels are kept; only the
// shapes of the two compositions must agree.
//
// Errors:
//   - ErrNotCompositionalData when other is nil; nothing is computed.
//   - ErrShapeMismatch (also matching matrix.ErrDimensionMismatch) when the
//     row or part counts differ.
//
// Complexity: O(r*c).
func (c *CompositionalData) Perturb(other Compositional) (*matrix.Labeled, error) {
	if c == nil {
		return nil, codaErrorf(opPerturb, ErrNotCompositionalData)
	}
	o, err := AsComposition(other)
	if err != nil {
		return nil, codaErrorf(opPerturb, err)
	}
	product, err := c.values.Hadamard(o.values)
	if err != nil {
		if errors.Is(err, matrix.ErrDimensionMismatch) {
			return nil, codaErrorf(opPerturb, fmt.Errorf("%dx%d vs %dx%d: %w: %w",
				c.Rows(), c.Parts(), o.Rows(), o.Parts(), ErrShapeMismatch, err))
		}
		return nil, codaErrorf(opPerturb, err)
	}
	out, err := closeRows(product)
	if err != nil {
		return nil, codaErrorf(opPerturb, err)
	}

	return out, nil
}

// Closure closes any labeled matrix row-wise without building a
// CompositionalData first; no positivity check is made.
func Closure(m *matrix.Labeled) (*matrix.Labeled, error) {
	out, err := closeRows(m)
	if err != nil {
		return nil, codaErrorf(opClose, err)
	}

	return out, nil
}

// closeRows divides each row of m by its freshly computed sum.
func closeRows(m *matrix.Labeled) (*matrix.Labeled, error) {
	sums, err := m.RowSums()
	if err != nil {
		return nil, err
	}

	return m.DivideRows(sums)
}
