// SPDX-License-Identifier: MIT
// Package coda: sentinel error set.
// Every message is prefixed with "coda: ..."; callers match with errors.Is.

package coda

import (
	"errors"
	"fmt"
)

var (
	// ErrNotCompositionalData is returned when an operation expecting a
	// composition receives nil or a value that does not carry one.
	ErrNotCompositionalData = errors.New("coda: not compositional data")

	// ErrShapeMismatch is returned when perturbation operands have different
	// numbers of rows or parts. The wrapped chain also matches
	// matrix.ErrDimensionMismatch.
	ErrShapeMismatch = errors.New("coda: shape mismatch")

	// ErrNonPositive is returned at construction when an entry is zero,
	// negative, NaN or ±Inf and positivity validation is on.
	ErrNonPositive = errors.New("coda: non-positive part")

	// ErrTotalNotFinite is returned at construction when a row's parts are
	// finite but their sum overflows (or is NaN), so the row cannot be closed.
	ErrTotalNotFinite = errors.New("coda: row total is not finite")
)

// codaErrorf wraps err with an operation tag: "tag: %w".
func codaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
