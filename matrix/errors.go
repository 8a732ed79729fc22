// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with
// %w) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// add context with matrixErrorf / denseErrorf; callers still match with
// errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> labels -> index -> numeric policy.

var (
	// ErrBadShape is returned when input rows are ragged or a requested
	// window/shape is invalid.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row, column or insert position)
	// is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Hadamard of different shapes, a divisor vector of the wrong length,
	// or a label list whose length differs from the axis length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (ingestion, Set, exponents).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrUnknownLabel indicates that a referenced row or column label is not
	// present on the addressed axis.
	ErrUnknownLabel = errors.New("matrix: unknown label")

	// ErrDuplicateLabel indicates that a label occurs more than once on one
	// axis, or that an inserted column reuses an existing label.
	ErrDuplicateLabel = errors.New("matrix: duplicate label")

	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive for the strict public constructor.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)
