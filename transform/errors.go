// SPDX-License-Identifier: MIT
// Package transform: sentinel error set.
// Every message is prefixed with "transform: ..."; callers match with
// errors.Is. Label and shape failures reuse the matrix sentinels.

package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrAmbiguousOmittedColumn is returned by InverseALR when the original
	// column labels do not leave exactly one label missing from the
	// transformed matrix.
	ErrAmbiguousOmittedColumn = errors.New("transform: omitted column is ambiguous")

	// ErrTooFewParts is returned by ALR for a composition without parts:
	// there is no divisor to choose.
	ErrTooFewParts = errors.New("transform: composition has no parts")
)

// transformErrorf wraps err with an operation tag: "tag: %w".
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
