// SPDX-License-Identifier: MIT

package transform

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/adamlenart/CoDa/coda"
	"github.com/adamlenart/CoDa/matrix"
)

// OmittedColumn infers where the divisor part was removed and what it was
// called.
//
// Rules:
//   - original == nil: the divisor is assumed to have been the last part; it
//     is re-inserted at position len(transformed) as p{len(transformed)+1}.
//   - otherwise original is the full ordered label list of the source
//     composition. Exactly one of its labels must be absent from transformed;
//     that label and its position in original are returned.
//
// Errors:
//   - matrix.ErrDuplicateLabel when original repeats a label.
//   - matrix.ErrUnknownLabel when transformed has a label outside original.
//   - ErrAmbiguousOmittedColumn when zero or several labels are missing.
func OmittedColumn(transformed, original []string) (pos int, label string, err error) {
	if original == nil {
		n := len(transformed)
		return n, matrix.DefaultColumnPrefix + strconv.Itoa(n+1), nil
	}
	if err = matrix.ValidateLabels(original, len(original)); err != nil {
		return 0, "", err
	}

	present := make(map[string]struct{}, len(transformed))
	known := make(map[string]struct{}, len(original))
	for _, s := range original {
		known[s] = struct{}{}
	}
	for _, s := range transformed {
		if _, ok := known[s]; !ok {
			return 0, "", fmt.Errorf("column %q not among original columns: %w", s, matrix.ErrUnknownLabel)
		}
		present[s] = struct{}{}
	}

	var missing []int
	for i, s := range original {
		if _, ok := present[s]; !ok {
			missing = append(missing, i)
		}
	}
	if len(missing) != 1 {
		return 0, "", fmt.Errorf("%d of %d original columns missing, want 1: %w",
			len(missing), len(original), ErrAmbiguousOmittedColumn)
	}

	return missing[0], original[missing[0]], nil
}

// InverseALR recovers the closed composition from alr coordinates.
// MAIN DESCRIPTION:
//   - Re-insert the divisor part as log-ratio 0, exponentiate, close.
//
// Implementation:
//   - Stage 1: reject non-finite coordinates.
//   - Stage 2: infer (position, label) of the divisor via OmittedColumn.
//   - Stage 3: insert a zero column there.
//   - Stage 4: subtract each row's maximum, exponentiate, close each row.
//     Closure cancels the shift; after it every row holds values in (0, 1]
//     with at least one 1, so exp cannot overflow and the row total stays
//     in [1, Parts()].
//
// Behavior highlights:
//   - Row labels of m are kept; column labels are m's plus the restored one.
//   - The result is closed: rows sum to 1 up to rounding.
//   - A part whose share is below the smallest positive float64 (log-ratio
//     more than ~745 under the row maximum) comes back as 0.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf (NaN/±Inf coordinate),
//     OmittedColumn errors, matrix.ErrDuplicateLabel when the synthesized
//     p{n+1} already names a column of m.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func InverseALR(m *matrix.Labeled, opts ...Option) (*coda.CompositionalData, error) {
	if m == nil {
		return nil, transformErrorf(opInverseALR, matrix.ErrNilMatrix)
	}
	if err := validateCoordinates(m); err != nil {
		return nil, transformErrorf(opInverseALR, err)
	}
	o := gatherOptions(opts...)

	pos, label, err := OmittedColumn(m.ColumnLabels(), o.original)
	if err != nil {
		return nil, transformErrorf(opInverseALR, err)
	}
	o.logger.LogAttrs(context.Background(), slog.LevelDebug, "inverse alr",
		slog.String("omitted", label),
		slog.Int("position", pos),
		slog.Bool("inferred_from_original", o.original != nil),
	)

	full, err := m.InsertColumn(pos, label, 0)
	if err != nil {
		return nil, transformErrorf(opInverseALR, err)
	}
	maxes, err := full.RowMax()
	if err != nil {
		return nil, transformErrorf(opInverseALR, err)
	}
	shifted, err := full.SubtractRows(maxes)
	if err != nil {
		return nil, transformErrorf(opInverseALR, err)
	}
	exp, err := shifted.Exp()
	if err != nil {
		return nil, transformErrorf(opInverseALR, err)
	}
	// Underflowed parts are exact zeros of a positive quantity.
	raw, err := coda.FromMatrix(exp, coda.WithNoValidatePositive())
	if err != nil {
		return nil, transformErrorf(opInverseALR, err)
	}
	closed, err := raw.Close()
	if err != nil {
		return nil, transformErrorf(opInverseALR, err)
	}
	out, err := coda.FromMatrix(closed, coda.WithNoValidatePositive())
	if err != nil {
		return nil, transformErrorf(opInverseALR, err)
	}

	return out, nil
}

// validateCoordinates rejects the first NaN/±Inf coordinate in row-major
// order; such values only appear in matrices built with
// matrix.WithNoValidateNaNInf or from unvalidated compositions.
func validateCoordinates(m *matrix.Labeled) error {
	var err error
	m.Do(func(i, j int, v float64) bool {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return true
		}
		rows, cols := m.RowLabels(), m.ColumnLabels()
		err = fmt.Errorf("row %q column %q = %g: %w", rows[i], cols[j], v, matrix.ErrNaNInf)
		return false
	})

	return err
}
