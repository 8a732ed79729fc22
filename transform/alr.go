// SPDX-License-Identifier: MIT

package transform

import (
	"context"
	"log/slog"

	"github.com/adamlenart/CoDa/coda"
	"github.com/adamlenart/CoDa/matrix"
)

const (
	opALR        = "transform.ALR"
	opInverseALR = "transform.InverseALR"
)

// LastColumn is the default divisor rule: the last label of the
// composition's current column order. ok is false when there are no columns.
func LastColumn(columns []string) (label string, ok bool) {
	if len(columns) == 0 {
		return "", false
	}

	return columns[len(columns)-1], true
}

// ALR returns the additive log-ratio coordinates of c.
// MAIN DESCRIPTION:
//   - out[i,j] = ln(c[i,j] / c[i,divisor]) for every part j except the divisor.
//
// Implementation:
//   - Stage 1: unwrap c (nil → coda.ErrNotCompositionalData, nothing computed).
//   - Stage 2: resolve the divisor (WithDivisor or LastColumn).
//   - Stage 3: take logs, extract the divisor column, drop it, subtract it
//     row-wise. Subtracting logs keeps ratios beyond the float64 range
//     (e.g. 1e300/1e-300) finite.
//
// Behavior highlights:
//   - Output has Parts()-1 columns, labels in source order minus the divisor,
//     and the source row labels.
//   - Non-positive parts (only possible with coda.WithNoValidatePositive)
//     yield -Inf/NaN rather than an error.
//
// Errors:
//   - coda.ErrNotCompositionalData, ErrTooFewParts, matrix.ErrUnknownLabel.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ALR(c coda.Compositional, opts ...Option) (*matrix.Labeled, error) {
	data, err := coda.AsComposition(c)
	if err != nil {
		return nil, transformErrorf(opALR, err)
	}
	o := gatherOptions(opts...)
	values := data.Values()

	divisor := o.divisor
	if divisor == "" {
		var ok bool
		if divisor, ok = LastColumn(values.ColumnLabels()); !ok {
			return nil, transformErrorf(opALR, ErrTooFewParts)
		}
	}
	logs, err := values.Log()
	if err != nil {
		return nil, transformErrorf(opALR, err)
	}
	den, err := logs.Column(divisor)
	if err != nil {
		return nil, transformErrorf(opALR, err)
	}
	rest, err := logs.DropColumn(divisor)
	if err != nil {
		return nil, transformErrorf(opALR, err)
	}
	out, err := rest.SubtractRows(den)
	if err != nil {
		return nil, transformErrorf(opALR, err)
	}

	o.logger.LogAttrs(context.Background(), slog.LevelDebug, "alr",
		slog.String("divisor", divisor),
		slog.Bool("default_divisor", o.divisor == ""),
		slog.Int("rows", out.Rows()),
		slog.Int("coordinates", out.Cols()),
	)

	return out, nil
}
