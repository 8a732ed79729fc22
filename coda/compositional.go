// SPDX-License-Identifier: MIT

package coda

import (
	"fmt"
	"math"

	"github.com/adamlenart/CoDa/matrix"
)

// Operation tags for error wrapping.
const (
	opNew        = "coda.New"
	opFromMatrix = "coda.FromMatrix"
	opAssert     = "coda.AsComposition"
	opClose      = "CompositionalData.Close"
	opPower      = "CompositionalData.Power"
	opPerturb    = "CompositionalData.Perturb"
	opAt         = "CompositionalData.At"
	opAtLabel    = "CompositionalData.AtLabel"
	opSub        = "CompositionalData.Sub"
)

// Compositional is satisfied only by *CompositionalData (and types that embed
// it). Operations that need a composition take this interface, so passing an
// arbitrary matrix is a compile error; nil is caught at run time with
// ErrNotCompositionalData.
type Compositional interface {
	// Values exposes the underlying immutable labeled matrix.
	Values() *matrix.Labeled

	composition() *CompositionalData
}

// CompositionalData holds one composition per row and one part per column.
//
// Invariants:
//   - values is never written after construction.
//   - total[i] is the sum of row i of values, computed at construction.
//   - under the default policy every entry is finite and > 0.
type CompositionalData struct {
	values *matrix.Labeled
	total  []float64
}

var _ Compositional = (*CompositionalData)(nil)

// New builds a CompositionalData from raw positive values, one row per
// composition. nil or empty values give an empty (0×0) composition.
// Rows are labeled c1..cn and parts p1..pn unless options name them.
//
// Errors:
//   - matrix.ErrBadShape (ragged rows), matrix.ErrNaNInf,
//     matrix.ErrDimensionMismatch / matrix.ErrDuplicateLabel (labels),
//   - ErrNonPositive when validation is on and an entry is <= 0.
//   - ErrTotalNotFinite when a row sum overflows float64 (e.g. two parts of
//     1e308), whatever the positivity policy.
func New(values [][]float64, opts ...Option) (*CompositionalData, error) {
	o := gatherOptions(opts...)
	m, err := matrix.NewLabeled(values, o.labelOptions()...)
	if err != nil {
		return nil, codaErrorf(opNew, err)
	}

	return fromLabeled(opNew, m, o)
}

// FromMatrix wraps an existing labeled matrix. Its labels are kept unless
// WithRowLabels / WithColumnLabels replace them.
func FromMatrix(m *matrix.Labeled, opts ...Option) (*CompositionalData, error) {
	if m == nil {
		return nil, codaErrorf(opFromMatrix, matrix.ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	if o.rowLabels != nil || o.colLabels != nil {
		relabeled, err := m.Relabel(o.rowLabels, o.colLabels)
		if err != nil {
			return nil, codaErrorf(opFromMatrix, err)
		}
		m = relabeled
	}

	return fromLabeled(opFromMatrix, m, o)
}

func fromLabeled(tag string, m *matrix.Labeled, o options) (*CompositionalData, error) {
	if o.validatePositive {
		if err := validatePositive(m); err != nil {
			return nil, codaErrorf(tag, err)
		}
	}
	total, err := m.RowSums()
	if err != nil {
		return nil, codaErrorf(tag, err)
	}
	for i, s := range total {
		if math.IsInf(s, 0) || math.IsNaN(s) {
			return nil, codaErrorf(tag, fmt.Errorf("row %q total %g: %w",
				m.RowLabels()[i], s, ErrTotalNotFinite))
		}
	}

	return &CompositionalData{values: m, total: total}, nil
}

// validatePositive reports the first entry, in row-major order, that is not
// a finite number > 0.
func validatePositive(m *matrix.Labeled) error {
	var err error
	m.Do(func(i, j int, v float64) bool {
		if v > 0 && !math.IsInf(v, 1) {
			return true
		}
		rows, cols := m.RowLabels(), m.ColumnLabels()
		err = fmt.Errorf("row %q part %q = %g: %w", rows[i], cols[j], v, ErrNonPositive)
		return false
	})

	return err
}

// AsComposition unwraps c, failing with ErrNotCompositionalData for a nil
// interface, a typed nil pointer, or an embedding type whose embedded
// *CompositionalData is nil.
func AsComposition(c Compositional) (*CompositionalData, error) {
	if c == nil {
		return nil, codaErrorf(opAssert, ErrNotCompositionalData)
	}
	d := c.composition()
	if d == nil || d.values == nil {
		return nil, codaErrorf(opAssert, fmt.Errorf("%T: %w", c, ErrNotCompositionalData))
	}

	return d, nil
}

func (c *CompositionalData) composition() *CompositionalData { return c }

// Values returns the underlying labeled matrix. Labeled has no mutators, so
// handing it out keeps the composition immutable.
func (c *CompositionalData) Values() *matrix.Labeled {
	if c == nil {
		return nil
	}

	return c.values
}

// Total returns a copy of the per-row sums.
func (c *CompositionalData) Total() []float64 {
	if c == nil {
		return nil
	}

	return append([]float64(nil), c.total...)
}

// Rows returns the number of compositions.
func (c *CompositionalData) Rows() int { return c.Values().Rows() }

// Parts returns the number of parts per composition.
func (c *CompositionalData) Parts() int { return c.Values().Cols() }

// RowLabels returns a copy of the composition labels.
func (c *CompositionalData) RowLabels() []string { return c.Values().RowLabels() }

// ColumnLabels returns a copy of the part labels.
func (c *CompositionalData) ColumnLabels() []string { return c.Values().ColumnLabels() }

// At returns the raw (unclosed) value at position (i, j).
func (c *CompositionalData) At(i, j int) (float64, error) {
	if c == nil {
		return 0, codaErrorf(opAt, ErrNotCompositionalData)
	}
	v, err := c.values.At(i, j)
	if err != nil {
		return 0, codaErrorf(opAt, err)
	}

	return v, nil
}

// AtLabel returns the raw value addressed by composition and part label.
func (c *CompositionalData) AtLabel(row, part string) (float64, error) {
	if c == nil {
		return 0, codaErrorf(opAtLabel, ErrNotCompositionalData)
	}
	v, err := c.values.AtLabel(row, part)
	if err != nil {
		return 0, codaErrorf(opAtLabel, err)
	}

	return v, nil
}

// Sub returns the raw sub-block addressed by labels; nil selects a whole axis.
func (c *CompositionalData) Sub(rows, parts []string) (*matrix.Labeled, error) {
	if c == nil {
		return nil, codaErrorf(opSub, ErrNotCompositionalData)
	}
	m, err := c.values.Sub(rows, parts)
	if err != nil {
		return nil, codaErrorf(opSub, err)
	}

	return m, nil
}

// String renders the raw values as a labeled table.
func (c *CompositionalData) String() string {
	if c == nil {
		return "<nil>"
	}

	return c.values.String()
}
