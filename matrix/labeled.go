// SPDX-License-Identifier: MIT

// Package matrix - Labeled: an immutable Dense with named rows and columns.
//
// Purpose:
//   - Serve as the labeled 2-D numeric container for compositional data:
//     rows are observations, columns are parts.
//   - Address cells and sub-blocks by label or by position.
//   - Offer the row-wise and element-wise operations closure, powering,
//     perturbation and log-ratio transforms are composed from.
//
// Invariants:
//   - Labels are unique per axis and len(rows)==Rows(), len(cols)==Cols().
//   - No exported method writes to an existing Labeled; every operation
//     returns a new value. Concurrent reads are therefore safe.
//   - Derived values may share label slices and indexes with their source;
//     both are read-only after construction.

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Labeled operation tags for error wrapping.
const (
	opNewLabeled   = "NewLabeled"
	opFromDense    = "FromDense"
	opRelabel      = "Labeled.Relabel"
	opAt           = "Labeled.At"
	opAtLabel      = "Labeled.AtLabel"
	opRow          = "Labeled.Row"
	opColumn       = "Labeled.Column"
	opSub          = "Labeled.Sub"
	opPow          = "Labeled.Pow"
	opExp          = "Labeled.Exp"
	opLog          = "Labeled.Log"
	opLabHadamard  = "Labeled.Hadamard"
	opLabDivRows   = "Labeled.DivideRows"
	opLabRowSums   = "Labeled.RowSums"
	opLabRowMax    = "Labeled.RowMax"
	opLabSubRows   = "Labeled.SubtractRows"
	opDropColumn   = "Labeled.DropColumn"
	opInsertColumn = "Labeled.InsertColumn"
)

// Labeled is a row-major float64 table with named rows and named columns.
type Labeled struct {
	d      *Dense         // owned storage; never written after construction
	rows   []string       // row labels in order
	cols   []string       // column labels in order
	rowIdx map[string]int // row label → position
	colIdx map[string]int // column label → position
}

var _ fmt.Stringer = (*Labeled)(nil)

// DefaultRowLabels returns c1..cn.
func DefaultRowLabels(n int) []string { return defaultLabels(DefaultRowPrefix, n) }

// DefaultColumnLabels returns p1..pn.
func DefaultColumnLabels(n int) []string { return defaultLabels(DefaultColumnPrefix, n) }

func defaultLabels(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + strconv.Itoa(i+1)
	}

	return out
}

// NewLabeled copies values into a new Labeled.
// MAIN DESCRIPTION:
//   - Public constructor: rows of values become observations, entries of each
//     row become parts.
//
// Implementation:
//   - Stage 1: resolve options (labels, numeric policy).
//   - Stage 2: ingest values into a Dense (ragged → ErrBadShape).
//   - Stage 3: attach labels, defaulting to c1..cn / p1..pn.
//
// Behavior highlights:
//   - nil or empty values yield an empty 0×0 matrix.
//   - The caller's slices are copied; later writes to them are not observed.
//
// Errors:
//   - ErrBadShape, ErrNaNInf (policy), ErrDimensionMismatch / ErrDuplicateLabel (labels).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewLabeled(values [][]float64, opts ...Option) (*Labeled, error) {
	o := gatherOptions(opts...)
	d, err := newDenseFromRows(values, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opNewLabeled, err)
	}
	l, err := newLabeled(d, o.rowLabels, o.colLabels)
	if err != nil {
		return nil, matrixErrorf(opNewLabeled, err)
	}

	return l, nil
}

// FromDense wraps a copy of d with labels taken from opts (or defaults).
// Complexity: O(r*c).
func FromDense(d *Dense, opts ...Option) (*Labeled, error) {
	if err := ValidateNotNil(d); err != nil {
		return nil, matrixErrorf(opFromDense, err)
	}
	o := gatherOptions(opts...)
	cp := d.clone()
	cp.validateNaNInf = o.validateNaNInf
	if o.validateNaNInf {
		if err := validateFinite(cp); err != nil {
			return nil, matrixErrorf(opFromDense, err)
		}
	}
	l, err := newLabeled(cp, o.rowLabels, o.colLabels)
	if err != nil {
		return nil, matrixErrorf(opFromDense, err)
	}

	return l, nil
}

// newLabeled attaches labels to d without copying it. nil label slices are
// replaced by defaults.
func newLabeled(d *Dense, rows, cols []string) (*Labeled, error) {
	if rows == nil {
		rows = DefaultRowLabels(d.r)
	}
	if cols == nil {
		cols = DefaultColumnLabels(d.c)
	}
	if err := ValidateLabels(rows, d.r); err != nil {
		return nil, fmt.Errorf("%s labels: %w", axisRow, err)
	}
	if err := ValidateLabels(cols, d.c); err != nil {
		return nil, fmt.Errorf("%s labels: %w", axisColumn, err)
	}

	return &Labeled{
		d:      d,
		rows:   rows,
		cols:   cols,
		rowIdx: indexLabels(rows),
		colIdx: indexLabels(cols),
	}, nil
}

// derive wraps a kernel result that has the receiver's shape, reusing its labels.
func (l *Labeled) derive(d *Dense) *Labeled {
	return &Labeled{d: d, rows: l.rows, cols: l.cols, rowIdx: l.rowIdx, colIdx: l.colIdx}
}

func indexLabels(labels []string) map[string]int {
	idx := make(map[string]int, len(labels))
	for i, s := range labels {
		idx[s] = i
	}

	return idx
}

// validateFinite rejects the first NaN/±Inf in row-major order.
func validateFinite(d *Dense) error {
	var err error
	d.Do(func(i, j int, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			err = denseErrorf(ctxIngest, i, j, ErrNaNInf)
			return false
		}
		return true
	})

	return err
}

// check guards every error-returning method against a nil receiver.
func (l *Labeled) check(tag string) error {
	if l == nil || l.d == nil {
		return matrixErrorf(tag, ErrNilMatrix)
	}

	return nil
}

// Rows returns the number of observations. A nil receiver has zero rows.
func (l *Labeled) Rows() int {
	if l == nil || l.d == nil {
		return 0
	}

	return l.d.r
}

// Cols returns the number of parts. A nil receiver has zero columns.
func (l *Labeled) Cols() int {
	if l == nil || l.d == nil {
		return 0
	}

	return l.d.c
}

// Shape packs Rows() and Cols().
func (l *Labeled) Shape() (rows, cols int) { return l.Rows(), l.Cols() }

// RowLabels returns a copy of the row labels in order.
func (l *Labeled) RowLabels() []string {
	if l == nil {
		return nil
	}

	return append([]string(nil), l.rows...)
}

// ColumnLabels returns a copy of the column labels in order.
func (l *Labeled) ColumnLabels() []string {
	if l == nil {
		return nil
	}

	return append([]string(nil), l.cols...)
}

// RowIndex reports the position of a row label.
func (l *Labeled) RowIndex(label string) (int, bool) {
	if l == nil {
		return 0, false
	}
	i, ok := l.rowIdx[label]

	return i, ok
}

// ColumnIndex reports the position of a column label.
func (l *Labeled) ColumnIndex(label string) (int, bool) {
	if l == nil {
		return 0, false
	}
	j, ok := l.colIdx[label]

	return j, ok
}

// lookup resolves a label on one axis or returns a wrapped ErrUnknownLabel.
func (l *Labeled) lookup(a axis, label string) (int, error) {
	idx := l.colIdx
	if a == axisRow {
		idx = l.rowIdx
	}
	i, ok := idx[label]
	if !ok {
		return 0, fmt.Errorf("%s %q: %w", a, label, ErrUnknownLabel)
	}

	return i, nil
}

// At returns the entry at zero-based position (i, j).
// Errors: ErrOutOfRange.
func (l *Labeled) At(i, j int) (float64, error) {
	if err := l.check(opAt); err != nil {
		return 0, err
	}
	v, err := l.d.At(i, j)
	if err != nil {
		return 0, matrixErrorf(opAt, err)
	}

	return v, nil
}

// AtLabel returns the entry addressed by row and column label.
// Errors: ErrUnknownLabel.
func (l *Labeled) AtLabel(row, col string) (float64, error) {
	if err := l.check(opAtLabel); err != nil {
		return 0, err
	}
	i, err := l.lookup(axisRow, row)
	if err != nil {
		return 0, matrixErrorf(opAtLabel, err)
	}
	j, err := l.lookup(axisColumn, col)
	if err != nil {
		return 0, matrixErrorf(opAtLabel, err)
	}

	return l.d.data[i*l.d.c+j], nil
}

// Row returns a copy of the row named label.
func (l *Labeled) Row(label string) ([]float64, error) {
	if err := l.check(opRow); err != nil {
		return nil, err
	}
	i, err := l.lookup(axisRow, label)
	if err != nil {
		return nil, matrixErrorf(opRow, err)
	}

	return append([]float64(nil), l.d.rowSlice(i)...), nil
}

// Column returns a copy of the column named label, one value per row.
func (l *Labeled) Column(label string) ([]float64, error) {
	if err := l.check(opColumn); err != nil {
		return nil, err
	}
	j, err := l.lookup(axisColumn, label)
	if err != nil {
		return nil, matrixErrorf(opColumn, err)
	}
	out := make([]float64, l.d.r)
	for i := range out {
		out[i] = l.d.data[i*l.d.c+j]
	}

	return out, nil
}

// Sub copies the sub-block addressed by row and column labels, in the given
// order. A nil slice selects the whole axis.
//
// Errors: ErrUnknownLabel; ErrDuplicateLabel if a label is selected twice.
// Complexity: O(len(rows)*len(cols)).
func (l *Labeled) Sub(rows, cols []string) (*Labeled, error) {
	if err := l.check(opSub); err != nil {
		return nil, err
	}
	ri, rl, err := l.selectAxis(axisRow, rows)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	ci, cl, err := l.selectAxis(axisColumn, cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	d, err := l.d.Induced(ri, ci)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out, err := newLabeled(d, rl, cl)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return out, nil
}

// selectAxis maps labels to positions; nil means every position in order.
func (l *Labeled) selectAxis(a axis, labels []string) ([]int, []string, error) {
	all := l.cols
	if a == axisRow {
		all = l.rows
	}
	if labels == nil {
		idx := make([]int, len(all))
		for i := range idx {
			idx[i] = i
		}
		return idx, all, nil
	}
	idx := make([]int, len(labels))
	for k, s := range labels {
		i, err := l.lookup(a, s)
		if err != nil {
			return nil, nil, err
		}
		idx[k] = i
	}

	return idx, append([]string(nil), labels...), nil
}

// Relabel returns a copy carrying new labels; a nil slice keeps the current
// labels of that axis.
func (l *Labeled) Relabel(rows, cols []string) (*Labeled, error) {
	if err := l.check(opRelabel); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = l.rows
	} else {
		rows = append([]string(nil), rows...)
	}
	if cols == nil {
		cols = l.cols
	} else {
		cols = append([]string(nil), cols...)
	}
	out, err := newLabeled(l.d.clone(), rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRelabel, err)
	}

	return out, nil
}

// Do visits every entry in row-major order until f returns false.
func (l *Labeled) Do(f func(i, j int, v float64) bool) {
	if l == nil || l.d == nil {
		return
	}
	l.d.Do(f)
}

// Dense returns an independent copy of the underlying storage.
func (l *Labeled) Dense() *Dense {
	if l == nil || l.d == nil {
		return nil
	}

	return l.d.clone()
}

// RowSums returns s where s[i] = Σ_j l[i,j].
func (l *Labeled) RowSums() ([]float64, error) {
	if err := l.check(opLabRowSums); err != nil {
		return nil, err
	}
	s, err := ewRowSums(l.d)
	if err != nil {
		return nil, matrixErrorf(opLabRowSums, err)
	}

	return s, nil
}

// DivideRows returns out[i,j] = l[i,j] / div[i].
// Errors: ErrDimensionMismatch when len(div) != Rows().
func (l *Labeled) DivideRows(div []float64) (*Labeled, error) {
	if err := l.check(opLabDivRows); err != nil {
		return nil, err
	}
	d, err := ewDivRows(l.d, div)
	if err != nil {
		return nil, matrixErrorf(opLabDivRows, err)
	}

	return l.derive(d), nil
}

// RowMax returns m where m[i] = max_j l[i,j]; NaN entries are skipped.
// Rows of a matrix without columns give 0.
func (l *Labeled) RowMax() ([]float64, error) {
	if err := l.check(opLabRowMax); err != nil {
		return nil, err
	}
	m, err := ewRowMax(l.d)
	if err != nil {
		return nil, matrixErrorf(opLabRowMax, err)
	}

	return m, nil
}

// SubtractRows returns out[i,j] = l[i,j] - shift[i].
// Errors: ErrDimensionMismatch when len(shift) != Rows().
func (l *Labeled) SubtractRows(shift []float64) (*Labeled, error) {
	if err := l.check(opLabSubRows); err != nil {
		return nil, err
	}
	d, err := ewSubRows(l.d, shift)
	if err != nil {
		return nil, matrixErrorf(opLabSubRows, err)
	}

	return l.derive(d), nil
}

// Pow returns out[i,j] = l[i,j]^p.
// Errors: ErrNaNInf when p is not finite.
func (l *Labeled) Pow(p float64) (*Labeled, error) {
	if err := l.check(opPow); err != nil {
		return nil, err
	}
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return nil, matrixErrorf(opPow, fmt.Errorf("exponent %v: %w", p, ErrNaNInf))
	}
	d, err := ewMap(l.d, opPow, func(v float64) float64 { return math.Pow(v, p) })
	if err != nil {
		return nil, err
	}

	return l.derive(d), nil
}

// Exp returns out[i,j] = e^l[i,j].
func (l *Labeled) Exp() (*Labeled, error) {
	if err := l.check(opExp); err != nil {
		return nil, err
	}
	d, err := ewMap(l.d, opExp, math.Exp)
	if err != nil {
		return nil, err
	}

	return l.derive(d), nil
}

// Log returns out[i,j] = ln l[i,j]. Non-positive entries yield -Inf or NaN.
func (l *Labeled) Log() (*Labeled, error) {
	if err := l.check(opLog); err != nil {
		return nil, err
	}
	d, err := ewMap(l.d, opLog, math.Log)
	if err != nil {
		return nil, err
	}

	return l.derive(d), nil
}

// Hadamard returns out[i,j] = l[i,j] * other[i,j]. The receiver's labels are
// kept; only shapes must agree.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (l *Labeled) Hadamard(other *Labeled) (*Labeled, error) {
	if err := l.check(opLabHadamard); err != nil {
		return nil, err
	}
	if err := other.check(opLabHadamard); err != nil {
		return nil, err
	}
	d, err := ewHadamard(l.d, other.d)
	if err != nil {
		return nil, matrixErrorf(opLabHadamard, err)
	}

	return l.derive(d), nil
}

// DropColumn returns a copy without the column named label; the order of
// the remaining columns is preserved.
// Errors: ErrUnknownLabel.
// Complexity: O(r*c).
func (l *Labeled) DropColumn(label string) (*Labeled, error) {
	if err := l.check(opDropColumn); err != nil {
		return nil, err
	}
	drop, err := l.lookup(axisColumn, label)
	if err != nil {
		return nil, matrixErrorf(opDropColumn, err)
	}
	keep := make([]int, 0, l.d.c-1)
	labels := make([]string, 0, l.d.c-1)
	for j, s := range l.cols {
		if j != drop {
			keep = append(keep, j)
			labels = append(labels, s)
		}
	}
	rowsIdx, _, _ := l.selectAxis(axisRow, nil)
	d, err := l.d.Induced(rowsIdx, keep)
	if err != nil {
		return nil, matrixErrorf(opDropColumn, err)
	}

	return &Labeled{d: d, rows: l.rows, cols: labels, rowIdx: l.rowIdx, colIdx: indexLabels(labels)}, nil
}

// InsertColumn returns a copy with a new column named label at position pos
// (0 ≤ pos ≤ Cols()), every row holding fill.
// MAIN DESCRIPTION:
//   - Column insertion used to restore the divisor part of a log-ratio matrix.
//
// Implementation:
//   - Stage 1: validate pos range and label novelty.
//   - Stage 2: allocate r×(c+1) and copy left block, fill, right block per row.
//
// Errors:
//   - ErrOutOfRange (pos), ErrDuplicateLabel (label already present).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (l *Labeled) InsertColumn(pos int, label string, fill float64) (*Labeled, error) {
	if err := l.check(opInsertColumn); err != nil {
		return nil, err
	}
	c := l.d.c
	if pos < 0 || pos > c {
		return nil, matrixErrorf(opInsertColumn, fmt.Errorf("position %d of %d: %w", pos, c, ErrOutOfRange))
	}
	if _, dup := l.colIdx[label]; dup {
		return nil, matrixErrorf(opInsertColumn, fmt.Errorf("%s %q: %w", axisColumn, label, ErrDuplicateLabel))
	}

	d, err := newDenseZeroOK(l.d.r, c+1)
	if err != nil {
		return nil, matrixErrorf(opInsertColumn, err)
	}
	d.validateNaNInf = l.d.validateNaNInf
	for i := 0; i < l.d.r; i++ {
		src, dst := l.d.rowSlice(i), d.rowSlice(i)
		copy(dst[:pos], src[:pos])
		dst[pos] = fill
		copy(dst[pos+1:], src[pos:])
	}

	labels := make([]string, 0, c+1)
	labels = append(labels, l.cols[:pos]...)
	labels = append(labels, label)
	labels = append(labels, l.cols[pos:]...)

	return &Labeled{d: d, rows: l.rows, cols: labels, rowIdx: l.rowIdx, colIdx: indexLabels(labels)}, nil
}

// String renders a tab-aligned table with column labels in the header and
// row labels in the first column. Intended for diagnostics.
func (l *Labeled) String() string {
	if l == nil || l.d == nil {
		return "<nil>"
	}
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, s := range l.cols {
		fmt.Fprintf(tw, "\t%s", s)
	}
	fmt.Fprintln(tw)
	for i, s := range l.rows {
		fmt.Fprint(tw, s)
		for _, v := range l.d.rowSlice(i) {
			fmt.Fprintf(tw, "\t%.6g", v)
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()

	return b.String()
}
