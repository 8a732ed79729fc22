// SPDX-License-Identifier: MIT

// Package matrix - gonum interop.
//
// Downstream statistics (regression, PCA, ...) live outside this module and
// are typically written against gonum's mat.Matrix. ToGonum/FromGonum move
// values across that boundary by copy, so a Labeled stays immutable.

package matrix

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "Labeled.ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies the values into a new *mat.Dense. Labels are dropped; use
// RowLabels/ColumnLabels to keep track of them.
//
// Errors: ErrBadShape for an empty matrix (gonum has no zero-size Dense).
// Complexity: O(r*c).
func (l *Labeled) ToGonum() (*mat.Dense, error) {
	if err := l.check(opToGonum); err != nil {
		return nil, err
	}
	r, c := l.d.r, l.d.c
	if r == 0 || c == 0 {
		return nil, matrixErrorf(opToGonum, fmt.Errorf("%dx%d: %w", r, c, ErrBadShape))
	}
	buf := make([]float64, len(l.d.data))
	copy(buf, l.d.data)

	return mat.NewDense(r, c, buf), nil
}

// FromGonum copies any gonum matrix into a new Labeled. Labels come from opts
// or default to c1..cn / p1..pn.
//
// Errors: ErrNilMatrix (nil interface or typed nil pointer), ErrNaNInf
// (policy), label errors.
// Complexity: O(r*c).
func FromGonum(m mat.Matrix, opts ...Option) (*Labeled, error) {
	if isNilGonum(m) {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, _ := m.Dims()
	values := make([][]float64, r)
	for i := 0; i < r; i++ {
		values[i] = mat.Row(nil, i, m)
	}
	o := gatherOptions(opts...)
	d, err := newDenseFromRows(values, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	l, err := newLabeled(d, o.rowLabels, o.colLabels)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return l, nil
}

// isNilGonum reports a nil interface or a nil pointer of any gonum matrix
// type (*mat.Dense, *mat.VecDense, ...) stored in it.
func isNilGonum(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)

	return v.Kind() == reflect.Ptr && v.IsNil()
}
