// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for numeric comparison of Labeled values.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.

package matrix

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Labels are not compared; use ColumnLabels/RowLabels for that.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
func AllClose(a, b *Labeled, rtol, atol float64) (bool, error) {
	if err := a.check(opAllClose); err != nil {
		return false, err
	}
	if err := b.check(opAllClose); err != nil {
		return false, err
	}

	return ewAllClose(a.d, b.d, rtol, atol)
}

// EqualApprox reports whether a and b have the same shape, the same labels
// and entries equal within the absolute tolerance from opts (DefaultEpsilon
// unless WithEpsilon is given). Nil operands are never equal.
func EqualApprox(a, b *Labeled, opts ...Option) bool {
	if a.check(opAllClose) != nil || b.check(opAllClose) != nil {
		return false
	}
	if !equalLabels(a.rows, b.rows) || !equalLabels(a.cols, b.cols) {
		return false
	}
	ok, err := ewAllClose(a.d, b.d, 0, gatherOptions(opts...).eps)

	return err == nil && ok
}

func equalLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
