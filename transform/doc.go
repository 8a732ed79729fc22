// Package transform maps compositions to Euclidean coordinates and back with
// the additive log-ratio (alr) transform.
//
// For a composition x = [x1..xn] and a divisor part xd:
//
//	alr(x)_j = ln(x_j / x_d)   for every j != d
//
// The result has n-1 columns labeled with the remaining part labels, in
// their original order. InverseALR restores the divisor column as log-ratio
// 0, exponentiates and closes, so
//
//	InverseALR(ALR(C, WithDivisor(d)), WithOriginalColumns(C.ColumnLabels()...)) == Close(C)
//
// up to rounding. alr only recovers the ray of a composition, not its raw
// magnitude, so closure is the round-trip contract.
//
// Both functions are pure: inputs are never mutated and no state is kept
// between calls.
package transform
