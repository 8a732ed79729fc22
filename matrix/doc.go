// Package matrix provides the labeled numeric table the compositional
// packages are built on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 store with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - Labeled, an immutable Dense with named rows and named columns. Every
//     operation returns a new Labeled; the receiver is never written to.
//   - Row-wise sums and division, element-wise power/exp/log and Hadamard
//     product, column drop/insert, sub-block extraction by label.
//   - Interop with gonum (ToGonum/FromGonum) for downstream statistics.
//
// Unset labels default to c1..cn for rows and p1..pn for columns.
//
// See example_test.go for usage patterns.
package matrix
