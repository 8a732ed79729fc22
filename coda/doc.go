// Package coda represents compositional data: strictly positive vectors
// whose parts carry only relative information and are compared after
// rescaling to a constant sum.
//
// 🚀 What is a composition?
//
//	A row of positive parts such as [1, 2, 3] (proportions, percentages,
//	concentrations). Two rows on the same ray, [1, 2, 3] and [2, 4, 6],
//	describe the same composition. Their common representative on the
//	simplex is the closed row [1/6, 2/6, 3/6].
//
// ✨ Operations on the simplex:
//   - Close:   divide every row by its total so it sums to 1
//   - Power:   raise every part to a real exponent, then close (scalar multiplication)
//   - Perturb: multiply part-wise by another composition, then close (vector addition)
//
// ⚙️ Usage:
//
//	c, err := coda.New([][]float64{{1, 2, 3}, {4, 4, 4}})
//	closed, err := c.Close()
//
// A CompositionalData never changes after construction; every operation
// returns a new *matrix.Labeled. Rows are labeled c1..cn and parts p1..pn
// unless WithRowLabels / WithColumnLabels say otherwise.
//
// The log-ratio transforms that map compositions to Euclidean coordinates
// live in the sibling package transform.
package coda
