// Package coda is the root of a small compositional data analysis toolkit:
// positive vectors that carry only relative information (proportions,
// percentages, concentrations) and the transforms that move them into
// ordinary Euclidean space for standard multivariate statistics.
//
// 🚀 What is in the box?
//
//	matrix/     Labeled: an immutable float64 table with named rows and columns,
//	            plus the row-wise and element-wise kernels everything else uses
//	coda/       CompositionalData: closure, powering, perturbation on the simplex
//	transform/  additive log-ratio (ALR) and its inverse
//
// Quick example:
//
//	c, _ := coda.New([][]float64{{1, 2, 3}, {4, 4, 4}})
//	y, _ := transform.ALR(c, transform.WithDivisor("p3"))
//	back, _ := transform.InverseALR(y, transform.WithOriginalColumns("p1", "p2", "p3"))
//	// back.Values() equals c.Close() up to rounding
//
// Values must be strictly positive; zeros and negatives are rejected at
// construction unless coda.WithNoValidatePositive is given.
//
//	go get github.com/adamlenart/CoDa
package coda
