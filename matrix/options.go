// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Labeled construction and the
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the absolute tolerance used by EqualApprox.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion and Set.
	DefaultValidateNaNInf = true
)

// Labeling policy.
const (
	// DefaultRowPrefix prefixes generated row labels: c1, c2, ...
	DefaultRowPrefix = "c"

	// DefaultColumnPrefix prefixes generated column labels: p1, p2, ...
	DefaultColumnPrefix = "p"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicEmptyLabel     = "matrix: WithRowLabels/WithColumnLabels: labels must be non-empty strings"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	// numeric policy
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf

	// labeling
	rowLabels []string // nil ⇒ c1..cn
	colLabels []string // nil ⇒ p1..pn
}

// WithEpsilon sets the absolute tolerance used by EqualApprox.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on ingestion (use with care).
// The flag propagates only to newly created matrices.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithRowLabels names the rows in order. Length and uniqueness are checked
// by the constructor (ErrDimensionMismatch, ErrDuplicateLabel).
// Panics if any label is the empty string.
func WithRowLabels(labels ...string) Option {
	cp := copyLabels(labels)

	return func(o *Options) { o.rowLabels = cp }
}

// WithColumnLabels names the columns (parts) in order.
// Panics if any label is the empty string.
func WithColumnLabels(labels ...string) Option {
	cp := copyLabels(labels)

	return func(o *Options) { o.colLabels = cp }
}

// copyLabels detaches labels from the caller's slice and rejects "".
// A zero-length input yields nil, i.e. "use defaults".
func copyLabels(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}
	cp := make([]string, len(labels))
	for i, l := range labels {
		if l == "" {
			panic(panicEmptyLabel)
		}
		cp[i] = l
	}

	return cp
}

// NewMatrixOptions resolves option setters against documented defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the resolved absolute tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether finite-only validation is on.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions starts from the documented defaults and applies user setters
// in order (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
