// SPDX-License-Identifier: MIT

// Package coda: functional configuration for CompositionalData construction.
package coda

import "github.com/adamlenart/CoDa/matrix"

// DefaultValidatePositive makes New and FromMatrix reject entries that are
// not strictly positive and finite.
const DefaultValidatePositive = true

// Option mutates internal options.
type Option func(*options)

type options struct {
	validatePositive bool
	rowLabels        []string // nil ⇒ keep source labels / c1..cn
	colLabels        []string // nil ⇒ keep source labels / p1..pn
}

const panicEmptyLabel = "coda: WithRowLabels/WithColumnLabels: labels must be non-empty strings"

// WithRowLabels names the compositions (rows) in order.
// Panics if any label is the empty string.
func WithRowLabels(labels ...string) Option {
	cp := copyLabels(labels)

	return func(o *options) { o.rowLabels = cp }
}

// WithColumnLabels names the parts (columns) in order.
// Panics if any label is the empty string.
func WithColumnLabels(labels ...string) Option {
	cp := copyLabels(labels)

	return func(o *options) { o.colLabels = cp }
}

func copyLabels(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}
	for _, l := range labels {
		if l == "" {
			panic(panicEmptyLabel)
		}
	}

	return append([]string(nil), labels...)
}

// WithValidatePositive enables the strict positivity check (default).
func WithValidatePositive() Option {
	return func(o *options) { o.validatePositive = true }
}

// WithNoValidatePositive skips the positivity check. Zero or negative parts
// are then accepted and surface later as -Inf/NaN in log-ratios.
func WithNoValidatePositive() Option {
	return func(o *options) { o.validatePositive = false }
}

func gatherOptions(user ...Option) options {
	o := options{validatePositive: DefaultValidatePositive}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// labelOptions forwards label choices to the matrix constructor.
func (o options) labelOptions() []matrix.Option {
	var out []matrix.Option
	if len(o.rowLabels) > 0 {
		out = append(out, matrix.WithRowLabels(o.rowLabels...))
	}
	if len(o.colLabels) > 0 {
		out = append(out, matrix.WithColumnLabels(o.colLabels...))
	}

	return out
}
