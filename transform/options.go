// SPDX-License-Identifier: MIT

// Package transform: functional configuration for ALR and InverseALR.
//
// Defaults:
//   - divisor: the last column of the composition (LastColumn).
//   - original columns: unknown; the omitted part is appended as p{n+1}.
//   - logger: discards everything.
package transform

import (
	"io"
	"log/slog"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEmptyDivisor  = "transform: WithDivisor: label must be non-empty"
	panicEmptyOriginal = "transform: WithOriginalColumns: need at least one non-empty label"
	panicNilLogger     = "transform: WithLogger: logger must be non-nil"
)

// Option mutates internal options.
type Option func(*options)

type options struct {
	divisor  string   // "" ⇒ LastColumn
	original []string // nil ⇒ append p{n+1}
	logger   *slog.Logger
}

// WithDivisor selects the part used as ALR denominator.
// Panics on an empty label.
func WithDivisor(label string) Option {
	if label == "" {
		panic(panicEmptyDivisor)
	}

	return func(o *options) { o.divisor = label }
}

// WithOriginalColumns gives InverseALR the full ordered part labels of the
// composition the coordinates came from.
// Panics when labels is empty or holds an empty string.
func WithOriginalColumns(labels ...string) Option {
	if len(labels) == 0 {
		panic(panicEmptyOriginal)
	}
	for _, l := range labels {
		if l == "" {
			panic(panicEmptyOriginal)
		}
	}
	cp := append([]string(nil), labels...)

	return func(o *options) { o.original = cp }
}

// WithLogger routes debug records (divisor choice, omitted-column inference)
// to logger. Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = logger }
}

func gatherOptions(user ...Option) options {
	o := options{logger: discardLogger}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
