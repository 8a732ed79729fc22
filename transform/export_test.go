// SPDX-License-Identifier: MIT

package transform

// Panic messages exposed to transform_test to avoid magic strings.
const (
	PanicEmptyDivisor_TestOnly  = panicEmptyDivisor
	PanicEmptyOriginal_TestOnly = panicEmptyOriginal
	PanicNilLogger_TestOnly     = panicNilLogger
)
