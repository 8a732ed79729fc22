// SPDX-License-Identifier: MIT

package coda

// PanicEmptyLabel_TestOnly avoids a magic string in option tests.
const PanicEmptyLabel_TestOnly = panicEmptyLabel
