package psis

import (
	"log"
)

// Error is the panic value raised on violations of the shape
// contracts of the input arrays.
type Error struct{ string }

func (err Error) Error() string { return err.string }

var (
	ErrShape = Error{"psis: dimension mismatch"}
)

// Warnf receives advisory diagnostics emitted by this package.
// These are non-fatal; computation continues after the warning.
// It may be replaced to redirect the diagnostics,
// e.g. into a test recorder or a structured logger.
var Warnf func(format string, v ...interface{}) = log.Printf

// use_float_slice takes a slice x and required length,
// returns x if it is of correct length,
// returns a newly created slice if x is nil,
// and panic if x is non-nil but has wrong length.
func use_float_slice(x []float64, n int) []float64 {
	if x == nil {
		return make([]float64, n)
	}
	if len(x) != n {
		panic(ErrShape)
	}
	return x
}

// fill_float sets every element of x to v.
func fill_float(x []float64, v float64) {
	for i := range x {
		x[i] = v
	}
}
