package psis

import (
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Draws is a 3-dimensional array of real values indexed by
// (parameter, draw, chain), such as the log-likelihood of each
// posterior draw evaluated at each observation.
// The backing data is laid out with chain varying fastest,
// then draw, then parameter.
// Functions in this package never modify a Draws.
type Draws struct {
	data                  []float64
	nparam, ndraw, nchain int
}

// NewDraws wraps data in a Draws of the given shape.
// The backing slice is used directly, not copied.
// Panics with ErrShape if len(data) does not equal
// nparam * ndraw * nchain.
func NewDraws(nparam, ndraw, nchain int, data []float64) *Draws {
	if nparam < 0 || ndraw < 0 || nchain < 0 ||
		len(data) != nparam*ndraw*nchain {
		panic(ErrShape)
	}
	return &Draws{
		data:   data,
		nparam: nparam,
		ndraw:  ndraw,
		nchain: nchain,
	}
}

// Dims returns the number of parameters, draws, and chains.
func (d *Draws) Dims() (nparam, ndraw, nchain int) {
	return d.nparam, d.ndraw, d.nchain
}

// At returns the value for parameter i, draw j, chain k.
func (d *Draws) At(i, j, k int) float64 {
	return d.data[(i*d.ndraw+j)*d.nchain+k]
}

// Param returns the (draw, chain) matrix of parameter i.
// The matrix shares backing data with d; treat it as read-only.
func (d *Draws) Param(i int) *mat.Dense {
	stride := d.ndraw * d.nchain
	return mat.NewDense(d.ndraw, d.nchain, d.data[i*stride:(i+1)*stride])
}

// Options is an open set of named options forwarded verbatim to an
// external estimator. This package defines no options of its own
// and never inspects the contents.
type Options map[string]interface{}

// ESSEstimator computes the effective sample size of MCMC draws,
// corrected for autocorrelation. When relative is true the result is
// scaled by the nominal sample count, so values near 1 indicate
// nearly independent draws. The draws and chains axes of sample are
// the ones the estimator works over; the parameters axis is the outer
// dimension it loops over, aggregated according to the estimator's
// own rule. opts is the estimator's own open option set.
//
// The autocorrelation algorithm itself is outside this package;
// any conforming implementation can be plugged in.
type ESSEstimator func(sample *Draws, relative bool, opts Options) ([]float64, error)

// RelativeEff estimates the relative efficiency of MCMC draws:
// the ratio of autocorrelation-corrected effective sample size
// to nominal sample count.
func RelativeEff(
	// 3-d array of draws, indexed (parameter, draw, chain).
	// Not modified.
	sample *Draws,

	// Case-insensitive selector of the estimation mode.
	// "mcmc" and "default" estimate efficiency from the MCMC
	// structure of sample via est.
	// Any other value skips estimation and returns a vector of
	// ones, one per chain of sample, meaning full efficiency is
	// assumed.
	source string,

	// External ESS estimator, invoked with relative=true.
	// May be nil when source does not select estimation.
	est ESSEstimator,

	// Forwarded to est untouched.
	opts Options,
) ([]float64, error) {
	switch strings.ToLower(source) {
	case "mcmc", "default":
		return est(sample, true, opts)
		// An estimator failure is returned as is, not wrapped.
	}

	r := use_float_slice(nil, sample.nchain)
	fill_float(r, 1.0)
	return r, nil
}
