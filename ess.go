package psis

import (
	"math"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

/*
   Suppose a target density f is estimated by importance sampling
   from a proposal density g, with smoothed, normalized weights
     v_i = w_i / sum(w_i),   sum(v_i) = 1.

   --- 1 ---
   Entropy-based effective sample size.

     ess = exp(-sum(v_i * log(v_i)))

   with the convention 0 * log(0) = 0.
   This is the perplexity of the weight distribution:
   the number of equally-weighted draws that would carry the
   same information.
   If all weights are equal to (1/n), ess is n.
   (This is the extreme case of balanced weights.)
   If one weight is 1 and all others are 0, ess is 1.
   (This is the extreme case of unbalanced weights.)

   --- 2 ---
   Supremum-based effective sample size.

     ess = 1 / max(v_i)

   More sensitive to a single dominating weight than the entropy
   version, but noisier. Again n for balanced weights and 1 for
   fully concentrated ones.

   Both are multiplied by the relative efficiency r_eff of the
   underlying MCMC draws (see RelativeEff), since autocorrelated
   draws carry less information than the raw count suggests.

   Reference:

   Vehtari, Simpson, Gelman, Yao and Gabry, 2019,
   "Pareto smoothed importance sampling",
   arXiv:1507.02646.

   West, 1993,
   "Approximating posterior distributions by mixture",
   J. R. Stat. Soc. B, 55(2).
*/

// PsisESS computes the entropy-based effective sample size of
// normalized importance weights, one value per group.
func PsisESS(
	// Matrix of normalized weights.
	// Each row is a group (e.g. one observation in leave-one-out
	// cross validation); each col is a draw.
	// Rows are assumed to sum to 1; this is not checked.
	weights *mat.Dense,

	// Relative efficiency of the draws in each group,
	// as computed by RelativeEff.
	// Its length must equal the number of rows of weights.
	r_eff []float64,

	// Receives the result if non-nil and of correct length;
	// otherwise a new slice is allocated.
	dst []float64,
) []float64 {
	ng, _ := weights.Dims()
	if len(r_eff) != ng {
		panic(ErrShape)
	}
	dst = use_float_slice(dst, ng)
	for g := 0; g < ng; g++ {
		dst[g] = r_eff[g] * math.Exp(stat.Entropy(weights.RawRowView(g)))
	}
	return dst
}

// PsisESSNoAdjust is PsisESS with relative efficiency taken to be 1
// for every group. It emits one advisory warning through Warnf,
// because without the MCMC adjustment the result is over-optimistic
// whenever the draws are autocorrelated.
func PsisESSNoAdjust(weights *mat.Dense, dst []float64) []float64 {
	warn_no_releff()
	ng, _ := weights.Dims()
	return PsisESS(weights, ones(ng), dst)
}

// SupESS computes the supremum-based effective sample size of
// normalized importance weights, one value per group. Arguments are
// as in PsisESS.
//
// A group whose weights are all zero yields +Inf.
func SupESS(weights *mat.Dense, r_eff []float64, dst []float64) []float64 {
	ng, _ := weights.Dims()
	if len(r_eff) != ng {
		panic(ErrShape)
	}
	dst = use_float_slice(dst, ng)
	for g := 0; g < ng; g++ {
		dst[g] = r_eff[g] / vek.Max(weights.RawRowView(g))
	}
	return dst
}

// SupESSNoAdjust is SupESS with relative efficiency taken to be 1
// for every group, with the same advisory warning as PsisESSNoAdjust.
func SupESSNoAdjust(weights *mat.Dense, dst []float64) []float64 {
	warn_no_releff()
	ng, _ := weights.Dims()
	return SupESS(weights, ones(ng), dst)
}

// PsisESSFromLogWeights is PsisESS for weights given on the log
// scale, as produced by a PSIS smoothing procedure. Each row of
// logWeights holds log relative weights of one group; they do not
// need to be normalized. The entropy is accumulated in the log
// domain, so very disparate weights do not underflow.
func PsisESSFromLogWeights(logWeights *mat.Dense, r_eff []float64, dst []float64) []float64 {
	ng, _ := logWeights.Dims()
	if len(r_eff) != ng {
		panic(ErrShape)
	}
	dst = use_float_slice(dst, ng)
	for g := 0; g < ng; g++ {
		row := logWeights.RawRowView(g)
		z := floats.LogSumExp(row)
		h := 0.0
		for _, v := range row {
			v -= z
			if e := math.Exp(v); e > 0 {
				h -= v * e
			}
			// exp(v) == 0 contributes nothing: 0 * log(0) = 0.
		}
		dst[g] = r_eff[g] * math.Exp(h)
	}
	return dst
}

// WeightEntropy measures the entropy of a set of log relative
// weights against uniformity.
//
//   -(1 / log(n)) * sum(v_i * log(v_i))
//
// where v are the normalized weights.
// This approaches 1 as the weights approach uniform and 0 as one
// weight dominates, and estimates the Kullback-Leibler divergence
// between the target and the proposal.
func WeightEntropy(logwt []float64) float64 {
	n := len(logwt)
	z := floats.LogSumExp(logwt)

	res := 0.0
	for _, v := range logwt {
		v -= z
		if e := math.Exp(v); e > 0 {
			res += v * e
		}
	}

	return -res / math.Log(float64(n))
}

func ones(n int) []float64 {
	x := use_float_slice(nil, n)
	fill_float(x, 1.0)
	return x
}

func warn_no_releff() {
	Warnf("psis: ESS not adjusted based on MCMC ESS; " +
		"the estimate is over-optimistic if the draws are autocorrelated")
}
