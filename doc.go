// Package psis provides diagnostic statistics for Pareto-smoothed
// importance sampling (PSIS) estimators, such as the entropy-based and
// supremum-based effective sample sizes of normalized importance weights,
// corrected for autocorrelation in the MCMC draws that produced them.
package psis
