// Package approx estimates the number of spanning trees of a connected
// multigraph by sequential self-reduction.
//
// The edges are put in a fixed processing order e_0 … e_{K−1}. For pivot k
// the estimator samples uniform spanning trees of the current graph G_k and
// measures how often e_k appears. Once the estimate is stable it commits the
// pivot: an edge that appears in most trees is contracted (G_{k+1} = G_k/e_k,
// ratio = P[e_k ∈ T]); otherwise it is removed (G_{k+1} = G_k − e_k,
// ratio = P[e_k ∉ T]). Since τ(G_{k+1}) = ratio_k · τ(G_k), the count is
//
//	τ(G) = Π_k 1/ratio_k
//
// and is also accumulated in log space for graphs whose count overflows
// float64.
//
// Ripple: a tree of G_k that is consistent with the committed modes of
// pivots k … j−1 (present where Presence, absent where Absence) is a uniform
// tree of G_j, so one draw feeds every downstream pivot up to the first
// inconsistency. RipplePolicy chooses how that stop is applied within a
// batch.
//
// Convergence (per pivot, once its mode is fixed and its B-slot buffer of
// inverse-ratio snapshots is full):
//
//	Ratio     max/min of the buffer < 1 + RatioThreshold, ratio = 1/midpoint
//	Variance  popStdDev/mean < VarianceThreshold,         ratio = 1/mean
//	Constant  folded samples > ConstantThreshold,         ratio = last fold
//
// Contracting a pivot can turn later pivots into would-be self-loops; the
// graph reports them and their ratios are finalized to exactly 1 on the spot.
//
// An Estimator owns its graph for the duration of Run and consumes it. Use
// contract.Graph.Clone to run again on the same input. Estimators are not
// safe for concurrent use.
package approx
