// impl_random_connected.go - RandomConnected(n, p) constructor.
//
// Model:
//   • For each vertex i in ascending order, the candidates j>i are visited
//     in a shuffled order. Each candidate draws u ~ U[0,1); the edge (i, j) is
//     added when deg(i) < minDegree or u ≤ p, unless either endpoint is
//     already at maxDegree. The attempt is kept only if the result is
//     connected.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • ErrRetriesExhausted after cfg.maxRetries disconnected attempts.
//
// Complexity: O(n²) per attempt.

package builder

import "fmt"

// RandomConnected returns a Constructor that builds a random connected
// simple graph on n vertices with edge density about p.
func RandomConnected(n int, p float64) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomConnected, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.4f not in [%.1f,%.1f]: %w",
				MethodRandomConnected, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomConnected, ErrNeedRandSource)
		}

		for attempt := 0; attempt < cfg.maxRetries; attempt++ {
			local := drawDensity(n, p, cfg)
			if !local.connected() {
				continue
			}
			el.ensure(n)
			el.Edges = append(el.Edges, local.Edges...)

			return nil
		}

		return fmt.Errorf("%s: no connected graph after %d attempts (n=%d, p=%.4f): %w",
			MethodRandomConnected, cfg.maxRetries, n, p, ErrRetriesExhausted)
	}
}

func drawDensity(n int, p float64, cfg builderConfig) EdgeList {
	local := EdgeList{N: n}
	deg := make([]int, n)
	full := func(v int) bool { return cfg.maxDegree > 0 && deg[v] >= cfg.maxDegree }

	cand := make([]int, 0, n)
	for i := 0; i < n; i++ {
		cand = cand[:0]
		for j := i + 1; j < n; j++ {
			cand = append(cand, j)
		}
		cfg.rng.Shuffle(len(cand), func(a, b int) { cand[a], cand[b] = cand[b], cand[a] })
		for _, j := range cand {
			u := cfg.rng.Float64()
			if full(i) || full(j) {
				continue
			}
			if deg[i] < cfg.minDegree || u <= p {
				local.add(i, j)
				deg[i]++
				deg[j]++
			}
		}
	}

	return local
}
