// impl_random_regular.go - RandomRegular(n, d) constructor.
//
// Model:
//   • Connected d-regular simple graph via stub matching. The stub array is
//     reshuffled until the pairing has no loops, no repeated pairs and a
//     single component, up to cfg.maxRetries attempts.
//
// Contract:
//   • n ≥ 2; 1 ≤ d < n; n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Edges are emitted in stub-pair order of the accepted shuffle.
//   • ErrRetriesExhausted when no attempt succeeds.
//
// Complexity: O(n·d) per attempt.

package builder

import "fmt"

const minRegularVertices = 2

// RandomRegular returns a Constructor that builds a random connected
// d-regular simple graph on n vertices.
func RandomRegular(n, d int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minRegularVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomRegular, n, minRegularVertices, ErrTooFewVertices)
		}
		if d < 1 || d >= n {
			return fmt.Errorf("%s: degree must be in [1,%d), got %d: %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 0; attempt < cfg.maxRetries; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			local, ok := pairStubs(n, stubs)
			if !ok || !local.connected() {
				continue
			}
			el.ensure(n)
			el.Edges = append(el.Edges, local.Edges...)

			return nil
		}

		return fmt.Errorf("%s: no connected simple pairing after %d attempts: %w",
			MethodRandomRegular, cfg.maxRetries, ErrRetriesExhausted)
	}
}

// pairStubs turns consecutive stubs into edges. ok is false on a loop or a
// repeated pair.
func pairStubs(n int, stubs []int) (EdgeList, bool) {
	local := EdgeList{N: n, Edges: make([][2]int, 0, len(stubs)/2)}
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i+1 < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return EdgeList{}, false
		}
		key := [2]int{min(u, v), max(u, v)}
		if _, dup := seen[key]; dup {
			return EdgeList{}, false
		}
		seen[key] = struct{}{}
		local.add(u, v)
	}

	return local, true
}
