// impl_star.go - Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Center is vertex 0; leaves are 1..n-1.
//   • Emits spokes (0, i) for i=1..n-1.

package builder

import "fmt"

// Star returns a Constructor that builds a star with one center and n-1
// leaves.
func Star(n int) Constructor {
	return func(el *EdgeList, _ builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		el.ensure(n)
		for i := 1; i < n; i++ {
			el.add(0, i)
		}

		return nil
	}
}
