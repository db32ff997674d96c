// impl_path.go - Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges (i, i+1) for i=0..n-2.
//
// Complexity: O(n) time.

package builder

import "fmt"

// Path returns a Constructor that builds the path P_n. A path is its own
// unique spanning tree.
func Path(n int) Constructor {
	return func(el *EdgeList, _ builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		el.ensure(n)
		for i := 0; i+1 < n; i++ {
			el.add(i, i+1)
		}

		return nil
	}
}
