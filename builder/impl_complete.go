// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). K_1 has no edges.
//   • Emits (i, j) for i<j in lexicographic order.
//
// Complexity: O(n²) time; n(n-1)/2 edges.

package builder

import "fmt"

// Complete returns a Constructor that builds the complete graph K_n, which
// has n^(n-2) spanning trees (Cayley).
func Complete(n int) Constructor {
	return func(el *EdgeList, _ builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		el.ensure(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				el.add(i, j)
			}
		}

		return nil
	}
}
