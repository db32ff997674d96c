// impl_bipartite.go - CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left part is 0..n1-1, right part is n1..n1+n2-1.
//   • Emits (i, n1+j) with i outer, j inner.
//
// Complexity: O(n1·n2) time and edges.

package builder

import "fmt"

// CompleteBipartite returns a Constructor that builds K_{n1,n2}, which has
// n1^(n2-1)·n2^(n1-1) spanning trees.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(el *EdgeList, _ builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: parts=(%d,%d) < min=%d: %w",
				MethodCompleteBipartite, n1, n2, MinPartition, ErrTooFewVertices)
		}
		el.ensure(n1 + n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				el.add(i, n1+j)
			}
		}

		return nil
	}
}
