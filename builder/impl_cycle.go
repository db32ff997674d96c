// impl_cycle.go - Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Covers vertices 0..n-1.
//   • Emits edges (i, (i+1)%n) in stable order for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

// Cycle returns a Constructor that builds the simple cycle C_n.
// C_n has exactly n spanning trees.
func Cycle(n int) Constructor {
	return func(el *EdgeList, _ builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		el.ensure(n)
		ids := make([]int, n)
		for i := range ids {
			ids[i] = i
		}
		el.addCycle(ids)

		return nil
	}
}
