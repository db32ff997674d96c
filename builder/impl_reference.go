// impl_reference.go - fixed sample topology and single-chord overlay.

package builder

import "fmt"

// referenceEdges is a 6-vertex, 8-edge graph with 29 spanning trees.
var referenceEdges = [][2]int{
	{0, 1}, {0, 3}, {1, 2}, {1, 3}, {2, 3}, {2, 5}, {3, 4}, {4, 5},
}

// Reference returns a Constructor that appends the 6-vertex sample graph
// used throughout the tests and the CLI's "reference" topology.
func Reference() Constructor {
	return func(el *EdgeList, _ builderConfig) error {
		el.ensure(6)
		el.Edges = append(el.Edges, referenceEdges...)

		return nil
	}
}

// Chord returns a Constructor that appends the single edge (u, v), growing the
// vertex range if needed. Repeating an existing pair yields a parallel edge.
func Chord(u, v int) Constructor {
	return func(el *EdgeList, _ builderConfig) error {
		if u < 0 || v < 0 {
			return fmt.Errorf("%s: negative vertex (%d,%d): %w", MethodChord, u, v, ErrConstructFailed)
		}
		if u == v {
			return fmt.Errorf("%s: self-loop at %d: %w", MethodChord, u, ErrConstructFailed)
		}
		el.ensure(max(u, v) + 1)
		el.add(u, v)

		return nil
	}
}
