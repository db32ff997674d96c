// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r,c) has index r*cols + c.
//   • Row-major emission: for each vertex, the right edge ((r,c),(r,c+1))
//     if it exists, then the down edge ((r,c),(r+1,c)).
//
// Complexity: O(rows·cols) time; 2·rows·cols − rows − cols edges.

package builder

import "fmt"

// Grid returns a Constructor that builds a rows×cols 4-neighbour lattice.
func Grid(rows, cols int) Constructor {
	return func(el *EdgeList, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: dims=%dx%d < min=%d: %w", MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		el.ensure(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					el.add(v, v+1)
				}
				if r+1 < rows {
					el.add(v, v+cols)
				}
			}
		}

		return nil
	}
}
