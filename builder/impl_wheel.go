// impl_wheel.go - Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices). n counts the hub.
//   • Hub is vertex 0; rim is 1..n-1.
//   • Emission order: rim cycle (1,2), …, (n-1,1) first, then spokes (0,i)
//     for i=1..n-1.
//
// Complexity: O(n) time, O(n) space for the rim index slice.

package builder

import "fmt"

// Wheel returns a Constructor that builds the wheel W_n: a rim cycle of
// n-1 vertices plus a hub adjacent to all of them.
func Wheel(n int) Constructor {
	return func(el *EdgeList, _ builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		el.ensure(n)
		rim := make([]int, n-1)
		for i := range rim {
			rim[i] = i + 1
		}
		el.addCycle(rim)
		for _, v := range rim {
			el.add(0, v)
		}

		return nil
	}
}
