package wilson_test

import (
	"fmt"

	"github.com/katalvlaran/stcount/contract"
	"github.com/katalvlaran/stcount/wilson"
)

// ExampleSampler_Sample draws one spanning tree of a 4-cycle. Every tree of
// C4 drops exactly one of the four edges.
func ExampleSampler_Sample() {
	g, _ := contract.NewGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	s := wilson.NewSampler(g, wilson.WithSeed(2024))

	tree, err := s.Sample(0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(tree), s.Components())
	// Output: 3 1
}
