package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanityCheck_DetectsCorruption(t *testing.T) {
	build := func(t *testing.T) *Graph {
		g, err := NewGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}})
		require.NoError(t, err)
		require.NoError(t, g.SanityCheck())

		return g
	}

	cases := []struct {
		name    string
		corrupt func(g *Graph)
	}{
		{"invalidated but still listed", func(g *Graph) { g.invalidateEdge(4) }},
		{"missing from one endpoint", func(g *Graph) {
			g.inc[2] = g.inc[2][:len(g.inc[2])-1]
		}},
		{"live edge count drift", func(g *Graph) { g.liveEdges++ }},
		{"live vertex count drift", func(g *Graph) { g.liveVertices-- }},
		{"half invalid edge", func(g *Graph) {
			// Drop edge 4 from both lists but leave one endpoint set.
			g.inc[0] = []int{0, 3}
			g.inc[2] = []int{1, 2}
			g.liveEdges--
			g.edges[4] = Edge{From: 0, To: invalid}
		}},
		{"wrong endpoint listed", func(g *Graph) { g.inc[1][0] = 2 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t)
			tc.corrupt(g)
			assert.ErrorIs(t, g.SanityCheck(), ErrCorrupted)
		})
	}
}

func TestContractEdge_DetectsStaleIncidence(t *testing.T) {
	g, err := NewGraph(4, [][2]int{{0, 1}, {1, 2}, {0, 2}, {0, 3}})
	require.NoError(t, err)

	// Vertex 1 lists edge 3, which does not touch it. Both endpoints of edge
	// 0 now have degree 3, so vertex 1 is the one merged away.
	g.inc[1] = append(g.inc[1], 3)

	_, err = g.ContractEdge(0, true)
	assert.ErrorIs(t, err, ErrCorrupted)
}
