package mtt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stcount/builder"
	"github.com/katalvlaran/stcount/contract"
	"github.com/katalvlaran/stcount/mtt"
)

func mustBuild(t *testing.T, cons ...builder.Constructor) *contract.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(t, err)
	return g
}

func TestCount_KnownGraphs(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		want float64
	}{
		{"Path5", builder.Path(5), 1},
		{"Star6", builder.Star(6), 1},
		{"Cycle4", builder.Cycle(4), 4},
		{"Cycle9", builder.Cycle(9), 9},
		{"Reference", builder.Reference(), 29},
		{"Complete5", builder.Complete(5), 125},
		{"Complete6", builder.Complete(6), 1296},
		{"Grid2x2", builder.Grid(2, 2), 4},
		{"Grid3x3", builder.Grid(3, 3), 192},
		{"Wheel5", builder.Wheel(5), 45},
		{"Wheel6", builder.Wheel(6), 121},
		{"Bipartite2x3", builder.CompleteBipartite(2, 3), 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mtt.Count(mustBuild(t, tc.cons))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestLogCount_CayleyLarge checks K_n = n^(n−2) far beyond exact float range.
func TestLogCount_CayleyLarge(t *testing.T) {
	const n = 40
	got, err := mtt.LogCount(mustBuild(t, builder.Complete(n)))
	require.NoError(t, err)
	assert.InDelta(t, (n-2)*math.Log(n), got, 1e-8)
}

func TestCount_Multigraph(t *testing.T) {
	g, err := contract.NewGraph(2, [][2]int{{0, 1}, {0, 1}, {1, 0}})
	require.NoError(t, err)
	got, err := mtt.Count(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

// TestDeletionContraction verifies τ(G) = τ(G−e) + τ(G/e) for every edge,
// which holds only if contraction keeps the parallel edges it creates.
func TestDeletionContraction(t *testing.T) {
	graphs := map[string]builder.Constructor{
		"Reference": builder.Reference(),
		"Complete5": builder.Complete(5),
		"Wheel6":    builder.Wheel(6),
		"Grid3x3":   builder.Grid(3, 3),
	}
	for name, cons := range graphs {
		t.Run(name, func(t *testing.T) {
			g := mustBuild(t, cons)
			total, err := mtt.Count(g)
			require.NoError(t, err)

			for _, id := range g.LiveEdges() {
				deleted := g.Clone()
				require.NoError(t, deleted.RemoveEdge(id))
				withoutE, err := mtt.Count(deleted)
				if err != nil {
					// A bridge: G−e has no spanning tree.
					require.ErrorIs(t, err, mtt.ErrDisconnected)
					withoutE = 0
				}

				contracted := g.Clone()
				_, err = contracted.ContractEdge(id, true)
				require.NoError(t, err)
				withE, err := mtt.Count(contracted)
				require.NoError(t, err)

				assert.Equal(t, total, withoutE+withE, "edge %d", id)
			}
		})
	}
}

func TestCount_AfterFullReduction(t *testing.T) {
	g := mustBuild(t, builder.Cycle(3))
	_, err := g.ContractEdge(0, true)
	require.NoError(t, err)
	got, err := mtt.Count(g)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got, "two parallel edges")

	_, err = g.ContractEdge(1, true)
	require.NoError(t, err)
	got, err = mtt.Count(g)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got, "no live edges left")
}

func TestLogCount_Disconnected(t *testing.T) {
	g := mustBuild(t, builder.Path(4))
	require.NoError(t, g.RemoveEdge(1))
	_, err := mtt.LogCount(g)
	require.ErrorIs(t, err, mtt.ErrDisconnected)
	require.ErrorIs(t, err, contract.ErrDisconnected)
}

func TestRelativeError(t *testing.T) {
	assert.InDelta(t, 0.0, mtt.RelativeError(math.Log(29), math.Log(29)), 1e-15)
	assert.InDelta(t, 0.1, mtt.RelativeError(math.Log(110), math.Log(100)), 1e-12)
	assert.InDelta(t, -0.5, mtt.RelativeError(math.Log(2), math.Log(4)), 1e-12)
}

func TestFromLog(t *testing.T) {
	assert.Equal(t, 29.0, mtt.FromLog(math.Log(29)))
	assert.Equal(t, 1.0, mtt.FromLog(0))
	assert.True(t, math.IsInf(mtt.FromLog(1000), 1))
}
