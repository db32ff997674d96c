package wilson_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/stcount/builder"
	"github.com/katalvlaran/stcount/contract"
	"github.com/katalvlaran/stcount/wilson"
)

// mustBuild assembles a contract.Graph from builder constructors.
func mustBuild(tb testing.TB, cons ...builder.Constructor) *contract.Graph {
	tb.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(tb, err)
	return g
}

// dsu is a tiny union-find used to check acyclicity.
type dsu []int

func newDSU(n int) dsu {
	d := make(dsu, n)
	for i := range d {
		d[i] = i
	}
	return d
}

func (d dsu) find(x int) int {
	for d[x] != x {
		d[x] = d[d[x]]
		x = d[x]
	}
	return x
}

// union merges the classes of a and b and reports false if they were
// already joined.
func (d dsu) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	d[ra] = rb
	return true
}

// requireSpanningForest checks that tree is acyclic, uses only valid edges
// and connects every live vertex to one of components roots.
func requireSpanningForest(t *testing.T, g *contract.Graph, tree []int, components int) {
	t.Helper()
	require.Len(t, tree, g.VertexCount()-components)

	d := newDSU(g.VertexCountAll())
	for _, id := range tree {
		require.True(t, g.IsEdgeValid(id), "edge %d is not live", id)
		e := g.Edge(id)
		require.True(t, d.union(e.From, e.To), "edge %d closes a cycle", id)
	}

	classes := make(map[int]struct{})
	for _, v := range g.LiveVertices() {
		classes[d.find(v)] = struct{}{}
	}
	require.Len(t, classes, components)
}

func treeKey(tree []int) string {
	c := slices.Clone(tree)
	slices.Sort(c)
	return fmt.Sprint(c)
}

func TestSample_SpanningTree(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
	}{
		{"Cycle6", builder.Cycle(6)},
		{"Complete7", builder.Complete(7)},
		{"Grid4x5", builder.Grid(4, 5)},
		{"Wheel8", builder.Wheel(8)},
		{"Reference", builder.Reference()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustBuild(t, tc.cons)
			s := wilson.NewSampler(g, wilson.WithSeed(3))
			root, err := g.FirstConnectedVertex()
			require.NoError(t, err)
			for i := 0; i < 50; i++ {
				tree, err := s.Sample(root)
				require.NoError(t, err)
				requireSpanningForest(t, g, tree, 1)
				require.Equal(t, 1, s.Components())
			}
		})
	}
}

// TestSample_UniformOnK4 draws 16000 trees of K4 (16 spanning trees) and
// runs a chi-square goodness-of-fit test against the uniform law.
func TestSample_UniformOnK4(t *testing.T) {
	g := mustBuild(t, builder.Complete(4))
	s := wilson.NewSampler(g, wilson.WithSeed(11))

	const draws = 16000
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		tree, err := s.Sample(i % 4)
		require.NoError(t, err)
		counts[treeKey(tree)]++
	}
	require.Len(t, counts, 16)

	obs := make([]float64, 0, 16)
	exp := make([]float64, 0, 16)
	for _, c := range counts {
		obs = append(obs, float64(c))
		exp = append(exp, draws/16.0)
	}
	chi := stat.ChiSquare(obs, exp)
	p := distuv.ChiSquared{K: 15}.Survival(chi)
	assert.Greater(t, p, 1e-4, "chi2=%.2f counts=%v", chi, counts)
}

// TestSample_ParallelEdgesCountSeparately contracts one triangle edge, which
// leaves two parallel edges between the surviving vertices; each of them is
// a distinct spanning tree.
func TestSample_ParallelEdgesCountSeparately(t *testing.T) {
	g := mustBuild(t, builder.Cycle(3))
	_, err := g.ContractEdge(0, true)
	require.NoError(t, err)
	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount())

	s := wilson.NewSampler(g, wilson.WithSeed(5))
	root, err := g.FirstConnectedVertex()
	require.NoError(t, err)

	const draws = 4000
	hits := map[int]int{}
	for i := 0; i < draws; i++ {
		tree, err := s.Sample(root)
		require.NoError(t, err)
		require.Len(t, tree, 1)
		hits[tree[0]]++
	}
	require.Len(t, hits, 2)
	for id, c := range hits {
		assert.InDelta(t, draws/2, c, 200, "edge %d", id)
	}
}

func TestSample_ForestAfterSplit(t *testing.T) {
	// 0-1-2-3, edge ids 0,1,2
	g := mustBuild(t, builder.Path(4))
	require.NoError(t, g.RemoveEdge(1))

	s := wilson.NewSampler(g)
	tree, err := s.Sample(0)
	require.NoError(t, err)
	require.Equal(t, 2, s.Components())
	requireSpanningForest(t, g, tree, 2)
	require.ElementsMatch(t, []int{0, 2}, tree)

	// Root in the other component.
	tree, err = s.Sample(3)
	require.NoError(t, err)
	require.Equal(t, 2, s.Components())
	require.ElementsMatch(t, []int{0, 2}, tree)
}

func TestSample_RootNotLive(t *testing.T) {
	g := mustBuild(t, builder.Star(4)) // center 0, spokes 0..2
	require.NoError(t, g.RemoveEdge(2))
	s := wilson.NewSampler(g)

	for _, root := range []int{-1, 4, 99, 3} {
		_, err := s.Sample(root)
		require.ErrorIs(t, err, wilson.ErrRootNotLive, "root %d", root)
	}
}

func TestSample_Deterministic(t *testing.T) {
	g := mustBuild(t, builder.Grid(3, 4))
	a := wilson.NewSampler(g, wilson.WithSeed(42))
	b := wilson.NewSampler(g, wilson.WithRand(wilson.RandFromSeed(42)))
	for i := 0; i < 20; i++ {
		ta, err := a.Sample(0)
		require.NoError(t, err)
		ta = slices.Clone(ta)
		tb, err := b.Sample(0)
		require.NoError(t, err)
		require.Equal(t, ta, tb, "draw %d", i)
	}
}

// TestSample_FollowsMutations checks that the component cache notices
// contractions made between calls.
func TestSample_FollowsMutations(t *testing.T) {
	g := mustBuild(t, builder.Complete(6))
	s := wilson.NewSampler(g, wilson.WithSeed(9))

	for step := 0; step < 4; step++ {
		root, err := g.FirstConnectedVertex()
		require.NoError(t, err)
		tree, err := s.Sample(root)
		require.NoError(t, err)
		requireSpanningForest(t, g, tree, 1)

		_, err = g.ContractEdge(tree[0], true)
		require.NoError(t, err)
		require.NoError(t, g.SanityCheck())
	}
	require.Equal(t, 2, g.VertexCount())
}

func TestWithRand_NilPanics(t *testing.T) {
	require.Panics(t, func() { wilson.WithRand(nil) })
}

func TestRandFromSeed_ZeroUsesDefault(t *testing.T) {
	a := wilson.RandFromSeed(0)
	b := wilson.RandFromSeed(wilson.DefaultSeed)
	for i := 0; i < 5; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestShuffle(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7}
	wilson.Shuffle(a, wilson.RandFromSeed(1))
	b := slices.Clone(a)
	slices.Sort(b)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, b)

	one := []int{3}
	wilson.Shuffle(one, nil)
	require.Equal(t, []int{3}, one)

	c := []int{0, 1, 2, 3, 4, 5, 6, 7}
	wilson.Shuffle(c, nil)
	d := []int{0, 1, 2, 3, 4, 5, 6, 7}
	wilson.Shuffle(d, wilson.RandFromSeed(wilson.DefaultSeed))
	require.Equal(t, d, c)
}
