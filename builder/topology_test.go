package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stcount/builder"
)

func TestParseTopology(t *testing.T) {
	t.Parallel()

	cases := []struct {
		spec         string
		wantN, wantE int
	}{
		{"cycle:6", 6, 6},
		{"PATH:4", 4, 3},
		{"star:5", 5, 4},
		{"wheel:6", 6, 10},
		{"complete:5", 5, 10},
		{"bipartite:2x3", 5, 6},
		{"grid:3x4", 12, 17},
		{"random:10,0.4", 10, -1},
		{"regular:8,3", 8, 12},
		{" reference ", 6, 8},
	}
	for _, tc := range cases {
		ctor, err := builder.ParseTopology(tc.spec)
		require.NoError(t, err, tc.spec)
		el, err := builder.BuildEdgeList([]builder.BuilderOption{builder.WithSeed(1)}, ctor)
		require.NoError(t, err, tc.spec)
		assert.Equal(t, tc.wantN, el.N, tc.spec)
		if tc.wantE >= 0 {
			assert.Len(t, el.Edges, tc.wantE, tc.spec)
		}
	}
}

func TestParseTopology_Errors(t *testing.T) {
	t.Parallel()

	for _, spec := range []string{
		"", "cycle", "cycle:x", "grid:3", "grid:3xb", "random:5", "random:5,abc",
		"regular:8,q", "reference:1", "torus:3x3",
	} {
		_, err := builder.ParseTopology(spec)
		assert.ErrorIs(t, err, builder.ErrBadTopology, "spec %q", spec)
	}

	// Well-formed but out of range: the constructor reports it.
	ctor, err := builder.ParseTopology("cycle:2")
	require.NoError(t, err)
	_, err = builder.BuildEdgeList(nil, ctor)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}
