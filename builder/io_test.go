package builder_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stcount/builder"
)

func TestReadEdgeList(t *testing.T) {
	t.Parallel()

	in := `# triangle with a tail
0 1
1 2

2 0
2 3
`
	el, err := builder.ReadEdgeList(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, el.N)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}}, el.Edges)
}

func TestReadEdgeList_Header(t *testing.T) {
	t.Parallel()

	el, err := builder.ReadEdgeList(strings.NewReader("vertices 5\n0 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, el.N)
	assert.Len(t, el.Edges, 1)
}

func TestReadEdgeList_Errors(t *testing.T) {
	t.Parallel()

	for name, in := range map[string]string{
		"three fields":   "0 1 2\n",
		"not a number":   "0 a\n",
		"negative":       "-1 2\n",
		"self-loop":      "3 3\n",
		"out of header":  "vertices 2\n0 2\n",
		"late header":    "0 1\nvertices 3\n",
		"double header":  "vertices 3\nvertices 3\n",
		"bad header":     "vertices -1\n",
		"header missing": "vertices\n",
	} {
		_, err := builder.ReadEdgeList(strings.NewReader(in))
		assert.ErrorIs(t, err, builder.ErrBadEdgeList, name)
	}
}

func TestWriteEdgeList_RoundTrip(t *testing.T) {
	t.Parallel()

	orig, err := builder.BuildEdgeList(nil, builder.Wheel(6), builder.Chord(0, 7))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, builder.WriteEdgeList(&buf, orig))
	assert.True(t, strings.HasPrefix(buf.String(), "vertices 8\n"))

	got, err := builder.ReadEdgeList(&buf)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}
