// Unit tests for builderConfig defaults and BuilderOption application.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Zero(t, cfg.maxDegree)
	assert.Zero(t, cfg.minDegree)
	assert.Equal(t, defaultMaxRetries, cfg.maxRetries)
}

func TestBuilderOptions_Override(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	cfg := newBuilderConfig(WithSeed(5), WithRand(r), WithMaxDegree(4), WithMinDegree(2), WithMaxRetries(7))
	assert.Same(t, r, cfg.rng, "later option wins")
	assert.Equal(t, 4, cfg.maxDegree)
	assert.Equal(t, 2, cfg.minDegree)
	assert.Equal(t, 7, cfg.maxRetries)
}

func TestWithSeed_Deterministic(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(11)).rng.Int63()
	b := newBuilderConfig(WithSeed(11)).rng.Int63()
	assert.Equal(t, a, b)
}

func TestBuilderOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithMaxDegree(0) })
	assert.Panics(t, func() { WithMinDegree(-1) })
	assert.Panics(t, func() { WithMaxRetries(0) })
}

func TestEdgeList_Helpers(t *testing.T) {
	t.Parallel()

	var el EdgeList
	el.ensure(3)
	el.ensure(2)
	assert.Equal(t, 3, el.N)
	assert.False(t, el.connected())

	el.addCycle([]int{0, 1, 2})
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 0}}, el.Edges)
	assert.Equal(t, []int{2, 2, 2}, el.Degrees())
	assert.True(t, el.connected())

	assert.False(t, EdgeList{}.connected())
}
