package wilson

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/stcount/contract"
)

const none = -1

// Sampler draws spanning trees from the live state of one graph.
// All scratch is sized to VertexCountAll once and reused by every call.
type Sampler struct {
	g   *contract.Graph
	rng *rand.Rand

	inTree []bool
	next   []int // edge id leaving each vertex on the current walk
	tree   []int

	// component cache, valid while (cacheRoot, cacheVersion) match
	order        []int
	roots        []int
	seen         []bool
	queue        []int
	cacheRoot    int
	cacheVersion uint64
	cached       bool
}

// NewSampler returns a sampler bound to g. Without WithRand or WithSeed the
// default deterministic stream is used.
func NewSampler(g *contract.Graph, opts ...Option) *Sampler {
	n := g.VertexCountAll()
	s := &Sampler{
		g:      g,
		inTree: make([]bool, n),
		next:   make([]int, n),
		tree:   make([]int, 0, n),
		order:  make([]int, 0, n),
		seen:   make([]bool, n),
		queue:  make([]int, 0, n),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = RandFromSeed(0)
	}

	return s
}

// Sample returns the edge ids of a uniformly random spanning tree (forest,
// if the live graph has split) rooted at root, in the order the walks
// committed them. The slice belongs to the sampler and is overwritten by the
// next call.
func (s *Sampler) Sample(root int) ([]int, error) {
	if root < 0 || root >= len(s.inTree) || s.g.Degree(root) == 0 {
		return nil, fmt.Errorf("Sample: root %d: %w", root, ErrRootNotLive)
	}
	s.components(root)

	for v := range s.inTree {
		s.inTree[v] = false
		s.next[v] = none
	}
	s.tree = s.tree[:0]
	for _, r := range s.roots {
		s.inTree[r] = true
	}

	for _, v := range s.order {
		// Loop-erased walk: later visits overwrite next[u].
		for u := v; !s.inTree[u]; {
			inc := s.g.Incident(u)
			id := inc[s.rng.Intn(len(inc))]
			s.next[u] = id
			u = s.g.OtherEnd(id, u)
		}
		for u := v; !s.inTree[u]; {
			s.inTree[u] = true
			id := s.next[u]
			s.tree = append(s.tree, id)
			u = s.g.OtherEnd(id, u)
		}
	}

	return s.tree, nil
}

// Components reports how many components the last Sample spanned.
// It is 0 before the first call.
func (s *Sampler) Components() int { return len(s.roots) }

// components rebuilds the traversal order and the per-component roots when
// the root or the graph changed since the last call.
//
// Complexity: O(V + E) on a miss, O(1) on a hit.
func (s *Sampler) components(root int) {
	version := s.g.Version()
	if s.cached && s.cacheRoot == root && s.cacheVersion == version {
		return
	}

	for v := range s.seen {
		s.seen[v] = false
	}
	s.order = s.order[:0]
	s.roots = s.roots[:0]

	s.bfs(root)
	for v := range s.seen {
		if !s.seen[v] && s.g.Degree(v) > 0 {
			s.bfs(v)
		}
	}

	s.cacheRoot, s.cacheVersion, s.cached = root, version, true
}

// bfs appends the component of start to order and records start as its root.
func (s *Sampler) bfs(start int) {
	s.roots = append(s.roots, start)
	s.seen[start] = true
	s.queue = append(s.queue[:0], start)
	for head := 0; head < len(s.queue); head++ {
		u := s.queue[head]
		s.order = append(s.order, u)
		for _, id := range s.g.Incident(u) {
			w := s.g.OtherEnd(id, u)
			if !s.seen[w] {
				s.seen[w] = true
				s.queue = append(s.queue, w)
			}
		}
	}
}
