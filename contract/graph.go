package contract

import (
	"fmt"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph is a contractible undirected graph stored as flat arrays.
//
// edges[id] holds the endpoints of edge id (sentinel pair once invalid);
// inc[v] lists the ids of the live edges incident to v. Parallel edges
// appear once per edge id in each endpoint's list.
type Graph struct {
	edges []Edge
	inc   [][]int

	liveEdges    int
	liveVertices int

	// version increments on every mutation.
	version uint64
}

// NewGraph builds a Graph with n vertices from the given (from, to) pairs.
// Edge i of the result is pairs[i].
//
// Preconditions (each violation is returned as a sentinel error):
//   - n ≥ 1                                      (ErrNoVertices)
//   - every endpoint in [0, n)                   (ErrVertexOutOfRange)
//   - no self-loops                              (ErrSelfLoop)
//   - len(pairs) ≥ n-1                           (ErrTooFewEdges)
//   - the graph is connected                     (ErrDisconnected)
//
// Duplicate pairs are not rejected; they become parallel edges.
//
// Complexity: O(V + E) plus the connectivity check.
func NewGraph(n int, pairs [][2]int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrNoVertices
	}
	if len(pairs) < n-1 {
		return nil, fmt.Errorf("NewGraph: %d edges for %d vertices: %w", len(pairs), n, ErrTooFewEdges)
	}

	g := &Graph{
		edges:     make([]Edge, 0, len(pairs)),
		inc:       make([][]int, n),
		liveEdges: len(pairs),
	}
	for id, p := range pairs {
		u, v := p[0], p[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("NewGraph: edge %d (%d,%d): %w", id, u, v, ErrVertexOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("NewGraph: edge %d (%d,%d): %w", id, u, v, ErrSelfLoop)
		}
		g.edges = append(g.edges, Edge{From: u, To: v})
		g.inc[u] = append(g.inc[u], id)
		g.inc[v] = append(g.inc[v], id)
	}

	if !connected(n, pairs) {
		return nil, fmt.Errorf("NewGraph: %w", ErrDisconnected)
	}
	// A single isolated vertex has no incident edges and is therefore not live.
	for _, list := range g.inc {
		if len(list) > 0 {
			g.liveVertices++
		}
	}

	return g, nil
}

// connected reports whether the simple graph underlying pairs has a single
// connected component over all n vertices.
func connected(n int, pairs [][2]int) bool {
	if n == 1 {
		return true
	}
	ug := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		ug.AddNode(simple.Node(i))
	}
	for _, p := range pairs {
		// Parallel input pairs collapse into one gonum edge, which does not
		// change connectivity.
		ug.SetEdge(simple.Edge{F: simple.Node(p[0]), T: simple.Node(p[1])})
	}

	return len(topo.ConnectedComponents(ug)) == 1
}

// VertexCount returns the number of live vertices (non-empty incident list).
func (g *Graph) VertexCount() int { return g.liveVertices }

// VertexCountAll returns the total number of vertices, removed ones included.
func (g *Graph) VertexCountAll() int { return len(g.inc) }

// EdgeCount returns the number of valid edges.
func (g *Graph) EdgeCount() int { return g.liveEdges }

// EdgeCountAll returns the total number of edge ids ever assigned.
func (g *Graph) EdgeCountAll() int { return len(g.edges) }

// Version returns a counter that changes after every mutation.
// Callers may cache derived state keyed by it.
func (g *Graph) Version() uint64 { return g.version }

// Edge returns the endpoints of edge id. For an invalid id the sentinel pair
// is returned; callers should check IsEdgeValid first.
func (g *Graph) Edge(id int) Edge {
	if id < 0 || id >= len(g.edges) {
		return Edge{From: invalid, To: invalid}
	}

	return g.edges[id]
}

// IsEdgeValid reports whether id is in range and not invalidated. O(1).
func (g *Graph) IsEdgeValid(id int) bool {
	return id >= 0 && id < len(g.edges) && g.edges[id].Valid()
}

// invalidateEdge writes the sentinel pair. Incident lists are left untouched.
func (g *Graph) invalidateEdge(id int) {
	g.edges[id] = Edge{From: invalid, To: invalid}
}

// Incident returns the live incident edge ids of v. The slice aliases
// internal storage and must not be modified; it is valid until the next
// mutation. Out-of-range vertices yield nil.
func (g *Graph) Incident(v int) []int {
	if v < 0 || v >= len(g.inc) {
		return nil
	}

	return g.inc[v]
}

// Degree returns the number of live edge ids incident to v (parallel edges
// counted separately).
func (g *Graph) Degree(v int) int { return len(g.Incident(v)) }

// OtherEnd returns the endpoint of edge id opposite to v.
//
// It panics when v is not an endpoint of id: callers only reach that state
// through a bookkeeping bug, and the sampler's hot loop has no error path.
func (g *Graph) OtherEnd(id, v int) int {
	e := g.edges[id]
	switch v {
	case e.From:
		return e.To
	case e.To:
		return e.From
	}
	panic(fmt.Sprintf("contract: vertex %d is not an endpoint of edge %d (%d,%d)", v, id, e.From, e.To))
}

// FirstConnectedVertex returns the lowest-index vertex that still has
// incident edges.
func (g *Graph) FirstConnectedVertex() (int, error) {
	for v, list := range g.inc {
		if len(list) > 0 {
			return v, nil
		}
	}

	return invalid, ErrNoLiveVertex
}

// RandomConnectedVertex returns a vertex drawn uniformly among the vertices
// that still have incident edges, using rejection sampling over the full
// index space.
//
// Complexity: expected O(VertexCountAll / VertexCount).
func (g *Graph) RandomConnectedVertex(rng *rand.Rand) (int, error) {
	if g.liveVertices == 0 {
		return invalid, ErrNoLiveVertex
	}
	n := len(g.inc)
	for {
		v := rng.Intn(n)
		if len(g.inc[v]) > 0 {
			return v, nil
		}
	}
}

// LiveVertices returns the ascending ids of vertices with incident edges.
func (g *Graph) LiveVertices() []int {
	out := make([]int, 0, g.liveVertices)
	for v, list := range g.inc {
		if len(list) > 0 {
			out = append(out, v)
		}
	}

	return out
}

// LiveEdges returns the ascending ids of valid edges.
func (g *Graph) LiveEdges() []int {
	out := make([]int, 0, g.liveEdges)
	for id, e := range g.edges {
		if e.Valid() {
			out = append(out, id)
		}
	}

	return out
}

// Clone returns a deep copy sharing no storage with g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		edges:        make([]Edge, len(g.edges)),
		inc:          make([][]int, len(g.inc)),
		liveEdges:    g.liveEdges,
		liveVertices: g.liveVertices,
		version:      g.version,
	}
	copy(c.edges, g.edges)
	for v, list := range g.inc {
		if len(list) > 0 {
			c.inc[v] = append(make([]int, 0, len(list)), list...)
		}
	}

	return c
}

// String renders the incident lists and the edge list, one entry per line.
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "graph: V=%d/%d E=%d/%d\n", g.liveVertices, len(g.inc), g.liveEdges, len(g.edges))
	sb.WriteString("incident list:\n")
	for v, list := range g.inc {
		fmt.Fprintf(&sb, "%3d:", v)
		for _, id := range list {
			fmt.Fprintf(&sb, " %3d", id)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("edge list:\n")
	for id, e := range g.edges {
		fmt.Fprintf(&sb, "%3d: %3d, %3d\n", id, e.From, e.To)
	}

	return sb.String()
}
