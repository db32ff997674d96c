package builder

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/stcount/contract"
)

// EdgeList is the builder's intermediate form: N vertices and undirected
// (from, to) pairs. Edge i of the built graph is Edges[i].
type EdgeList struct {
	N     int
	Edges [][2]int
}

// Graph converts el into a contract.Graph.
func (el EdgeList) Graph() (*contract.Graph, error) {
	return contract.NewGraph(el.N, el.Edges)
}

// ensure grows the vertex range to at least n.
func (el *EdgeList) ensure(n int) {
	if n > el.N {
		el.N = n
	}
}

// add appends the edge (u, v). Callers guarantee u != v and both in range.
func (el *EdgeList) add(u, v int) {
	el.Edges = append(el.Edges, [2]int{u, v})
}

// addCycle connects ids[0..k-1] in a ring: (ids[i], ids[(i+1)%k]).
func (el *EdgeList) addCycle(ids []int) {
	k := len(ids)
	for i := 0; i < k; i++ {
		el.add(ids[i], ids[(i+1)%k])
	}
}

// Degrees returns the degree of every vertex, parallel edges counted.
func (el EdgeList) Degrees() []int {
	deg := make([]int, el.N)
	for _, e := range el.Edges {
		deg[e[0]]++
		deg[e[1]]++
	}
	return deg
}

// connected reports whether the N vertices form a single component.
func (el EdgeList) connected() bool {
	if el.N == 0 {
		return false
	}
	ug := simple.NewUndirectedGraph()
	for i := 0; i < el.N; i++ {
		ug.AddNode(simple.Node(i))
	}
	for _, e := range el.Edges {
		if !ug.HasEdgeBetween(int64(e[0]), int64(e[1])) {
			ug.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
		}
	}

	return len(topo.ConnectedComponents(ug)) == 1
}
