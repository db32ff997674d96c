// Package mtt counts spanning trees exactly with Kirchhoff's Matrix-Tree
// theorem: τ(G) equals any cofactor of the graph Laplacian.
//
// Parallel edges add to the Laplacian entries, so multigraphs produced by
// contraction are counted with multiplicity. The determinant is taken in
// log space because τ grows exponentially with the number of vertices.
package mtt

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/stcount/contract"
)

// ErrDisconnected is returned for a live graph with more than one component.
var ErrDisconnected = contract.ErrDisconnected

// exactLimit is the largest count float64 represents without gaps (2^53).
const exactLimit = 1 << 53

// LogCount returns the natural log of the number of spanning trees of g's
// live (multi)graph. A graph without live edges has exactly one (empty)
// spanning tree.
//
// Complexity: O(V^3) time, O(V^2) memory.
func LogCount(g *contract.Graph) (float64, error) {
	live := g.LiveVertices()
	if len(live) == 0 {
		return 0, nil
	}

	index := make(map[int]int, len(live))
	for i, v := range live {
		index[v] = i
	}
	if !connected(g, live, index) {
		return 0, fmt.Errorf("LogCount: %w", ErrDisconnected)
	}

	// Reduced Laplacian: row and column of live[0] are dropped.
	n := len(live) - 1
	lap := mat.NewSymDense(n, nil)
	for _, id := range g.LiveEdges() {
		e := g.Edge(id)
		u, v := index[e.From]-1, index[e.To]-1
		if u >= 0 {
			lap.SetSym(u, u, lap.At(u, u)+1)
		}
		if v >= 0 {
			lap.SetSym(v, v, lap.At(v, v)+1)
		}
		if u >= 0 && v >= 0 {
			lap.SetSym(u, v, lap.At(u, v)-1)
		}
	}

	var chol mat.Cholesky
	if chol.Factorize(lap) {
		return chol.LogDet(), nil
	}

	// Cholesky rejects matrices that are only numerically positive definite.
	var lu mat.LU
	lu.Factorize(lap)
	logDet, sign := lu.LogDet()
	if sign <= 0 || math.IsInf(logDet, -1) || math.IsNaN(logDet) {
		return 0, fmt.Errorf("LogCount: singular Laplacian: %w", ErrDisconnected)
	}

	return logDet, nil
}

// Count returns exp(LogCount(g)), rounded to the nearest integer while the
// value is exactly representable.
func Count(g *contract.Graph) (float64, error) {
	logCount, err := LogCount(g)
	if err != nil {
		return 0, err
	}

	return FromLog(logCount), nil
}

// FromLog converts a log count back to a count, rounding while the value is
// exactly representable. Overflow yields +Inf.
func FromLog(logCount float64) float64 {
	c := math.Exp(logCount)
	if c < exactLimit {
		c = math.Round(c)
	}
	return c
}

// RelativeError returns estimate/exact − 1 for two counts given as logs.
func RelativeError(estimateLog, exactLog float64) float64 {
	return math.Expm1(estimateLog - exactLog)
}

// connected reports whether the live vertices form one component.
func connected(g *contract.Graph, live []int, index map[int]int) bool {
	ug := simple.NewUndirectedGraph()
	for i := range live {
		ug.AddNode(simple.Node(i))
	}
	for _, id := range g.LiveEdges() {
		e := g.Edge(id)
		u, v := index[e.From], index[e.To]
		if !ug.HasEdgeBetween(int64(u), int64(v)) {
			ug.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		}
	}

	return len(topo.ConnectedComponents(ug)) == 1
}
