package contract

import "errors"

// Sentinel errors for graph construction and mutation.
var (
	// ErrNoVertices indicates a graph with zero (or a negative number of) vertices.
	ErrNoVertices = errors.New("contract: graph has no vertices")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("contract: vertex index out of range")

	// ErrSelfLoop indicates an input edge whose endpoints coincide.
	ErrSelfLoop = errors.New("contract: self-loop not allowed")

	// ErrTooFewEdges indicates fewer than n-1 edges, so no spanning tree exists.
	ErrTooFewEdges = errors.New("contract: fewer than n-1 edges")

	// ErrDisconnected indicates the input graph is not connected.
	ErrDisconnected = errors.New("contract: graph is disconnected")

	// ErrInvalidEdge indicates a mutation on an edge id that is not currently valid.
	ErrInvalidEdge = errors.New("contract: edge is not valid")

	// ErrNoLiveVertex indicates that every vertex has been merged away.
	ErrNoLiveVertex = errors.New("contract: no vertex with incident edges")

	// ErrCorrupted indicates inconsistent internal bookkeeping.
	ErrCorrupted = errors.New("contract: inconsistent graph state")
)

// invalid is the sentinel endpoint written into invalidated edges.
const invalid = -1

// Edge is an undirected edge between two vertex indices.
// An invalidated edge holds the sentinel pair (-1, -1).
type Edge struct {
	From int
	To   int
}

// Valid reports whether the edge still has both endpoints.
func (e Edge) Valid() bool { return e.From >= 0 && e.To >= 0 }
