// Package contract provides a compact, contraction-capable undirected graph
// used as the working state of self-reducing spanning-tree estimators.
//
// What:
//
//   - Graph keeps flat arrays of edges and per-vertex incident-edge lists,
//     indexed by dense integer ids (an arena with stable indices).
//   - Edge ids are assigned once at construction and never reused. An edge
//     is valid iff both endpoints are non-negative; invalidation writes the
//     sentinel pair (-1, -1).
//   - ContractEdge merges the lower-degree endpoint into the higher-degree
//     one, redirects every other incident edge, and invalidates the edges
//     that would turn into self-loops. Parallel edges created by the merge
//     are kept, so the live graph is a multigraph and the
//     deletion–contraction identity τ(G) = τ(G−e) + τ(G/e) holds exactly.
//   - RemoveEdge soft-deletes an edge: ids and total counts never change,
//     only the live counts shrink.
//
// Why:
//
//   - Estimators visit every edge once and commit to either contracting or
//     deleting it. Flat arrays make every validity check O(1) and keep the
//     pivot ↔ edge-id mapping stable for the whole run.
//
// Invariants (verified by SanityCheck):
//
//   - An edge id appears in the incident lists of both of its endpoints iff
//     it is valid.
//   - Σ len(incident(v)) = 2 × EdgeCount().
//   - A vertex with an empty incident list is removed; VertexCount() counts
//     the others.
//
// Complexity:
//
//   - IsEdgeValid, Edge, counts:  O(1)
//   - RemoveEdge:                 O(deg(u) + deg(v))
//   - ContractEdge:               O(min(deg(u), deg(v)) · max(deg(u), deg(v)))
//     worst case, O(min degree) redirects plus one removal per would-be loop
//   - SanityCheck, Clone:         O(V + E)
//
// Concurrency:
//
//   - Graph is not safe for concurrent mutation. One estimator owns one
//     Graph for the duration of a run; use Clone to run again.
//
// Errors:
//
//   - ErrNoVertices, ErrVertexOutOfRange, ErrSelfLoop, ErrTooFewEdges,
//     ErrDisconnected  construction-time precondition failures
//   - ErrInvalidEdge   mutation of an id that is not currently valid
//   - ErrNoLiveVertex  no vertex with incident edges is left
//   - ErrCorrupted     bookkeeping inconsistency (a bug, never expected)
package contract
