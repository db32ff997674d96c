// Package wilson draws uniformly random spanning trees of a contract.Graph
// with Wilson's loop-erased random walk.
//
// What:
//
//   - Sampler.Sample(root) returns the edge ids of one spanning tree of the
//     graph's current live state, chosen uniformly among all its spanning
//     trees. Parallel edges are distinct edges: a vertex pair joined by k
//     parallel edges contributes k different trees.
//   - The sampler keeps only a non-owning reference to the graph. It sees
//     every contraction and removal immediately.
//
// How (Wilson, 1996):
//
//  1. Mark root as in-tree.
//  2. For each live vertex v not yet in the tree, walk from v choosing a
//     uniformly random incident edge at every step and record it as next[u],
//     overwriting earlier records (this erases loops), until the walk hits
//     the tree.
//  3. Retrace next[] from v, marking every vertex in-tree and emitting its
//     edge, until the tree is reached.
//
// Coverage is the whole live vertex set. Vertices unreachable from root are
// grouped into further components, each rooted at its first vertex, so the
// walk always terminates and the output is a uniform spanning forest with
// (live − components) edges; for a connected graph that is live − 1.
//
// Complexity:
//
//   - Expected time: the mean hitting time of the root (O(V·E) worst case,
//     near-linear on well-connected graphs).
//   - Memory: O(V) scratch, allocated once and reset on every call.
//   - The component decomposition costs O(V + E) and is cached until the
//     graph's Version changes or a different root is requested.
//
// Concurrency:
//
//   - A Sampler and its *rand.Rand are single-goroutine objects.
//
// Errors:
//
//   - ErrRootNotLive  root out of range or without incident edges
package wilson
