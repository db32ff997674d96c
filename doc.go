// Package stcount estimates the number of spanning trees of a connected
// multigraph by sequential self-reduction.
//
// The estimate is a product of per-edge inverse ratios. Edges are processed
// in a fixed order; for each one, uniform spanning trees of the current
// graph are drawn with Wilson's algorithm and the fraction of trees that
// contain the edge is measured until it stabilizes. The edge is then
// contracted if most trees contain it, otherwise removed, and the next
// edge is measured on the reduced graph. Trees drawn for one edge are
// reused for later edges while they agree with every decision taken in
// between.
//
// Layout:
//
//	contract/    edge-indexed multigraph with contraction and soft removal
//	wilson/      uniform spanning tree/forest sampler (loop-erased walks)
//	approx/      the sequential ratio estimator and its convergence rules
//	mtt/         exact counts via the Matrix-Tree theorem (gonum/mat)
//	builder/     deterministic fixture topologies and edge-list I/O
//	cmd/stcount/ command line: run, exact, gen
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, builder.Grid(4, 4))
//	res, _ := approx.Count(ctx, g, approx.DefaultConfig())
//	fmt.Println(res.Count) // ≈ 100352
package stcount
