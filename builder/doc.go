// Package builder assembles deterministic graph fixtures for the estimator,
// the sampler and the exact verifier.
//
// Constructors append vertices and edges to an EdgeList; BuildGraph runs
// them in order and hands the result to contract.NewGraph. Vertices are
// dense indices, so composing constructors overlays them on the same
// index range: Cycle(6) followed by Chord(0, 3) adds one chord to the ring.
// Repeated pairs become parallel edges.
//
// Components:
//
//   - Topologies: Cycle, Path, Star, Wheel, Complete, CompleteBipartite,
//     Grid, RandomConnected, RandomRegular, Reference, Chord.
//   - Options (BuilderOption): WithSeed, WithRand, WithMaxDegree,
//     WithMinDegree, WithMaxRetries. Option constructors panic on
//     meaningless input; constructors return sentinel errors.
//   - ParseTopology maps textual specs ("grid:3x3", "random:50,0.1") to
//     constructors for the command line.
//   - ReadEdgeList / WriteEdgeList handle a plain "u v" per line format.
//
// Determinism: for equal options, seed and constructor order the edge ids
// of the built graph are identical. Stochastic constructors require an RNG
// (WithSeed or WithRand) and return ErrNeedRandSource otherwise.
package builder
