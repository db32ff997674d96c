// api.go - public entry points of the builder package.
//
// Design contract:
//   - One orchestrator: BuildEdgeList(bopts, cons...) resolves cfg once and
//     runs cons in order; BuildGraph adds the contract.NewGraph step.
//   - Constructors validate early and return sentinel errors; they never
//     panic at runtime.
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stcount/contract"
)

// Constructor appends one topology to el using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before touching el.
//   - Emit edges in a stable, documented order.
//   - Return sentinel errors, never panic.
type Constructor func(el *EdgeList, cfg builderConfig) error

// BuildEdgeList resolves bopts and applies cons in order to an empty list.
// Constructor errors are wrapped as "BuildEdgeList: %w".
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildEdgeList(bopts []BuilderOption, cons ...Constructor) (EdgeList, error) {
	cfg := newBuilderConfig(bopts...)

	var el EdgeList
	for i, fn := range cons {
		if fn == nil {
			return EdgeList{}, fmt.Errorf("BuildEdgeList: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&el, cfg); err != nil {
			return EdgeList{}, fmt.Errorf("BuildEdgeList: %w", err)
		}
	}

	return el, nil
}

// BuildGraph is BuildEdgeList followed by contract.NewGraph. Graph
// preconditions (connectivity, edge count) surface as contract sentinels.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*contract.Graph, error) {
	el, err := BuildEdgeList(bopts, cons...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	g, err := el.Graph()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
