package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/stcount/builder"
)

// graphSource names where a command reads its graph from.
type graphSource struct {
	topology string
	input    string
}

// String is the label used in reports.
func (s graphSource) String() string {
	if s.input != "" {
		return s.input
	}
	return s.topology
}

// load builds the edge list from the topology spec or the edge-list file.
func (s graphSource) load(seed int64) (builder.EdgeList, error) {
	if s.input != "" {
		f, err := os.Open(s.input)
		if err != nil {
			return builder.EdgeList{}, fmt.Errorf("load: %w", err)
		}
		defer f.Close()

		return builder.ReadEdgeList(f)
	}

	ctor, err := builder.ParseTopology(s.topology)
	if err != nil {
		return builder.EdgeList{}, err
	}

	return builder.BuildEdgeList([]builder.BuilderOption{builder.WithSeed(seed)}, ctor)
}
