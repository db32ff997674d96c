package contract

import "fmt"

// SanityCheck verifies the structural invariants of g in O(V + E):
//
//   - the incident-list lengths sum to an even number equal to 2·EdgeCount();
//   - every listed edge is valid, has the listing vertex as exactly one
//     endpoint, and appears once in each endpoint's list;
//   - every valid edge is listed at both endpoints;
//   - the live-vertex count matches the number of non-empty lists.
//
// Intended for tests and debugging; the first violation found is returned
// wrapped in ErrCorrupted.
func (g *Graph) SanityCheck() error {
	var (
		entries int
		live    int
		seen    = make([]int, len(g.edges)) // number of lists each id appears in
	)

	for v, list := range g.inc {
		if len(list) > 0 {
			live++
		}
		entries += len(list)
		for _, id := range list {
			if id < 0 || id >= len(g.edges) {
				return fmt.Errorf("SanityCheck: vertex %d lists unknown edge %d: %w", v, id, ErrCorrupted)
			}
			e := g.edges[id]
			if !e.Valid() {
				return fmt.Errorf("SanityCheck: vertex %d lists invalid edge %d: %w", v, id, ErrCorrupted)
			}
			if (e.From == v) == (e.To == v) {
				return fmt.Errorf("SanityCheck: vertex %d lists edge %d (%d,%d): %w", v, id, e.From, e.To, ErrCorrupted)
			}
			seen[id]++
		}
	}

	if entries%2 != 0 {
		return fmt.Errorf("SanityCheck: odd incidence total %d: %w", entries, ErrCorrupted)
	}
	if entries/2 != g.liveEdges {
		return fmt.Errorf("SanityCheck: %d incidences for %d live edges: %w", entries, g.liveEdges, ErrCorrupted)
	}
	if live != g.liveVertices {
		return fmt.Errorf("SanityCheck: %d non-empty lists, live count %d: %w", live, g.liveVertices, ErrCorrupted)
	}

	for id, e := range g.edges {
		want := 0
		if e.Valid() {
			want = 2
		} else if e.From != invalid || e.To != invalid {
			return fmt.Errorf("SanityCheck: edge %d half-invalid (%d,%d): %w", id, e.From, e.To, ErrCorrupted)
		}
		if seen[id] != want {
			return fmt.Errorf("SanityCheck: edge %d listed %d times: %w", id, seen[id], ErrCorrupted)
		}
	}

	return nil
}
