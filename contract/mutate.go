package contract

import (
	"fmt"
	"slices"
)

// ContractEdge merges the endpoints of edge id into one surviving vertex.
//
// Steps:
//  1. Validate id; ErrInvalidEdge if it is not currently valid.
//  2. Keep the endpoint with the larger incident list; the other one (the
//     "removed" vertex) is merged into it, bounding the number of redirects
//     by the smaller degree.
//  3. For every edge incident to the removed vertex:
//     – if it joins the two endpoints (id itself, or an edge parallel to
//     it), remove it: it would become a self-loop;
//     – otherwise redirect its endpoint to the survivor and append it to the
//     survivor's incident list. Parallel edges formed this way are kept.
//  4. Clear the removed vertex's incident list.
//
// When reportSideEffects is true the ids of the edges removed in step 3,
// excluding id itself, are returned. Such an edge never appears in any
// spanning tree of the contracted graph, so its self-reduction ratio is
// exactly 1.
//
// Complexity: O(d_small · d_large) worst case, where each removal scans both
// endpoints' lists.
func (g *Graph) ContractEdge(id int, reportSideEffects bool) ([]int, error) {
	// 1. Only valid edges can be contracted.
	if !g.IsEdgeValid(id) {
		return nil, fmt.Errorf("ContractEdge(%d): %w", id, ErrInvalidEdge)
	}

	// 2. Pick the survivor (keep) and the vertex merged away (drop).
	keep, drop := g.edges[id].From, g.edges[id].To
	if len(g.inc[keep]) < len(g.inc[drop]) {
		keep, drop = drop, keep
	}

	// 3. Walk the dropped vertex's list; removals shrink it in place.
	var sideEffects []int
	for i := 0; i < len(g.inc[drop]); {
		e := g.inc[drop][i]
		ed := g.edges[e]

		// Exactly one endpoint must be drop: no loops, no stale entries.
		if (ed.From == drop) == (ed.To == drop) {
			return nil, fmt.Errorf("ContractEdge(%d): edge %d (%d,%d) listed at vertex %d: %w",
				id, e, ed.From, ed.To, drop, ErrCorrupted)
		}

		if ed.From == keep || ed.To == keep {
			if err := g.removeEdge(e); err != nil {
				return nil, fmt.Errorf("ContractEdge(%d): %w", id, err)
			}
			if reportSideEffects && e != id {
				sideEffects = append(sideEffects, e)
			}
			continue
		}

		if ed.From == drop {
			g.edges[e].From = keep
		} else {
			g.edges[e].To = keep
		}
		g.inc[keep] = append(g.inc[keep], e)
		i++
	}

	// 4. The dropped vertex is now removed.
	g.inc[drop] = nil
	g.liveVertices--
	if len(g.inc[keep]) == 0 {
		// The survivor lost its last edge: nothing else is reachable.
		g.liveVertices--
	}
	g.version++

	return sideEffects, nil
}

// RemoveEdge invalidates edge id and erases it from both endpoints'
// incident lists. Ids and total counts are unaffected.
// A vertex left without incident edges stops being live.
//
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(id int) error {
	if !g.IsEdgeValid(id) {
		return fmt.Errorf("RemoveEdge(%d): %w", id, ErrInvalidEdge)
	}
	ed := g.edges[id]
	if err := g.removeEdge(id); err != nil {
		return fmt.Errorf("RemoveEdge(%d): %w", id, err)
	}
	for _, v := range [2]int{ed.From, ed.To} {
		if len(g.inc[v]) == 0 {
			g.liveVertices--
		}
	}
	g.version++

	return nil
}

// removeEdge invalidates id and drops it from both incident lists without
// touching the live-vertex count.
func (g *Graph) removeEdge(id int) error {
	ed := g.edges[id]
	g.invalidateEdge(id)

	for _, v := range [2]int{ed.From, ed.To} {
		pos := slices.Index(g.inc[v], id)
		if pos < 0 {
			return fmt.Errorf("edge %d missing from incident list of %d: %w", id, v, ErrCorrupted)
		}
		g.inc[v] = slices.Delete(g.inc[v], pos, pos+1)
	}
	g.liveEdges--

	return nil
}
