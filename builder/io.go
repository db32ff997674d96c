// io.go - plain-text edge lists.
//
// Format:
//   • One edge per line: "u v" with non-negative integer endpoints.
//   • Blank lines and lines starting with '#' are ignored.
//   • An optional "vertices N" line fixes the vertex count; otherwise it is
//     max endpoint + 1. It may appear once, before any edge.
//   • Edge order in the file is edge order in the graph.

package builder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const verticesKeyword = "vertices"

// ReadEdgeList parses the format above. Self-loops, negative indices and
// endpoints beyond a declared vertex count are ErrBadEdgeList.
func ReadEdgeList(r io.Reader) (EdgeList, error) {
	var (
		el       EdgeList
		declared = -1
		line     int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return EdgeList{}, fmt.Errorf("ReadEdgeList: line %d: want 2 fields, got %d: %w", line, len(fields), ErrBadEdgeList)
		}

		if fields[0] == verticesKeyword {
			if declared >= 0 || len(el.Edges) > 0 {
				return EdgeList{}, fmt.Errorf("ReadEdgeList: line %d: misplaced header: %w", line, ErrBadEdgeList)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 0 {
				return EdgeList{}, fmt.Errorf("ReadEdgeList: line %d: bad vertex count %q: %w", line, fields[1], ErrBadEdgeList)
			}
			declared = n
			continue
		}

		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		switch {
		case errU != nil || errV != nil:
			return EdgeList{}, fmt.Errorf("ReadEdgeList: line %d: non-integer endpoint: %w", line, ErrBadEdgeList)
		case u < 0 || v < 0:
			return EdgeList{}, fmt.Errorf("ReadEdgeList: line %d: negative endpoint: %w", line, ErrBadEdgeList)
		case u == v:
			return EdgeList{}, fmt.Errorf("ReadEdgeList: line %d: self-loop at %d: %w", line, u, ErrBadEdgeList)
		case declared >= 0 && max(u, v) >= declared:
			return EdgeList{}, fmt.Errorf("ReadEdgeList: line %d: endpoint %d >= vertices %d: %w", line, max(u, v), declared, ErrBadEdgeList)
		}
		el.ensure(max(u, v) + 1)
		el.add(u, v)
	}
	if err := sc.Err(); err != nil {
		return EdgeList{}, fmt.Errorf("ReadEdgeList: %w", err)
	}
	if declared >= 0 {
		el.N = declared
	}

	return el, nil
}

// WriteEdgeList writes el with a "vertices N" header so isolated trailing
// vertices survive a round trip.
func WriteEdgeList(w io.Writer, el EdgeList) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %d\n", verticesKeyword, el.N)
	for _, e := range el.Edges {
		fmt.Fprintf(bw, "%d %d\n", e[0], e[1])
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteEdgeList: %w", err)
	}

	return nil
}
