// topology.go - textual topology specs used by the CLI and config files.
//
// Grammar (case-insensitive kind, no spaces):
//   cycle:N  path:N  star:N  wheel:N  complete:N
//   bipartite:AxB  grid:RxC
//   random:N,P  regular:N,D
//   reference

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTopology maps a spec such as "grid:4x5" to its Constructor.
// Malformed specs return ErrBadTopology; range checks are left to the
// Constructor itself.
func ParseTopology(spec string) (Constructor, error) {
	kind, arg, hasArg := strings.Cut(strings.TrimSpace(spec), ":")
	kind = strings.ToLower(kind)

	if kind == "reference" {
		if hasArg {
			return nil, fmt.Errorf("ParseTopology: %q takes no argument: %w", spec, ErrBadTopology)
		}
		return Reference(), nil
	}
	if !hasArg {
		return nil, fmt.Errorf("ParseTopology: %q: missing argument: %w", spec, ErrBadTopology)
	}

	switch kind {
	case "cycle", "path", "star", "wheel", "complete":
		n, err := atoi(spec, arg)
		if err != nil {
			return nil, err
		}
		return map[string]func(int) Constructor{
			"cycle":    Cycle,
			"path":     Path,
			"star":     Star,
			"wheel":    Wheel,
			"complete": Complete,
		}[kind](n), nil
	case "bipartite", "grid":
		a, b, ok := strings.Cut(arg, "x")
		if !ok {
			return nil, fmt.Errorf("ParseTopology: %q: want AxB: %w", spec, ErrBadTopology)
		}
		x, err := atoi(spec, a)
		if err != nil {
			return nil, err
		}
		y, err := atoi(spec, b)
		if err != nil {
			return nil, err
		}
		if kind == "grid" {
			return Grid(x, y), nil
		}
		return CompleteBipartite(x, y), nil
	case "random", "regular":
		a, b, ok := strings.Cut(arg, ",")
		if !ok {
			return nil, fmt.Errorf("ParseTopology: %q: want N,X: %w", spec, ErrBadTopology)
		}
		n, err := atoi(spec, a)
		if err != nil {
			return nil, err
		}
		if kind == "regular" {
			d, err := atoi(spec, b)
			if err != nil {
				return nil, err
			}
			return RandomRegular(n, d), nil
		}
		p, err := strconv.ParseFloat(b, 64)
		if err != nil {
			return nil, fmt.Errorf("ParseTopology: %q: %v: %w", spec, err, ErrBadTopology)
		}
		return RandomConnected(n, p), nil
	default:
		return nil, fmt.Errorf("ParseTopology: unknown kind %q: %w", kind, ErrBadTopology)
	}
}

func atoi(spec, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("ParseTopology: %q: %v: %w", spec, err, ErrBadTopology)
	}
	return n, nil
}
