package gridpath

import "github.com/elidom/gridham/grid"

// New validates and wraps vertices as a Path over g. vertices must number
// exactly g.N*g.M, contain no repeats, lie within g's bounds, and have
// every consecutive pair grid-adjacent.
//
// Complexity: O(n*m).
func New(g grid.Grid, vertices []grid.Coordinate) (Path, error) {
	if len(vertices) != g.N*g.M {
		return Path{}, ErrTooShort
	}

	seen := make(map[grid.Coordinate]bool, len(vertices))
	for i, v := range vertices {
		if !g.InBounds(v) {
			return Path{}, ErrOutOfBounds
		}
		if seen[v] {
			return Path{}, ErrDuplicateVertex
		}
		seen[v] = true

		if i > 0 && !adjacent(vertices[i-1], v) {
			return Path{}, ErrNotAdjacent
		}
	}

	out := make([]grid.Coordinate, len(vertices))
	copy(out, vertices)

	return Path{g: g, vertices: out}, nil
}
