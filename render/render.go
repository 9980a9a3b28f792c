package render

import (
	"strings"

	"github.com/elidom/gridham/grid"
	"github.com/elidom/gridham/gridpath"
)

// edgeKey normalizes an unordered pair of adjacent coordinates into a
// single map key.
type edgeKey struct {
	a, b grid.Coordinate
}

func normalize(a, b grid.Coordinate) edgeKey {
	if a.X < b.X || (a.X == b.X && a.Y < b.Y) {
		return edgeKey{a, b}
	}

	return edgeKey{b, a}
}

// Render draws p as an ASCII grid: one row per y-coordinate (highest y
// first), nodes rendered as "o" joined by "---" where a horizontal path
// edge exists (three spaces otherwise), and an inter-row line of "|" or
// " " at each column marking vertical path edges.
func Render(p gridpath.Path) string {
	g := p.Grid()
	edges := make(map[edgeKey]bool, p.Len())
	verts := p.Vertices()
	for i := 1; i < len(verts); i++ {
		edges[normalize(verts[i-1], verts[i])] = true
	}

	hasEdge := func(a, b grid.Coordinate) bool {
		return edges[normalize(a, b)]
	}

	var out strings.Builder
	for y := g.M - 1; y >= 0; y-- {
		for x := 0; x < g.N; x++ {
			if x > 0 {
				if hasEdge(grid.Coordinate{X: x - 1, Y: y}, grid.Coordinate{X: x, Y: y}) {
					out.WriteString("---o")
				} else {
					out.WriteString("   o")
				}
			} else {
				out.WriteString("o")
			}
		}
		out.WriteString("\n")

		if y > 0 {
			for x := 0; x < g.N; x++ {
				if hasEdge(grid.Coordinate{X: x, Y: y}, grid.Coordinate{X: x, Y: y - 1}) {
					out.WriteString("|")
				} else {
					out.WriteString(" ")
				}
				if x < g.N-1 {
					out.WriteString("   ")
				}
			}
			out.WriteString("\n")
		}
	}

	return strings.TrimSuffix(out.String(), "\n")
}
