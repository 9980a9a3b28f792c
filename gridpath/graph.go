package gridpath

import (
	"fmt"

	"github.com/elidom/gridham/internal/graph"
)

// id renders a coordinate as the internal/graph vertex ID.
func id(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToGraph builds the internal adjacency-list graph of the path's vertex
// sequence, used by tests to confirm a reconstructed path is connected and
// covers its grid exactly once via breadth-first search.
//
// Complexity: O(n*m).
func (p Path) ToGraph() *graph.Graph {
	g := graph.New()
	for _, v := range p.vertices {
		_ = g.AddVertex(id(v.X, v.Y))
	}
	for i := 1; i < len(p.vertices); i++ {
		a, b := p.vertices[i-1], p.vertices[i]
		_ = g.AddEdge(id(a.X, a.Y), id(b.X, b.Y))
	}

	return g
}
