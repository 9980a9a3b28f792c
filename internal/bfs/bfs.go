// Package bfs runs breadth-first search over an internal/graph.Graph,
// adapted from the bfs package's walker/BFS shape for this module's one
// use: checking that a reconstructed path's underlying graph is connected,
// as part of validating a Hamiltonian path in tests.
package bfs

import (
	"errors"

	"github.com/elidom/gridham/internal/graph"
)

// ErrStartVertexNotFound indicates the requested start vertex is absent
// from the graph.
var ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Order lists vertex IDs in the order they were first visited.
	Order []string
	// Depth maps each visited vertex ID to its distance from the start.
	Depth map[string]int
}

// Run performs breadth-first search over g starting at startID.
//
// Complexity: O(V + E).
func Run(g *graph.Graph, startID string) (*Result, error) {
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	res := &Result{
		Order: make([]string, 0, g.VertexCount()),
		Depth: make(map[string]int, g.VertexCount()),
	}

	visited := map[string]bool{startID: true}
	queue := []string{startID}
	res.Depth[startID] = 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur)

		nbrs, err := g.Neighbors(cur)
		if err != nil {
			return nil, err
		}
		for _, n := range nbrs {
			if visited[n] {
				continue
			}
			visited[n] = true
			res.Depth[n] = res.Depth[cur] + 1
			queue = append(queue, n)
		}
	}

	return res, nil
}
