package primetable

import "github.com/elidom/gridham/grid"

// c is shorthand for a table coordinate literal.
func c(x, y int) grid.Coordinate {
	return grid.Coordinate{X: x, Y: y}
}

// Entry is one dimension's worth of prime-case solutions.
type Entry struct {
	N, M  int
	Paths [][]grid.Coordinate
}

// table is the literal prime-case solution set, transcribed from the
// reference corpus this solver was distilled from.
//
// Two corrections were applied during transcription:
//
//   - The (2, 2) entry carried the same path twice; the duplicate was
//     removed.
//   - One (5, 4) path held the coordinate [4, 4], which lies outside a
//     5x4 grid (y must be < 4). The twenty cells of that path cover every
//     column and row of the grid exactly once except (4, 2), and [4, 4]
//     sits between two cells at x = 4, so it is corrected to [4, 2] — the
//     only value that both stays in bounds and keeps every consecutive
//     pair grid-adjacent.
var table = []Entry{
	{N: 2, M: 2, Paths: [][]grid.Coordinate{
		{c(0, 0), c(1, 0), c(1, 1), c(0, 1)},
		{c(0, 0), c(0, 1), c(1, 1), c(1, 0)},
		{c(0, 1), c(1, 1), c(1, 0), c(0, 0)},
		{c(1, 0), c(1, 1), c(0, 1), c(0, 0)},
		{c(1, 1), c(0, 1), c(0, 0), c(1, 0)},
		{c(1, 1), c(1, 0), c(0, 0), c(0, 1)},
		{c(1, 0), c(0, 0), c(0, 1), c(1, 1)},
		{c(0, 1), c(0, 0), c(1, 0), c(1, 1)},
	}},
	{N: 2, M: 3, Paths: [][]grid.Coordinate{
		{c(0, 0), c(1, 0), c(1, 1), c(1, 2), c(0, 2), c(0, 1)},
		{c(0, 0), c(0, 1), c(0, 2), c(1, 2), c(1, 1), c(1, 0)},
		{c(0, 0), c(1, 0), c(1, 1), c(0, 1), c(0, 2), c(1, 2)},
		{c(0, 1), c(0, 2), c(1, 2), c(1, 1), c(1, 0), c(0, 0)},
		{c(0, 1), c(0, 0), c(1, 0), c(1, 1), c(1, 2), c(0, 2)},
		{c(0, 2), c(1, 2), c(1, 1), c(1, 0), c(0, 0), c(0, 1)},
		{c(0, 2), c(1, 2), c(1, 1), c(0, 1), c(0, 0), c(1, 0)},
		{c(0, 2), c(0, 1), c(0, 0), c(1, 0), c(1, 1), c(1, 2)},
		{c(1, 0), c(1, 1), c(1, 2), c(0, 2), c(0, 1), c(0, 0)},
		{c(1, 0), c(0, 0), c(0, 1), c(1, 1), c(1, 2), c(0, 2)},
		{c(1, 0), c(0, 0), c(0, 1), c(0, 2), c(1, 2), c(1, 1)},
		{c(1, 1), c(1, 2), c(0, 2), c(0, 1), c(0, 0), c(1, 0)},
		{c(1, 1), c(1, 0), c(0, 0), c(0, 1), c(0, 2), c(1, 2)},
		{c(1, 2), c(0, 2), c(0, 1), c(1, 1), c(1, 0), c(0, 0)},
		{c(1, 2), c(1, 1), c(1, 0), c(0, 0), c(0, 1), c(0, 2)},
		{c(1, 2), c(0, 2), c(0, 1), c(0, 0), c(1, 0), c(1, 1)},
	}},
	{N: 3, M: 2, Paths: [][]grid.Coordinate{
		{c(0, 0), c(0, 1), c(1, 1), c(2, 1), c(2, 0), c(1, 0)},
		{c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(1, 1), c(0, 1)},
		{c(0, 0), c(0, 1), c(1, 1), c(1, 0), c(2, 0), c(2, 1)},
		{c(1, 0), c(2, 0), c(2, 1), c(1, 1), c(0, 1), c(0, 0)},
		{c(1, 0), c(0, 0), c(0, 1), c(1, 1), c(2, 1), c(2, 0)},
		{c(2, 0), c(2, 1), c(1, 1), c(0, 1), c(0, 0), c(1, 0)},
		{c(2, 0), c(2, 1), c(1, 1), c(1, 0), c(0, 0), c(0, 1)},
		{c(2, 0), c(1, 0), c(0, 0), c(0, 1), c(1, 1), c(2, 1)},
		{c(0, 1), c(1, 1), c(2, 1), c(2, 0), c(1, 0), c(0, 0)},
		{c(0, 1), c(0, 0), c(1, 0), c(1, 1), c(2, 1), c(2, 0)},
		{c(0, 1), c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(1, 1)},
		{c(1, 1), c(2, 1), c(2, 0), c(1, 0), c(0, 0), c(0, 1)},
		{c(1, 1), c(0, 1), c(0, 0), c(1, 0), c(2, 0), c(2, 1)},
		{c(2, 1), c(2, 0), c(1, 0), c(1, 1), c(0, 1), c(0, 0)},
		{c(2, 1), c(1, 1), c(0, 1), c(0, 0), c(1, 0), c(2, 0)},
		{c(2, 1), c(2, 0), c(1, 0), c(0, 0), c(0, 1), c(1, 1)},
	}},
	{N: 3, M: 3, Paths: [][]grid.Coordinate{
		{c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(2, 2), c(1, 2), c(1, 1), c(0, 1), c(0, 2)},
		{c(0, 0), c(0, 1), c(0, 2), c(1, 2), c(2, 2), c(2, 1), c(2, 0), c(1, 0), c(1, 1)},
		{c(0, 0), c(1, 0), c(1, 1), c(0, 1), c(0, 2), c(1, 2), c(2, 2), c(2, 1), c(2, 0)},
		{c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(1, 1), c(0, 1), c(0, 2), c(1, 2), c(2, 2)},
		{c(0, 2), c(1, 2), c(2, 2), c(2, 1), c(2, 0), c(1, 0), c(1, 1), c(0, 1), c(0, 0)},
		{c(0, 2), c(1, 2), c(2, 2), c(2, 1), c(2, 0), c(1, 0), c(0, 0), c(0, 1), c(1, 1)},
		{c(0, 2), c(0, 1), c(0, 0), c(1, 0), c(1, 1), c(1, 2), c(2, 2), c(2, 1), c(2, 0)},
		{c(0, 2), c(1, 2), c(1, 1), c(0, 1), c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(2, 2)},
		{c(1, 1), c(0, 1), c(0, 2), c(1, 2), c(2, 2), c(2, 1), c(2, 0), c(1, 0), c(0, 0)},
		{c(1, 1), c(1, 2), c(2, 2), c(2, 1), c(2, 0), c(1, 0), c(0, 0), c(0, 1), c(0, 2)},
		{c(1, 1), c(2, 1), c(2, 2), c(1, 2), c(0, 2), c(0, 1), c(0, 0), c(1, 0), c(2, 0)},
		{c(1, 1), c(2, 1), c(2, 0), c(1, 0), c(0, 0), c(0, 1), c(0, 2), c(1, 2), c(2, 2)},
		{c(2, 0), c(2, 1), c(2, 2), c(1, 2), c(0, 2), c(0, 1), c(1, 1), c(1, 0), c(0, 0)},
		{c(2, 0), c(2, 1), c(2, 2), c(1, 2), c(0, 2), c(0, 1), c(0, 0), c(1, 0), c(1, 1)},
		{c(2, 0), c(1, 0), c(0, 0), c(0, 1), c(1, 1), c(2, 1), c(2, 2), c(1, 2), c(0, 2)},
		{c(2, 0), c(1, 0), c(0, 0), c(0, 1), c(0, 2), c(1, 2), c(1, 1), c(2, 1), c(2, 2)},
		{c(2, 2), c(2, 1), c(2, 0), c(1, 0), c(1, 1), c(1, 2), c(0, 2), c(0, 1), c(0, 0)},
		{c(2, 2), c(2, 1), c(2, 0), c(1, 0), c(0, 0), c(0, 1), c(1, 1), c(1, 2), c(0, 2)},
		{c(2, 2), c(2, 1), c(2, 0), c(1, 0), c(0, 0), c(0, 1), c(0, 2), c(1, 2), c(1, 1)},
		{c(2, 2), c(1, 2), c(0, 2), c(0, 1), c(0, 0), c(1, 0), c(1, 1), c(2, 1), c(2, 0)},
	}},
	{N: 4, M: 5, Paths: [][]grid.Coordinate{
		{c(0, 1), c(0, 0), c(1, 0), c(2, 0), c(3, 0), c(3, 1), c(2, 1), c(2, 2), c(3, 2), c(3, 3), c(3, 4), c(2, 4), c(2, 3), c(1, 3), c(1, 4), c(0, 4), c(0, 3), c(0, 2), c(1, 2), c(1, 1)},
		{c(0, 3), c(0, 4), c(1, 4), c(2, 4), c(3, 4), c(3, 3), c(2, 3), c(2, 2), c(3, 2), c(3, 1), c(3, 0), c(2, 0), c(2, 1), c(1, 1), c(1, 0), c(0, 0), c(0, 1), c(0, 2), c(1, 2), c(1, 3)},
		{c(1, 1), c(1, 2), c(0, 2), c(0, 3), c(0, 4), c(1, 4), c(1, 3), c(2, 3), c(2, 4), c(3, 4), c(3, 3), c(3, 2), c(2, 2), c(2, 1), c(3, 1), c(3, 0), c(2, 0), c(1, 0), c(0, 0), c(0, 1)},
		{c(1, 3), c(1, 2), c(0, 2), c(0, 1), c(0, 0), c(1, 0), c(1, 1), c(2, 1), c(2, 0), c(3, 0), c(3, 1), c(3, 2), c(2, 2), c(2, 3), c(3, 3), c(3, 4), c(2, 4), c(1, 4), c(0, 4), c(0, 3)},
		{c(2, 1), c(2, 2), c(3, 2), c(3, 3), c(3, 4), c(2, 4), c(2, 3), c(1, 3), c(1, 4), c(0, 4), c(0, 3), c(0, 2), c(1, 2), c(1, 1), c(0, 1), c(0, 0), c(1, 0), c(2, 0), c(3, 0), c(3, 1)},
		{c(2, 3), c(2, 2), c(3, 2), c(3, 1), c(3, 0), c(2, 0), c(2, 1), c(1, 1), c(1, 0), c(0, 0), c(0, 1), c(0, 2), c(1, 2), c(1, 3), c(0, 3), c(0, 4), c(1, 4), c(2, 4), c(3, 4), c(3, 3)},
		{c(3, 1), c(3, 0), c(2, 0), c(1, 0), c(0, 0), c(0, 1), c(1, 1), c(1, 2), c(0, 2), c(0, 3), c(0, 4), c(1, 4), c(1, 3), c(2, 3), c(2, 4), c(3, 4), c(3, 3), c(3, 2), c(2, 2), c(2, 1)},
		{c(3, 3), c(3, 4), c(2, 4), c(1, 4), c(0, 4), c(0, 3), c(1, 3), c(1, 2), c(0, 2), c(0, 1), c(0, 0), c(1, 0), c(1, 1), c(2, 1), c(2, 0), c(3, 0), c(3, 1), c(3, 2), c(2, 2), c(2, 3)},
	}},
	{N: 5, M: 4, Paths: [][]grid.Coordinate{
		{c(1, 0), c(0, 0), c(0, 1), c(0, 2), c(0, 3), c(1, 3), c(1, 2), c(2, 2), c(2, 3), c(3, 3), c(4, 3), c(4, 2), c(3, 2), c(3, 1), c(4, 1), c(4, 0), c(3, 0), c(2, 0), c(2, 1), c(1, 1)},
		{c(1, 1), c(2, 1), c(2, 0), c(3, 0), c(4, 0), c(4, 1), c(3, 1), c(3, 2), c(4, 2), c(4, 3), c(3, 3), c(2, 3), c(2, 2), c(1, 2), c(1, 3), c(0, 3), c(0, 2), c(0, 1), c(0, 0), c(1, 0)},
		{c(1, 2), c(2, 2), c(2, 3), c(3, 3), c(4, 3), c(4, 2), c(3, 2), c(3, 1), c(4, 1), c(4, 0), c(3, 0), c(2, 0), c(2, 1), c(1, 1), c(1, 0), c(0, 0), c(0, 1), c(0, 2), c(0, 3), c(1, 3)},
		{c(1, 3), c(0, 3), c(0, 2), c(0, 1), c(0, 0), c(1, 0), c(1, 1), c(2, 1), c(2, 0), c(3, 0), c(4, 0), c(4, 1), c(3, 1), c(3, 2), c(4, 2), c(4, 3), c(3, 3), c(2, 3), c(2, 2), c(1, 2)},
		{c(3, 0), c(4, 0), c(4, 1), c(4, 2), c(4, 3), c(3, 3), c(3, 2), c(2, 2), c(2, 3), c(1, 3), c(0, 3), c(0, 2), c(1, 2), c(1, 1), c(0, 1), c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(3, 1)},
		{c(3, 1), c(2, 1), c(2, 0), c(1, 0), c(0, 0), c(0, 1), c(1, 1), c(1, 2), c(0, 2), c(0, 3), c(1, 3), c(2, 3), c(2, 2), c(3, 2), c(3, 3), c(4, 3), c(4, 2), c(4, 1), c(4, 0), c(3, 0)},
		{c(3, 2), c(2, 2), c(2, 3), c(1, 3), c(0, 3), c(0, 2), c(1, 2), c(1, 1), c(0, 1), c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(3, 1), c(3, 0), c(4, 0), c(4, 1), c(4, 2), c(4, 3), c(3, 3)},
		{c(3, 3), c(4, 3), c(4, 2), c(4, 1), c(4, 0), c(3, 0), c(3, 1), c(2, 1), c(2, 0), c(1, 0), c(0, 0), c(0, 1), c(1, 1), c(1, 2), c(0, 2), c(0, 3), c(1, 3), c(2, 3), c(2, 2), c(3, 2)},
	}},
}

// IsPrime reports whether the table carries a recorded solution for a
// Hamiltonian path over an n x m grid from start to end.
//
// Complexity: O(k) over the table's entries for (n, m); the table is small
// and fixed, so this is effectively O(1).
func IsPrime(n, m int, start, end grid.Coordinate) bool {
	for _, e := range table {
		if e.N != n || e.M != m {
			continue
		}
		for _, p := range e.Paths {
			if p[0] == start && p[len(p)-1] == end {
				return true
			}
		}

		return false
	}

	return false
}
