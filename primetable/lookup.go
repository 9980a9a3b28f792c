package primetable

import (
	"github.com/elidom/gridham/grid"
	"github.com/elidom/gridham/gridpath"
)

// GetPrime returns the recorded Hamiltonian path over an n x m grid from
// start to end, if one exists in the table.
//
// Complexity: O(k) over the table's entries for (n, m).
func GetPrime(n, m int, start, end grid.Coordinate) (gridpath.Path, bool, error) {
	for _, e := range table {
		if e.N != n || e.M != m {
			continue
		}
		for _, p := range e.Paths {
			if p[0] != start || p[len(p)-1] != end {
				continue
			}

			g, err := grid.NewGrid(n, m)
			if err != nil {
				return gridpath.Path{}, false, err
			}

			path, err := gridpath.New(g, p)
			if err != nil {
				return gridpath.Path{}, false, err
			}

			return path, true, nil
		}

		return gridpath.Path{}, false, nil
	}

	return gridpath.Path{}, false, nil
}
