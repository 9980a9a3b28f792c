package primetable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elidom/gridham/grid"
	"github.com/elidom/gridham/gridpath"
)

// TestTable_EntriesAreValidPaths confirms every recorded path is itself a
// structurally valid Hamiltonian path over its declared dimensions: full
// coverage, no repeats, every consecutive pair grid-adjacent. This is the
// bit-exact guarantee the table promises downstream.
func TestTable_EntriesAreValidPaths(t *testing.T) {
	for _, e := range table {
		e := e
		t.Run(fmt.Sprintf("%dx%d", e.N, e.M), func(t *testing.T) {
			g, err := grid.NewGrid(e.N, e.M)
			require.NoError(t, err)

			for i, p := range e.Paths {
				_, err := gridpath.New(g, p)
				require.NoErrorf(t, err, "path %d", i)
			}
		})
	}
}

func TestTable_NoDuplicatePathsPerEntry(t *testing.T) {
	for _, e := range table {
		seen := map[string]bool{}
		for _, p := range e.Paths {
			key := fmt.Sprint(p)
			require.Falsef(t, seen[key], "duplicate path in (%d,%d): %v", e.N, e.M, p)
			seen[key] = true
		}
	}
}

func TestIsPrime(t *testing.T) {
	ok := IsPrime(2, 2, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 0, Y: 1})
	require.True(t, ok)

	ok = IsPrime(2, 2, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 0, Y: 0})
	require.False(t, ok)

	ok = IsPrime(6, 6, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 0, Y: 1})
	require.False(t, ok, "6x6 has no table entry")
}

func TestGetPrime(t *testing.T) {
	path, ok, err := GetPrime(3, 3, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 0, Y: 2})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, grid.Coordinate{X: 0, Y: 0}, path.Start())
	require.Equal(t, grid.Coordinate{X: 0, Y: 2}, path.End())
	require.Equal(t, 9, path.Len())

	_, ok, err = GetPrime(3, 3, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 1, Y: 0})
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = GetPrime(9, 9, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 0, Y: 1})
	require.NoError(t, err)
	require.False(t, ok)
}
