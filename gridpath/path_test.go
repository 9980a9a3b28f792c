package gridpath

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elidom/gridham/grid"
)

func mustGrid(t *testing.T, n, m int) grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(n, m)
	require.NoError(t, err)

	return g
}

func TestNew_Errors(t *testing.T) {
	g := mustGrid(t, 2, 2)

	t.Run("WrongCount", func(t *testing.T) {
		_, err := New(g, []grid.Coordinate{{0, 0}, {1, 0}})
		require.ErrorIs(t, err, ErrTooShort)
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		_, err := New(g, []grid.Coordinate{{0, 0}, {1, 0}, {1, 1}, {2, 1}})
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("Duplicate", func(t *testing.T) {
		_, err := New(g, []grid.Coordinate{{0, 0}, {1, 0}, {0, 0}, {0, 1}})
		require.ErrorIs(t, err, ErrDuplicateVertex)
	})

	t.Run("NotAdjacent", func(t *testing.T) {
		_, err := New(g, []grid.Coordinate{{0, 0}, {1, 1}, {1, 0}, {0, 1}})
		require.ErrorIs(t, err, ErrNotAdjacent)
	})
}

func TestNew_Success(t *testing.T) {
	g := mustGrid(t, 2, 2)
	verts := []grid.Coordinate{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	p, err := New(g, verts)
	require.NoError(t, err)
	require.Equal(t, g, p.Grid())
	require.Equal(t, verts, p.Vertices())
	require.Equal(t, grid.Coordinate{0, 0}, p.Start())
	require.Equal(t, grid.Coordinate{0, 1}, p.End())
	require.Equal(t, 4, p.Len())
}

// snake2x3 is a hand-built Hamiltonian path over the 2x3 grid, used as the
// base case for extension tests below.
func snake2x3(t *testing.T) Path {
	t.Helper()
	g := mustGrid(t, 2, 3)
	p, err := New(g, []grid.Coordinate{
		{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 2}, {1, 2},
	})
	require.NoError(t, err)

	return p
}

// TestExtend_Right_Exact hand-verifies the U-detour spliced by Extend(Right)
// against the first x=1 boundary edge of snake2x3, (1,0)-(1,1).
func TestExtend_Right_Exact(t *testing.T) {
	p := snake2x3(t)
	ext, err := p.Extend(grid.Right)
	require.NoError(t, err)
	require.Equal(t, grid.Grid{N: 4, M: 3}, ext.Grid())

	want := []grid.Coordinate{
		{0, 0}, {1, 0},
		{2, 0}, {3, 0}, {3, 1}, {3, 2}, {2, 2}, {2, 1},
		{1, 1}, {0, 1}, {0, 2}, {1, 2},
	}
	require.Equal(t, want, ext.Vertices())

	// The result must itself be a valid path over the grown grid.
	_, err = New(ext.Grid(), ext.Vertices())
	require.NoError(t, err)
}

func TestExtend_AllDirections_RoundTrip(t *testing.T) {
	for _, d := range []grid.Direction{grid.Right, grid.Up, grid.Left, grid.Down} {
		t.Run(d.String(), func(t *testing.T) {
			p := snake2x3(t)
			ext, err := p.Extend(d)
			require.NoError(t, err)

			wantN, wantM := p.Grid().N, p.Grid().M
			if d == grid.Right || d == grid.Left {
				wantN += 2
			} else {
				wantM += 2
			}
			require.Equal(t, grid.Grid{N: wantN, M: wantM}, ext.Grid())
			require.Equal(t, wantN*wantM, ext.Len())

			// Extend must produce a structurally valid path: this round-trip
			// through New is the real test, since New enforces full coverage,
			// adjacency, and no repeats.
			_, err = New(ext.Grid(), ext.Vertices())
			require.NoError(t, err)
		})
	}
}

func TestExtend_NoBoundaryEdge(t *testing.T) {
	g := mustGrid(t, 1, 1)
	p, err := New(g, []grid.Coordinate{{0, 0}})
	require.NoError(t, err)

	_, err = p.Extend(grid.Up)
	require.ErrorIs(t, err, ErrNoBoundaryEdge)
}

func TestExtendMany(t *testing.T) {
	p := snake2x3(t)
	ext, err := p.ExtendMany([]grid.Direction{grid.Right, grid.Up})
	require.NoError(t, err)
	require.Equal(t, grid.Grid{N: 4, M: 5}, ext.Grid())

	_, err = New(ext.Grid(), ext.Vertices())
	require.NoError(t, err)
}

func TestExtendMany_PropagatesError(t *testing.T) {
	g := mustGrid(t, 1, 1)
	p, err := New(g, []grid.Coordinate{{0, 0}})
	require.NoError(t, err)

	_, err = p.ExtendMany([]grid.Direction{grid.Up})
	require.ErrorIs(t, err, ErrNoBoundaryEdge)
}
