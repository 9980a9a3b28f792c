package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		n, m int
	}{
		{"ZeroWidth", 0, 5},
		{"ZeroHeight", 5, 0},
		{"Negative", -1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.n, tc.m)
			require.ErrorIs(t, err, ErrInvalidDimensions)
		})
	}
}

func TestInBounds(t *testing.T) {
	g, err := NewGrid(3, 2)
	require.NoError(t, err)

	valid := []Coordinate{{0, 0}, {2, 1}, {1, 1}}
	for _, c := range valid {
		require.Truef(t, g.InBounds(c), "InBounds(%v)", c)
	}
	invalid := []Coordinate{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, c := range invalid {
		require.Falsef(t, g.InBounds(c), "InBounds(%v)", c)
	}
}

// Color compatibility tests translated from the original Rust reference
// implementation's unit tests (gridgraph.rs).
func TestColorCompatible_OddGrid(t *testing.T) {
	g, err := NewGrid(5, 7) // N*M = 35, odd
	require.NoError(t, err)

	ok, err := g.ColorCompatible(Coordinate{3, 4}, Coordinate{1, 6})
	require.NoError(t, err)
	require.False(t, ok, "minority-color pair must not be compatible")

	ok, err = g.ColorCompatible(Coordinate{2, 3}, Coordinate{1, 5})
	require.NoError(t, err)
	require.False(t, ok, "mixed-color pair must not be compatible in an odd grid")

	ok, err = g.ColorCompatible(Coordinate{2, 2}, Coordinate{4, 6})
	require.NoError(t, err)
	require.True(t, ok, "majority-color pair must be compatible")
}

func TestColorCompatible_EvenGrid(t *testing.T) {
	g, err := NewGrid(5, 8) // N*M = 40, even
	require.NoError(t, err)

	ok, err := g.ColorCompatible(Coordinate{2, 6}, Coordinate{1, 7})
	require.NoError(t, err)
	require.False(t, ok, "same-parity pair must not be compatible in an even grid")

	ok, err = g.ColorCompatible(Coordinate{2, 3}, Coordinate{1, 5})
	require.NoError(t, err)
	require.True(t, ok, "opposite-parity pair must be compatible")
}

func TestColorCompatible_OutOfBounds(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	_, err = g.ColorCompatible(Coordinate{3, 0}, Coordinate{0, 0})
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestCorner(t *testing.T) {
	g, err := NewGrid(4, 3)
	require.NoError(t, err)

	corners := []Coordinate{{0, 0}, {3, 0}, {0, 2}, {3, 2}}
	for _, c := range corners {
		ok, err := g.Corner(c)
		require.NoError(t, err)
		require.Truef(t, ok, "Corner(%v)", c)
	}

	notCorners := []Coordinate{{1, 0}, {0, 1}, {2, 2}, {3, 1}}
	for _, c := range notCorners {
		ok, err := g.Corner(c)
		require.NoError(t, err)
		require.Falsef(t, ok, "Corner(%v)", c)
	}
}

func TestForbidden_ThinLine(t *testing.T) {
	cases := []struct {
		name    string
		n, m    int
		v, w    Coordinate
		wantFor bool
	}{
		{"WidthPartialForbidden", 1, 7, Coordinate{0, 0}, Coordinate{0, 4}, true},
		{"WidthFullForbidden", 1, 9, Coordinate{0, 5}, Coordinate{0, 2}, true},
		{"WidthValid", 1, 10, Coordinate{0, 0}, Coordinate{0, 9}, false},
		{"HeightPartialForbidden", 7, 1, Coordinate{4, 0}, Coordinate{0, 0}, true},
		{"HeightFullForbidden", 9, 1, Coordinate{5, 0}, Coordinate{2, 0}, true},
		{"HeightValid", 10, 1, Coordinate{0, 0}, Coordinate{9, 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.n, tc.m)
			require.NoError(t, err)
			got, err := g.Forbidden(tc.v, tc.w)
			require.NoError(t, err)
			require.Equal(t, tc.wantFor, got)
		})
	}
}

func TestForbidden_ThinStrip(t *testing.T) {
	cases := []struct {
		name    string
		n, m    int
		v, w    Coordinate
		wantFor bool
	}{
		{"WidthValid", 2, 8, Coordinate{0, 7}, Coordinate{1, 2}, false},
		{"WidthForbidden", 2, 12, Coordinate{0, 5}, Coordinate{1, 5}, true},
		{"HeightValid", 11, 2, Coordinate{8, 1}, Coordinate{6, 1}, false},
		{"HeightForbidden", 7, 2, Coordinate{3, 1}, Coordinate{3, 0}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.n, tc.m)
			require.NoError(t, err)
			got, err := g.Forbidden(tc.v, tc.w)
			require.NoError(t, err)
			require.Equal(t, tc.wantFor, got)
		})
	}
}

func TestForbidden_ThinTriple(t *testing.T) {
	cases := []struct {
		name    string
		n, m    int
		v, w    Coordinate
		wantFor bool
	}{
		{"WidthValid", 3, 12, Coordinate{0, 2}, Coordinate{1, 6}, false},
		{"WidthForbidden", 3, 12, Coordinate{0, 3}, Coordinate{2, 6}, true},
		{"HeightValid", 8, 3, Coordinate{4, 2}, Coordinate{6, 1}, false},
		{"HeightForbidden", 8, 3, Coordinate{5, 1}, Coordinate{4, 1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.n, tc.m)
			require.NoError(t, err)
			got, err := g.Forbidden(tc.v, tc.w)
			require.NoError(t, err)
			require.Equal(t, tc.wantFor, got)
		})
	}
}

func TestForbidden_WideOpen(t *testing.T) {
	g, err := NewGrid(8, 9)
	require.NoError(t, err)

	for x := 0; x < 8; x++ {
		for y := 0; y < 9; y++ {
			v := Coordinate{x, y}
			got, err := g.Forbidden(v, Coordinate{(x + 3) % 8, (y + 2) % 9})
			require.NoError(t, err)
			require.False(t, got, "grids with both dimensions >= 4 forbid nothing")
		}
	}
}

func TestForbidden_OutOfBounds(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)

	_, err = g.Forbidden(Coordinate{4, 0}, Coordinate{0, 0})
	require.ErrorIs(t, err, ErrOutOfBounds)
}

// referenceForbidden re-derives Forbidden independently for the
// exhaustive cross-check below, following spec.md section 4.1 literally
// rather than sharing code paths with grid.go.
func referenceForbidden(g Grid, v, w Coordinate) bool {
	thinIsN := g.N <= 3 && (g.N <= g.M || g.M > 3)
	switch {
	case g.N == 1 || g.M == 1:
		bound := g.M
		if g.N != 1 {
			bound = g.N
		}
		isN := g.N == 1
		var a, b Coordinate
		if isN {
			a, b = Coordinate{0, 0}, Coordinate{0, bound - 1}
		} else {
			a, b = Coordinate{0, 0}, Coordinate{bound - 1, 0}
		}
		return !((v == a && w == b) || (v == b && w == a))
	case g.N == 2 || g.M == 2:
		isCorner := func(c Coordinate) bool {
			return (c.X == 0 || c.X == g.N-1) && (c.Y == 0 || c.Y == g.M-1)
		}
		if isCorner(v) || isCorner(w) {
			return false
		}
		if g.N == 2 {
			return v.Y == w.Y
		}
		return v.X == w.X
	case g.N == 3 || g.M == 3:
		isN := g.N == 3
		_ = thinIsN
		thick := g.M
		if !isN {
			thick = g.N
		}
		if thick&1 == 1 {
			return false
		}
		if v.Parity() == w.Parity() {
			return false
		}
		var a, b, u int
		if isN {
			a, b, u = v.Y, w.Y, v.X
		} else {
			a, b, u = v.X, w.X, v.Y
		}
		greater := a > b
		d := a - b
		if !greater {
			d = b - a
		}
		sat := d > 1
		if u == 1 {
			sat = d > 0
		}
		if !sat {
			return false
		}
		if greater && v.Parity() == 1 {
			return false
		}
		if !greater && v.Parity() == 0 {
			return false
		}
		return true
	default:
		return false
	}
}

func TestForbidden_ExhaustiveUpTo5x5(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for m := 1; m <= 5; m++ {
			g, err := NewGrid(n, m)
			require.NoError(t, err)
			for x1 := 0; x1 < n; x1++ {
				for y1 := 0; y1 < m; y1++ {
					for x2 := 0; x2 < n; x2++ {
						for y2 := 0; y2 < m; y2++ {
							v, w := Coordinate{x1, y1}, Coordinate{x2, y2}
							got, err := g.Forbidden(v, w)
							require.NoError(t, err)
							want := referenceForbidden(g, v, w)
							require.Equalf(t, want, got, "Forbidden(%dx%d, %v, %v)", n, m, v, w)
						}
					}
				}
			}
		}
	}
}
