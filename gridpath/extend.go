package gridpath

import "github.com/elidom/gridham/grid"

// axis names which coordinate component a band extension grows along.
type axis int

const (
	axisX axis = iota
	axisY
)

func get(c grid.Coordinate, a axis) int {
	if a == axisX {
		return c.X
	}

	return c.Y
}

func with(c grid.Coordinate, a axis, v int) grid.Coordinate {
	if a == axisX {
		c.X = v
	} else {
		c.Y = v
	}

	return c
}

func other(a axis) axis {
	if a == axisX {
		return axisY
	}

	return axisX
}

// plan describes one of the four boundary extensions in axis-neutral terms.
type plan struct {
	extAxis   axis // the axis whose size grows by 2
	outer     bool // true for Right/Up (growing at the max end), false for Left/Down
	extSize   int  // current size along extAxis before growth
	sweepSize int  // size along the orthogonal axis
}

func planFor(d grid.Direction, g grid.Grid) plan {
	switch d {
	case grid.Right:
		return plan{extAxis: axisX, outer: true, extSize: g.N, sweepSize: g.M}
	case grid.Up:
		return plan{extAxis: axisY, outer: true, extSize: g.M, sweepSize: g.N}
	case grid.Left:
		return plan{extAxis: axisX, outer: false, extSize: g.N, sweepSize: g.M}
	default: // grid.Down
		return plan{extAxis: axisY, outer: false, extSize: g.M, sweepSize: g.N}
	}
}

// Extend grows the path's grid by a 2-wide band along the boundary named by
// d, rerouting the path through the new cells via a single U-detour spliced
// into the first edge of the path that runs along that boundary.
//
// Complexity: O(n*m).
func (p Path) Extend(d grid.Direction) (Path, error) {
	pl := planFor(d, p.g)
	boundary := pl.extSize - 1
	if !pl.outer {
		boundary = 0
	}

	idx := -1
	for i := 1; i < len(p.vertices); i++ {
		a, b := p.vertices[i-1], p.vertices[i]
		if get(a, pl.extAxis) == boundary && get(b, pl.extAxis) == boundary {
			idx = i

			break
		}
	}
	if idx < 0 {
		return Path{}, ErrNoBoundaryEdge
	}

	verts := p.vertices
	if !pl.outer {
		verts = make([]grid.Coordinate, len(p.vertices))
		for i, v := range p.vertices {
			verts[i] = with(v, pl.extAxis, get(v, pl.extAxis)+2)
		}
	}

	a, b := p.vertices[idx-1], p.vertices[idx]

	var nearVal, farVal int
	if pl.outer {
		nearVal, farVal = pl.extSize, pl.extSize+1
	} else {
		nearVal, farVal = 1, 0
	}

	sw := other(pl.extAxis)
	aSweep, bSweep := get(a, sw), get(b, sw)

	var detour []grid.Coordinate
	add := func(sweepVal, extVal int) {
		c := grid.Coordinate{}
		c = with(c, sw, sweepVal)
		c = with(c, pl.extAxis, extVal)
		detour = append(detour, c)
	}

	if aSweep < bSweep {
		for s := aSweep; s >= 0; s-- {
			add(s, nearVal)
		}
		for s := 0; s <= pl.sweepSize-1; s++ {
			add(s, farVal)
		}
		for s := pl.sweepSize - 1; s >= bSweep; s-- {
			add(s, nearVal)
		}
	} else {
		for s := aSweep; s <= pl.sweepSize-1; s++ {
			add(s, nearVal)
		}
		for s := pl.sweepSize - 1; s >= 0; s-- {
			add(s, farVal)
		}
		for s := 0; s <= bSweep; s++ {
			add(s, nearVal)
		}
	}

	newVerts := make([]grid.Coordinate, 0, len(verts)+len(detour))
	newVerts = append(newVerts, verts[:idx]...)
	newVerts = append(newVerts, detour...)
	newVerts = append(newVerts, verts[idx:]...)

	ng := p.g
	if pl.extAxis == axisX {
		ng.N += 2
	} else {
		ng.M += 2
	}

	return Path{g: ng, vertices: newVerts}, nil
}

// ExtendMany applies Extend once per direction in ds, in order, returning
// the first error encountered.
//
// Complexity: O(len(ds) * n*m).
func (p Path) ExtendMany(ds []grid.Direction) (Path, error) {
	cur := p
	for _, d := range ds {
		next, err := cur.Extend(d)
		if err != nil {
			return Path{}, err
		}
		cur = next
	}

	return cur, nil
}
