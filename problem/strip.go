package problem

import "github.com/elidom/gridham/grid"

// stripCandidate builds the reduced Problem that direction d would produce,
// without checking whether the reduction is permitted. The caller checks
// the distance-from-boundary precondition first.
func (p Problem) stripCandidate(d grid.Direction) Problem {
	g, s, t := p.g, p.start, p.end

	switch d {
	case grid.Right:
		g.N -= 2
	case grid.Up:
		g.M -= 2
	case grid.Left:
		g.N -= 2
		s.X -= 2
		t.X -= 2
	case grid.Down:
		g.M -= 2
		s.Y -= 2
		t.Y -= 2
	}

	return Problem{g: g, start: s, end: t}
}

// canStrip reports whether direction d's distance precondition holds: both
// endpoints must lie at least two units from the named boundary, i.e.
// outside the 2-wide band being removed.
func (p Problem) canStrip(d grid.Direction) bool {
	switch d {
	case grid.Right:
		return p.g.N-p.start.X > 2 && p.g.N-p.end.X > 2
	case grid.Up:
		return p.g.M-p.start.Y > 2 && p.g.M-p.end.Y > 2
	case grid.Left:
		return p.start.X >= 2 && p.end.X >= 2
	default: // grid.Down
		return p.start.Y >= 2 && p.end.Y >= 2
	}
}

// stripDirection attempts to strip d off of p, returning the stripped
// Problem and true on success. Stripping succeeds iff both endpoints lie
// outside the 2-wide band being removed and the reduced instance is itself
// Acceptable.
//
// Complexity: O(1).
func (p Problem) stripDirection(d grid.Direction) (Problem, bool, error) {
	if !p.canStrip(d) {
		return Problem{}, false, nil
	}

	candidate := p.stripCandidate(d)
	ok, err := candidate.Acceptable()
	if err != nil {
		return Problem{}, false, err
	}
	if !ok {
		return Problem{}, false, nil
	}

	candidate.extensions = append(append([]grid.Direction{}, p.extensions...), d)

	return candidate, true, nil
}

// stripOrder is the order strip directions are attempted in, mirroring the
// reference solver's Right/Up/Left/Down preference.
var stripOrder = [...]grid.Direction{grid.Right, grid.Up, grid.Left, grid.Down}

// Strip attempts each direction in turn, returning the first successful
// reduction.
//
// Complexity: O(1).
func (p Problem) Strip() (Problem, bool, error) {
	for _, d := range stripOrder {
		next, ok, err := p.stripDirection(d)
		if err != nil {
			return Problem{}, false, err
		}
		if ok {
			return next, true, nil
		}
	}

	return Problem{}, false, nil
}

// StripToFixedPoint repeatedly strips p until no direction succeeds,
// returning the fully reduced Problem.
//
// Complexity: O(n + m) strips, each O(1).
func (p Problem) StripToFixedPoint() (Problem, error) {
	cur := p
	for {
		next, ok, err := cur.Strip()
		if err != nil {
			return Problem{}, err
		}
		if !ok {
			return cur, nil
		}
		cur = next
	}
}

// Reconstruct replays the recorded strip directions, restoring the
// dimensions and endpoint coordinates they were stripped from, and clears
// the extension stack.
//
// Complexity: O(len(extensions)).
func (p Problem) Reconstruct() Problem {
	g, s, t := p.g, p.start, p.end

	for _, d := range p.extensions {
		switch d {
		case grid.Right:
			g.N += 2
		case grid.Up:
			g.M += 2
		case grid.Left:
			g.N += 2
			s.X += 2
			t.X += 2
		case grid.Down:
			g.M += 2
			s.Y += 2
			t.Y += 2
		}
	}

	return Problem{g: g, start: s, end: t}
}
