package problem

import "github.com/elidom/gridham/grid"

// splitHorizontal scans for the first interior row boundary y such that
// cutting the grid into a lower block of height y+1 and an upper block of
// height m-(y+1) yields two Acceptable sub-problems. It returns the two
// sub-problems in spatial order (lower, upper) plus startBelow, which
// reports whether p.start falls in the lower block (true) or the upper
// block (false) — callers must use startBelow to decide concatenation
// order, since lower/upper is a spatial split, not a start/end split.
//
// Complexity: O(n * m).
func (p Problem) splitHorizontal() (lower, upper Problem, startBelow, found bool, err error) {
	if p.start.Y == p.end.Y {
		return Problem{}, Problem{}, false, false, nil
	}

	minY, maxY := p.start.Y, p.end.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	startBelow = p.start.Y < p.end.Y

	for y := minY; y < maxY; y++ {
		for x := 0; x < p.g.N; x++ {
			l := grid.Coordinate{X: x, Y: y}
			u := grid.Coordinate{X: x, Y: y + 1}
			if l == p.start || l == p.end || u == p.start || u == p.end {
				continue
			}

			var lowerStart, lowerEnd, upperStart, upperEnd grid.Coordinate
			if startBelow {
				lowerStart, lowerEnd = p.start, l
				upperStart, upperEnd = grid.Coordinate{X: u.X, Y: 0}, grid.Coordinate{X: p.end.X, Y: p.end.Y - (y + 1)}
			} else {
				lowerStart, lowerEnd = l, p.end
				upperStart, upperEnd = grid.Coordinate{X: p.start.X, Y: p.start.Y - (y + 1)}, grid.Coordinate{X: u.X, Y: 0}
			}

			lowerProb, lowerErr := FromGrid(grid.Grid{N: p.g.N, M: y + 1}, lowerStart, lowerEnd)
			if lowerErr != nil {
				continue
			}
			upperProb, upperErr := FromGrid(grid.Grid{N: p.g.N, M: p.g.M - (y + 1)}, upperStart, upperEnd)
			if upperErr != nil {
				continue
			}

			lowerOK, err := lowerProb.Acceptable()
			if err != nil {
				return Problem{}, Problem{}, false, false, err
			}
			upperOK, err := upperProb.Acceptable()
			if err != nil {
				return Problem{}, Problem{}, false, false, err
			}
			if lowerOK && upperOK {
				return lowerProb, upperProb, startBelow, true, nil
			}
		}
	}

	return Problem{}, Problem{}, false, false, nil
}

// splitVertical is splitHorizontal with the axes swapped: it cuts along an
// interior column boundary x into a left block of width x+1 and a right
// block of width n-(x+1). startLeft reports whether p.start falls in the
// left block.
//
// Complexity: O(n * m).
func (p Problem) splitVertical() (left, right Problem, startLeft, found bool, err error) {
	if p.start.X == p.end.X {
		return Problem{}, Problem{}, false, false, nil
	}

	minX, maxX := p.start.X, p.end.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	startLeft = p.start.X < p.end.X

	for x := minX; x < maxX; x++ {
		for y := 0; y < p.g.M; y++ {
			l := grid.Coordinate{X: x, Y: y}
			r := grid.Coordinate{X: x + 1, Y: y}
			if l == p.start || l == p.end || r == p.start || r == p.end {
				continue
			}

			var leftStart, leftEnd, rightStart, rightEnd grid.Coordinate
			if startLeft {
				leftStart, leftEnd = p.start, l
				rightStart, rightEnd = grid.Coordinate{X: 0, Y: r.Y}, grid.Coordinate{X: p.end.X - (x + 1), Y: p.end.Y}
			} else {
				leftStart, leftEnd = l, p.end
				rightStart, rightEnd = grid.Coordinate{X: p.start.X - (x + 1), Y: p.start.Y}, grid.Coordinate{X: 0, Y: r.Y}
			}

			leftProb, leftErr := FromGrid(grid.Grid{N: x + 1, M: p.g.M}, leftStart, leftEnd)
			if leftErr != nil {
				continue
			}
			rightProb, rightErr := FromGrid(grid.Grid{N: p.g.N - (x + 1), M: p.g.M}, rightStart, rightEnd)
			if rightErr != nil {
				continue
			}

			leftOK, err := leftProb.Acceptable()
			if err != nil {
				return Problem{}, Problem{}, false, false, err
			}
			rightOK, err := rightProb.Acceptable()
			if err != nil {
				return Problem{}, Problem{}, false, false, err
			}
			if leftOK && rightOK {
				return leftProb, rightProb, startLeft, true, nil
			}
		}
	}

	return Problem{}, Problem{}, false, false, nil
}

// CanBeSplitHorizontally reports whether an interior row boundary exists
// that splits p into two Acceptable sub-problems.
//
// Complexity: O(n * m).
func (p Problem) CanBeSplitHorizontally() (bool, error) {
	_, _, _, found, err := p.splitHorizontal()

	return found, err
}

// SplitHorizontally returns the lower and upper sub-problems for the first
// interior row boundary that splits p acceptably. It returns ErrUnsolvable
// if no such boundary exists.
//
// Complexity: O(n * m).
func (p Problem) SplitHorizontally() (Problem, Problem, error) {
	lower, upper, _, found, err := p.splitHorizontal()
	if err != nil {
		return Problem{}, Problem{}, err
	}
	if !found {
		return Problem{}, Problem{}, ErrUnsolvable
	}

	return lower, upper, nil
}

// CanBeSplitVertically reports whether an interior column boundary exists
// that splits p into two Acceptable sub-problems.
//
// Complexity: O(n * m).
func (p Problem) CanBeSplitVertically() (bool, error) {
	_, _, _, found, err := p.splitVertical()

	return found, err
}

// SplitVertically returns the left and right sub-problems for the first
// interior column boundary that splits p acceptably. It returns
// ErrUnsolvable if no such boundary exists.
//
// Complexity: O(n * m).
func (p Problem) SplitVertically() (Problem, Problem, error) {
	left, right, _, found, err := p.splitVertical()
	if err != nil {
		return Problem{}, Problem{}, err
	}
	if !found {
		return Problem{}, Problem{}, ErrUnsolvable
	}

	return left, right, nil
}
