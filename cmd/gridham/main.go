// Command gridham draws a Hamiltonian path between two vertices of a
// rectangular grid graph G(width, height).
//
// Usage:
//
//	gridham --width 8 --height 9 --start-x 3 --start-y 3 --end-x 2 --end-y 3
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/elidom/gridham/grid"
	"github.com/elidom/gridham/problem"
	"github.com/elidom/gridham/render"
)

// unset marks a required flag that was never supplied, since every valid
// coordinate or dimension is non-negative.
const unset = -1

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gridham", flag.ContinueOnError)
	fs.SetOutput(stderr)

	width := fs.Int("width", unset, "width of the grid")
	height := fs.Int("height", unset, "height of the grid")
	startX := fs.Int("start-x", unset, "start vertex x coordinate")
	startY := fs.Int("start-y", unset, "start vertex y coordinate")
	endX := fs.Int("end-x", unset, "end vertex x coordinate")
	endY := fs.Int("end-y", unset, "end vertex y coordinate")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	required := []struct {
		name string
		val  *int
	}{
		{"width", width}, {"height", height},
		{"start-x", startX}, {"start-y", startY},
		{"end-x", endX}, {"end-y", endY},
	}
	for _, r := range required {
		if *r.val == unset {
			fmt.Fprintf(stderr, "Please specify --%s\n", r.name)

			return 1
		}
	}

	start := grid.Coordinate{X: *startX, Y: *startY}
	end := grid.Coordinate{X: *endX, Y: *endY}

	p, err := problem.New(*width, *height, start, end)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid grid problem: %v\n", err)

		return 1
	}

	path, ok, err := p.Solve()
	if err != nil {
		fmt.Fprintf(stderr, "Internal solver error: %v\n", err)

		return 1
	}
	if !ok {
		fmt.Fprintln(stderr, "The grid problem was not acceptable, either:")
		fmt.Fprintln(stderr, "  - its endpoints were not color compatible, or")
		fmt.Fprintln(stderr, "  - it was a forbidden problem")

		return 1
	}

	fmt.Fprintln(stdout, render.Render(path))

	return 0
}
