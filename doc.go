// Package gridham computes a Hamiltonian path between two vertices of a
// rectangular lattice graph G(n, m), following the constructive method of
// Itai, Papadimitriou, and Szwarcfiter: decide acceptability via color and
// boundary conditions, then recursively reduce the instance by stripping
// outer 2-wide bands and splitting along interior edges until reaching a
// table of prime base cases, then reassemble.
//
// Everything lives under five subpackages:
//
//	grid/       — dimensions, coordinates, directions, acceptability predicates
//	primetable/ — the hard-coded base-case lookup table
//	gridpath/   — the solved-path type and its band-extension primitives
//	problem/    — the recursive solver (Acceptable/Strip/Split/Solve)
//	render/     — ASCII rendering of a solved path (display only)
//
// See cmd/gridham for the command-line front end.
package gridham
