// Package grid defines the lattice graph G(n, m): coordinates, the four
// boundary directions, and the Itai-Papadimitriou-Szwarcfiter acceptability
// predicates (color compatibility, corner detection, and the forbidden-pair
// cases that rule out a Hamiltonian s-t path before any search is attempted).
//
// What:
//
//   - Coordinate: an (x, y) lattice point.
//   - Direction: one of Right, Up, Left, Down — the four boundary sides a
//     Grid can be stripped from or a Path extended toward.
//   - Grid: immutable value type {N, M int} plus ColorCompatible, Corner,
//     and Forbidden.
//
// Why:
//
//   - These three predicates are necessary and sufficient for a Hamiltonian
//     s-t path to exist (Itai et al., 1982). Everything downstream (Strip,
//     Split, the prime table) only ever needs to ask "is this instance
//     Acceptable", which reduces to these checks plus a recursive structure.
//
// Errors:
//
//   - ErrInvalidDimensions: NewGrid called with n < 1 or m < 1.
//   - ErrOutOfBounds: a predicate argument lies outside [0,N) x [0,M).
package grid
