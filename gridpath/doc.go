// Package gridpath holds a solved Hamiltonian path over a grid.Grid and the
// band-extension primitives used to regrow a path across a Strip boundary
// during reconstruction.
//
// What:
//
//   - Path: an ordered, non-repeating sequence of grid.Coordinate, each
//     consecutive pair grid-adjacent, covering the grid's N*M cells exactly
//     once.
//   - Extend / ExtendMany: the four U-detour primitives (one per
//     grid.Direction) that grow a Path's underlying grid by a 2-wide band
//     along a boundary, rerouting the path through the new cells.
//
// Why:
//
//   - Solve (in package problem) regrows a solution on a stripped instance
//     back to the original dimensions by replaying one Extend per stripped
//     band, in the reverse of the order the bands were peeled. Path owns
//     the geometry of that replay so the solver itself stays free of
//     coordinate arithmetic.
//
// Errors:
//
//   - ErrTooShort, ErrNotAdjacent, ErrDuplicateVertex, ErrOutOfBounds: New's
//     structural validation failures.
//   - ErrNoBoundaryEdge: Extend found no edge of the path lying along the
//     requested boundary to splice a detour into.
package gridpath
