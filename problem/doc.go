// Package problem implements the top-level recursive solver: acceptability,
// strip, split, recurse, and the reassembly of a full Hamiltonian path from
// the pieces that recursion produces.
//
// What:
//
//   - Problem: a value type {grid.Grid, start, end, extensions}. Strip and
//     Split never mutate a receiver; they return fresh Problem values, so
//     the recursion in Solve needs no rollback bookkeeping.
//   - Solve: strips an instance to a fixed point, resolves the stripped
//     core via the trivial line case, the prime table, or a recursive
//     split/join, then replays the recorded strips as gridpath.Extend
//     calls to regrow the solution to its original dimensions.
//
// Why:
//
//   - This is the Itai-Papadimitriou-Szwarcfiter construction: every
//     acceptable instance reduces, in a bounded number of steps, to either
//     a line, a tabulated prime case, or two smaller acceptable instances
//     joined along an interior edge. Problem encodes exactly that
//     reduction and its inverse.
//
// Errors:
//
//   - ErrOutOfBounds: New given coordinates outside the grid.
//   - ErrSameEndpoint: New given start == end.
//   - ErrUnsolvable: Solve reached an Acceptable instance with no
//     applicable strip, split, trivial case, or table entry — a
//     prime-table gap or a theorem-table bug, never a user input error.
package problem
