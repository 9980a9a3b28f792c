// Package primetable holds the literal, hand-verified table of prime-case
// solutions the Itai-Papadimitriou-Szwarcfiter reduction bottoms out at:
// a finite set of small acceptable (n, m, start, end) instances for which a
// Hamiltonian path is recorded directly rather than derived from Strip or
// Split.
//
// What:
//
//   - IsPrime reports whether a table entry exists for the given instance.
//   - GetPrime returns the recorded gridpath.Path for that instance.
//
// Why:
//
//   - The recursive reduction (package problem) strips 2-wide bands and
//     splits along interior edges until it reaches one of finitely many
//     small cases it cannot reduce further. Those base cases are exactly
//     what this table enumerates; everything above them is reconstructed
//     by joining split halves and replaying strips via gridpath.Extend.
//
// The table is authoritative and bit-exact: every entry was transcribed
// from the reference corpus this module's solver was distilled from, with
// two corrections applied during transcription (see table.go): a
// duplicated (2, 2) path was removed, and an out-of-bounds coordinate in
// one (5, 4) path was corrected to the only value consistent with that
// path covering all twenty cells exactly once.
package primetable
