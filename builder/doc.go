// Package builder provides deterministic digraph generators used by
// tests, examples, and the CLI.
//
// What
//
//   - Path(n):     0 -> 1 -> ... -> n-1.
//   - Circuit(n):  one-way ring 0 -> 1 -> ... -> n-1 -> 0.
//   - Cycle(n):    bidirectional ring; every ring edge contributes two arcs.
//   - Star(n):     hub 0 with arcs both ways to each leaf.
//   - Wheel(n):    Cycle(n-1) on vertices 1..n-1 plus hub 0 spoked both ways.
//   - Complete(n): every ordered pair (u, v), u != v.
//
// Determinism
//
//	Arcs are emitted in a fixed order and stored in sorted adjacency
//	rows, so generated digraphs are byte-for-byte reproducible.
//
// Errors
//
//   - ErrTooFewVertices if n is below the generator's minimum.
//
// None of the generators produce self-loops.
package builder
