// Package cost prices a single-letter substitution between two words of
// equal length.
//
// A pure Hamming-distance-1 graph is too uniform to tell search strategies
// apart: every edge costs the same, so BFS, UCS and A* return the same
// ladders. Substitution adds four independent, non-negative terms evaluated
// at the one differing position i of a word of length L:
//
//	position  1.0 + (L - i) * 0.2               earlier letters cost more
//	vowel     0.5 if exactly one letter is a vowel
//	keyboard  0.2 * manhattan(qwerty) / 10.0     0.5 if a letter is unmapped
//	frequency 0.3 * (1.0 - mean letter frequency)
//
// All constants and lookup tables are fixed package data.
//
// Preconditions:
//
//   - Both words have the same length and differ in exactly one position.
//     The caller (wordgraph's pattern buckets) guarantees it; Substitution
//     does not re-check.
//
// Example:
//
//	c := cost.Substitution("cat", "bat") // ≈ 1.931
package cost
