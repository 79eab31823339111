// SPDX-License-Identifier: MIT
// Package: wordladder/cost
//
// tables.go - fixed lookup data for the substitution cost model (data-only).
//
// Contract:
//   - keyboard maps each of the 26 lowercase letters to its (row, column) on a
//     3-row, left-aligned QWERTY layout. Letters outside the map take the
//     keyboard fallback.
//   - frequency maps each lowercase letter to a rounded English letter
//     frequency. Unmapped letters count as 0.
//   - Tables are immutable; do not mutate at runtime.

package cost

// Term weights of the substitution cost model.
const (
	// PositionBase is the position term before the per-position surcharge.
	PositionBase = 1.0

	// PositionStep is charged for every position from i to the end of the word.
	PositionStep = 0.2

	// VowelPenalty is charged when exactly one of the two letters is a vowel.
	VowelPenalty = 0.5

	// KeyboardScale multiplies the normalised QWERTY Manhattan distance.
	KeyboardScale = 0.2

	// KeyboardNorm normalises the QWERTY Manhattan distance.
	KeyboardNorm = 10.0

	// KeyboardFallback replaces the keyboard term for unmapped letters.
	KeyboardFallback = 0.5

	// FrequencyScale multiplies (1 - mean frequency).
	FrequencyScale = 0.3
)

// vowels lists the letters treated as vowels by the vowel term.
const vowels = "aeiou"

// key is a (row, column) coordinate on the keyboard layout.
type key struct {
	row, col int
}

// keyboard is the QWERTY layout, rows top to bottom, columns left-aligned.
var keyboard = map[byte]key{
	'q': {0, 0}, 'w': {0, 1}, 'e': {0, 2}, 'r': {0, 3}, 't': {0, 4},
	'y': {0, 5}, 'u': {0, 6}, 'i': {0, 7}, 'o': {0, 8}, 'p': {0, 9},
	'a': {1, 0}, 's': {1, 1}, 'd': {1, 2}, 'f': {1, 3}, 'g': {1, 4},
	'h': {1, 5}, 'j': {1, 6}, 'k': {1, 7}, 'l': {1, 8},
	'z': {2, 0}, 'x': {2, 1}, 'c': {2, 2}, 'v': {2, 3}, 'b': {2, 4},
	'n': {2, 5}, 'm': {2, 6},
}

// frequency is the rounded relative frequency of each letter in English text.
var frequency = map[byte]float64{
	'e': 0.10, 'a': 0.09, 'r': 0.08, 'i': 0.07, 'o': 0.07,
	't': 0.07, 'n': 0.07, 's': 0.06, 'l': 0.05, 'c': 0.04,
	'u': 0.04, 'd': 0.03, 'p': 0.03, 'm': 0.03, 'h': 0.03,
	'g': 0.02, 'b': 0.02, 'f': 0.02, 'y': 0.02, 'w': 0.02,
	'k': 0.01, 'v': 0.01, 'x': 0.01, 'z': 0.01, 'j': 0.01, 'q': 0.01,
}
