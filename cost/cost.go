// SPDX-License-Identifier: MIT
// Package: wordladder/cost
//
// cost.go - substitution cost function and its helpers.

package cost

// Fn prices the edge between two words that differ in exactly one position.
// It must be pure and return a strictly positive value for such pairs.
type Fn func(a, b string) float64

// Default is the cost function used by graph builders when none is supplied.
var Default Fn = Substitution

// Uniform prices every substitution at 1, turning a weighted graph back into
// a plain Hamming-distance-1 graph.
// Complexity: O(1).
func Uniform(_, _ string) float64 {
	return 1
}

// Terms is the per-term breakdown of a substitution cost.
type Terms struct {
	Position  float64 // 1.0 + (L - i) * 0.2
	Vowel     float64 // 0.5 on a vowel/consonant switch
	Keyboard  float64 // scaled QWERTY Manhattan distance
	Frequency float64 // rare-letter surcharge
}

// Total returns the sum of all four terms.
func (t Terms) Total() float64 {
	return t.Position + t.Vowel + t.Keyboard + t.Frequency
}

// Substitution returns the weighted cost of turning a into b.
//
// The words must have equal length and differ in exactly one position; the
// cost is evaluated at the first differing position. If the words are equal
// the position term is evaluated past the end (i == L) and the letter terms
// are computed for a no-op change, which callers never rely on.
// Complexity: O(L).
func Substitution(a, b string) float64 {
	return Breakdown(a, b).Total()
}

// Breakdown returns the four terms of Substitution separately.
// Complexity: O(L).
func Breakdown(a, b string) Terms {
	i, _ := DiffPosition(a, b)
	var ca, cb byte
	if i < len(a) && i < len(b) {
		ca, cb = lower(a[i]), lower(b[i])
	}

	return Terms{
		Position:  positionWeight(i, len(a)),
		Vowel:     vowelPenalty(ca, cb),
		Keyboard:  keyboardPenalty(ca, cb),
		Frequency: frequencyPenalty(ca, cb),
	}
}

// DiffPosition returns the first index at which a and b differ.
// ok is false when no index within the shorter word differs; the returned
// index is then the length of the shorter word.
// Complexity: O(L).
func DiffPosition(a, b string) (int, bool) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i, true
		}
	}

	return n, false
}

// Hamming counts the positions at which a and b differ, over the shorter
// length. It is the A* heuristic: every edge changes at most one position and
// costs at least MinEdgeCost, so Hamming never overestimates the remaining
// weighted cost.
// Complexity: O(L).
func Hamming(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	d := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			d++
		}
	}

	return d
}

// MinEdgeCost is a lower bound on Substitution for words of length L.
// The position term alone is at least PositionBase + PositionStep (change of
// the last letter); the other terms are non-negative.
func MinEdgeCost(wordLength int) float64 {
	if wordLength <= 0 {
		return 0
	}

	return positionWeight(wordLength-1, wordLength)
}

// positionWeight rewards preserving prefixes: changes nearer the start of a
// word cost more.
func positionWeight(i, wordLength int) float64 {
	return PositionBase + float64(wordLength-i)*PositionStep
}

func vowelPenalty(a, b byte) float64 {
	if isVowel(a) != isVowel(b) {
		return VowelPenalty
	}

	return 0
}

func keyboardPenalty(a, b byte) float64 {
	ka, okA := keyboard[a]
	kb, okB := keyboard[b]
	if !okA || !okB {
		return KeyboardFallback
	}
	d := abs(ka.row-kb.row) + abs(ka.col-kb.col)

	return KeyboardScale * (float64(d) / KeyboardNorm)
}

func frequencyPenalty(a, b byte) float64 {
	return FrequencyScale * (1.0 - (frequency[a]+frequency[b])/2)
}

func isVowel(c byte) bool {
	for i := 0; i < len(vowels); i++ {
		if vowels[i] == c {
			return true
		}
	}

	return false
}

// lower folds ASCII upper-case letters; other bytes are returned unchanged.
func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
