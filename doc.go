// Package wordladder builds weighted word-ladder graphs and finds ladders
// through them.
//
// What is a word ladder?
//
//	A sequence of same-length words where each step changes exactly one
//	letter: cold → cord → card → ward → warm. Every step carries a cost
//	that grows with how early the change happens, whether it swaps a vowel
//	for a consonant, how far apart the two keys sit on a QWERTY keyboard
//	and how rare the new letter is.
//
// Layout:
//
//	cost/       - four-term substitution cost model
//	dictionary/ - reading, normalizing and splitting word lists
//	wordgraph/  - immutable weighted graph built via wildcard pattern buckets
//	store/      - persisted graphs: JSON files or BadgerDB
//	search/     - BFS, UCS and A* with exploration statistics
//	pipeline/   - build-and-persist pipeline and the shared graph registry
//	ladder/     - game sessions: easy (3) and hard (5) letter modes, hints
//	internal/   - config, logging, metrics and the HTTP server
//	cmd/        - the wordladder command
//
// Quick example:
//
//	cat ──1.931── bat ──1.545── bad
//	 │
//	1.856
//	 │
//	cot
//
// BFS, UCS and A* all answer cat → bad with [cat bat bad] at cost 3.476;
// A* expands the fewest words because its Hamming-distance estimate never
// exceeds the cheapest remaining route.
//
//	go install github.com/katalvlaran/wordladder/cmd/wordladder@latest
package wordladder
