// Package pipeline ties the dictionary, builder and store together.
//
// Builder is the build entry point: for one word length it loads
// <dir>/<L>_letter.txt, builds the graph and persists it, skipping the work
// when a valid graph is already stored. Failures come back as a Result value,
// never as a panic or a bare error, so callers can report them per length.
//
// Registry is the load-once boundary. It loads each word length from the
// store at most once, even under concurrent requests, and hands every
// consumer the same read-only *wordgraph.Graph. With a Builder attached it
// builds graphs that were never built; a corrupt record is reported, not
// silently rebuilt.
package pipeline
