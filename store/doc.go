// Package store persists built word graphs and loads them back.
//
// Every backend stores the same record:
//
//	{
//	  "metadata": {"word_length": 3, "node_count": 4, "edge_count": 3},
//	  "words":    ["bad", "bat", "cat", "cot"],
//	  "graph":    {"bad": {"bat": 1.545}, "bat": {"bad": 1.545, "cat": 1.931}, ...}
//	}
//
// Costs are written with Go's shortest round-trip float formatting, so a
// save/load cycle restores every cost bit-for-bit. Map keys are emitted in
// sorted order, so rebuilding the same dictionary produces identical bytes.
// Only words with at least one neighbour appear under "graph"; "words" lists
// every vertex.
//
// Backends:
//
//   - FileStore:   one graph_<L>.json file per word length in a directory.
//   - BadgerStore: one key graph/<L> per word length in an embedded BadgerDB.
//
// Errors (sentinel, checked with errors.Is):
//
//   - ErrNotBuilt: no graph has been persisted for the word length. Callers
//     typically build one.
//   - ErrCorrupt:  a record exists but cannot be decoded or fails the graph's
//     invariant checks. Callers choose between rebuilding and reporting.
package store
