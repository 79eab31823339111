// Package ladder runs word-ladder games on top of a shared graph.
//
// A Session starts at one word and ends when the player reaches the target.
// Every move must replace exactly one letter and land on a dictionary word,
// i.e. follow an edge of the graph. Sessions are only created for pairs that
// are actually connected, checked with the BFS finder from package search.
//
// Hints come from any search strategy: the next word on that strategy's route
// from the current word, reported as the position to change and the letter to
// put there.
//
// Modes fix the word length: Easy plays 3-letter words, Hard 5-letter words.
//
// A Session is safe for concurrent use. The graph is only read.
package ladder
