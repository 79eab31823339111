// Package dictionary turns line-oriented word lists into the clean input the
// graph builder expects: distinct, lowercase, alphabetic words of one fixed
// length, sorted.
//
// Normalisation (applied per line):
//
//  1. Trim surrounding whitespace; skip blank lines.
//  2. Lowercase.
//  3. Keep only words made of a-z whose length matches the requested length
//     (length 0 keeps every length).
//  4. Drop duplicates; sort the survivors.
//
// Errors (sentinel):
//
//   - ErrMissingInput: the source file is absent or unreadable.
//   - ErrEmptyInput:   the source yields zero usable words.
//   - ErrBadLength:    a negative word length was requested.
//
// Split and WriteWords reproduce the setup step that carves per-length
// dictionaries (<L>_letter.txt) out of one raw list.
package dictionary
