package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for dictionary loading.
var (
	// ErrMissingInput indicates the dictionary source is absent or unreadable.
	ErrMissingInput = errors.New("dictionary: missing input")

	// ErrEmptyInput indicates the dictionary yielded zero usable words.
	ErrEmptyInput = errors.New("dictionary: no usable words")

	// ErrBadLength indicates a negative word length was requested.
	ErrBadLength = errors.New("dictionary: word length must be non-negative")
)

// FileName returns the conventional per-length dictionary file name.
func FileName(length int) string {
	return fmt.Sprintf("%d_letter.txt", length)
}

// Path joins dir and FileName(length).
func Path(dir string, length int) string {
	return filepath.Join(dir, FileName(length))
}

// Normalize trims and lowercases a raw line and reports whether the result is
// a usable word of the requested length (0 = any length).
func Normalize(line string, length int) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(line))
	if w == "" {
		return "", false
	}
	if length > 0 && len(w) != length {
		return "", false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "", false
		}
	}

	return w, true
}

// Read scans r line by line and returns the sorted, de-duplicated usable
// words of the given length. An empty result is not an error here; Load
// decides that.
// Complexity: O(N log N) for N usable lines.
func Read(r io.Reader, length int) ([]string, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLength, length)
	}
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w, ok := Normalize(sc.Text(), length)
		if !ok {
			continue
		}
		seen[w] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: scan: %w", err)
	}

	return sortedKeys(seen), nil
}

// Load reads the dictionary file at path. It fails with ErrMissingInput when
// the file cannot be opened and with ErrEmptyInput when nothing survives
// normalisation.
func Load(path string, length int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingInput, path, err)
	}
	defer f.Close()

	words, err := Read(f, length)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, path)
	}

	return words, nil
}

// Split reads a raw word list once and groups usable words by the requested
// lengths. Lengths not present in the input map to an empty slice.
func Split(r io.Reader, lengths ...int) (map[int][]string, error) {
	buckets := make(map[int]map[string]struct{}, len(lengths))
	for _, l := range lengths {
		if l <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrBadLength, l)
		}
		buckets[l] = make(map[string]struct{})
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w, ok := Normalize(sc.Text(), 0)
		if !ok {
			continue
		}
		if b, want := buckets[len(w)]; want {
			b[w] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: scan: %w", err)
	}

	out := make(map[int][]string, len(buckets))
	for l, b := range buckets {
		out[l] = sortedKeys(b)
	}

	return out, nil
}

// WriteWords writes one word per line.
func WriteWords(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// SaveFile writes words to path, creating parent directories as needed.
func SaveFile(path string, words []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("dictionary: create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dictionary: create %s: %w", path, err)
	}
	if err := WriteWords(f, words); err != nil {
		f.Close()
		return fmt.Errorf("dictionary: write %s: %w", path, err)
	}

	return f.Close()
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}
