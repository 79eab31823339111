package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/wordladder/wordgraph"
)

const (
	filePrefix = "graph_"
	fileSuffix = ".json"
)

// FileStore keeps one JSON file per word length under Dir.
type FileStore struct {
	Dir string
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// Path returns the file path used for wordLength.
func (s *FileStore) Path(wordLength int) string {
	return filepath.Join(s.Dir, filePrefix+strconv.Itoa(wordLength)+fileSuffix)
}

// Save writes g atomically: the record goes to a temporary file in Dir which
// is then renamed over the target.
func (s *FileStore) Save(ctx context.Context, g *wordgraph.Graph) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Marshal(g)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("store: create %s: %w", s.Dir, err)
	}

	tmp, err := os.CreateTemp(s.Dir, filePrefix+"*.tmp")
	if err != nil {
		return fmt.Errorf("store: temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.Path(g.WordLength())); err != nil {
		return fmt.Errorf("store: rename: %w", err)
	}

	return nil
}

// Load reads and validates the graph for wordLength.
func (s *FileStore) Load(ctx context.Context, wordLength int) (*wordgraph.Graph, error) {
	if err := checkLength(wordLength); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := s.Path(wordLength)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotBuilt, path)
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}

	g, err := Unmarshal(data, wordLength)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Exists reports whether graph_<wordLength>.json is present.
func (s *FileStore) Exists(ctx context.Context, wordLength int) (bool, error) {
	if err := checkLength(wordLength); err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := os.Stat(s.Path(wordLength))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("store: stat: %w", err)
	}
}

// Lengths scans Dir for graph_<L>.json files.
func (s *FileStore) Lengths(ctx context.Context) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: list %s: %w", s.Dir, err)
	}

	var out []int
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		l, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix))
		if err != nil || l <= 0 {
			continue
		}
		out = append(out, l)
	}
	sort.Ints(out)

	return out, nil
}
