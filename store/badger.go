package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/wordladder/wordgraph"
)

const badgerKeyPrefix = "graph/"

// BadgerConfig configures the embedded database behind a BadgerStore.
type BadgerConfig struct {
	// Path is the database directory. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in RAM. Used by tests.
	InMemory bool

	// SyncWrites fsyncs every write.
	SyncWrites bool

	// Logger receives BadgerDB's internal log lines. Nil disables them.
	Logger *slog.Logger
}

// BadgerStore keeps one record per word length in BadgerDB under graph/<L>.
type BadgerStore struct {
	db *badger.DB
}

// badgerLogger adapts slog.Logger to badger.Logger.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// OpenBadger opens (creating if needed) a BadgerDB-backed store.
// The caller must Close it.
func OpenBadger(cfg BadgerConfig) (*BadgerStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("store: badger path is required for a persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create badger directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}

	return &BadgerStore{db: db}, nil
}

// Close releases the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func badgerKey(wordLength int) []byte {
	return []byte(badgerKeyPrefix + strconv.Itoa(wordLength))
}

// Save writes g's record in a single transaction.
func (s *BadgerStore) Save(ctx context.Context, g *wordgraph.Graph) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Marshal(g)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(g.WordLength()), data)
	})
	if err != nil {
		return fmt.Errorf("store: badger write: %w", err)
	}

	return nil
}

// Load reads and validates the graph for wordLength.
func (s *BadgerStore) Load(ctx context.Context, wordLength int) (*wordgraph.Graph, error) {
	if err := checkLength(wordLength); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(wordLength))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotBuilt, badgerKey(wordLength))
	}
	if err != nil {
		return nil, fmt.Errorf("store: badger read: %w", err)
	}

	return Unmarshal(data, wordLength)
}

// Exists reports whether graph/<wordLength> is present.
func (s *BadgerStore) Exists(ctx context.Context, wordLength int) (bool, error) {
	if err := checkLength(wordLength); err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(badgerKey(wordLength))
		return err
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("store: badger read: %w", err)
	}
}

// Lengths iterates keys under graph/.
func (s *BadgerStore) Lengths(ctx context.Context) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []int
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(badgerKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			l, err := strconv.Atoi(strings.TrimPrefix(key, badgerKeyPrefix))
			if err != nil || l <= 0 {
				continue
			}
			out = append(out, l)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: badger list: %w", err)
	}
	sort.Ints(out)

	return out, nil
}
