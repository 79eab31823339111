package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/internal/metrics"
	"github.com/katalvlaran/wordladder/store"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// Observer receives build and load outcomes. *metrics.Metrics implements it.
type Observer interface {
	ObserveBuild(result string, d time.Duration)
	SetGraph(wordLength, nodes, edges int)
}

// Result reports one build.
type Result struct {
	WordLength int           `json:"word_length"`
	OK         bool          `json:"ok"`
	Skipped    bool          `json:"skipped"`
	Nodes      int           `json:"node_count"`
	Edges      int           `json:"edge_count"`
	Duration   time.Duration `json:"duration_ns"`
	Err        error         `json:"-"`
	Error      string        `json:"error,omitempty"`
}

// Builder builds and persists graphs from per-length dictionary files.
type Builder struct {
	Store   store.Store
	DictDir string
	Logger  *slog.Logger
	Metrics Observer
	// GraphOptions are passed to wordgraph.Build.
	GraphOptions []wordgraph.Option
}

// Build runs the pipeline for one word length. Unless force is set, a valid
// stored graph is kept and reported as Skipped; a corrupt one is rebuilt.
func (b *Builder) Build(ctx context.Context, wordLength int, force bool) Result {
	log := b.logger().With("word_length", wordLength)
	began := time.Now()
	res := Result{WordLength: wordLength}

	if !force {
		g, err := b.Store.Load(ctx, wordLength)
		switch {
		case err == nil:
			meta := g.Metadata()
			res.OK, res.Skipped = true, true
			res.Nodes, res.Edges = meta.NodeCount, meta.EdgeCount
			log.Info("graph already built", "nodes", res.Nodes, "edges", res.Edges)
			b.observe(metrics.BuildSkipped, 0)
			return res
		case errors.Is(err, store.ErrCorrupt):
			log.Warn("stored graph is corrupt, rebuilding", "error", err)
		case !errors.Is(err, store.ErrNotBuilt):
			return b.fail(log, res, err)
		}
	}

	path := dictionary.Path(b.DictDir, wordLength)
	words, err := dictionary.Load(path, wordLength)
	if err != nil {
		return b.fail(log, res, err)
	}
	log.Debug("dictionary loaded", "path", path, "words", len(words))

	g, err := wordgraph.Build(words, b.GraphOptions...)
	if err != nil {
		return b.fail(log, res, err)
	}
	if err := b.Store.Save(ctx, g); err != nil {
		return b.fail(log, res, err)
	}

	meta := g.Metadata()
	res.OK = true
	res.Nodes, res.Edges = meta.NodeCount, meta.EdgeCount
	res.Duration = time.Since(began)
	log.Info("graph built", "nodes", res.Nodes, "edges", res.Edges, "duration", res.Duration)
	b.observe(metrics.BuildOK, res.Duration)

	return res
}

// BuildAll builds every length concurrently. Results follow the order of
// lengths.
func (b *Builder) BuildAll(ctx context.Context, lengths []int, force bool) []Result {
	out := make([]Result, len(lengths))
	eg, ctx := errgroup.WithContext(ctx)
	for i, l := range lengths {
		i, l := i, l
		eg.Go(func() error {
			out[i] = b.Build(ctx, l, force)
			return nil
		})
	}
	_ = eg.Wait()

	return out
}

func (b *Builder) fail(log *slog.Logger, res Result, err error) Result {
	res.OK = false
	res.Err = err
	res.Error = err.Error()
	log.Error("graph build failed", "error", err)
	b.observe(metrics.BuildFailed, 0)

	return res
}

func (b *Builder) observe(result string, d time.Duration) {
	if b.Metrics != nil {
		b.Metrics.ObserveBuild(result, d)
	}
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
