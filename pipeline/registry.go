package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/wordladder/store"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// ErrBuildFailed wraps the error of an automatic build triggered by Get.
var ErrBuildFailed = errors.New("pipeline: automatic build failed")

// Registry loads each graph once and shares it.
type Registry struct {
	store   store.Store
	builder *Builder
	logger  *slog.Logger
	obs     Observer

	mu     sync.RWMutex
	graphs map[int]*wordgraph.Graph
	flight singleflight.Group
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithBuilder enables building graphs that are not in the store yet.
func WithBuilder(b *Builder) RegistryOption {
	return func(r *Registry) { r.builder = b }
}

// WithLogger sets the registry logger.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithObserver publishes loaded graph sizes.
func WithObserver(o Observer) RegistryOption {
	return func(r *Registry) { r.obs = o }
}

// NewRegistry returns an empty Registry over st.
func NewRegistry(st store.Store, opts ...RegistryOption) *Registry {
	r := &Registry{
		store:  st,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		graphs: make(map[int]*wordgraph.Graph),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Get returns the graph for wordLength, loading it on first use. Concurrent
// first calls share one load. The shared load does not inherit any caller's
// cancellation; a caller whose ctx ends stops waiting and gets ctx.Err()
// while the load continues for the others.
//
// Errors:
//   - store.ErrNotBuilt when absent and no Builder is attached.
//   - store.ErrCorrupt when the stored record is unusable.
//   - ErrBuildFailed when an automatic build did not succeed.
//   - ctx.Err() when ctx ends before the load completes.
func (r *Registry) Get(ctx context.Context, wordLength int) (*wordgraph.Graph, error) {
	r.mu.RLock()
	g, ok := r.graphs[wordLength]
	r.mu.RUnlock()
	if ok {
		return g, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := r.flight.DoChan(strconv.Itoa(wordLength), func() (interface{}, error) {
		return r.load(shared, wordLength)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*wordgraph.Graph), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (r *Registry) load(ctx context.Context, wordLength int) (*wordgraph.Graph, error) {
	r.mu.RLock()
	g, ok := r.graphs[wordLength]
	r.mu.RUnlock()
	if ok {
		return g, nil
	}

	g, err := r.store.Load(ctx, wordLength)
	if errors.Is(err, store.ErrNotBuilt) && r.builder != nil {
		r.logger.Info("graph not built yet, building", "word_length", wordLength)
		res := r.builder.Build(ctx, wordLength, false)
		if !res.OK {
			return nil, fmt.Errorf("%w: %w", ErrBuildFailed, res.Err)
		}
		g, err = r.store.Load(ctx, wordLength)
	}
	if err != nil {
		return nil, err
	}

	meta := g.Metadata()
	r.logger.Info("graph loaded", "word_length", wordLength, "nodes", meta.NodeCount, "edges", meta.EdgeCount)
	if r.obs != nil {
		r.obs.SetGraph(wordLength, meta.NodeCount, meta.EdgeCount)
	}

	r.mu.Lock()
	r.graphs[wordLength] = g
	r.mu.Unlock()

	return g, nil
}

// Invalidate forgets the cached graph so the next Get reloads it.
func (r *Registry) Invalidate(wordLength int) {
	r.mu.Lock()
	delete(r.graphs, wordLength)
	r.mu.Unlock()
}

// Loaded lists the cached word lengths, ascending.
func (r *Registry) Loaded() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int, 0, len(r.graphs))
	for l := range r.graphs {
		out = append(out, l)
	}
	sort.Ints(out)

	return out
}

// Store returns the backing store.
func (r *Registry) Store() store.Store { return r.store }
