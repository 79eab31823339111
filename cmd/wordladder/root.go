package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/internal/logging"
	"github.com/katalvlaran/wordladder/pipeline"
	"github.com/katalvlaran/wordladder/store"
)

// app carries everything a subcommand needs once configuration is loaded.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	store  store.Store
	close  func() error
}

// newRootCmd assembles the command tree around a. Each call returns a fresh
// tree so tests can run commands in isolation.
func newRootCmd(a *app) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "wordladder",
		Short: "Weighted word-ladder graphs and path finding",
		Long: `wordladder builds weighted graphs of same-length words that differ by
one letter and finds ladders between them with BFS, UCS or A*.

Typical flow:
  wordladder prepare words.txt
  wordladder build --length 3
  wordladder path cat dog --algo A*
  wordladder serve`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.New(cfg.Logging)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	root.AddCommand(
		newPrepareCmd(a),
		newBuildCmd(a),
		newPathCmd(a),
		newHintCmd(a),
		newCompareCmd(a),
		newServeCmd(a),
	)

	return root
}

// execute runs the command line in args and releases the store afterwards,
// whether or not the command succeeded.
func execute(args []string, stdout, stderr io.Writer) (err error) {
	a := &app{}
	defer func() {
		if cerr := a.shutdown(); err == nil {
			err = cerr
		}
	}()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.Execute()
}

func (a *app) shutdown() error {
	if a.close == nil {
		return nil
	}
	err := a.close()
	a.close, a.store = nil, nil

	return err
}

// openStore opens the configured backend once per invocation.
func (a *app) openStore() (store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	switch a.cfg.Data.Backend {
	case config.BackendBadger:
		bs, err := store.OpenBadger(store.BadgerConfig{
			Path:   a.cfg.Data.BadgerPath,
			Logger: a.logger.With("component", "badger"),
		})
		if err != nil {
			return nil, err
		}
		a.store, a.close = bs, bs.Close
	default:
		a.store = store.NewFileStore(a.cfg.Data.GraphDir)
	}

	return a.store, nil
}

func (a *app) builder(st store.Store, obs pipeline.Observer) *pipeline.Builder {
	return &pipeline.Builder{
		Store:   st,
		DictDir: a.cfg.Data.DictDir,
		Logger:  a.logger.With("component", "builder"),
		Metrics: obs,
	}
}

// registry returns a graph registry that builds on demand when auto_build
// is enabled.
func (a *app) registry(obs pipeline.Observer) (*pipeline.Registry, error) {
	st, err := a.openStore()
	if err != nil {
		return nil, err
	}

	opts := []pipeline.RegistryOption{
		pipeline.WithLogger(a.logger.With("component", "registry")),
	}
	if obs != nil {
		opts = append(opts, pipeline.WithObserver(obs))
	}
	if a.cfg.Data.AutoBuild {
		opts = append(opts, pipeline.WithBuilder(a.builder(st, obs)))
	}

	return pipeline.NewRegistry(st, opts...), nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func errorf(format string, args ...any) error {
	return fmt.Errorf("wordladder: "+format, args...)
}
