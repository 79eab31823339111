package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/pipeline"
)

// newPrepareCmd splits a raw word list into per-length dictionary files.
func newPrepareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prepare RAW",
		Short: "Split a raw word list into per-length dictionaries",
		Long: `Read a raw word list (one word per line), keep alphabetic words of the
configured lengths, and write them lowercased, deduplicated and sorted to
<dict_dir>/<L>_letter.txt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("%w: %w", dictionary.ErrMissingInput, err)
			}
			defer f.Close()

			buckets, err := dictionary.Split(f, a.cfg.Lengths...)
			if err != nil {
				return err
			}

			lengths := make([]int, 0, len(buckets))
			for l := range buckets {
				lengths = append(lengths, l)
			}
			sort.Ints(lengths)

			out := cmd.OutOrStdout()
			for _, l := range lengths {
				path := dictionary.Path(a.cfg.Data.DictDir, l)
				if err := dictionary.SaveFile(path, buckets[l]); err != nil {
					return err
				}
				a.logger.Info("dictionary written", "word_length", l, "words", len(buckets[l]), "path", path)
				fmt.Fprintf(out, "%d-letter: %d words -> %s\n", l, len(buckets[l]), path)
			}

			return nil
		},
	}
}

// newBuildCmd builds and persists graphs.
func newBuildCmd(a *app) *cobra.Command {
	var (
		length int
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build and persist word graphs",
		Long: `Build the weighted graph for one word length (--length) or, without
--length, for every configured length. Graphs already stored are kept
unless --force is given; corrupt ones are always rebuilt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			b := a.builder(st, nil)

			lengths := a.cfg.Lengths
			if cmd.Flags().Changed("length") {
				lengths = []int{length}
			}
			results := b.BuildAll(contextOf(cmd), lengths, force)

			return printResults(cmd, results)
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", 0, "word length to build (default: all configured lengths)")
	cmd.Flags().BoolVar(&force, "force", false, "rebuild even if a valid graph is stored")

	return cmd
}

func printResults(cmd *cobra.Command, results []pipeline.Result) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LENGTH\tSTATUS\tNODES\tEDGES\tDURATION")

	failed := 0
	for _, r := range results {
		status := "built"
		switch {
		case !r.OK:
			status = "failed: " + r.Error
			failed++
		case r.Skipped:
			status = "skipped"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n", r.WordLength, status, r.Nodes, r.Edges, r.Duration)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return errorf("%d of %d builds failed", failed, len(results))
	}
	return nil
}
