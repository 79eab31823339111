package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/cost"
	"github.com/katalvlaran/wordladder/search"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// loadGraph resolves the pair of query words to a graph of their length.
func (a *app) loadGraph(cmd *cobra.Command, from, to string) (*wordgraph.Graph, string, string, error) {
	from = strings.ToLower(strings.TrimSpace(from))
	to = strings.ToLower(strings.TrimSpace(to))
	if len(from) != len(to) {
		return nil, "", "", errorf("%q and %q differ in length", from, to)
	}

	reg, err := a.registry(nil)
	if err != nil {
		return nil, "", "", err
	}
	g, err := reg.Get(contextOf(cmd), len(from))
	if err != nil {
		return nil, "", "", err
	}
	for _, w := range []string{from, to} {
		if !g.Has(w) {
			return nil, "", "", errorf("%q is not in the %d-letter dictionary", w, len(from))
		}
	}

	return g, from, to, nil
}

// algoFlag parses --algo, falling back to the configured default.
func (a *app) algoFlag(cmd *cobra.Command, value string) (search.Algorithm, error) {
	if !cmd.Flags().Changed("algo") {
		return a.cfg.Algorithm(), nil
	}
	return search.ParseAlgorithm(value)
}

func newPathCmd(a *app) *cobra.Command {
	var (
		algo     string
		trace    bool
		jsonMode bool
	)

	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Find a ladder between two words",
		Long: `Find a ladder from FROM to TO with the chosen strategy and print every
step with its substitution cost.

Examples:
  wordladder path cat dog
  wordladder path cold warm --algo BFS --trace`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.algoFlag(cmd, algo)
			if err != nil {
				return err
			}
			g, from, to, err := a.loadGraph(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var opts []search.Option
			if trace && !jsonMode {
				opts = append(opts, search.WithOnExpand(func(w string, gc float64) {
					fmt.Fprintf(out, "  expand %-*s g=%.3f\n", len(from), w, gc)
				}))
			}
			f, err := search.New(g, alg, opts...)
			if err != nil {
				return err
			}
			path, stats := f.FindPath(from, to)

			if jsonMode {
				return writeJSON(out, search.Report{Algorithm: alg, Path: path, Stats: stats})
			}
			printPath(out, g, path, stats)
			if !path.Found() {
				return errorf("no route from %q to %q", from, to)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&algo, "algo", "a", "", "search strategy: BFS, UCS or A* (default from config)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print every expanded word")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "output as JSON")

	return cmd
}

func newHintCmd(a *app) *cobra.Command {
	var algo string

	cmd := &cobra.Command{
		Use:   "hint CURRENT TARGET",
		Short: "Suggest the next word toward a target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.algoFlag(cmd, algo)
			if err != nil {
				return err
			}
			g, current, target, err := a.loadGraph(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			f, err := search.New(g, alg)
			if err != nil {
				return err
			}

			next := f.NextStep(current, target)
			out := cmd.OutOrStdout()
			switch {
			case current == target:
				fmt.Fprintf(out, "%s is already the target\n", current)
			case next == current:
				return errorf("no route from %q to %q", current, target)
			default:
				pos, _ := cost.DiffPosition(current, next)
				fmt.Fprintf(out, "%s: change letter %d to %q -> %s\n", alg, pos+1, next[pos:pos+1], next)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&algo, "algo", "a", "", "search strategy: BFS, UCS or A* (default from config)")

	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	var jsonMode bool

	cmd := &cobra.Command{
		Use:   "compare FROM TO",
		Short: "Run BFS, UCS and A* on the same query",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, from, to, err := a.loadGraph(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			reports := search.Compare(g, from, to)

			out := cmd.OutOrStdout()
			if jsonMode {
				return writeJSON(out, reports)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ALGORITHM\tEXPLORED\tLENGTH\tCOST\tELAPSED\tPATH")
			for _, r := range reports {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%.3f\t%s\t%s\n",
					r.Algorithm, r.Stats.NodesExplored, r.Stats.PathLength, r.Stats.TotalCost,
					r.Stats.Elapsed, strings.Join(r.Path, " -> "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&jsonMode, "json", false, "output as JSON")

	return cmd
}

// printPath writes one line per step with the cost terms of that step.
func printPath(w io.Writer, g *wordgraph.Graph, path search.Path, stats search.Stats) {
	if !path.Found() {
		fmt.Fprintf(w, "%s: no path (explored %d)\n", stats.Algorithm, stats.NodesExplored)
		return
	}

	fmt.Fprintf(w, "%s: %s\n", stats.Algorithm, strings.Join(path, " -> "))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i := 1; i < len(path); i++ {
		c, _ := g.Cost(path[i-1], path[i])
		t := cost.Breakdown(path[i-1], path[i])
		fmt.Fprintf(tw, "  %s -> %s\t%.3f\tpos=%.2f vowel=%.2f key=%.2f freq=%.2f\n",
			path[i-1], path[i], c, t.Position, t.Vowel, t.Keyboard, t.Frequency)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "steps=%d cost=%.3f explored=%d elapsed=%s\n",
		stats.PathLength, stats.TotalCost, stats.NodesExplored, stats.Elapsed)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
