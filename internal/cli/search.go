package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/venndial/venndial/pkg/history"
	vio "github.com/venndial/venndial/pkg/io"
	"github.com/venndial/venndial/pkg/pipeline"
	"github.com/venndial/venndial/pkg/render"
)

// searchCommand creates the search command for optimizing toward a target.
func (c *CLI) searchCommand() *cobra.Command {
	var (
		output     string
		svgOut     string
		basePath   string
		boundsPath string
		iterations int
		seed       uint64
		noCache    bool
		tui        bool
		mongoURI   string
	)

	cmd := &cobra.Command{
		Use:   "search [target.toml]",
		Short: "Search for a configuration matching a target region distribution",
		Long: `Search for a diagram configuration matching a target region distribution.

The search command loads target criteria and runs a two-phase stochastic
search: broad exploration of the parameter space followed by refinement
around the best candidate. The best result can be exported as JSON
(--output), rendered as SVG (--svg), and stored to a MongoDB run history
(--mongo-uri).

Runs are reproducible: the same seed, target, and iteration budget always
produce the same best result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSearch(cmd.Context(), args[0], searchFlags{
				output:     output,
				svgOut:     svgOut,
				basePath:   basePath,
				boundsPath: boundsPath,
				iterations: iterations,
				seed:       seed,
				noCache:    noCache,
				tui:        tui,
				mongoURI:   mongoURI,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the best result as JSON to file")
	cmd.Flags().StringVar(&svgOut, "svg", "", "render the best configuration as SVG to file")
	cmd.Flags().StringVar(&basePath, "base", "", "base configuration TOML (default: built-in three-circle layout)")
	cmd.Flags().StringVar(&boundsPath, "bounds", "", "parameter bounds TOML (default: built-in bounds)")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", pipeline.DefaultIterations, "iteration budget")
	cmd.Flags().Uint64Var(&seed, "seed", uint64(pipeline.DefaultSeed), "random seed for reproducible runs")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&tui, "tui", false, "show live progress UI")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "store the result in a MongoDB run history")

	return cmd
}

type searchFlags struct {
	output     string
	svgOut     string
	basePath   string
	boundsPath string
	iterations int
	seed       uint64
	noCache    bool
	tui        bool
	mongoURI   string
}

// runSearch loads the target and drives the full search run.
func (c *CLI) runSearch(ctx context.Context, input string, flags searchFlags) error {
	target, err := vio.LoadTarget(input)
	if err != nil {
		return fmt.Errorf("load target %s: %w", input, err)
	}

	opts := pipeline.Options{
		Iterations: flags.iterations,
		Seed:       flags.seed,
		Logger:     c.Logger,
	}
	if flags.basePath != "" {
		if opts.Base, err = vio.LoadConfig(flags.basePath); err != nil {
			return fmt.Errorf("load base config %s: %w", flags.basePath, err)
		}
	}
	if flags.boundsPath != "" {
		if opts.Bounds, err = vio.LoadBounds(flags.boundsPath); err != nil {
			return fmt.Errorf("load bounds %s: %w", flags.boundsPath, err)
		}
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	var result *pipeline.SearchResult
	if flags.tui {
		result, err = c.searchWithTUI(ctx, runner, target, opts)
	} else {
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Searching (%d iterations)...", flags.iterations))
		spinner.Start()
		result, err = runner.Search(ctx, target, opts)
		if err != nil {
			spinner.StopWithError("Search failed")
			return fmt.Errorf("search: %w", err)
		}
		spinner.Stop()
	}
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if !result.HasBest {
		printWarning("No valid candidate found in %d iterations", flags.iterations)
		return nil
	}

	best := result.Best
	printSuccess("Search complete")
	printStats(best.Metrics.RegionCount(), best.Metrics.TotalPoints(), false)
	printKeyValue("fitness", fmt.Sprintf("%.4f", best.Fitness))
	printKeyValue("found at", fmt.Sprintf("iteration %d (%s)", best.Iteration, best.Phase))
	printKeyValue("cache hits", fmt.Sprintf("%d", result.Stats.CacheHits))
	if best.Fitness == 0 {
		printDetail("All dimensions within tolerance")
	}

	rec := vio.NewRecord(best, flags.seed)

	if flags.output != "" {
		if err := vio.ExportResult(rec, flags.output); err != nil {
			return fmt.Errorf("export result: %w", err)
		}
		printFile(flags.output)
	}

	if flags.svgOut != "" {
		if err := os.WriteFile(flags.svgOut, render.SVG(best.Config), 0644); err != nil {
			return fmt.Errorf("write svg %s: %w", flags.svgOut, err)
		}
		printFile(flags.svgOut)
	}

	if flags.mongoURI != "" {
		if err := storeRun(ctx, flags.mongoURI, rec); err != nil {
			printWarning("History store failed: %v", err)
		} else {
			printDetail("Stored run %s", rec.RunID)
		}
	}

	printNewline()
	return nil
}

// storeRun persists the result record to a MongoDB run history.
func storeRun(ctx context.Context, uri string, rec vio.ResultRecord) error {
	store, err := history.NewMongoStore(ctx, history.MongoConfig{URI: uri})
	if err != nil {
		return err
	}
	defer store.Close(ctx)
	return store.Put(ctx, rec)
}
