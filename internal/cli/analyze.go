package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	vio "github.com/venndial/venndial/pkg/io"
)

// analyzeCommand creates the analyze command for measuring one configuration.
func (c *CLI) analyzeCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [config.toml]",
		Short: "Measure the regions of a diagram configuration",
		Long: `Measure the regions of a diagram configuration by grid sampling.

The analyze command loads a configuration file, samples the canvas on the
configured grid, and reports the region count and the distribution of
estimated region areas. With --output, the full per-region metrics are
written as JSON.

Results are cached locally; identical configurations are not re-analyzed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd.Context(), args[0], output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write per-region metrics JSON to file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runAnalyze loads the configuration, measures it, and prints the summary.
func (c *CLI) runAnalyze(ctx context.Context, input, output string, noCache bool) error {
	cfg, err := vio.LoadConfig(input)
	if err != nil {
		return fmt.Errorf("load config %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	metrics, cacheHit, err := runner.Analyze(ctx, cfg)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	prog.done(fmt.Sprintf("Analyzed %d points", metrics.TotalPoints()))

	s := metrics.Summary()
	printSuccess("Analysis complete")
	printStats(s.RegionCount, s.TotalPoints, cacheHit)
	printKeyValue("min area", fmt.Sprintf("%.2f", s.MinArea))
	printKeyValue("max area", fmt.Sprintf("%.2f", s.MaxArea))
	printKeyValue("mean area", fmt.Sprintf("%.2f", s.MeanArea))
	printKeyValue("median area", fmt.Sprintf("%.2f", s.MedianArea))

	if output != "" {
		data, err := json.MarshalIndent(metrics, "", "  ")
		if err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}
		printFile(output)
	}

	printNewline()
	printNextStep("Render", "venndial render "+input)

	return nil
}
