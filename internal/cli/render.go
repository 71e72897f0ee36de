package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	vio "github.com/venndial/venndial/pkg/io"
	"github.com/venndial/venndial/pkg/render"
)

// renderCommand creates the render command for generating SVG output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		dots   bool
		graph  bool
	)

	cmd := &cobra.Command{
		Use:   "render [config.toml]",
		Short: "Render a diagram configuration as SVG",
		Long: `Render a diagram configuration as SVG.

By default the command draws the circles and their concentric ring
separators. With --dots the sampling grid is drawn underneath, and with
--graph the region adjacency graph is rendered instead of the diagram
(one node per sampled region, one edge per touching pair).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(args[0], output, dots, graph)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with .svg extension)")
	cmd.Flags().BoolVar(&dots, "dots", false, "draw the sampling grid")
	cmd.Flags().BoolVar(&graph, "graph", false, "render the region adjacency graph instead of the diagram")

	return cmd
}

// runRender loads the configuration and writes the requested SVG.
func (c *CLI) runRender(input, output string, dots, graph bool) error {
	cfg, err := vio.LoadConfig(input)
	if err != nil {
		return fmt.Errorf("load config %s: %w", input, err)
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input))
		if graph {
			output += "_graph"
		}
		output += ".svg"
	}

	var data []byte
	if graph {
		adj := render.AdjacencyGraph(cfg)
		c.Logger.Debug("built adjacency graph", "regions", len(adj.Regions), "edges", len(adj.Edges))
		data, err = render.GraphSVG(render.ToDOT(adj))
		if err != nil {
			return fmt.Errorf("render graph: %w", err)
		}
	} else {
		var opts []render.SVGOption
		if dots {
			opts = append(opts, render.WithDots())
		}
		data = render.SVG(cfg, opts...)
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Rendered %s", input)
	printFile(output)
	printNewline()
	return nil
}
