package render

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/venndial/venndial/pkg/analysis"
	"github.com/venndial/venndial/pkg/diagram"
)

// Adjacency is the region adjacency graph of a configuration: one node
// per sampled region, one edge per pair of regions whose sample points
// touch on the grid.
type Adjacency struct {
	// Regions maps each region signature to its sampled point count.
	Regions map[string]int

	// Edges holds each adjacent pair once, with From < To
	// lexicographically.
	Edges [][2]string
}

// AdjacencyGraph resamples the configuration's grid and records which
// regions border each other. Two regions are adjacent when horizontally
// or vertically neighboring grid points carry their signatures.
func AdjacencyGraph(cfg diagram.Config) Adjacency {
	width := float64(cfg.Width)
	height := float64(cfg.Height)

	regions := make(map[string]int)
	edgeSet := make(map[[2]string]struct{})

	var prevRow []string
	for y := 0.0; y <= height; y += cfg.DotSpacing {
		var row []string
		for x := 0.0; x <= width; x += cfg.DotSpacing {
			sig := analysis.SignatureAt(cfg, x, y)
			regions[sig]++

			if i := len(row); i > 0 {
				addEdge(edgeSet, row[i-1], sig)
			}
			if len(prevRow) > len(row) {
				addEdge(edgeSet, prevRow[len(row)], sig)
			}
			row = append(row, sig)
		}
		prevRow = row
	}

	edges := slices.SortedFunc(maps.Keys(edgeSet), func(a, b [2]string) int {
		if c := strings.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return strings.Compare(a[1], b[1])
	})

	return Adjacency{Regions: regions, Edges: edges}
}

func addEdge(set map[[2]string]struct{}, a, b string) {
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	set[[2]string{a, b}] = struct{}{}
}

// ToDOT converts an adjacency graph to Graphviz DOT format.
// The resulting DOT string can be rendered with [GraphSVG].
func ToDOT(adj Adjacency) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, fontsize=10];\n")
	buf.WriteString("\n")

	for _, sig := range slices.Sorted(maps.Keys(adj.Regions)) {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", sig, fmt.Sprintf("%s\n%d pts", sig, adj.Regions[sig]))
	}

	buf.WriteString("\n")
	for _, e := range adj.Edges {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e[0], e[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

// GraphSVG renders a DOT graph to SVG using Graphviz.
func GraphSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
