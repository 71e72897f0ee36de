package render

import (
	"strings"
	"testing"

	"github.com/venndial/venndial/pkg/diagram"
)

func singleCircle() diagram.Config {
	return diagram.Config{
		Width:      100,
		Height:     100,
		Circles:    []diagram.Circle{{Radius: 30, Rings: 0}},
		Boundary:   diagram.Circle{Radius: 100, Rings: 0},
		DotSpacing: 5,
		DotSize:    2,
	}
}

func TestSVGStructure(t *testing.T) {
	cfg := diagram.DefaultTriple()
	svg := string(SVG(cfg))

	if !strings.HasPrefix(svg, "<svg ") {
		t.Errorf("SVG() does not start with an svg element: %q", svg[:40])
	}
	if !strings.Contains(svg, `viewBox="0 0 800 600"`) {
		t.Error("SVG() missing the canvas viewBox")
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("SVG() not closed")
	}

	// One outline per circle: three Venn circles plus the boundary.
	if got := strings.Count(svg, `stroke-width="1.5"`); got != 4 {
		t.Errorf("SVG() has %d circle outlines, want 4", got)
	}
	// Interior separators: rings-1 per circle, so 3+2+4 for the circles
	// plus 1 for the boundary.
	if got := strings.Count(svg, `stroke-width="0.5"`); got != 10 {
		t.Errorf("SVG() has %d ring separators, want 10", got)
	}
}

func TestSVGWithDots(t *testing.T) {
	cfg := singleCircle()

	plain := string(SVG(cfg))
	dotted := string(SVG(cfg, WithDots()))

	if strings.Count(dotted, "<circle") <= strings.Count(plain, "<circle") {
		t.Error("WithDots() did not add grid dots")
	}
	// 100/5 steps per axis, inclusive of both edges.
	wantDots := 21 * 21
	gotDots := strings.Count(dotted, "<circle") - strings.Count(plain, "<circle")
	if gotDots != wantDots {
		t.Errorf("WithDots() drew %d dots, want %d", gotDots, wantDots)
	}
}

func TestSVGWithColors(t *testing.T) {
	svg := string(SVG(singleCircle(), WithColors("#ff0000", "#00ff00", "#0000ff")))
	if !strings.Contains(svg, `stroke="#ff0000"`) {
		t.Error("WithColors() circle color not applied")
	}
}

func TestAdjacencyGraphSingleCircle(t *testing.T) {
	adj := AdjacencyGraph(singleCircle())

	// Inside the circle and outside it, both within the boundary.
	if got := len(adj.Regions); got != 2 {
		t.Fatalf("AdjacencyGraph() found %d regions, want 2", got)
	}
	if got := len(adj.Edges); got != 1 {
		t.Fatalf("AdjacencyGraph() found %d edges, want 1", got)
	}

	e := adj.Edges[0]
	if e[0] >= e[1] {
		t.Errorf("edge endpoints not ordered: %q >= %q", e[0], e[1])
	}
	for _, sig := range e {
		if _, ok := adj.Regions[sig]; !ok {
			t.Errorf("edge endpoint %q is not a known region", sig)
		}
	}
}

func TestAdjacencyGraphPointCounts(t *testing.T) {
	cfg := singleCircle()
	adj := AdjacencyGraph(cfg)

	total := 0
	for _, n := range adj.Regions {
		total += n
	}
	if want := 21 * 21; total != want {
		t.Errorf("region points sum to %d, want %d", total, want)
	}
}

func TestToDOT(t *testing.T) {
	adj := AdjacencyGraph(singleCircle())
	dot := ToDOT(adj)

	if !strings.HasPrefix(dot, "graph G {") {
		t.Error("ToDOT() is not an undirected graph")
	}
	if !strings.Contains(dot, "layout=neato") {
		t.Error("ToDOT() missing the neato layout directive")
	}
	for sig := range adj.Regions {
		if !strings.Contains(dot, `"`+sig+`"`) {
			t.Errorf("ToDOT() missing node %q", sig)
		}
	}
	if !strings.Contains(dot, " -- ") {
		t.Error("ToDOT() has no edges")
	}
}
