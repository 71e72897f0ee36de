package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/venndial/venndial/pkg/diagram"
)

// Analyze samples the configuration's canvas on a regular grid and
// aggregates the sampled points into region metrics.
//
// The grid starts at the origin corner and steps by cfg.DotSpacing in
// both axes, covering the full canvas bounding box inclusive of the far
// edges. Analyze has no side effects and never fails: any Config that
// passed validation yields a well-formed Metrics.
func Analyze(cfg diagram.Config) Metrics {
	centers := cfg.Centers()
	boundaryCenter := cfg.Center()

	counts := make(map[string]int)
	total := 0

	width := float64(cfg.Width)
	height := float64(cfg.Height)
	for y := 0.0; y <= height; y += cfg.DotSpacing {
		for x := 0.0; x <= width; x += cfg.DotSpacing {
			sig := signature(cfg, centers, boundaryCenter, x, y)
			counts[sig]++
			total++
		}
	}

	return newMetrics(counts, total, cfg.DotSpacing*cfg.DotSpacing)
}

// SignatureAt returns the region signature of an arbitrary canvas
// coordinate. It applies the same containment and tie-break rules as
// Analyze, so diagnostics and renderers agree with the sampled metrics.
func SignatureAt(cfg diagram.Config, x, y float64) string {
	return signature(cfg, cfg.Centers(), cfg.Center(), x, y)
}

// signature builds the canonical region label for one point: one token
// per Venn circle in circle order, then the boundary token.
func signature(cfg diagram.Config, centers []diagram.Point, boundaryCenter diagram.Point, x, y float64) string {
	var sb strings.Builder
	for i, circle := range cfg.Circles {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(fmt.Sprintf("c%d=%s", i, ringToken(circle, centers[i], x, y)))
	}
	sb.WriteString("|b=")
	sb.WriteString(ringToken(cfg.Boundary, boundaryCenter, x, y))
	return sb.String()
}

// ringToken classifies a point against one circle: "out" when the point
// lies strictly beyond the radius, otherwise the ring index from center
// outward. Containment is inclusive on the inside, so a point exactly on
// the circle edge or on a ring threshold resolves to the inner side.
func ringToken(c diagram.Circle, center diagram.Point, x, y float64) string {
	dist := math.Hypot(x-center.X, y-center.Y)
	if dist > c.Radius {
		return "out"
	}

	rings := c.Rings
	if rings == 0 {
		rings = 1
	}
	ringWidth := c.Radius / float64(rings)

	idx := int(dist / ringWidth)
	// A distance exactly on a ring threshold belongs to the inner ring.
	if idx > 0 && float64(idx)*ringWidth == dist {
		idx--
	}
	if idx > rings-1 {
		idx = rings - 1
	}
	return fmt.Sprintf("r%d", idx)
}
