package render

import (
	"bytes"
	"fmt"

	"github.com/venndial/venndial/pkg/diagram"
)

// SVGOption configures the diagram renderer.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	showDots    bool
	circleColor string
	ringColor   string
	dotColor    string
}

// WithDots draws the sampling grid as faint dots, spaced and sized per
// the configuration. Useful for judging sampling granularity visually.
func WithDots() SVGOption { return func(r *svgRenderer) { r.showDots = true } }

// WithColors overrides the default stroke colors.
func WithColors(circle, ring, dot string) SVGOption {
	return func(r *svgRenderer) {
		r.circleColor = circle
		r.ringColor = ring
		r.dotColor = dot
	}
}

// SVG renders the configuration's geometry as an SVG document.
func SVG(cfg diagram.Config, opts ...SVGOption) []byte {
	r := svgRenderer{
		circleColor: "#1a1a1a",
		ringColor:   "#9a9a9a",
		dotColor:    "#d0d0d0",
	}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		cfg.Width, cfg.Height, cfg.Width, cfg.Height)
	buf.WriteString(`<rect width="100%" height="100%" fill="white"/>` + "\n")

	if r.showDots {
		renderDots(&buf, cfg, r.dotColor)
	}

	center := cfg.Center()
	renderRingedCircle(&buf, cfg.Boundary, center, r.circleColor, r.ringColor)
	for i, c := range cfg.Circles {
		renderRingedCircle(&buf, c, cfg.Centers()[i], r.circleColor, r.ringColor)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderRingedCircle draws one circle outline plus its interior ring
// separators, innermost first.
func renderRingedCircle(buf *bytes.Buffer, c diagram.Circle, center diagram.Point, circleColor, ringColor string) {
	rings := c.Rings
	if rings == 0 {
		rings = 1
	}
	ringWidth := c.Radius / float64(rings)
	for k := 1; k < rings; k++ {
		fmt.Fprintf(buf, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="0.5"/>`+"\n",
			center.X, center.Y, float64(k)*ringWidth, ringColor)
	}
	fmt.Fprintf(buf, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
		center.X, center.Y, c.Radius, circleColor)
}

// renderDots draws the sampling grid.
func renderDots(buf *bytes.Buffer, cfg diagram.Config, color string) {
	radius := cfg.DotSize / 2
	for y := 0.0; y <= float64(cfg.Height); y += cfg.DotSpacing {
		for x := 0.0; x <= float64(cfg.Width); x += cfg.DotSpacing {
			fmt.Fprintf(buf, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n", x, y, radius, color)
		}
	}
}
