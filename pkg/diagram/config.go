package diagram

import (
	"math"

	"github.com/venndial/venndial/pkg/errors"
)

// Circle describes one circle of the diagram: its radius and how many
// concentric rings subdivide its interior. Rings == 0 means the interior
// is a single undivided region.
type Circle struct {
	Radius float64 `toml:"radius" json:"radius"`
	Rings  int     `toml:"rings" json:"rings"`
}

// Point is a coordinate on the canvas.
type Point struct {
	X float64
	Y float64
}

// Config is the immutable description of a diagram's geometry and its
// sampling grid. Construct with New (or a preset) so every field is
// validated; a zero Config is not usable.
type Config struct {
	Width    int      `toml:"width" json:"width"`
	Height   int      `toml:"height" json:"height"`
	Circles  []Circle `toml:"circles" json:"circles"`
	Boundary Circle   `toml:"boundary" json:"boundary"`

	// DotSpacing is the step of the regular sampling grid. DotSize is the
	// rendered diameter of one sample dot; it does not affect analysis.
	DotSpacing float64 `toml:"dot_spacing" json:"dot_spacing"`
	DotSize    float64 `toml:"dot_size" json:"dot_size"`
}

// New validates the given geometry and returns a Config.
// Every violation is reported with a structured validation error,
// never silently clamped.
func New(width, height int, circles []Circle, boundary Circle, dotSpacing, dotSize float64) (Config, error) {
	cfg := Config{
		Width:      width,
		Height:     height,
		Circles:    circles,
		Boundary:   boundary,
		DotSpacing: dotSpacing,
		DotSize:    dotSize,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every geometric invariant of the configuration.
func (c Config) Validate() error {
	if err := errors.ValidatePositiveInt("width", c.Width); err != nil {
		return err
	}
	if err := errors.ValidatePositiveInt("height", c.Height); err != nil {
		return err
	}
	if len(c.Circles) == 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "at least one circle is required")
	}
	for i, circle := range c.Circles {
		if err := errors.ValidatePositive("circle radius", circle.Radius); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidGeometry, err, "circle %d", i)
		}
		if err := errors.ValidateNonNegativeInt("circle rings", circle.Rings); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidGeometry, err, "circle %d", i)
		}
	}
	if err := errors.ValidatePositive("boundary radius", c.Boundary.Radius); err != nil {
		return err
	}
	if err := errors.ValidateNonNegativeInt("boundary rings", c.Boundary.Rings); err != nil {
		return err
	}
	if err := errors.ValidatePositive("dot spacing", c.DotSpacing); err != nil {
		return err
	}
	return errors.ValidatePositive("dot size", c.DotSize)
}

// Center returns the canvas center, which is also the center of the
// outer boundary circle.
func (c Config) Center() Point {
	return Point{X: float64(c.Width) / 2, Y: float64(c.Height) / 2}
}

// Centers returns the derived center of every Venn circle, in circle
// order. Circles sit evenly spaced on a ring of radius min(width,height)/6
// around the canvas center, the first circle at the top. A single circle
// sits at the canvas center itself.
func (c Config) Centers() []Point {
	center := c.Center()
	n := len(c.Circles)
	if n == 1 {
		return []Point{center}
	}

	offset := math.Min(float64(c.Width), float64(c.Height)) / 6
	centers := make([]Point, n)
	for i := range centers {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		centers[i] = Point{
			X: center.X + offset*math.Cos(angle),
			Y: center.Y + offset*math.Sin(angle),
		}
	}
	return centers
}

// DefaultTriple returns the default three-circle layout used for manual
// testing and as the seed for CLI defaults.
func DefaultTriple() Config {
	return Config{
		Width:  800,
		Height: 600,
		Circles: []Circle{
			{Radius: 150, Rings: 4},
			{Radius: 180, Rings: 3},
			{Radius: 160, Rings: 5},
		},
		Boundary:   Circle{Radius: 280, Rings: 2},
		DotSpacing: 4,
		DotSize:    2,
	}
}

// ComplexQuad returns a denser four-circle layout with more rings,
// useful for exercising crowded region maps.
func ComplexQuad() Config {
	return Config{
		Width:  1000,
		Height: 800,
		Circles: []Circle{
			{Radius: 200, Rings: 6},
			{Radius: 170, Rings: 4},
			{Radius: 220, Rings: 5},
			{Radius: 150, Rings: 3},
		},
		Boundary:   Circle{Radius: 380, Rings: 3},
		DotSpacing: 4,
		DotSize:    2,
	}
}
