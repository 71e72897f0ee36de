package search

import (
	"math/rand/v2"

	"github.com/venndial/venndial/pkg/diagram"
	"github.com/venndial/venndial/pkg/errors"
)

// Phase labels which generation strategy produced a candidate.
type Phase string

const (
	// PhaseExploration draws candidates uniformly within bounds.
	PhaseExploration Phase = "exploration"

	// PhaseRefinement perturbs the current best candidate.
	PhaseRefinement Phase = "refinement"
)

// explorationFraction is the share of the iteration budget spent in the
// exploration phase before refinement begins.
const explorationFraction = 0.3

// Perturbation magnitude during refinement, as a fraction of each
// parameter's bounded range, decaying linearly over the phase.
const (
	perturbStart = 0.20
	perturbEnd   = 0.02
)

// Bounds delimits the parameter space the exploration phase samples and
// the refinement phase clamps to.
type Bounds struct {
	MinRadius float64 `toml:"min_radius" json:"min_radius"`
	MaxRadius float64 `toml:"max_radius" json:"max_radius"`
	MinRings  int     `toml:"min_rings" json:"min_rings"`
	MaxRings  int     `toml:"max_rings" json:"max_rings"`

	MinBoundaryRadius float64 `toml:"min_boundary_radius" json:"min_boundary_radius"`
	MaxBoundaryRadius float64 `toml:"max_boundary_radius" json:"max_boundary_radius"`
	MinBoundaryRings  int     `toml:"min_boundary_rings" json:"min_boundary_rings"`
	MaxBoundaryRings  int     `toml:"max_boundary_rings" json:"max_boundary_rings"`
}

// DefaultBounds returns the bounds used by the CLI when none are
// configured, sized for the default 800x600 canvas.
func DefaultBounds() Bounds {
	return Bounds{
		MinRadius:         60,
		MaxRadius:         250,
		MinRings:          0,
		MaxRings:          8,
		MinBoundaryRadius: 150,
		MaxBoundaryRadius: 300,
		MinBoundaryRings:  0,
		MaxBoundaryRings:  4,
	}
}

// Validate checks that every range is well-formed and positive where
// geometry requires it.
func (b Bounds) Validate() error {
	if b.MinRadius <= 0 || b.MaxRadius < b.MinRadius {
		return errors.New(errors.ErrCodeInvalidBounds,
			"radius bounds must satisfy 0 < min <= max, got [%v, %v]", b.MinRadius, b.MaxRadius)
	}
	if b.MinRings < 0 || b.MaxRings < b.MinRings {
		return errors.New(errors.ErrCodeInvalidBounds,
			"ring bounds must satisfy 0 <= min <= max, got [%d, %d]", b.MinRings, b.MaxRings)
	}
	if b.MinBoundaryRadius <= 0 || b.MaxBoundaryRadius < b.MinBoundaryRadius {
		return errors.New(errors.ErrCodeInvalidBounds,
			"boundary radius bounds must satisfy 0 < min <= max, got [%v, %v]", b.MinBoundaryRadius, b.MaxBoundaryRadius)
	}
	if b.MinBoundaryRings < 0 || b.MaxBoundaryRings < b.MinBoundaryRings {
		return errors.New(errors.ErrCodeInvalidBounds,
			"boundary ring bounds must satisfy 0 <= min <= max, got [%d, %d]", b.MinBoundaryRings, b.MaxBoundaryRings)
	}
	return nil
}

// Optimizer generates candidate configurations as a function of the
// iteration index, the total budget, and the best configuration found
// so far. The base configuration supplies everything the search does
// not vary: canvas size, circle count, and grid sampling parameters.
type Optimizer struct {
	base   diagram.Config
	bounds Bounds
	rng    *rand.Rand
}

// NewOptimizer creates an optimizer over the given parameter bounds.
// The rng must be the run's single seeded source.
func NewOptimizer(base diagram.Config, bounds Bounds, rng *rand.Rand) (*Optimizer, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	return &Optimizer{base: base, bounds: bounds, rng: rng}, nil
}

// PhaseAt reports which phase the given iteration falls into.
func (o *Optimizer) PhaseAt(iter, total int) Phase {
	if float64(iter) < explorationFraction*float64(total) {
		return PhaseExploration
	}
	return PhaseRefinement
}

// Next produces the candidate for one iteration. During refinement it
// perturbs best; with no best yet it falls back to an exploration draw.
func (o *Optimizer) Next(iter, total int, best *diagram.Config) diagram.Config {
	if o.PhaseAt(iter, total) == PhaseExploration || best == nil {
		return o.explore()
	}
	return o.refine(iter, total, *best)
}

// explore draws every varied parameter independently and uniformly
// within bounds.
func (o *Optimizer) explore() diagram.Config {
	cfg := o.base
	cfg.Circles = make([]diagram.Circle, len(o.base.Circles))
	for i := range cfg.Circles {
		cfg.Circles[i] = diagram.Circle{
			Radius: o.uniform(o.bounds.MinRadius, o.bounds.MaxRadius),
			Rings:  o.uniformInt(o.bounds.MinRings, o.bounds.MaxRings),
		}
	}
	cfg.Boundary = diagram.Circle{
		Radius: o.uniform(o.bounds.MinBoundaryRadius, o.bounds.MaxBoundaryRadius),
		Rings:  o.uniformInt(o.bounds.MinBoundaryRings, o.bounds.MaxBoundaryRings),
	}
	return cfg
}

// refine perturbs every parameter of best with a bounded offset whose
// magnitude decays linearly over the refinement phase.
func (o *Optimizer) refine(iter, total int, best diagram.Config) diagram.Config {
	scale := o.perturbScale(iter, total)

	cfg := o.base
	cfg.Circles = make([]diagram.Circle, len(best.Circles))
	for i, c := range best.Circles {
		cfg.Circles[i] = diagram.Circle{
			Radius: o.jitter(c.Radius, o.bounds.MinRadius, o.bounds.MaxRadius, scale),
			Rings:  o.jitterInt(c.Rings, o.bounds.MinRings, o.bounds.MaxRings),
		}
	}
	cfg.Boundary = diagram.Circle{
		Radius: o.jitter(best.Boundary.Radius, o.bounds.MinBoundaryRadius, o.bounds.MaxBoundaryRadius, scale),
		Rings:  o.jitterInt(best.Boundary.Rings, o.bounds.MinBoundaryRings, o.bounds.MaxBoundaryRings),
	}
	return cfg
}

// perturbScale interpolates from perturbStart down to perturbEnd across
// the refinement phase.
func (o *Optimizer) perturbScale(iter, total int) float64 {
	start := int(explorationFraction * float64(total))
	span := total - start
	if span <= 1 {
		return perturbEnd
	}
	frac := float64(iter-start) / float64(span-1)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return perturbStart + (perturbEnd-perturbStart)*frac
}

func (o *Optimizer) uniform(lo, hi float64) float64 {
	return lo + o.rng.Float64()*(hi-lo)
}

func (o *Optimizer) uniformInt(lo, hi int) int {
	return lo + o.rng.IntN(hi-lo+1)
}

// jitter offsets v by up to ±scale of the bounded range, clamped back
// into [lo, hi].
func (o *Optimizer) jitter(v, lo, hi, scale float64) float64 {
	offset := (o.rng.Float64()*2 - 1) * scale * (hi - lo)
	return clamp(v+offset, lo, hi)
}

// jitterInt nudges v by -1, 0, or +1, clamped into [lo, hi].
func (o *Optimizer) jitterInt(v, lo, hi int) int {
	v += o.rng.IntN(3) - 1
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
