package search

import (
	"context"
	"io"
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/venndial/venndial/pkg/analysis"
	"github.com/venndial/venndial/pkg/diagram"
	"github.com/venndial/venndial/pkg/errors"
)

// DefaultSeed is the default random seed for reproducible runs.
const DefaultSeed = uint64(42)

// AnalyzeFunc measures one candidate configuration. The default wraps
// [analysis.Analyze]; a pipeline runner may inject a caching variant.
type AnalyzeFunc func(ctx context.Context, cfg diagram.Config) (analysis.Metrics, error)

// Result pairs a candidate configuration with its measurement, fitness
// score, and the point in the run where it was found.
type Result struct {
	RunID     string
	Config    diagram.Config
	Metrics   analysis.Metrics
	Fitness   float64
	Iteration int
	Phase     Phase
}

// Options configures a Simulator run.
type Options struct {
	// Base supplies the fixed geometry: canvas size, circle count, and
	// grid sampling parameters. Varied parameters are overwritten per
	// candidate.
	Base diagram.Config

	// Bounds delimits the searched parameter space.
	Bounds Bounds

	// Iterations is the total iteration budget. Must be positive.
	Iterations int

	// Seed initializes the run's single random source. Zero selects
	// DefaultSeed.
	Seed uint64

	// Analyze measures candidates. Nil selects analysis.Analyze.
	Analyze AnalyzeFunc

	// Progress, if set, is invoked after every iteration with the
	// iteration index and the best result so far (nil until one exists).
	Progress func(iter int, best *Result)

	// Logger receives per-iteration debug output. Nil discards.
	Logger *log.Logger
}

// validate checks the options and fills defaults in place.
func (o *Options) validate() error {
	if err := o.Base.Validate(); err != nil {
		return err
	}
	if err := o.Bounds.Validate(); err != nil {
		return err
	}
	if o.Iterations <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "iterations must be positive, got %d", o.Iterations)
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Analyze == nil {
		o.Analyze = func(_ context.Context, cfg diagram.Config) (analysis.Metrics, error) {
			return analysis.Analyze(cfg), nil
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Simulator drives the search loop for one target. It retains at most
// one best result, replaced only when a strictly lower fitness appears.
// A Simulator is single-use: construct, Run, then inspect.
type Simulator struct {
	target diagram.Target
	opts   Options
	best   *Result
}

// NewSimulator validates the target and options and returns a ready
// simulator.
func NewSimulator(target diagram.Target, opts Options) (*Simulator, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Simulator{target: target, opts: opts}, nil
}

// Run executes the full iteration budget. It returns early only when
// ctx is cancelled, checked cooperatively between iterations. Candidate
// failures skip their iteration; they never abort the run.
func (s *Simulator) Run(ctx context.Context) error {
	rng := rand.New(rand.NewPCG(s.opts.Seed, s.opts.Seed^0xdeadbeef))
	opt, err := NewOptimizer(s.opts.Base, s.opts.Bounds, rng)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	for iter := 0; iter < s.opts.Iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		var bestCfg *diagram.Config
		if s.best != nil {
			bestCfg = &s.best.Config
		}
		cand := opt.Next(iter, s.opts.Iterations, bestCfg)

		if err := cand.Validate(); err != nil {
			s.opts.Logger.Warn("skipping invalid candidate", "iteration", iter, "err", err)
			s.notify(iter)
			continue
		}

		metrics, err := s.opts.Analyze(ctx, cand)
		if err != nil {
			s.opts.Logger.Warn("analysis failed", "iteration", iter, "err", err)
			s.notify(iter)
			continue
		}

		fitness := Fitness(s.target, metrics.Summary())
		s.best = considerCandidate(s.best, Result{
			RunID:     runID,
			Config:    cand,
			Metrics:   metrics,
			Fitness:   fitness,
			Iteration: iter,
			Phase:     opt.PhaseAt(iter, s.opts.Iterations),
		})

		s.opts.Logger.Debug("scored candidate",
			"iteration", iter,
			"phase", opt.PhaseAt(iter, s.opts.Iterations),
			"fitness", fitness,
			"regions", metrics.RegionCount(),
			"best", s.best.Fitness)
		s.notify(iter)
	}
	return nil
}

// HasBest reports whether any valid candidate was scored. Callers must
// check this before reading Best.
func (s *Simulator) HasBest() bool {
	return s.best != nil
}

// Best returns the retained best result.
func (s *Simulator) Best() (Result, bool) {
	if s.best == nil {
		return Result{}, false
	}
	return *s.best, true
}

// BestFitness returns the best fitness score, or +Inf when no candidate
// has been scored.
func (s *Simulator) BestFitness() float64 {
	if s.best == nil {
		return math.Inf(1)
	}
	return s.best.Fitness
}

func (s *Simulator) notify(iter int) {
	if s.opts.Progress != nil {
		s.opts.Progress(iter, s.best)
	}
}

// considerCandidate returns the updated best state: the candidate
// replaces best only on strictly lower fitness, or when no best exists.
func considerCandidate(best *Result, cand Result) *Result {
	if best == nil || cand.Fitness < best.Fitness {
		return &cand
	}
	return best
}

// Fitness scores a measurement against the target criteria. It sums the
// deviation of the region count and of the min, max, and mean area, each
// divided by its tolerance and clamped to zero inside the tolerance
// band. Zero means every dimension is within tolerance; lower is better.
func Fitness(t diagram.Target, s analysis.Summary) float64 {
	return fitnessTerm(math.Abs(float64(s.RegionCount-t.Regions)), t.RegionTolerance) +
		fitnessTerm(math.Abs(s.MinArea-t.MinArea), t.AreaTolerance) +
		fitnessTerm(math.Abs(s.MaxArea-t.MaxArea), t.AreaTolerance) +
		fitnessTerm(math.Abs(s.MeanArea-t.MeanArea), t.AreaTolerance)
}

// fitnessTerm is zero inside the tolerance band. A zero tolerance with
// any deviation yields +Inf, which orders worse than every finite
// candidate.
func fitnessTerm(dev, tol float64) float64 {
	if dev <= tol {
		return 0
	}
	if tol == 0 {
		return math.Inf(1)
	}
	return dev / tol
}
