package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/venndial/venndial/pkg/analysis"
	"github.com/venndial/venndial/pkg/cache"
	"github.com/venndial/venndial/pkg/diagram"
	"github.com/venndial/venndial/pkg/search"
)

// Runner encapsulates analysis and search execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store run results.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// SearchResult contains the outputs of one search run.
type SearchResult struct {
	// Best is the retained best result. Valid only when HasBest is true.
	Best search.Result

	// HasBest reports whether any valid candidate was scored.
	HasBest bool

	// Stats contains timing and cache information.
	Stats Stats
}

// Stats contains run execution statistics.
type Stats struct {
	Iterations int
	Duration   time.Duration
	CacheHits  int
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Analyze measures a configuration with caching and reports whether the
// result came from the cache.
func (r *Runner) Analyze(ctx context.Context, cfg diagram.Config) (analysis.Metrics, bool, error) {
	if err := cfg.Validate(); err != nil {
		return analysis.Metrics{}, false, err
	}

	key, err := r.metricsKey(cfg)
	if err != nil {
		return analysis.Metrics{}, false, err
	}

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		var cached analysis.Metrics
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, true, nil // Cache hit
		}
		// If deserialization fails, fall through to recompute
	}

	metrics := analysis.Analyze(cfg)

	if data, err := json.Marshal(metrics); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLMetrics)
	}

	return metrics, false, nil // Cache miss
}

// Search runs the full search loop against one target, routing every
// candidate measurement through the cached Analyze.
func (r *Runner) Search(ctx context.Context, target diagram.Target, opts Options) (*SearchResult, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}

	result := &SearchResult{}

	sim, err := search.NewSimulator(target, search.Options{
		Base:       opts.Base,
		Bounds:     opts.Bounds,
		Iterations: opts.Iterations,
		Seed:       opts.Seed,
		Logger:     opts.Logger,
		Progress:   opts.Progress,
		Analyze: func(ctx context.Context, cfg diagram.Config) (analysis.Metrics, error) {
			metrics, hit, err := r.Analyze(ctx, cfg)
			if hit {
				result.Stats.CacheHits++
			}
			return metrics, err
		},
	})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := sim.Run(ctx); err != nil {
		return nil, err
	}
	result.Stats.Iterations = opts.Iterations
	result.Stats.Duration = time.Since(start)

	if best, ok := sim.Best(); ok {
		result.Best = best
		result.HasBest = true
		r.Logger.Info("search complete",
			"iterations", opts.Iterations,
			"fitness", best.Fitness,
			"regions", best.Metrics.RegionCount(),
			"found_at", best.Iteration,
			"phase", best.Phase,
			"duration", result.Stats.Duration)
	} else {
		r.Logger.Warn("search produced no valid candidate",
			"iterations", opts.Iterations,
			"duration", result.Stats.Duration)
	}

	return result, nil
}

// metricsKey derives the cache key from the serialized configuration.
func (r *Runner) metricsKey(cfg diagram.Config) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("serialize config for cache key: %w", err)
	}
	return r.Keyer.MetricsKey(cache.Hash(data)), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
