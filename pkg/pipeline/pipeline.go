// Package pipeline provides the analyze and search entry points shared
// by the CLI and the HTTP API.
//
// A Runner wraps the core analysis and search packages with
// content-addressed caching and structured logging, so every entry
// point behaves identically: an analysis is computed once per distinct
// configuration, and a search run transparently reuses cached
// measurements for candidates it has seen before.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{Iterations: 200, Seed: 7}
//	result, err := runner.Search(ctx, target, opts)
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/venndial/venndial/pkg/diagram"
	"github.com/venndial/venndial/pkg/search"
)

// Default values shared by CLI and API.
const (
	// DefaultIterations is the default search iteration budget.
	DefaultIterations = 200

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = search.DefaultSeed
)

// Options contains all configuration for a search run.
// The zero value is usable after ValidateAndSetDefaults.
type Options struct {
	// Base supplies the fixed geometry. Zero selects the default
	// three-circle layout.
	Base diagram.Config `json:"base,omitempty"`

	// Bounds delimits the searched parameter space. Zero selects
	// search.DefaultBounds.
	Bounds search.Bounds `json:"bounds,omitempty"`

	// Iterations is the iteration budget. Zero selects DefaultIterations.
	Iterations int `json:"iterations,omitempty"`

	// Seed is the random seed. Zero selects DefaultSeed.
	Seed uint64 `json:"seed,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger                         `json:"-"`
	Progress func(iter int, best *search.Result) `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults applies defaults and validates the options.
// Idempotent: calling it multiple times has the same effect as once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Base.Width == 0 && o.Base.Height == 0 && len(o.Base.Circles) == 0 {
		o.Base = diagram.DefaultTriple()
	}
	if o.Bounds == (search.Bounds{}) {
		o.Bounds = search.DefaultBounds()
	}
	if o.Iterations == 0 {
		o.Iterations = DefaultIterations
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := o.Base.Validate(); err != nil {
		return err
	}
	if err := o.Bounds.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}
