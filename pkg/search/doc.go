// Package search implements the stochastic search for diagram
// configurations matching a target region distribution.
//
// A Simulator drives the loop: each iteration it asks the Optimizer for
// a candidate configuration, measures it with the analysis package,
// scores the measurement against the target criteria, and keeps the
// candidate only if its fitness is strictly better than the best seen
// so far.
//
// The Optimizer works in two phases over the iteration budget. The
// exploration phase draws every parameter uniformly within configured
// bounds to cover the parameter space. The refinement phase perturbs
// the current best configuration with bounded offsets whose magnitude
// shrinks as the phase progresses, polishing the most promising
// candidate found.
//
// All randomness flows through one seeded PCG source, so an identical
// seed and budget reproduce an identical run.
package search
