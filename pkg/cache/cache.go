// Package cache provides content-addressed caching for analysis results
// and rendered artifacts.
//
// Region analysis is pure, so a metrics result is fully determined by
// the configuration that produced it. The Keyer turns a configuration
// hash into a stable cache key; backends store the serialized result
// under it. Three backends exist: a file cache for CLI use, a Redis
// cache for the serve mode, and a null cache that disables caching.
package cache

import (
	"context"
	"time"
)

// TTLs per entry kind. Analysis results never go stale (the analyzer is
// deterministic) but still expire to bound disk usage.
const (
	TTLMetrics  = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The boolean reports a hit; a miss is not an
	// error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL stores forever.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys. Implementations must be deterministic: the
// same inputs always produce the same key.
type Keyer interface {
	// MetricsKey is the key for an analysis result, from the hash of the
	// serialized configuration.
	MetricsKey(configHash string) string

	// ArtifactKey is the key for a rendered artifact of one
	// configuration in one format.
	ArtifactKey(configHash, format string) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// MetricsKey generates a key for an analysis result.
func (k *DefaultKeyer) MetricsKey(configHash string) string {
	return hashKey("metrics", configHash)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(configHash, format string) string {
	return hashKey("artifact", configHash, format)
}
