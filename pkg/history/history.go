// Package history persists search result records across runs.
//
// This package defines the Store interface with implementations for
// different backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for durable multi-run history
//
// Records are the exportable [io.ResultRecord] form, so everything an
// external reporting tool needs survives the round-trip.
package history

import (
	"context"
	"errors"

	vio "github.com/venndial/venndial/pkg/io"
)

// ErrNotFound is returned when a run record does not exist.
var ErrNotFound = errors.New("not found")

// Store is the interface for history storage backends.
type Store interface {
	// Put stores a result record, keyed by its run ID.
	Put(ctx context.Context, rec vio.ResultRecord) error

	// Get retrieves a record by run ID.
	// Returns ErrNotFound if no such run exists.
	Get(ctx context.Context, runID string) (vio.ResultRecord, error)

	// List returns up to limit records ordered by ascending fitness
	// (best first). A limit of 0 returns everything.
	List(ctx context.Context, limit int) ([]vio.ResultRecord, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
