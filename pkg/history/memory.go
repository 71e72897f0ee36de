package history

import (
	"context"
	"slices"
	"sync"

	vio "github.com/venndial/venndial/pkg/io"
)

// MemoryStore keeps records in memory. Safe for concurrent use; records
// do not survive the process.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]vio.ResultRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]vio.ResultRecord)}
}

// Put stores a record, replacing any previous record with the same run ID.
func (s *MemoryStore) Put(ctx context.Context, rec vio.ResultRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.RunID] = rec
	return nil
}

// Get retrieves a record by run ID.
func (s *MemoryStore) Get(ctx context.Context, runID string) (vio.ResultRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[runID]
	if !ok {
		return vio.ResultRecord{}, ErrNotFound
	}
	return rec, nil
}

// List returns records ordered by ascending fitness.
func (s *MemoryStore) List(ctx context.Context, limit int) ([]vio.ResultRecord, error) {
	s.mu.RLock()
	recs := make([]vio.ResultRecord, 0, len(s.records))
	for _, rec := range s.records {
		recs = append(recs, rec)
	}
	s.mu.RUnlock()

	slices.SortFunc(recs, func(a, b vio.ResultRecord) int {
		switch {
		case a.Fitness < b.Fitness:
			return -1
		case a.Fitness > b.Fitness:
			return 1
		default:
			return 0
		}
	})
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
