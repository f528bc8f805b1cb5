package progress

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Store persists learner progress records, keyed by course id.
type Store interface {
	// Get returns the record for a course, or nil if none exists.
	Get(ctx context.Context, courseID string) (*LearnerProgress, error)

	// Save upserts the record. Implementations serialize writes per course
	// so concurrent read-modify-write cycles do not interleave.
	Save(ctx context.Context, record *LearnerProgress) error

	// List returns all stored records, most recently updated first.
	List(ctx context.Context) ([]*LearnerProgress, error)

	// Delete removes the record for a course. Deleting an absent record
	// is not an error.
	Delete(ctx context.Context, courseID string) error
}

// MemoryStore is an in-memory Store. Used by tests and as the fallback when
// no database is available.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*LearnerProgress
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*LearnerProgress)}
}

func (s *MemoryStore) Get(ctx context.Context, courseID string) (*LearnerProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[courseID]
	if !ok {
		return nil, nil
	}
	return record.Clone(), nil
}

func (s *MemoryStore) Save(ctx context.Context, record *LearnerProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := record.Clone()
	stored.UpdatedAt = time.Now()
	s.records[record.CourseID] = stored
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]*LearnerProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*LearnerProgress, 0, len(s.records))
	for _, record := range s.records {
		result = append(result, record.Clone())
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

func (s *MemoryStore) Delete(ctx context.Context, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, courseID)
	return nil
}
