package memory

import (
	"context"
	"sync"

	"github.com/voxlink/relay/internal/core/domain"
	"github.com/voxlink/relay/internal/core/port"
)

// Store keeps presence records in a mutex-guarded map. It backs unit tests
// and credential-less development runs.
type Store struct {
	mu      sync.Mutex
	records map[string]domain.PresenceRecord
	writes  int
}

func NewStore() *Store {
	return &Store{
		records: make(map[string]domain.PresenceRecord),
	}
}

func (s *Store) Get(ctx context.Context, userID string) (domain.PresenceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[userID]
	if !ok {
		return domain.PresenceRecord{}, port.ErrNotFound
	}
	return rec, nil
}

func (s *Store) Set(ctx context.Context, rec domain.PresenceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.UserID] = rec
	s.writes++
	return nil
}

// Writes reports how many Set calls reached the store.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
