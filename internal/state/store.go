package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/vidly/internal/catalog"
)

// Snapshot is the loader's progress as seen by the UI.
type Snapshot struct {
	Catalog             catalog.Catalog
	Loaded              bool
	Source              string
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
	NextAttempt         time.Time
}

// IsOffline reports whether the source has failed repeatedly without ever
// delivering a catalog.
func (s Snapshot) IsOffline() bool {
	return !s.Loaded && s.ConsecutiveFailures >= 2
}

// Store hands the one-shot catalog fetch from the loader goroutine to the UI.
// The zero value is ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetSource records a label for where the catalog comes from.
func (s *Store) SetSource(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Source = label
}

// Update records a fetch attempt. On error the previous catalog (if any) is
// kept and the failure is counted; on success the catalog is stored and the
// failure count resets.
func (s *Store) Update(cat *catalog.Catalog, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	if cat != nil {
		s.snapshot.Catalog = cat.Clone()
		s.snapshot.Loaded = true
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	s.snapshot.NextAttempt = time.Time{}
}

// ScheduleRetry records when the loader will try again.
func (s *Store) ScheduleRetry(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.NextAttempt = at
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Catalog = s.snapshot.Catalog.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
