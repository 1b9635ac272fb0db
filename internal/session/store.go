package session

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/five82/launchtrack/internal/launch"
)

// Snapshot is the data available to the UI at one point in time.
type Snapshot struct {
	Upcoming    []launch.Launch
	Past        []launch.Launch
	HasUpcoming bool
	HasPast     bool
	Reference   launch.Reference
	HasRef      bool
	LastUpdated time.Time
	LastError   error
}

// Store holds the caches behind the menu actions: the last
// upcoming list, the last past list and the reference names. Lists are replaced
// wholesale, never edited in place.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetUpcoming replaces the upcoming cache. A non-nil err is recorded for display
// but launches (usually empty after a failure) still replace the old list.
func (s *Store) SetUpcoming(launches []launch.Launch, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Upcoming = slices.Clone(launches)
	s.snapshot.HasUpcoming = true
	s.record(err)
}

// SetPast replaces the past cache.
func (s *Store) SetPast(launches []launch.Launch, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Past = slices.Clone(launches)
	s.snapshot.HasPast = true
	s.record(err)
}

// SetReference replaces the rocket and launchpad names.
func (s *Store) SetReference(ref launch.Reference, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Reference = cloneReference(ref)
	s.snapshot.HasRef = true
	s.record(err)
}

func (s *Store) record(err error) {
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Upcoming = slices.Clone(s.snapshot.Upcoming)
	snap.Past = slices.Clone(s.snapshot.Past)
	snap.Reference = cloneReference(s.snapshot.Reference)
	return snap
}

// SearchScope returns the launches a search should scan and whether the past
// cache must be loaded first (with launch.DefaultSearchLimit) because it is empty.
func (s Snapshot) SearchScope() ([]launch.Launch, bool) {
	if len(s.Past) == 0 {
		return nil, true
	}
	return s.Past, false
}

func cloneReference(ref launch.Reference) launch.Reference {
	out := launch.Reference{
		Rockets:    make(launch.Names, len(ref.Rockets)),
		Launchpads: make(launch.Names, len(ref.Launchpads)),
	}
	maps.Copy(out.Rockets, ref.Rockets)
	maps.Copy(out.Launchpads, ref.Launchpads)
	return out
}
