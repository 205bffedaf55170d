package calibration

import (
	"fmt"
	"sync"
)

// #region memory-store

// MemoryStore keeps calibration events in process memory behind a mutex.
// Append and update are safe from concurrent callers.
type MemoryStore struct {
	mu     sync.Mutex
	events []Event
}

// NewMemoryStore returns an empty in-memory event log.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append adds an event to the log.
func (s *MemoryStore) Append(event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.find(event.EventID); ok {
		return fmt.Errorf("event %s already exists", event.EventID)
	}
	s.events = append(s.events, event)
	return nil
}

// Find returns the event with the given id, if present.
func (s *MemoryStore) Find(eventID string) (Event, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.find(eventID); ok {
		return s.events[i], true, nil
	}
	return Event{}, false, nil
}

// Update overwrites an existing event in place.
func (s *MemoryStore) Update(event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.find(event.EventID)
	if !ok {
		return fmt.Errorf("event %s not found", event.EventID)
	}
	s.events[i] = event
	return nil
}

// List returns the most recent events, newest first.
func (s *MemoryStore) List(limit int) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.events)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Event, 0, n)
	for i := len(s.events) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.events[i])
	}
	return out, nil
}

func (s *MemoryStore) find(eventID string) (int, bool) {
	for i := range s.events {
		if s.events[i].EventID == eventID {
			return i, true
		}
	}
	return 0, false
}

// #endregion memory-store
