package timertest

import (
	"sort"
	"sync"
	"time"

	"github.com/psantana5/peperone/internal/timer"
)

var _ timer.Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory timer.Store. It lists names in lexical order
// like timer.FileStore.
type MemoryStore struct {
	mu        sync.RWMutex
	timers    map[string]time.Time
	clock     timer.Clock
	overwrite bool
}

// NewMemoryStore creates an empty in-memory store. A nil clock means the wall clock.
func NewMemoryStore(clock timer.Clock, overwrite bool) *MemoryStore {
	if clock == nil {
		clock = timer.RealClock()
	}
	return &MemoryStore{
		timers:    make(map[string]time.Time),
		clock:     clock,
		overwrite: overwrite,
	}
}

func storeError(kind timer.Kind, op, name string, err error) error {
	return &timer.Error{Kind: kind, Op: op, Name: name, Err: err}
}

// Create records the current time under name
func (s *MemoryStore) Create(name string) (*timer.Timer, error) {
	if err := timer.ValidateName(name); err != nil {
		return nil, storeError(timer.KindInvalidName, "create", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.timers[name]; ok && !s.overwrite {
		return nil, storeError(timer.KindAlreadyExists, "create", name, nil)
	}
	createdAt := s.clock.Now().Round(0).UTC()
	s.timers[name] = createdAt
	return &timer.Timer{Name: name, CreatedAt: createdAt}, nil
}

// Read retrieves a timer by name
func (s *MemoryStore) Read(name string) (*timer.Timer, error) {
	if err := timer.ValidateName(name); err != nil {
		return nil, storeError(timer.KindInvalidName, "read", name, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	createdAt, ok := s.timers[name]
	if !ok {
		return nil, storeError(timer.KindNotFound, "read", name, nil)
	}
	return &timer.Timer{Name: name, CreatedAt: createdAt}, nil
}

// List returns all timer names sorted lexically
func (s *MemoryStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.timers))
	for name := range s.timers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Remove deletes a timer
func (s *MemoryStore) Remove(name string) error {
	if err := timer.ValidateName(name); err != nil {
		return storeError(timer.KindInvalidName, "remove", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.timers[name]; !ok {
		return storeError(timer.KindNotFound, "remove", name, nil)
	}
	delete(s.timers, name)
	return nil
}
