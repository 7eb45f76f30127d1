package sheet

import (
	"context"
	"sync"
)

// MemoryStore implements Store in memory. Every call works on a copy, so
// callers cannot mutate stored state except through Save or Update.
type MemoryStore struct {
	mu    sync.Mutex
	sheet *Sheet
	saves int

	// SaveErr, when set, is returned by Save and Update instead of persisting
	SaveErr error
}

// NewMemoryStore creates a store holding a copy of initial, or an empty sheet
func NewMemoryStore(initial *Sheet) *MemoryStore {
	if initial == nil {
		initial = New()
	}
	return &MemoryStore{sheet: initial.Clone()}
}

// Load implements Store
func (s *MemoryStore) Load(ctx context.Context) (*Sheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sheet.Clone(), nil
}

// Save implements Store
func (s *MemoryStore) Save(ctx context.Context, sh *Sheet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return &PersistError{Path: "memory", Err: s.SaveErr}
	}
	s.sheet = sh.Clone()
	s.saves++
	return nil
}

// Update implements Store
func (s *MemoryStore) Update(ctx context.Context, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.sheet.Clone()
	if err := fn(working); err != nil {
		return err
	}
	if s.SaveErr != nil {
		return &PersistError{Path: "memory", Err: s.SaveErr}
	}
	s.sheet = working
	s.saves++
	return nil
}

// Saves returns how many times state was persisted
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
