package ban

import (
	"context"
	"sync"
	"time"
)

type strikeWindow struct {
	count   int
	expires time.Time
}

// InMemoryStore is a Store for single-instance deployments and tests.
type InMemoryStore struct {
	mu      sync.Mutex
	strikes map[string]*strikeWindow
	bans    map[string]time.Time
	log     []BanLogEntry
	now     func() time.Time
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		strikes: make(map[string]*strikeWindow),
		bans:    make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *InMemoryStore) AddStrike(_ context.Context, target string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.strikes[target]
	if !ok || !now.Before(w.expires) {
		w = &strikeWindow{expires: now.Add(window)}
		s.strikes[target] = w
	}
	w.count++
	return w.count, nil
}

func (s *InMemoryStore) Ban(_ context.Context, target string, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bans[target] = s.now().Add(d)
	delete(s.strikes, target)
	return nil
}

func (s *InMemoryStore) IsBanned(_ context.Context, target string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.bans[target]
	if !ok {
		return false, nil
	}
	if !s.now().Before(until) {
		delete(s.bans, target)
		return false, nil
	}
	return true, nil
}

func (s *InMemoryStore) AppendLog(_ context.Context, entry BanLogEntry) error {
	s.mu.Lock()
	s.log = append(s.log, entry)
	s.mu.Unlock()
	return nil
}

func (s *InMemoryStore) DrainLog(_ context.Context, clear bool) ([]BanLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append([]BanLogEntry(nil), s.log...)
	if clear {
		s.log = nil
	}
	return entries, nil
}
