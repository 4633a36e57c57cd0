package storefront

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned for unknown or expired session IDs.
var ErrSessionNotFound = errors.New("session not found")

type session struct {
	controller *Controller
	lastSeen   time.Time
}

// Sessions keeps one Controller per shopper in process memory.
type Sessions struct {
	catalog repo.CatalogRepository
	ceiling int
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewSessions creates an empty registry whose controllers share catalog and
// use ceiling as the upper price bound.
func NewSessions(catalog repo.CatalogRepository, ceiling int) *Sessions {
	return &Sessions{
		catalog:  catalog,
		ceiling:  ceiling,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Create starts a new session and returns its ID.
func (s *Sessions) Create() (string, *Controller) {
	id := uuid.NewString()
	c := NewController(s.catalog, s.ceiling)

	s.mu.Lock()
	s.sessions[id] = &session{controller: c, lastSeen: s.now()}
	s.mu.Unlock()
	return id, c
}

// Get returns the controller for id and marks the session as active.
func (s *Sessions) Get(id string) (*Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastSeen = s.now()
	return sess.controller, nil
}

func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than idle and returns how many were dropped.
func (s *Sessions) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := s.now()
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartCleanupLoop sweeps idle sessions every interval until ctx is done.
func (s *Sessions) StartCleanupLoop(ctx context.Context, interval, idle time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(idle); n > 0 {
				logger.Info("expired idle sessions", zap.Int("count", n), zap.Int("active", s.Len()))
			}
		}
	}
}

// Metrics summarises the carts of all live sessions.
type Metrics struct {
	ActiveSessions int `json:"active_sessions"`
	NonEmptyCarts  int `json:"non_empty_carts"`
	ItemsInCarts   int `json:"items_in_carts"`
	CartsValue     int `json:"carts_value"`
}

// Metrics aggregates cart totals across sessions.
func (s *Sessions) Metrics() Metrics {
	s.mu.Lock()
	controllers := make([]*Controller, 0, len(s.sessions))
	for _, sess := range s.sessions {
		controllers = append(controllers, sess.controller)
	}
	s.mu.Unlock()

	m := Metrics{ActiveSessions: len(controllers)}
	for _, c := range controllers {
		snap := c.Cart()
		if snap.IsEmpty() {
			continue
		}
		m.NonEmptyCarts++
		m.ItemsInCarts += snap.TotalItems
		m.CartsValue += snap.TotalPrice
	}
	return m
}
