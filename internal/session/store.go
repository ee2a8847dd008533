package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/model"
)

// Store keeps sessions in memory. Sessions do not survive a restart.
type Store struct {
	mu       sync.Mutex
	sessions map[string]model.Session
	ttl      time.Duration
	now      func() time.Time
	newID    func() string
}

// NewStore builds an empty store whose sessions live for ttl.
// A non-positive ttl creates sessions that never expire.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]model.Session),
		ttl:      ttl,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Create opens a new non-admin session.
func (s *Store) Create(ctx context.Context) (*model.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := s.now()
	sess := model.Session{ID: s.newID(), CreatedAt: now}
	if s.ttl > 0 {
		sess.ExpiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return &sess, nil
}

// Get returns a copy of the session. Expired sessions are reported as missing.
func (s *Store) Get(ctx context.Context, id string) (*model.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()

	if !ok || sess.Expired(s.now()) {
		return nil, fmt.Errorf("%w: session %q", domainErrors.ErrNotFound, id)
	}
	return &sess, nil
}

// Save inserts or replaces the session.
func (s *Store) Save(ctx context.Context, sess *model.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sess == nil || sess.ID == "" {
		return fmt.Errorf("save session: missing id")
	}

	s.mu.Lock()
	s.sessions[sess.ID] = *sess
	s.mu.Unlock()
	return nil
}

// DeleteExpired drops every session expired at now and reports how many were removed.
func (s *Store) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Len reports the number of stored sessions, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
