package test

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/model"
)

// CollectionStub keeps a document collection in memory for tests.
type CollectionStub[T any] struct {
	Items   []T
	LoadErr error
	SaveErr error
	LoadFn  func(context.Context) ([]T, error)
	SaveFn  func(context.Context, []T) error
	Saves   [][]T
}

// Load returns a copy of Items unless an override or error is configured.
func (s *CollectionStub[T]) Load(ctx context.Context) ([]T, error) {
	if s.LoadFn != nil {
		return s.LoadFn(ctx)
	}
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return append([]T{}, s.Items...), nil
}

// Save records the snapshot and replaces Items.
func (s *CollectionStub[T]) Save(ctx context.Context, items []T) error {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, items)
	}
	if s.SaveErr != nil {
		return s.SaveErr
	}
	snapshot := append([]T{}, items...)
	s.Saves = append(s.Saves, snapshot)
	s.Items = snapshot
	return nil
}

// ImageStorageStub records stored and removed images.
type ImageStorageStub struct {
	StoreErr  error
	RemoveErr error
	Stored    []model.ImageUpload
	Removed   []string
	next      int
}

// Store returns a deterministic /uploads path for each call.
func (s *ImageStorageStub) Store(ctx context.Context, upload *model.ImageUpload) (string, error) {
	if upload.Empty() {
		return "", domainErrors.ErrImageRequired
	}
	if s.StoreErr != nil {
		return "", s.StoreErr
	}
	s.next++
	s.Stored = append(s.Stored, *upload)
	return fmt.Sprintf("/uploads/%d-%s", s.next, upload.Filename), nil
}

// Remove records the request and returns RemoveErr.
func (s *ImageStorageStub) Remove(ctx context.Context, image string) error {
	s.Removed = append(s.Removed, image)
	return s.RemoveErr
}

// SessionRepositoryStub stores sessions in a map with injectable failures.
type SessionRepositoryStub struct {
	Sessions  map[string]model.Session
	CreateErr error
	SaveErr   error
	Next      int
}

// NewSessionRepositoryStub constructs stub repository with initialized map.
func NewSessionRepositoryStub() *SessionRepositoryStub {
	return &SessionRepositoryStub{Sessions: make(map[string]model.Session)}
}

// Create registers a new non-admin session.
func (s *SessionRepositoryStub) Create(ctx context.Context) (*model.Session, error) {
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	if s.Sessions == nil {
		s.Sessions = make(map[string]model.Session)
	}
	s.Next++
	sess := model.Session{ID: fmt.Sprintf("session-%d", s.Next), CreatedAt: time.Now()}
	s.Sessions[sess.ID] = sess
	return &sess, nil
}

// Get returns a stored session or not found.
func (s *SessionRepositoryStub) Get(ctx context.Context, id string) (*model.Session, error) {
	sess, ok := s.Sessions[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &sess, nil
}

// Save upserts the session unless SaveErr is set.
func (s *SessionRepositoryStub) Save(ctx context.Context, sess *model.Session) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if s.Sessions == nil {
		s.Sessions = make(map[string]model.Session)
	}
	s.Sessions[sess.ID] = *sess
	return nil
}

// DeleteExpired drops sessions expired at now.
func (s *SessionRepositoryStub) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	removed := 0
	for id, sess := range s.Sessions {
		if sess.Expired(now) {
			delete(s.Sessions, id)
			removed++
		}
	}
	return removed, nil
}
