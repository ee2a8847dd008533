package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/model"
)

// AuthFacadeStub simulates session authentication. Sessions holds the
// sessions Session can resolve.
type AuthFacadeStub struct {
	Sessions map[string]*model.Session
	LoginFn  func(context.Context, *model.Session, string, string) (*model.Session, bool, error)
}

// Login delegates to LoginFn or accepts admin/admin123.
func (s AuthFacadeStub) Login(ctx context.Context, current *model.Session, username, password string) (*model.Session, bool, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, current, username, password)
	}
	if username != "admin" || password != "admin123" {
		return current, false, nil
	}
	if current == nil {
		current = &model.Session{ID: "login-session"}
	}
	elevated := *current
	elevated.IsAdmin = true
	return &elevated, true, nil
}

// CheckAuth reports whether sess is an admin session.
func (s AuthFacadeStub) CheckAuth(sess *model.Session) bool {
	return sess != nil && sess.IsAdmin && !sess.Expired(time.Now())
}

// Session resolves id from Sessions.
func (s AuthFacadeStub) Session(ctx context.Context, id string) (*model.Session, error) {
	if sess, ok := s.Sessions[id]; ok {
		return sess, nil
	}
	return nil, domainErrors.ErrNotFound
}

// AdminSession returns a live admin session with the given id.
func AdminSession(id string) *model.Session {
	now := time.Now()
	return &model.Session{ID: id, IsAdmin: true, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
}
