package usecase

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/polkiloo/bakery/internal/domain/model"
	"github.com/polkiloo/bakery/internal/domain/repository"
)

// AdminCredentials is the single username/password pair allowed to administer the shop.
type AdminCredentials struct {
	Username string
	Password string
}

// Match compares both fields for exact equality.
func (c AdminCredentials) Match(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(c.Username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(c.Password), []byte(password)) == 1
	return userOK && passOK
}

// AuthUseCase elevates sessions to admin and answers authorization checks.
type AuthUseCase struct {
	sessions repository.SessionRepository
	admin    AdminCredentials
	now      func() time.Time
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(sessions repository.SessionRepository, admin AdminCredentials) *AuthUseCase {
	return &AuthUseCase{sessions: sessions, admin: admin, now: time.Now}
}

// Login marks the current session, or a newly created one, as admin when the
// credentials match. On mismatch the current session is returned untouched
// and no session is created.
func (u *AuthUseCase) Login(ctx context.Context, current *model.Session, username, password string) (*model.Session, bool, error) {
	if !u.admin.Match(username, password) {
		return current, false, nil
	}

	sess := current
	if sess == nil || sess.Expired(u.now()) {
		created, err := u.sessions.Create(ctx)
		if err != nil {
			return nil, false, err
		}
		sess = created
	}

	elevated := *sess
	elevated.IsAdmin = true
	if err := u.sessions.Save(ctx, &elevated); err != nil {
		return nil, false, err
	}
	return &elevated, true, nil
}

// CheckAuth reports whether sess is a live admin session.
func (u *AuthUseCase) CheckAuth(sess *model.Session) bool {
	return sess != nil && sess.IsAdmin && !sess.Expired(u.now())
}

// Session loads a live session by id.
func (u *AuthUseCase) Session(ctx context.Context, id string) (*model.Session, error) {
	return u.sessions.Get(ctx, id)
}
