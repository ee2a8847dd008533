package middleware

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bakery/internal/domain/model"
	pkgAuth "github.com/polkiloo/bakery/internal/pkg/auth"
	"github.com/polkiloo/bakery/internal/server/http/dto"
)

const (
	// SessionContextKey is a gin context key for the request session.
	SessionContextKey = "session"
	// SessionCookieName names the cookie carrying the signed session id.
	SessionCookieName = "bakery_session"
)

// SessionLoader resolves a session id to a live session.
type SessionLoader interface {
	Session(ctx context.Context, id string) (*model.Session, error)
}

// AdminChecker decides whether a session may use admin routes.
type AdminChecker interface {
	CheckAuth(sess *model.Session) bool
}

// SessionCookie reads and writes the signed session cookie.
type SessionCookie struct {
	signer pkgAuth.Signer
	ttl    time.Duration
}

func NewSessionCookie(signer pkgAuth.Signer, ttl time.Duration) *SessionCookie {
	return &SessionCookie{signer: signer, ttl: ttl}
}

// Read returns the verified session id, if the request carries one.
func (s *SessionCookie) Read(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(SessionCookieName)
	if err != nil || raw == "" {
		return "", false
	}
	id, err := s.signer.Verify(raw)
	if err != nil {
		return "", false
	}
	return id, true
}

// Write issues the cookie for sess. The cookie lives as long as the session
// does; sessions without an expiry fall back to the configured ttl.
func (s *SessionCookie) Write(c *gin.Context, sess *model.Session) {
	lifetime := s.ttl
	if !sess.ExpiresAt.IsZero() {
		lifetime = time.Until(sess.ExpiresAt)
	}

	maxAge := 0
	if lifetime > 0 {
		maxAge = int(math.Ceil(lifetime.Seconds()))
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, s.signer.Sign(sess.ID), maxAge, "/", "", false, true)
}

// LoadSession attaches the session named by the cookie to the context.
// Missing, forged or expired sessions leave the request anonymous.
func LoadSession(loader SessionLoader, cookie *SessionCookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := cookie.Read(c); ok {
			if sess, err := loader.Session(c.Request.Context(), id); err == nil {
				c.Set(SessionContextKey, sess)
			}
		}
		c.Next()
	}
}

// CurrentSession returns the session attached by LoadSession or nil.
func CurrentSession(c *gin.Context) *model.Session {
	val, ok := c.Get(SessionContextKey)
	if !ok {
		return nil
	}
	sess, _ := val.(*model.Session)
	return sess
}

// RequireAdmin rejects requests without an admin session before the handler runs.
func RequireAdmin(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !checker.CheckAuth(CurrentSession(c)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
			return
		}
		c.Next()
	}
}
