package model

import "time"

// Session holds server-side state bound to a single client.
type Session struct {
	ID        string
	IsAdmin   bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at now.
// A zero ExpiresAt never expires.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
