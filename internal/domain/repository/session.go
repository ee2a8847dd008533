package repository

import (
	"context"
	"time"

	"github.com/polkiloo/bakery/internal/domain/model"
)

// SessionRepository stores per-client sessions.
type SessionRepository interface {
	Create(ctx context.Context) (*model.Session, error)
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, session *model.Session) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
