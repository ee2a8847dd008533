package session

import (
	"go.uber.org/fx"

	"github.com/polkiloo/bakery/internal/config"
	"github.com/polkiloo/bakery/internal/domain/repository"
)

// Module provides the in-memory session store.
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config) *Store { return NewStore(cfg.SessionTTL) }),
	fx.Provide(func(s *Store) repository.SessionRepository { return s }),
)
