package uploads

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/bakery/internal/config"
	"github.com/polkiloo/bakery/internal/domain/repository"
)

// Module provides filesystem image storage.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(func(s *Storage) repository.ImageStorage { return s }),
)

type storageParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Config.UploadDir, p.Logger)
}
