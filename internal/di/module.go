package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/bakery/internal/app"
	"github.com/polkiloo/bakery/internal/config"
	"github.com/polkiloo/bakery/internal/logger"
	"github.com/polkiloo/bakery/internal/pkg/auth"
	"github.com/polkiloo/bakery/internal/server/http/router"
	"github.com/polkiloo/bakery/internal/session"
	"github.com/polkiloo/bakery/internal/storage/jsonfile"
	"github.com/polkiloo/bakery/internal/storage/uploads"
	"github.com/polkiloo/bakery/internal/usecase"
)

// Module composes every application module. opts are appended last so tests
// can replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		jsonfile.Module,
		uploads.Module,
		session.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
