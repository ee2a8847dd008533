package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/bakery/internal/app"
	"github.com/polkiloo/bakery/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(f *app.BakeryFacade) handlers.BakeryFacade { return f }),
	fx.Provide(Setup),
)
