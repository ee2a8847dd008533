package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/bakery/internal/config"
)

// Module provides the session cookie signer via fx.
var Module = fx.Options(
	fx.Provide(newSigner),
)

type signerParams struct {
	fx.In

	Config *config.Config
}

func newSigner(p signerParams) Signer {
	return NewHMACSigner(p.Config.SessionSecret)
}
