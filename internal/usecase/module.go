package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/bakery/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewCatalogUseCase,
	NewOrderUseCase,
	NewAuthUseCase,
	newAdminCredentials,
)

func newAdminCredentials(cfg *config.Config) AdminCredentials {
	return AdminCredentials{Username: cfg.AdminUsername, Password: cfg.AdminPassword}
}
