package config

import "go.uber.org/fx"

// Module provides *Config loaded from .env, environment and command line flags.
var Module = fx.Provide(Load)
