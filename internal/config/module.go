// Package config provides configuration infrastructure and Fx modules.
package config

import (
	"go.uber.org/fx"
)

// Module provides configuration dependencies. The config file path is
// supplied by the caller as a string.
var Module = fx.Module("config",
	fx.Provide(LoadConfig),
)
