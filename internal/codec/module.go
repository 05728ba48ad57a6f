// Package codec provides the text ↔ tone service and its Fx module.
package codec

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Raikerian/go-turkish-dtmf/internal/config"
)

// Module provides codec dependencies.
var Module = fx.Module("codec",
	fx.Provide(
		NewToneCacheProvider,
		NewService,
	),
)

// NewToneCacheProvider creates a ToneCache with config-derived size.
func NewToneCacheProvider(cfg *config.Config, logger *zap.Logger) (*ToneCache, error) {
	size := cfg.Cache.ToneCacheSize
	if size <= 0 {
		logger.Warn("ToneCacheSize is not configured or is invalid, defaulting to 64",
			zap.Int("configuredSize", size))
		size = 64
	}
	logger.Debug("Creating ToneCache", zap.Int("size", size))

	return NewToneCache(size)
}
