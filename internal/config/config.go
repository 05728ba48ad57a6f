package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Raikerian/go-turkish-dtmf/pkg/dtmf"
)

// EngineConfig stores tone engine tuning.
type EngineConfig struct {
	PowerThreshold  float64 `yaml:"power_threshold"`
	TurkishCasing   bool    `yaml:"turkish_casing"`
	SeparateRepeats bool    `yaml:"separate_repeats"`
}

// CacheConfig stores cache sizes.
type CacheConfig struct {
	ToneCacheSize int `yaml:"tone_cache_size"`
}

// DecodeConfig stores batch decode settings.
type DecodeConfig struct {
	Workers int `yaml:"workers"`
}

// Config stores the application configuration.
type Config struct {
	Engine   EngineConfig `yaml:"engine"`
	Cache    CacheConfig  `yaml:"cache"`
	Decode   DecodeConfig `yaml:"decode"`
	LogLevel string       `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			PowerThreshold: dtmf.DefaultPowerThreshold,
		},
		Cache: CacheConfig{
			ToneCacheSize: 64,
		},
		Decode: DecodeConfig{
			Workers: 4,
		},
		LogLevel: "info",
	}
}

// LoadConfig loads the configuration from the given file path. Keys missing
// from the file keep their Default values. An empty path returns Default.
func LoadConfig(filePath string) (*Config, error) {
	cfg := Default()
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filePath, err)
	}

	return cfg, nil
}

// Validate rejects values no provider can default around.
func (c *Config) Validate() error {
	var errs []error
	if c.Engine.PowerThreshold < 0 {
		errs = append(errs, fmt.Errorf("engine.power_threshold must not be negative, got %v", c.Engine.PowerThreshold))
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel))
	}
	return errors.Join(errs...)
}
