// Package app provides the main application structure and lifecycle management.
package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Raikerian/go-turkish-dtmf/internal/codec"
	"github.com/Raikerian/go-turkish-dtmf/internal/config"
	"github.com/Raikerian/go-turkish-dtmf/internal/infrastructure"
	"github.com/Raikerian/go-turkish-dtmf/internal/observe"
)

// Application represents the main application with its lifecycle.
type Application struct {
	app *fx.App
}

// Modules returns the core modules every Application is assembled from.
func Modules(configPath string) fx.Option {
	return fx.Options(
		// Core modules
		config.Module,
		infrastructure.LoggerModule,
		observe.Module,

		// Application modules
		codec.Module,

		// Supply the config path
		fx.Supply(configPath),

		// Configure Fx to use our Zap logger for its own internal logging
		fx.WithLogger(infrastructure.NewFxLoggerAdapter),
	)
}

// New creates a new Application with the provided modules and options.
func New(modules ...fx.Option) *Application {
	options := append(modules, fx.Invoke(registerLifecycleHooks))

	app := fx.New(options...)

	return &Application{
		app: app,
	}
}

// Err returns the error from building the dependency graph, if any.
func (a *Application) Err() error {
	return a.app.Err()
}

// Start runs the OnStart hooks.
func (a *Application) Start(ctx context.Context) error {
	return a.app.Start(ctx)
}

// Stop gracefully stops the application.
func (a *Application) Stop(ctx context.Context) error {
	return a.app.Stop(ctx)
}

// registerLifecycleHooks logs the effective engine settings on start.
func registerLifecycleHooks(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger, svc *codec.Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Debug("Application started",
				zap.Float64("powerThreshold", cfg.Engine.PowerThreshold),
				zap.Bool("turkishCasing", cfg.Engine.TurkishCasing),
				zap.Bool("separateRepeats", svc.EncodeOptions().SeparateRepeats),
				zap.Int("workers", cfg.Decode.Workers),
			)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Debug("Application stopped")

			return nil
		},
	})
}
