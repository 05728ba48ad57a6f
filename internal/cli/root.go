// Package cli implements the dtmf command line.
//
// Usage:
//
//	dtmf [flags] <command> [args]
//
// Commands:
//
//	encode   - Encode text into raw s16le PCM
//	decode   - Decode raw PCM files back into text
//	alphabet - Print the symbol grid and its tones
//	version  - Print the build version
package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/Raikerian/go-turkish-dtmf/internal/app"
	"github.com/Raikerian/go-turkish-dtmf/internal/codec"
	"github.com/Raikerian/go-turkish-dtmf/internal/config"
)

const stopTimeout = 5 * time.Second

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "dtmf",
		Short: "Turkish dual-tone text encoder and decoder",
		Long: `Encode Turkish text into dual-tone audio and decode it back.

Every one of the 30 symbols (29 letters and space) is sent as a 40 ms
block of two summed sine tones at 44100 Hz. Audio is moved as raw,
headerless little-endian PCM.

Example:
  dtmf encode "Merhaba Dünya" -o merhaba.pcm
  dtmf decode merhaba.pcm`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log_level (debug, info, warn, error)")

	cmd.AddCommand(
		newEncodeCmd(opts),
		newDecodeCmd(opts),
		newAlphabetCmd(),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// withService assembles the application, hands its codec service to fn and
// shuts the application down afterwards.
func (o *globalOptions) withService(ctx context.Context, fn func(context.Context, *codec.Service) error) error {
	var svc *codec.Service
	application := app.New(
		app.Modules(o.configPath),
		fx.Decorate(o.decorateConfig),
		fx.Populate(&svc),
	)
	if err := application.Err(); err != nil {
		return err
	}

	if err := application.Start(ctx); err != nil {
		return err
	}

	runErr := fn(ctx, svc)

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	return errors.Join(runErr, application.Stop(stopCtx))
}

// decorateConfig applies flag overrides on top of the loaded config.
func (o *globalOptions) decorateConfig(cfg *config.Config) *config.Config {
	if o.logLevel == "" {
		return cfg
	}

	overridden := *cfg
	overridden.LogLevel = o.logLevel

	return &overridden
}
