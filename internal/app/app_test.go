package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/Raikerian/go-turkish-dtmf/internal/app"
	"github.com/Raikerian/go-turkish-dtmf/internal/codec"
	"github.com/Raikerian/go-turkish-dtmf/internal/config"
)

func TestNew_DefaultConfig(t *testing.T) {
	var (
		svc *codec.Service
		cfg *config.Config
	)
	application := app.New(app.Modules(""), fx.Populate(&svc, &cfg))
	require.NoError(t, application.Err())

	ctx := context.Background()
	require.NoError(t, application.Start(ctx))
	t.Cleanup(func() { _ = application.Stop(context.Background()) })

	require.NotNil(t, svc)
	assert.Equal(t, config.Default(), cfg)

	sig, err := svc.Encode(ctx, "Gel")
	require.NoError(t, err)
	text, err := svc.Decode(ctx, sig.Input())
	require.NoError(t, err)
	assert.Equal(t, "GEL", text)
}

func TestNew_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: error\nengine:\n  separate_repeats: true\n"), 0o600))

	var svc *codec.Service
	application := app.New(app.Modules(path), fx.Populate(&svc))
	require.NoError(t, application.Err())
	require.NoError(t, application.Start(context.Background()))
	defer func() { assert.NoError(t, application.Stop(context.Background())) }()

	assert.True(t, svc.EncodeOptions().SeparateRepeats)
}

func TestNew_MissingConfigFile(t *testing.T) {
	application := app.New(app.Modules(filepath.Join(t.TempDir(), "missing.yaml")))
	err := application.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}
