package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyxo/showcase/pkg/showcase/deck"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvReducedMotion, EnvTouchMode, EnvLogLevel, EnvDebug, EnvAPIKey, EnvContentPath} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, dir, text string) string {
	t.Helper()
	path := filepath.Join(dir, "showcase.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestDefaultMatchesDeck(t *testing.T) {
	d, err := Default().Deck()
	require.NoError(t, err)
	assert.Equal(t, deck.DefaultConfig(), d)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, t.TempDir(), `
locale = "en"

[navigation]
transition_duration = "800ms"
reduced_motion = true
touch_mode = "lenient"
edge_buffer = 4

[navigation.velocity]
default = 0.5

[navigation.velocity.platforms]
ios = 0.1

[window]
width = 1280
height = 720

[chat]
models = ["gemini-2.0-flash"]
timeout = "10s"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int32(1280), cfg.Window.Width)
	assert.Equal(t, 10*time.Second, cfg.Chat.Timeout.Duration)
	assert.Equal(t, []string{"gemini-2.0-flash"}, cfg.Chat.Models)

	d, err := cfg.Deck()
	require.NoError(t, err)
	assert.Equal(t, 800*time.Millisecond, d.TransitionDuration)
	assert.Equal(t, 150*time.Millisecond, d.ReducedTransitionDuration, "unset keys keep defaults")
	assert.True(t, d.ReducedMotion)
	assert.Equal(t, deck.TouchLenient, d.TouchMode)
	assert.Equal(t, 4.0, d.EdgeBuffer)
	assert.Equal(t, 0.5, d.Velocity.MinVelocity("Linux"))
	assert.Equal(t, 0.1, d.Velocity.MinVelocity("iOS"))
	assert.Equal(t, 0.25, d.Velocity.MinVelocity("Android"))
}

func TestEnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvReducedMotion, "true")
	t.Setenv(EnvAPIKey, "secret")
	t.Setenv(EnvDebug, "1")
	t.Setenv(EnvContentPath, "/tmp/catalogue.toml")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Navigation.ReducedMotion)
	assert.Equal(t, "secret", cfg.Chat.APIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/catalogue.toml", cfg.ContentPath)
}

func TestInvalidEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvReducedMotion, "sometimes")
	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"edge buffer":    "[navigation]\nedge_buffer = 9",
		"touch mode":     "[navigation]\ntouch_mode = \"sloppy\"",
		"negative wheel": "[navigation]\nwheel_threshold = -1",
		"window":         "[window]\nwidth = -5",
		"log level":      "[log]\nlevel = \"loud\"",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(text)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Decode("[navigation]\ntransition_duration = \"soon\"")
	assert.Error(t, err)
}

func TestInvalidEdgeBufferWrapsDeckError(t *testing.T) {
	_, err := Decode("[navigation]\nedge_buffer = 9")
	assert.ErrorIs(t, err, deck.ErrInvalidConfig)
}

func TestWatchReloads(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, "[navigation]\nreduced_motion = false\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := Watch(ctx, path, nil)
	require.NoError(t, err)

	writeConfig(t, dir, "[navigation]\nreduced_motion = true\n")

	select {
	case cfg := <-updates:
		assert.True(t, cfg.Navigation.ReducedMotion)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after the file changed")
	}

	cancel()
	for range updates {
	}
}

func TestWatchSkipsInvalidEdits(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := Watch(ctx, path, nil)
	require.NoError(t, err)

	writeConfig(t, dir, "[navigation]\nedge_buffer = 99\n")
	select {
	case cfg := <-updates:
		t.Fatalf("invalid config delivered: %+v", cfg.Navigation)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatchNeedsPath(t *testing.T) {
	_, err := Watch(context.Background(), "", nil)
	assert.Error(t, err)
}
