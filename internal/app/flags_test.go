package app

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"glscenes/internal/config"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsDefaults(t *testing.T) {
	s, err := ParseFlags("light", nil)
	require.NoError(t, err)
	assert.Equal(t, config.Defaults("light"), s)
}

func TestParseFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "light.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fps_limit: 30\nassets: /from/file\nwatch: true\n"), 0o644))

	s, err := ParseFlags("light", []string{"--config", path, "--fps", "90", "--log-level=debug"})
	require.NoError(t, err)
	assert.Equal(t, 90, s.FPSLimit, "flags beat the file")
	assert.Equal(t, "/from/file", s.Assets, "unset flags keep the file value")
	assert.True(t, s.Watch)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestParseFlagsErrors(t *testing.T) {
	_, err := ParseFlags("light", []string{"--fps=-3"})
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = ParseFlags("light", []string{"--nope"})
	assert.Error(t, err)

	_, err = ParseFlags("light", []string{"extra"})
	assert.Error(t, err)

	_, err = ParseFlags("light", []string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown k=1")

	_, err = NewLogger(&buf, "chatty")
	assert.Error(t, err)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelError))
}

func TestNewCameraFromSettings(t *testing.T) {
	s := config.Defaults("shapes")
	cam, err := NewCamera(s)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{0, 2, 30}, cam.Eye)
	assert.Equal(t, float32(1), cam.Lens.Aspect)
	assert.Equal(t, s.Camera.TurnStep, cam.TurnStep)

	s.Camera.Near = s.Camera.Far
	_, err = NewCamera(s)
	assert.Error(t, err)
}
