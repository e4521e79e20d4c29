package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	for _, p := range []string{"hello", "light", "shapes", "other"} {
		assert.NoError(t, Defaults(p).Validate(), p)
	}
	assert.Equal(t, [3]float32{0, 2, 30}, Defaults("shapes").Camera.Eye)
	assert.Equal(t, 800, Defaults("light").Window.Width)
	assert.Equal(t, 1000, Defaults("hello").Window.Height)
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "demo.yaml", `
window:
  width: 640
camera:
  eye: [1, 2, 3]
textures:
  procedural_fallback: false
fps_limit: 30
log_level: debug
`)
	s, err := Load(path, Defaults("light"))
	require.NoError(t, err)
	assert.Equal(t, 640, s.Window.Width)
	assert.Equal(t, 800, s.Window.Height, "untouched fields keep their defaults")
	assert.Equal(t, [3]float32{1, 2, 3}, s.Camera.Eye)
	assert.False(t, s.Textures.ProceduralFallback)
	assert.Equal(t, 30, s.FPSLimit)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "demo.toml", `
tick_rate = 30.0

[hello]
primitive = "line_loop"

[shapes]
car = true
`)
	s, err := Load(path, Defaults("shapes"))
	require.NoError(t, err)
	assert.Equal(t, 30.0, s.TickRate)
	assert.Equal(t, "line_loop", s.Hello.Primitive)
	assert.True(t, s.Shapes.Car)
}

func TestLoadRejectsBadInput(t *testing.T) {
	base := Defaults("light")

	_, err := Load(writeFile(t, "x.yaml", "camera:\n  near: 10\n  far: 1\n"), base)
	assert.True(t, errors.Is(err, ErrInvalid), "%v", err)

	_, err = Load(writeFile(t, "x.yaml", "nope: 1\n"), base)
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Load(writeFile(t, "x.toml", "nope = 1\n"), base)
	assert.Error(t, err)

	_, err = Load(writeFile(t, "x.json", "{}"), base)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), base)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	mutate := []func(*Settings){
		func(s *Settings) { s.Window.Width = 0 },
		func(s *Settings) { s.Camera.Near = 0 },
		func(s *Settings) { s.Camera.FOV = 180 },
		func(s *Settings) { s.TickRate = 0 },
		func(s *Settings) { s.FPSLimit = -1 },
		func(s *Settings) { s.Textures.CheckerSize = 0 },
		func(s *Settings) { s.LogLevel = "loud" },
		func(s *Settings) { s.Overlay.Font = "fonts/mono.ttf"; s.Overlay.Size = 0 },
	}
	for i, m := range mutate {
		s := Defaults("light")
		m(&s)
		assert.ErrorIs(t, s.Validate(), ErrInvalid, "case %d", i)
	}
}

func TestAssetPath(t *testing.T) {
	s := Defaults("light")
	s.Assets = "/srv/assets"
	assert.Equal(t, filepath.Join("/srv/assets", "textures", "wood.jpg"), s.AssetPath("textures/wood.jpg"))
	assert.Equal(t, "/abs/brick.jpg", s.AssetPath("/abs/brick.jpg"))
}

func TestRuntimeSettingsClamp(t *testing.T) {
	defer Apply(Defaults("light"))

	SetFPSLimit(-5)
	assert.Equal(t, 0, GetFPSLimit())
	SetFPSLimit(5000)
	assert.Equal(t, 1000, GetFPSLimit())

	SetTickRate(0)
	assert.Equal(t, 1.0, GetTickRate())

	Apply(Settings{FPSLimit: 75, TickRate: 50})
	assert.Equal(t, 75, GetFPSLimit())
	assert.Equal(t, 50.0, GetTickRate())
}

func TestShippedConfigsLoad(t *testing.T) {
	for program, file := range map[string]string{
		"light":  "light.yaml",
		"shapes": "shapes.toml",
		"hello":  "hello.yaml",
	} {
		_, err := Load(filepath.Join("..", "..", "configs", file), Defaults(program))
		assert.NoError(t, err, file)
	}
}
