package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// WindowSettings describes the initial window.
type WindowSettings struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	X      int    `yaml:"x" toml:"x"`
	Y      int    `yaml:"y" toml:"y"`
	Title  string `yaml:"title" toml:"title"`
}

// CameraSettings holds the lens and the starting pose.
type CameraSettings struct {
	FOV       float32    `yaml:"fov" toml:"fov"`
	Near      float32    `yaml:"near" toml:"near"`
	Far       float32    `yaml:"far" toml:"far"`
	Eye       [3]float32 `yaml:"eye" toml:"eye"`
	LookAngle float32    `yaml:"look_angle" toml:"look_angle"`
	TurnStep  float32    `yaml:"turn_step" toml:"turn_step"`
	SlideStep float32    `yaml:"slide_step" toml:"slide_step"`
}

// TextureSettings locates the image assets.
type TextureSettings struct {
	Brick              string `yaml:"brick" toml:"brick"`
	Wood               string `yaml:"wood" toml:"wood"`
	ProceduralFallback bool   `yaml:"procedural_fallback" toml:"procedural_fallback"`
	MaxSize            int    `yaml:"max_size" toml:"max_size"`
	CheckerSize        int    `yaml:"checker_size" toml:"checker_size"`
}

// HelloSettings configures the 2D demo.
type HelloSettings struct {
	Primitive string `yaml:"primitive" toml:"primitive"`
}

// ShapesSettings configures the shapes demo.
type ShapesSettings struct {
	Car bool `yaml:"car" toml:"car"`
}

// OverlaySettings selects the help text font. An empty font uses the
// built-in bitmap face.
type OverlaySettings struct {
	Font  string  `yaml:"font" toml:"font"`
	Size  float64 `yaml:"size" toml:"size"`
	Scale float32 `yaml:"scale" toml:"scale"`
}

// Settings is everything a demo program reads at startup.
type Settings struct {
	Window   WindowSettings  `yaml:"window" toml:"window"`
	Camera   CameraSettings  `yaml:"camera" toml:"camera"`
	Textures TextureSettings `yaml:"textures" toml:"textures"`
	Hello    HelloSettings   `yaml:"hello" toml:"hello"`
	Shapes   ShapesSettings  `yaml:"shapes" toml:"shapes"`
	Overlay  OverlaySettings `yaml:"overlay" toml:"overlay"`

	Assets   string  `yaml:"assets" toml:"assets"`
	TickRate float64 `yaml:"tick_rate" toml:"tick_rate"`
	FPSLimit int     `yaml:"fps_limit" toml:"fps_limit"`
	LogLevel string  `yaml:"log_level" toml:"log_level"`
	Watch    bool    `yaml:"watch" toml:"watch"`
}

var ErrInvalid = errors.New("invalid settings")

// Defaults returns the settings that reproduce each demo program out of the box.
func Defaults(program string) Settings {
	s := Settings{
		Window: WindowSettings{Width: 800, Height: 800, X: 100, Y: 100, Title: program},
		Camera: CameraSettings{
			FOV: 60, Near: 0.01, Far: 1000,
			Eye:      [3]float32{0, 2, 15},
			TurnStep: 2, SlideStep: 0.5,
		},
		Textures: TextureSettings{
			Brick:              "textures/brick.jpg",
			Wood:               "textures/wood.jpg",
			ProceduralFallback: true,
			MaxSize:            1024,
			CheckerSize:        64,
		},
		Hello:    HelloSettings{Primitive: "triangles"},
		Overlay:  OverlaySettings{Size: 16, Scale: 1},
		Assets:   "assets",
		TickRate: 60,
		FPSLimit: 120,
		LogLevel: "info",
	}
	switch program {
	case "hello":
		s.Window = WindowSettings{Width: 1000, Height: 1000, X: 100, Y: 100, Title: "Wireframe Scene!"}
	case "light":
		s.Window.Title = "Interactive Wireframe"
	case "shapes":
		s.Window = WindowSettings{Width: 1000, Height: 1000, X: 100, Y: 100, Title: "Interactive Wireframe"}
		s.Camera.Eye = [3]float32{0, 2, 30}
	}
	return s
}

// Load overlays the file at path onto base. The format follows the extension:
// .yaml/.yml or .toml.
func Load(path string, base Settings) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}
	s := base
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return base, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return base, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return base, fmt.Errorf("unsupported config format %q", ext)
	}
	if err := s.Validate(); err != nil {
		return base, err
	}
	return s, nil
}

// Validate rejects settings no demo can start with.
func (s Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, s.Window.Width, s.Window.Height)
	}
	if s.Camera.Near <= 0 || s.Camera.Near >= s.Camera.Far {
		return fmt.Errorf("%w: camera near=%v far=%v", ErrInvalid, s.Camera.Near, s.Camera.Far)
	}
	if s.Camera.FOV <= 0 || s.Camera.FOV >= 180 {
		return fmt.Errorf("%w: camera fov=%v", ErrInvalid, s.Camera.FOV)
	}
	if s.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate=%v", ErrInvalid, s.TickRate)
	}
	if s.FPSLimit < 0 {
		return fmt.Errorf("%w: fps_limit=%v", ErrInvalid, s.FPSLimit)
	}
	if s.Textures.CheckerSize <= 0 {
		return fmt.Errorf("%w: checker_size=%v", ErrInvalid, s.Textures.CheckerSize)
	}
	if s.Overlay.Font != "" && s.Overlay.Size <= 0 {
		return fmt.Errorf("%w: overlay size=%v", ErrInvalid, s.Overlay.Size)
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", name, err)
	}
	return lvl, nil
}

// AssetPath resolves a path relative to the assets directory. Absolute paths are kept.
func (s Settings) AssetPath(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(s.Assets, rel)
}
