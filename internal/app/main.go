package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"glscenes/internal/config"
	"glscenes/internal/demo"
	"glscenes/internal/graphics"
	"glscenes/internal/graphics/renderables/overlay"
	"glscenes/internal/graphics/renderables/scene"
	"glscenes/internal/graphics/renderables/wireframe"
	renderer "glscenes/internal/graphics/renderer"
	"glscenes/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/pflag"
	"github.com/xlab/closer"
)

// Main runs program with the command line args and returns once its window
// has closed. Errors are startup failures.
func Main(p Program, args []string) error {
	s, err := ParseFlags(p.Name, args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger, err := NewLogger(os.Stderr, s.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	config.Apply(s)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := SetupWindow(s.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()
	slog.Info("window ready", "program", p.Name, "title", s.Window.Title, "width", s.Window.Width, "height", s.Window.Height)

	store := graphics.NewTextureStore(s.Textures.MaxSize)
	defer store.Dispose()

	var tex demo.Textures
	if p.Textured {
		if tex, err = LoadTextures(s, store); err != nil {
			return err
		}
	}

	d, err := p.New(s, tex)
	if err != nil {
		return err
	}

	shaders := s.AssetPath("shaders")
	fontPath := s.Overlay.Font
	if fontPath != "" {
		fontPath = s.AssetPath(fontPath)
	}
	r, err := renderer.NewRenderer(
		scene.NewScene(shaders),
		wireframe.NewWireframe(shaders),
		overlay.NewOverlay(shaders, fontPath, s.Overlay.Size, s.Overlay.Scale),
	)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer r.Dispose()

	var reloads <-chan string
	if s.Watch {
		w, err := WatchShaders(shaders)
		if err != nil {
			slog.Warn("shader hot reload disabled", "err", err)
		} else {
			closer.Bind(func() { w.Close() })
			defer w.Close()
			reloads = w.Reloads()
			slog.Info("watching shaders", "dir", shaders)
		}
	}

	NewApp(window, input.NewInputManager(), d, r, reloads).Run()
	slog.Info("bye", "program", p.Name)
	return nil
}
