package app

import (
	"fmt"

	"glscenes/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupWindow opens the demo window with a 4.1 core context and makes it current.
func SetupWindow(ws config.WindowSettings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(ws.Width, ws.Height, ws.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.SetPos(ws.X, ws.Y)
	window.Show()
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	// Disable V-Sync; frames are paced by the FPS limiter
	glfw.SwapInterval(0)

	return window, nil
}
