// Package app is the window shell shared by the demo programs: it opens the
// window, routes input, fires the animation timer, renders each frame and
// paces the loop.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"glscenes/internal/config"
	"glscenes/internal/demo"
	"glscenes/internal/graphics/displaylist"
	renderer "glscenes/internal/graphics/renderer"
	"glscenes/internal/input"
	"glscenes/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// SlowFrame is the processing time above which a frame is logged.
const SlowFrame = 16 * time.Millisecond

// App drives one demo in one window.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	demo         demo.Demo
	renderer     *renderer.Renderer
	list         *displaylist.List

	ticker     *Ticker
	fpsLimiter *FPSLimiter
	reloads    <-chan string
}

// NewApp wires d to the window. reloads may be nil when shaders are not watched.
func NewApp(window *glfw.Window, im *input.InputManager, d demo.Demo, r *renderer.Renderer, reloads <-chan string) *App {
	a := &App{
		window:       window,
		inputManager: im,
		demo:         d,
		renderer:     r,
		list:         displaylist.New(),
		ticker:       NewTicker(time.Now()),
		fpsLimiter:   NewFPSLimiter(),
		reloads:      reloads,
	}
	d.Bind(im)
	a.setupCallbacks()

	width, height := window.GetFramebufferSize()
	a.resize(width, height)
	return a
}

func (a *App) setupCallbacks() {
	im := a.inputManager
	im.SetCallbacks(a.window)

	if observer, ok := a.demo.(demo.KeyObserver); ok {
		a.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
			im.HandleKeyEvent(key, action)
			if action != glfw.Press {
				return
			}
			x, y := w.GetCursorPos()
			observer.ObserveKey(KeyName(key, scancode), x, y)
		})
	}

	a.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.resize(width, height)
	})

	// Repaint while the window is being resized
	a.window.SetRefreshCallback(func(w *glfw.Window) {
		a.render()
		w.SwapBuffers()
	})
}

// KeyName returns the printable name of key, or its code for keys without one.
func KeyName(key glfw.Key, scancode int) string {
	if name := glfw.GetKeyName(key, scancode); name != "" {
		return name
	}
	return fmt.Sprintf("key %d", key)
}

func (a *App) resize(width, height int) {
	// Minimized windows report 0x0
	if width <= 0 || height <= 0 {
		return
	}
	a.renderer.UpdateViewport(width, height)
	a.demo.Resize(width, height)
}

// Run loops until the window closes or the demo finishes.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.frame()
	}
}

func (a *App) frame() {
	profiling.ResetFrame()
	start := time.Now()

	glfw.PollEvents()
	a.demo.HandleInput(a.inputManager)

	func() {
		defer profiling.Track("app.tick")()
		for n := a.ticker.Due(start, config.GetTickRate()); n > 0; n-- {
			a.demo.Tick()
		}
	}()
	a.reloadShaders()

	if a.demo.Done() {
		a.window.SetShouldClose(true)
	}

	a.render()
	func() {
		defer profiling.Track("app.swap")()
		a.window.SwapBuffers()
	}()

	if d := time.Since(start); d > SlowFrame {
		slog.Warn("slow frame",
			"duration", d,
			"render", profiling.SumWithPrefix("renderer."),
			"commands", len(a.list.Commands),
			"lights", a.list.EnabledLights(),
			"top", profiling.TopN(5),
		)
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait(a.window.GetAttrib(glfw.Iconified) == glfw.True)
}

func (a *App) render() {
	a.demo.Build(a.list)
	a.renderer.Render(a.demo.Camera(), a.list, a.demo.Overlay())
}

func (a *App) reloadShaders() {
	if a.reloads == nil {
		return
	}
	select {
	case path := <-a.reloads:
		slog.Info("shader changed", "path", path)
		a.renderer.Reload()
	default:
	}
}
