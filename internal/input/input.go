package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical demo action, not a physical key
type Action int

// Action constants using iota
const (
	ActionQuit Action = iota
	ActionToggleAnimation
	ActionTurnLeft
	ActionTurnRight
	ActionMoveForward
	ActionMoveBackward
	ActionMoveUp
	ActionMoveDown
	ActionFire
	ActionToggleLights
	ActionHelp
	ActionLight1
	ActionLight2
	ActionLight3
	ActionLight4
	ActionLight5
	ActionLightUp
	ActionLightDown
	ActionToggleSmooth
	ActionToggleSpotlight
	ActionToggleLocalViewer
	ActionDimmer
	ActionBrighter
	ActionFloorNext
	ActionFloorPrev
	ActionRollDice
	ActionToggleTanBall
	ActionToggleSilverBall
	ActionSpinFaster
	ActionSpinSlower
	ActionToggleProjection
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	"quit", "toggle_animation", "turn_left", "turn_right", "move_forward", "move_backward",
	"move_up", "move_down", "fire", "toggle_lights", "help", "light1", "light2", "light3",
	"light4", "light5", "light_up", "light_down", "toggle_smooth", "toggle_spotlight",
	"toggle_local_viewer", "dimmer", "brighter", "floor_next", "floor_prev", "roll_dice",
	"toggle_tan_ball", "toggle_silver_ball", "spin_faster", "spin_slower", "toggle_projection",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputManager maps physical keys and typed characters to logical actions.
// Callbacks record events; the main loop reads them once per frame and then
// calls PostUpdate.
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Character to action mapping, for keys whose meaning depends on the layout such as '+'
	charToActions map[rune][]Action

	// Number of presses and auto-repeats since the last PostUpdate
	presses [ActionCount]int
}

// NewInputManager creates an InputManager with no bindings
func NewInputManager() *InputManager {
	return &InputManager{
		keyToActions:  make(map[glfw.Key][]Action),
		charToActions: make(map[rune][]Action),
	}
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// BindChar binds a typed character to a logical action
func (im *InputManager) BindChar(char rune, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.charToActions[char] = append(im.charToActions[char], action)
}

// HandleKeyEvent counts a press or auto-repeat of key. Releases are ignored.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	for _, act := range im.keyToActions[key] {
		im.presses[act]++
	}
}

// HandleCharEvent processes a typed character. Each character counts as one press.
func (im *InputManager) HandleCharEvent(char rune) {
	im.mu.Lock()
	defer im.mu.Unlock()

	for _, act := range im.charToActions[char] {
		im.presses[act]++
	}
}

// SetCallbacks installs the GLFW key and char callbacks for this input manager
func (im *InputManager) SetCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetCharCallback(func(w *glfw.Window, char rune) {
		im.HandleCharEvent(char)
	})
}

// PostUpdate must be called at the end of each frame to reset per-frame state
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	clear(im.presses[:])
}

// Pressed returns how many presses and auto-repeats arrived this frame
func (im *InputManager) Pressed(action Action) int {
	if action < 0 || action >= ActionCount {
		return 0
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.presses[action]
}
