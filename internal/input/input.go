package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical control, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionSprint
	ActionQuit
	ActionToggleWireframe
	ActionToggleOverlay
	ActionCount // Sentinel value for array sizing
)

// Manager tracks keyboard state per action and accumulates mouse movement between frames.
// GLFW callbacks feed it; the frame loop reads it and calls PostUpdate once per frame.
type Manager struct {
	mu sync.RWMutex

	// one key can map to multiple actions
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool

	// edge flags, reset by PostUpdate
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	lastX, lastY   float64
	deltaX, deltaY float64
	firstMouse     bool
}

// NewManager creates a Manager with the default fly-camera bindings.
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[glfw.Key][]Action),
		firstMouse:   true,
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeySpace, ActionMoveUp)
	m.BindKey(glfw.KeyLeftShift, ActionMoveDown)
	m.BindKey(glfw.KeyLeftControl, ActionSprint)
	m.BindKey(glfw.KeyEscape, ActionQuit)
	m.BindKey(glfw.KeyF, ActionToggleWireframe)
	m.BindKey(glfw.KeyF3, ActionToggleOverlay)

	return m
}

// BindKey binds a physical key to a logical action.
// Multiple keys can be bound to the same action (e.g., WASD and arrow keys).
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keyToActions, key)
}

// HandleKeyEvent processes a key event and updates internal state
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	actions, exists := m.keyToActions[key]
	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		// Detect edges immediately when event arrives
		if isPressed && !m.currentState[act] {
			m.justPressed[act] = true
		}
		if !isPressed && m.currentState[act] {
			m.justReleased[act] = true
		}
		m.currentState[act] = isPressed
	}
}

// HandleCursorPos records a cursor position. The first sample only sets the
// reference point so the camera does not jump when the cursor is captured.
func (m *Manager) HandleCursorPos(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.firstMouse {
		m.lastX, m.lastY = x, y
		m.firstMouse = false
		return
	}
	m.deltaX += x - m.lastX
	// screen y grows downward; positive delta means look up
	m.deltaY += m.lastY - y
	m.lastX, m.lastY = x, y
}

// ConsumeMouseDelta returns the movement accumulated since the last call and resets it.
func (m *Manager) ConsumeMouseDelta() (dx, dy float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dx, dy = m.deltaX, m.deltaY
	m.deltaX, m.deltaY = 0, 0
	return dx, dy
}

// ResetMouse forgets the reference point, e.g. after the cursor is re-captured.
func (m *Manager) ResetMouse() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.firstMouse = true
	m.deltaX, m.deltaY = 0, 0
}

// Attach installs the key and cursor callbacks on window. Call once during setup.
func (m *Manager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		m.HandleCursorPos(x, y)
	})
}

// PostUpdate must be called at the end of each frame, after all input checks.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range ActionCount {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justReleased[action]
}
