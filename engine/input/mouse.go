package input

import (
	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/math"
)

type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseNumButtons
	MouseButtonInvalid MouseButton = 0xFF
)

func (b MouseButton) IsValid() bool {
	return b < MouseNumButtons
}

// PointerLockMode is what the game wants done with the pointer lock after a
// button event.
type PointerLockMode uint8

const (
	PointerLockModeDontCare PointerLockMode = iota
	PointerLockModeEnable
	PointerLockModeDisable
)

// PointerLockHandler decides the pointer lock mode on every button event.
type PointerLockHandler func(ev ButtonEvent, down bool) PointerLockMode

// Mouse holds the mouse state fed by a platform adapter. Movement and scroll
// accumulate over a frame and are cleared by Reset.
type Mouse struct {
	Attached bool
	// PointerLock, when set, is asked for the lock mode on button events.
	PointerLock PointerLockHandler

	pressed [MouseNumButtons]bool
	down    [MouseNumButtons]bool
	up      [MouseNumButtons]bool

	position    math.Vec2
	hasPosition bool
	movement    math.Vec2
	scroll      math.Vec2

	bus *core.EventBus
}

func NewMouse(bus *core.EventBus) *Mouse {
	return &Mouse{bus: bus}
}

func (m *Mouse) ButtonPressed(btn MouseButton) bool {
	return btn.IsValid() && m.pressed[btn]
}

// ButtonDown reports whether btn went down this frame.
func (m *Mouse) ButtonDown(btn MouseButton) bool {
	return btn.IsValid() && m.down[btn]
}

// ButtonUp reports whether btn went up this frame.
func (m *Mouse) ButtonUp(btn MouseButton) bool {
	return btn.IsValid() && m.up[btn]
}

func (m *Mouse) Position() math.Vec2 {
	return m.position
}

func (m *Mouse) Movement() math.Vec2 {
	return m.movement
}

func (m *Mouse) Scroll() math.Vec2 {
	return m.scroll
}

// OnButtonDown records a press and returns the pointer lock mode requested
// by the PointerLock handler.
func (m *Mouse) OnButtonDown(btn MouseButton) PointerLockMode {
	if !btn.IsValid() {
		return PointerLockModeDontCare
	}
	m.down[btn] = true
	m.pressed[btn] = true
	ev := ButtonEvent{Button: btn, Position: m.position}
	m.fire(core.EVENT_CODE_BUTTON_PRESSED, ev)
	return m.lockMode(ev, true)
}

func (m *Mouse) OnButtonUp(btn MouseButton) PointerLockMode {
	if !btn.IsValid() {
		return PointerLockModeDontCare
	}
	m.up[btn] = true
	m.pressed[btn] = false
	ev := ButtonEvent{Button: btn, Position: m.position}
	m.fire(core.EVENT_CODE_BUTTON_RELEASED, ev)
	return m.lockMode(ev, false)
}

// OnPosMov sets the absolute pointer position. Movement is derived from the
// previous position; the first sample produces none.
func (m *Mouse) OnPosMov(pos math.Vec2) {
	var delta math.Vec2
	if m.hasPosition {
		delta = pos.Sub(m.position)
	}
	m.position = pos
	m.hasPosition = true
	m.movement = m.movement.Add(delta)
	m.fire(core.EVENT_CODE_MOUSE_MOVED, MoveEvent{Position: pos, Movement: delta})
}

// OnMov adds a raw movement delta, leaving the position untouched.
func (m *Mouse) OnMov(mov math.Vec2) {
	m.movement = m.movement.Add(mov)
	m.fire(core.EVENT_CODE_MOUSE_MOVED, MoveEvent{Position: m.position, Movement: mov, Relative: true})
}

func (m *Mouse) OnScroll(scroll math.Vec2) {
	m.scroll = m.scroll.Add(scroll)
	m.fire(core.EVENT_CODE_MOUSE_WHEEL, ScrollEvent{Scroll: scroll})
}

// Reset clears the per-frame state.
func (m *Mouse) Reset() {
	m.down = [MouseNumButtons]bool{}
	m.up = [MouseNumButtons]bool{}
	m.movement = math.Vec2{}
	m.scroll = math.Vec2{}
}

func (m *Mouse) ReleaseAll() {
	m.pressed = [MouseNumButtons]bool{}
	m.hasPosition = false
	m.Reset()
}

func (m *Mouse) lockMode(ev ButtonEvent, down bool) PointerLockMode {
	if m.PointerLock == nil {
		return PointerLockModeDontCare
	}
	return m.PointerLock(ev, down)
}

func (m *Mouse) fire(code core.EventCode, data interface{}) {
	if m.bus != nil {
		m.bus.Fire(code, m, core.EventContext{Data: data})
	}
}
