package input

import (
	"testing"

	"github.com/spaghettifunk/lumen/engine/math"
)

func TestMouseButtons(t *testing.T) {
	m := NewMouse(nil)
	if mode := m.OnButtonDown(MouseButtonLeft); mode != PointerLockModeDontCare {
		t.Errorf("mode without handler = %v", mode)
	}
	if !m.ButtonDown(MouseButtonLeft) || !m.ButtonPressed(MouseButtonLeft) {
		t.Fatal("left button not down")
	}
	m.Reset()
	if m.ButtonDown(MouseButtonLeft) || !m.ButtonPressed(MouseButtonLeft) {
		t.Fatal("Reset must clear down but keep pressed")
	}
	m.OnButtonUp(MouseButtonLeft)
	if !m.ButtonUp(MouseButtonLeft) || m.ButtonPressed(MouseButtonLeft) {
		t.Error("left button not released")
	}
	if m.OnButtonDown(MouseButtonInvalid) != PointerLockModeDontCare || m.ButtonPressed(MouseButtonInvalid) {
		t.Error("invalid button was recorded")
	}
}

func TestMousePointerLockHandler(t *testing.T) {
	m := NewMouse(nil)
	m.PointerLock = func(ev ButtonEvent, down bool) PointerLockMode {
		if ev.Button != MouseButtonRight {
			return PointerLockModeDontCare
		}
		if down {
			return PointerLockModeEnable
		}
		return PointerLockModeDisable
	}
	if got := m.OnButtonDown(MouseButtonRight); got != PointerLockModeEnable {
		t.Errorf("down = %v, want enable", got)
	}
	if got := m.OnButtonUp(MouseButtonRight); got != PointerLockModeDisable {
		t.Errorf("up = %v, want disable", got)
	}
	if got := m.OnButtonDown(MouseButtonLeft); got != PointerLockModeDontCare {
		t.Errorf("left = %v, want dont care", got)
	}
}

func TestMouseMovement(t *testing.T) {
	m := NewMouse(nil)
	m.OnPosMov(math.NewVec2(10, 10))
	if m.Movement() != (math.Vec2{}) {
		t.Errorf("first sample produced movement %v", m.Movement())
	}
	m.OnPosMov(math.NewVec2(13, 6))
	m.OnPosMov(math.NewVec2(14, 6))
	if got := m.Movement(); got != math.NewVec2(4, -4) {
		t.Errorf("Movement = %v, want (4,-4)", got)
	}
	if got := m.Position(); got != math.NewVec2(14, 6) {
		t.Errorf("Position = %v", got)
	}
	m.Reset()
	m.OnMov(math.NewVec2(-2, 3))
	if m.Movement() != math.NewVec2(-2, 3) || m.Position() != math.NewVec2(14, 6) {
		t.Errorf("OnMov: movement %v position %v", m.Movement(), m.Position())
	}
	m.OnScroll(math.NewVec2(2, -5))
	if m.Scroll() != math.NewVec2(2, -5) {
		t.Errorf("Scroll = %v", m.Scroll())
	}
	m.Reset()
	if m.Scroll() != (math.Vec2{}) || m.Movement() != (math.Vec2{}) {
		t.Error("Reset did not clear movement and scroll")
	}
}
