// Package platform feeds the engine input state from a GLFW window.
package platform

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/input"
	"github.com/spaghettifunk/lumen/engine/math"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// Window is the part of *glfw.Window the adapter needs.
type Window interface {
	SetKeyCallback(cbfun glfw.KeyCallback) glfw.KeyCallback
	SetCharCallback(cbfun glfw.CharCallback) glfw.CharCallback
	SetMouseButtonCallback(cbfun glfw.MouseButtonCallback) glfw.MouseButtonCallback
	SetCursorPosCallback(cbfun glfw.CursorPosCallback) glfw.CursorPosCallback
	SetScrollCallback(cbfun glfw.ScrollCallback) glfw.ScrollCallback
	SetInputMode(mode glfw.InputMode, value int)
}

var _ Window = (*glfw.Window)(nil)

// Platform is the desktop input adapter. Callbacks arrive from
// glfw.PollEvents on the main thread.
type Platform struct {
	*input.Manager

	window  Window
	runLoop *core.RunLoop

	runLoopID         core.RunLoopID
	pointerLockActive bool
	hasCursor         bool
	cursor            math.Vec2
}

func New(window Window, runLoop *core.RunLoop) *Platform {
	if runLoop == nil {
		runLoop = core.NewRunLoop()
	}
	return &Platform{
		Manager:   input.NewManager(),
		window:    window,
		runLoop:   runLoop,
		runLoopID: core.InvalidRunLoopID,
	}
}

// Setup installs the window callbacks and the per-frame reset hook. Only the
// keyboard and the mouse are attached; desktop windows have no touch or
// motion sensors.
func (p *Platform) Setup(setup input.Setup) error {
	if err := p.Manager.Setup(setup); err != nil {
		return err
	}
	id, err := p.runLoop.Add(p.Reset)
	if err != nil {
		_ = p.Manager.Discard()
		return fmt.Errorf("platform: registering reset hook: %w", err)
	}
	p.runLoopID = id

	p.Keyboard.Attached = true
	p.Mouse.Attached = true

	p.window.SetKeyCallback(p.keyCallback)
	p.window.SetCharCallback(p.charCallback)
	p.window.SetMouseButtonCallback(p.mouseButtonCallback)
	p.window.SetCursorPosCallback(p.cursorPosCallback)
	p.window.SetScrollCallback(p.scrollCallback)
	return nil
}

// Discard removes the callbacks and the reset hook and releases the cursor.
// Discarding an adapter that is not set up does nothing.
func (p *Platform) Discard() error {
	if !p.IsValid() {
		return nil
	}
	p.window.SetKeyCallback(nil)
	p.window.SetCharCallback(nil)
	p.window.SetMouseButtonCallback(nil)
	p.window.SetCursorPosCallback(nil)
	p.window.SetScrollCallback(nil)
	if p.pointerLockActive {
		p.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		p.pointerLockActive = false
	}
	p.hasCursor = false

	var errs []error
	if err := p.runLoop.Remove(p.runLoopID); err != nil {
		errs = append(errs, err)
	}
	p.runLoopID = core.InvalidRunLoopID
	if err := p.Manager.Discard(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (p *Platform) PointerLockActive() bool {
	return p.pointerLockActive
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := MapKey(key)
	if k == input.KeyInvalid {
		return
	}
	switch action {
	case glfw.Press:
		p.Keyboard.OnKeyDown(k)
	case glfw.Repeat:
		p.Keyboard.OnKeyRepeat(k)
	case glfw.Release:
		p.Keyboard.OnKeyUp(k)
	}
}

func (p *Platform) charCallback(w *glfw.Window, char rune) {
	p.Keyboard.OnChar(char)
}

func mapMouseButton(button glfw.MouseButton) input.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return input.MouseButtonLeft
	case glfw.MouseButtonRight:
		return input.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return input.MouseButtonMiddle
	default:
		return input.MouseButtonInvalid
	}
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	btn := mapMouseButton(button)
	if btn == input.MouseButtonInvalid {
		return
	}
	var mode input.PointerLockMode
	switch action {
	case glfw.Press:
		mode = p.Mouse.OnButtonDown(btn)
	case glfw.Release:
		mode = p.Mouse.OnButtonUp(btn)
	default:
		return
	}
	p.applyPointerLockMode(mode)
}

// applyPointerLockMode disables the cursor for PointerLockModeEnable and
// restores it for every other mode.
func (p *Platform) applyPointerLockMode(mode input.PointerLockMode) {
	lock := mode == input.PointerLockModeEnable
	if lock == p.pointerLockActive {
		return
	}
	if lock {
		p.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		p.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
	p.pointerLockActive = lock
	// GLFW switches to virtual cursor coordinates, the next sample starts over.
	p.hasCursor = false
}

func (p *Platform) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	pos := math.NewVec2(float32(xpos), float32(ypos))
	if !p.pointerLockActive {
		p.Mouse.OnPosMov(pos)
		return
	}
	if p.hasCursor {
		p.Mouse.OnMov(pos.Sub(p.cursor))
	}
	p.cursor = pos
	p.hasCursor = true
}

func (p *Platform) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	p.Mouse.OnScroll(math.NewVec2(float32(xoff), float32(yoff)))
}
