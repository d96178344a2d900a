package html5

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/input"
	"github.com/spaghettifunk/lumen/engine/math"
)

// wheelScale is applied to both wheel axes.
const wheelScale = 0.5

// Manager feeds the engine input state from browser callbacks delivered by
// an EventSource. It runs on the thread that owns the browser event loop.
type Manager struct {
	*input.Manager

	source  EventSource
	runLoop *core.RunLoop
	clock   *core.Clock

	keyTable          keyTable
	runLoopID         core.RunLoopID
	pointerLockActive bool
	subscriptions     []Subscription
}

func NewManager(source EventSource, runLoop *core.RunLoop, clock *core.Clock) *Manager {
	if runLoop == nil {
		runLoop = core.NewRunLoop()
	}
	if clock == nil {
		clock = core.NewClock()
	}
	m := &Manager{
		Manager:   input.NewManager(),
		source:    source,
		runLoop:   runLoop,
		clock:     clock,
		runLoopID: core.InvalidRunLoopID,
	}
	m.keyTable.setup()
	return m
}

// Setup installs every host callback and the per-frame reset hook. Device
// motion and orientation are only installed when enabled in setup. If any
// installation fails the callbacks taken so far are removed again.
func (m *Manager) Setup(setup input.Setup) error {
	if setup.CanvasSelector == "" {
		setup.CanvasSelector = core.DefaultCanvasSelector
	}
	if err := m.Manager.Setup(setup); err != nil {
		return err
	}
	m.keyTable.setup()
	m.Keyboard.Attached = true
	m.Mouse.Attached = true
	m.Touchpad.Attached = true
	m.Sensors.Attached = true

	if err := m.setupCallbacks(setup); err != nil {
		if derr := m.discardCallbacks(); derr != nil {
			core.LogWarn("html5: %s", derr)
		}
		_ = m.Manager.Discard()
		return err
	}

	id, err := m.runLoop.Add(m.Reset)
	if err != nil {
		_ = m.discardCallbacks()
		_ = m.Manager.Discard()
		return fmt.Errorf("html5: registering reset hook: %w", err)
	}
	m.runLoopID = id
	core.LogDebug("html5: %d input callbacks installed on %s", len(m.subscriptions), setup.CanvasSelector)
	return nil
}

// Discard removes every callback installed by Setup and the reset hook.
// Discarding a manager that is not set up does nothing.
func (m *Manager) Discard() error {
	if !m.IsValid() {
		return nil
	}
	var errs []error
	if m.pointerLockActive {
		if err := m.source.ExitPointerLock(); err != nil {
			errs = append(errs, err)
		}
		m.pointerLockActive = false
	}
	if err := m.discardCallbacks(); err != nil {
		errs = append(errs, err)
	}
	if m.runLoopID != core.InvalidRunLoopID {
		if err := m.runLoop.Remove(m.runLoopID); err != nil {
			errs = append(errs, err)
		}
		m.runLoopID = core.InvalidRunLoopID
	}
	if err := m.Manager.Discard(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// PointerLockActive reports the pointer lock state last applied to the host.
func (m *Manager) PointerLockActive() bool {
	return m.pointerLockActive
}

// MapKey translates a DOM keyCode into an engine key.
func (m *Manager) MapKey(keyCode uint32) input.Key {
	return m.keyTable.mapKey(keyCode)
}

type callbackInstall struct {
	typ        EventType
	target     string
	useCapture bool
	handler    Handler
}

func (m *Manager) setupCallbacks(setup input.Setup) error {
	canvas := setup.CanvasSelector
	installs := []callbackInstall{
		{EventKeyDown, TargetWindow, true, m.onKeyDown},
		{EventKeyUp, TargetWindow, true, m.onKeyUp},
		{EventKeyPress, TargetWindow, true, m.onKeyPress},
		{EventMouseDown, canvas, true, m.onMouseDown},
		{EventMouseUp, canvas, true, m.onMouseUp},
		{EventMouseMove, canvas, true, m.onMouseMove},
		{EventWheel, canvas, false, m.onWheel},
		{EventTouchStart, canvas, true, m.onTouch},
		{EventTouchEnd, canvas, true, m.onTouch},
		{EventTouchMove, canvas, true, m.onTouch},
		{EventTouchCancel, canvas, true, m.onTouch},
	}
	if setup.AccelerometerEnabled {
		installs = append(installs, callbackInstall{EventDeviceMotion, TargetWindow, true, m.onDeviceMotion})
	}
	if setup.GyrometerEnabled {
		installs = append(installs, callbackInstall{EventDeviceOrientation, TargetWindow, true, m.onDeviceOrientation})
	}

	for _, in := range installs {
		sub, err := m.source.Subscribe(in.typ, in.target, in.useCapture, in.handler)
		if err != nil {
			return fmt.Errorf("html5: subscribing %s on %s: %w", in.typ, in.target, err)
		}
		m.subscriptions = append(m.subscriptions, sub)
	}
	return nil
}

func (m *Manager) discardCallbacks() error {
	var errs []error
	for _, sub := range m.subscriptions {
		if err := sub.Unsubscribe(); err != nil {
			errs = append(errs, fmt.Errorf("html5: unsubscribing %s: %w", sub.ID(), err))
		}
	}
	m.subscriptions = nil
	return errors.Join(errs...)
}

func (m *Manager) onKeyDown(ev Event) bool {
	e, ok := ev.(*KeyboardEvent)
	if !ok {
		return false
	}
	key := m.keyTable.mapKey(e.KeyCode)
	if key == input.KeyInvalid {
		return false
	}
	if e.Repeat {
		m.Keyboard.OnKeyRepeat(key)
	} else {
		m.Keyboard.OnKeyDown(key)
	}
	if m.Keyboard.IsCapturingText() {
		// Tab, BackSpace and Enter keep their browser behavior while a text
		// field is active, every other mapped key is consumed.
		return key != input.KeyTab && key != input.KeyBackSpace && key != input.KeyEnter
	}
	return true
}

func (m *Manager) onKeyUp(ev Event) bool {
	e, ok := ev.(*KeyboardEvent)
	if !ok {
		return false
	}
	key := m.keyTable.mapKey(e.KeyCode)
	if key == input.KeyInvalid {
		return false
	}
	m.Keyboard.OnKeyUp(key)
	return true
}

func (m *Manager) onKeyPress(ev Event) bool {
	e, ok := ev.(*KeyboardEvent)
	if !ok {
		return false
	}
	m.Keyboard.OnChar(rune(e.CharCode))
	return true
}

func mapMouseButton(button uint16) input.MouseButton {
	switch button {
	case 0:
		return input.MouseButtonLeft
	case 1:
		return input.MouseButtonMiddle
	case 2:
		return input.MouseButtonRight
	default:
		return input.MouseButtonInvalid
	}
}

// applyPointerLockMode requests the lock for PointerLockModeEnable and
// releases it for every other mode. Returns whether the lock is active.
func (m *Manager) applyPointerLockMode(mode input.PointerLockMode) bool {
	if mode == input.PointerLockModeEnable {
		if err := m.source.RequestPointerLock(m.InputSetup().CanvasSelector); err != nil {
			core.LogWarn("html5: pointer lock request failed: %s", err)
			return false
		}
		return true
	}
	if err := m.source.ExitPointerLock(); err != nil {
		core.LogWarn("html5: pointer lock exit failed: %s", err)
	}
	return false
}

func (m *Manager) onMouseDown(ev Event) bool {
	e, ok := ev.(*MouseEvent)
	if !ok {
		return false
	}
	if btn := mapMouseButton(e.Button); btn != input.MouseButtonInvalid {
		mode := m.Mouse.OnButtonDown(btn)
		m.pointerLockActive = m.applyPointerLockMode(mode)
	}
	return true
}

func (m *Manager) onMouseUp(ev Event) bool {
	e, ok := ev.(*MouseEvent)
	if !ok {
		return false
	}
	if btn := mapMouseButton(e.Button); btn != input.MouseButtonInvalid {
		mode := m.Mouse.OnButtonUp(btn)
		m.pointerLockActive = m.applyPointerLockMode(mode)
	}
	return true
}

func (m *Manager) onMouseMove(ev Event) bool {
	e, ok := ev.(*MouseEvent)
	if !ok {
		return false
	}
	// While locked the pointer has no meaningful position, only movement.
	if m.pointerLockActive {
		m.Mouse.OnMov(math.NewVec2(float32(e.MovementX), float32(e.MovementY)))
	} else {
		m.Mouse.OnPosMov(math.NewVec2(float32(e.CanvasX), float32(e.CanvasY)))
	}
	return true
}

func (m *Manager) onWheel(ev Event) bool {
	e, ok := ev.(*WheelEvent)
	if !ok {
		return false
	}
	m.Mouse.OnScroll(math.NewVec2(float32(e.DeltaX*wheelScale), float32(-e.DeltaY*wheelScale)))
	return true
}

func mapTouchEventType(typ EventType) input.TouchEventType {
	switch typ {
	case EventTouchStart:
		return input.TouchEventBegan
	case EventTouchEnd:
		return input.TouchEventEnded
	case EventTouchMove:
		return input.TouchEventMoved
	case EventTouchCancel:
		return input.TouchEventCancelled
	default:
		return input.TouchEventInvalid
	}
}

func (m *Manager) onTouch(ev Event) bool {
	e, ok := ev.(*TouchEvent)
	if !ok {
		return false
	}
	typ := mapTouchEventType(e.Type)
	if typ == input.TouchEventInvalid {
		return false
	}

	event := input.TouchEvent{
		Type: typ,
		Time: m.clock.Now(),
	}
	event.NumTouches = math.Min(math.Min(e.NumTouches, len(e.Touches)), input.MaxNumTouchPoints)
	if event.NumTouches < 0 {
		event.NumTouches = 0
	}
	for i := 0; i < event.NumTouches; i++ {
		t := &e.Touches[i]
		event.Points[i] = input.TouchPoint{
			Identifier: t.Identifier,
			Pos:        math.NewVec2(float32(t.CanvasX), float32(t.CanvasY)),
			IsChanged:  t.IsChanged,
		}
	}
	m.OnTouchEvent(&event)
	return true
}

func (m *Manager) onDeviceMotion(ev Event) bool {
	e, ok := ev.(*DeviceMotionEvent)
	if !ok {
		return false
	}
	m.Sensors.Acceleration = math.NewVec3(
		float32(-e.AccelerationIncludingGravityX),
		float32(-e.AccelerationIncludingGravityY),
		float32(-e.AccelerationIncludingGravityZ),
	)
	m.OnSensors()
	return true
}

func (m *Manager) onDeviceOrientation(ev Event) bool {
	e, ok := ev.(*DeviceOrientationEvent)
	if !ok {
		return false
	}
	// FIXME: roll is gamma as reported by the browser, which is not the
	// device roll once the screen is rotated to landscape.
	m.Sensors.Roll = float32(math.DegToRad(e.Gamma))
	m.Sensors.Pitch = float32(math.DegToRad(e.Beta))
	m.Sensors.Yaw = float32(math.DegToRad(e.Alpha))
	m.OnSensors()
	return true
}
