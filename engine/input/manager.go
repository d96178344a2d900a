package input

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/lumen/engine/core"
)

// Manager owns the engine-neutral input state. Platform adapters embed it,
// feed the devices from their native callbacks and call Reset once per frame.
type Manager struct {
	Keyboard *Keyboard
	Mouse    *Mouse
	Touchpad *Touchpad
	Sensors  *Sensors

	setup Setup
	valid bool
	bus   *core.EventBus
}

func NewManager() *Manager {
	bus := core.NewEventBus()
	return &Manager{
		Keyboard: NewKeyboard(bus),
		Mouse:    NewMouse(bus),
		Touchpad: NewTouchpad(DefaultSetup()),
		Sensors:  &Sensors{},
		bus:      bus,
	}
}

// Setup stores the setup parameters and marks the manager valid. Device
// attachment is up to the platform adapter.
func (m *Manager) Setup(setup Setup) error {
	if m.valid {
		return ErrAlreadySetup
	}
	m.setup = setup
	m.Touchpad.configure(setup)
	m.valid = true
	core.LogInfo("Input subsystem initialized.")
	return nil
}

// Discard detaches every device and forgets held state. Subscribers stay
// registered across Setup/Discard cycles.
func (m *Manager) Discard() error {
	if !m.valid {
		return ErrNotSetup
	}
	m.Keyboard.Attached = false
	m.Mouse.Attached = false
	m.Touchpad.Attached = false
	m.Sensors.Attached = false
	m.Keyboard.ReleaseAll()
	m.Mouse.ReleaseAll()
	m.Touchpad.ReleaseAll()
	m.valid = false
	core.LogInfo("Input subsystem discarded.")
	return nil
}

func (m *Manager) IsValid() bool {
	return m.valid
}

// InputSetup returns the parameters the manager was set up with.
func (m *Manager) InputSetup() Setup {
	return m.setup
}

// Reset clears the per-frame state of every device. Adapters register it on
// the run loop so it runs after the frame.
func (m *Manager) Reset() {
	m.Keyboard.Reset()
	m.Mouse.Reset()
	m.Touchpad.Reset()
}

// OnTouchEvent feeds a touch batch to the touchpad and fires it on the bus.
func (m *Manager) OnTouchEvent(ev *TouchEvent) {
	m.Touchpad.OnTouchEvent(ev)
	m.bus.Fire(core.EVENT_CODE_TOUCH, m, core.EventContext{Data: *ev})
}

// OnSensors fires the current sensor sample on the bus.
func (m *Manager) OnSensors() {
	m.bus.Fire(core.EVENT_CODE_SENSORS, m, core.EventContext{Data: *m.Sensors})
}

// Subscribe registers fn for the given input event code.
func (m *Manager) Subscribe(code core.EventCode, fn core.FnOnEvent) (uuid.UUID, error) {
	return m.bus.Register(code, fn)
}

func (m *Manager) Unsubscribe(code core.EventCode, id uuid.UUID) error {
	return m.bus.Unregister(code, id)
}
