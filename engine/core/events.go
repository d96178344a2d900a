package core

import (
	"sync"

	"github.com/google/uuid"
)

// EventContext carries the payload of a fired event. Data holds one of the
// input event records (key, button, move, scroll, touch).
type EventContext struct {
	Data interface{}
}

// Input event codes fired by the input devices.
type EventCode uint16

const (
	// Keyboard key pressed. Data: input.KeyEvent
	EVENT_CODE_KEY_PRESSED EventCode = 0x02

	// Keyboard key released. Data: input.KeyEvent
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Mouse button pressed. Data: input.ButtonEvent
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04

	// Mouse button released. Data: input.ButtonEvent
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05

	// Mouse moved, either absolute or relative. Data: input.MoveEvent
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06

	// Mouse wheel. Data: input.ScrollEvent
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07

	// Keyboard key auto-repeat. Data: input.KeyEvent
	EVENT_CODE_KEY_REPEAT EventCode = 0x09

	// Character input while capturing text. Data: input.CharEvent
	EVENT_CODE_CHAR EventCode = 0x0A

	// Touch batch. Data: input.TouchEvent
	EVENT_CODE_TOUCH EventCode = 0x0B

	// Device motion/orientation sample. Data: input.Sensors
	EVENT_CODE_SENSORS EventCode = 0x0C
)

// Should return true if handled.
type FnOnEvent func(code EventCode, sender interface{}, data EventContext) bool

type registeredEvent struct {
	id       uuid.UUID
	callback FnOnEvent
}

// EventBus dispatches events to listeners registered per code. Listeners are
// invoked in registration order until one reports the event as handled.
type EventBus struct {
	mu         sync.RWMutex
	registered map[EventCode][]registeredEvent
}

func NewEventBus() *EventBus {
	return &EventBus{
		registered: make(map[EventCode][]registeredEvent),
	}
}

// Register listens for events fired with the provided code. The returned id
// is needed to unregister.
func (eb *EventBus) Register(code EventCode, onEvent FnOnEvent) (uuid.UUID, error) {
	if onEvent == nil {
		return uuid.Nil, ErrNilCallback
	}
	eb.mu.Lock()
	defer eb.mu.Unlock()

	id := uuid.New()
	eb.registered[code] = append(eb.registered[code], registeredEvent{
		id:       id,
		callback: onEvent,
	})
	return id, nil
}

// Unregister stops the listener with the given id from receiving code.
func (eb *EventBus) Unregister(code EventCode, id uuid.UUID) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	events := eb.registered[code]
	for i, e := range events {
		if e.id == id {
			eb.registered[code] = append(events[:i:i], events[i+1:]...)
			if len(eb.registered[code]) == 0 {
				delete(eb.registered, code)
			}
			return nil
		}
	}
	return ErrEventNotRegistered
}

// Fire sends an event to the listeners of the given code. Returns true if a
// listener handled it.
func (eb *EventBus) Fire(code EventCode, sender interface{}, context EventContext) bool {
	eb.mu.RLock()
	events := eb.registered[code]
	snapshot := make([]registeredEvent, len(events))
	copy(snapshot, events)
	eb.mu.RUnlock()

	for _, e := range snapshot {
		if e.callback(code, sender, context) {
			// Message has been handled, do not send to other listeners.
			return true
		}
	}
	return false
}
