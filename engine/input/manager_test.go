package input

import (
	"errors"
	"testing"
	"time"

	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/math"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	if m.IsValid() {
		t.Fatal("new manager should not be valid")
	}
	if err := m.Discard(); !errors.Is(err, ErrNotSetup) {
		t.Errorf("Discard before Setup = %v", err)
	}
	setup := DefaultSetup()
	setup.GyrometerEnabled = true
	if err := m.Setup(setup); err != nil {
		t.Fatal(err)
	}
	if err := m.Setup(setup); !errors.Is(err, ErrAlreadySetup) {
		t.Errorf("second Setup = %v", err)
	}
	if !m.InputSetup().GyrometerEnabled {
		t.Error("setup not stored")
	}

	m.Keyboard.OnKeyDown(KeySpace)
	m.Mouse.OnButtonDown(MouseButtonLeft)
	m.Reset()
	if m.Keyboard.KeyDown(KeySpace) || m.Mouse.ButtonDown(MouseButtonLeft) {
		t.Error("Reset did not clear frame flags")
	}

	if err := m.Discard(); err != nil {
		t.Fatal(err)
	}
	if m.Keyboard.KeyPressed(KeySpace) || m.Mouse.ButtonPressed(MouseButtonLeft) {
		t.Error("Discard kept held state")
	}
}

func TestManagerTouchFanOut(t *testing.T) {
	m := NewManager()
	_ = m.Setup(DefaultSetup())

	var got []TouchEvent
	id, err := m.Subscribe(core.EVENT_CODE_TOUCH, func(_ core.EventCode, _ interface{}, data core.EventContext) bool {
		got = append(got, data.Data.(TouchEvent))
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	ev := &TouchEvent{Type: TouchEventBegan, Time: time.Unix(1, 0), NumTouches: 1}
	ev.Points[0] = TouchPoint{Identifier: 7, Pos: math.NewVec2(1, 2), IsChanged: true}
	m.OnTouchEvent(ev)

	if len(got) != 1 || got[0].Points[0].Identifier != 7 {
		t.Fatalf("got %v", got)
	}
	if m.Touchpad.NumTouches() != 1 {
		t.Errorf("touchpad saw %d touches", m.Touchpad.NumTouches())
	}
	if err := m.Unsubscribe(core.EVENT_CODE_TOUCH, id); err != nil {
		t.Fatal(err)
	}
	m.OnTouchEvent(ev)
	if len(got) != 1 {
		t.Error("unsubscribed listener still called")
	}
}

func TestManagerSubscribersSurviveDiscard(t *testing.T) {
	m := NewManager()
	var keys []Key
	if _, err := m.Subscribe(core.EVENT_CODE_KEY_PRESSED, func(_ core.EventCode, _ interface{}, data core.EventContext) bool {
		keys = append(keys, data.Data.(KeyEvent).Key)
		return true
	}); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if err := m.Setup(DefaultSetup()); err != nil {
			t.Fatal(err)
		}
		m.Keyboard.OnKeyDown(KeyA)
		if err := m.Discard(); err != nil {
			t.Fatal(err)
		}
	}
	if len(keys) != 2 {
		t.Errorf("subscriber saw %d key presses across two cycles, want 2", len(keys))
	}
}
