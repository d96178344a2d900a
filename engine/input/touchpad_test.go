package input

import (
	"testing"
	"time"

	"github.com/spaghettifunk/lumen/engine/math"
)

var t0 = time.Unix(1000, 0)

func touch(typ TouchEventType, at time.Duration, points ...TouchPoint) *TouchEvent {
	ev := &TouchEvent{Type: typ, Time: t0.Add(at), NumTouches: len(points)}
	copy(ev.Points[:], points)
	return ev
}

func pt(id int, x, y float32) TouchPoint {
	return TouchPoint{Identifier: id, Pos: math.NewVec2(x, y), IsChanged: true}
}

func TestTouchpadTapAndDoubleTap(t *testing.T) {
	tp := NewTouchpad(DefaultSetup())

	tp.OnTouchEvent(touch(TouchEventBegan, 0, pt(1, 50, 50)))
	tp.OnTouchEvent(touch(TouchEventEnded, 100*time.Millisecond, pt(1, 52, 51)))
	if !tp.Tapped || tp.DoubleTapped {
		t.Fatalf("Tapped=%v DoubleTapped=%v after one tap", tp.Tapped, tp.DoubleTapped)
	}
	if tp.Position(0) != math.NewVec2(52, 51) {
		t.Errorf("tap position = %v", tp.Position(0))
	}
	tp.Reset()
	if tp.Tapped {
		t.Fatal("Tapped survives Reset")
	}

	tp.OnTouchEvent(touch(TouchEventBegan, 200*time.Millisecond, pt(2, 51, 50)))
	tp.OnTouchEvent(touch(TouchEventEnded, 250*time.Millisecond, pt(2, 51, 50)))
	if !tp.Tapped || !tp.DoubleTapped {
		t.Errorf("Tapped=%v DoubleTapped=%v after second tap", tp.Tapped, tp.DoubleTapped)
	}
}

func TestTouchpadSlowTouchIsNotATap(t *testing.T) {
	tp := NewTouchpad(DefaultSetup())
	tp.OnTouchEvent(touch(TouchEventBegan, 0, pt(1, 0, 0)))
	tp.OnTouchEvent(touch(TouchEventEnded, time.Second, pt(1, 0, 0)))
	if tp.Tapped {
		t.Error("long press reported as tap")
	}
	tp.OnTouchEvent(touch(TouchEventBegan, 2*time.Second, pt(2, 0, 0)))
	tp.OnTouchEvent(touch(TouchEventCancelled, 2*time.Second+10*time.Millisecond, pt(2, 0, 0)))
	if tp.Tapped {
		t.Error("cancelled touch reported as tap")
	}
}

func TestTouchpadPan(t *testing.T) {
	tp := NewTouchpad(DefaultSetup())
	tp.OnTouchEvent(touch(TouchEventBegan, 0, pt(1, 0, 0)))
	tp.OnTouchEvent(touch(TouchEventMoved, 10*time.Millisecond, pt(1, 5, 0)))
	if tp.Panning {
		t.Fatal("pan started below the tap distance")
	}
	tp.OnTouchEvent(touch(TouchEventMoved, 20*time.Millisecond, pt(1, 30, 0)))
	if !tp.Panning || !tp.PanningStarted {
		t.Fatal("pan not started")
	}
	if tp.StartPosition(0) != math.NewVec2(0, 0) || tp.Position(0) != math.NewVec2(30, 0) {
		t.Errorf("start %v pos %v", tp.StartPosition(0), tp.Position(0))
	}
	if tp.Movement(0) != math.NewVec2(25, 0) {
		t.Errorf("movement = %v, want (25,0)", tp.Movement(0))
	}
	tp.Reset()
	tp.OnTouchEvent(touch(TouchEventEnded, 30*time.Millisecond, pt(1, 30, 0)))
	if tp.Panning || !tp.PanningEnded || tp.Tapped {
		t.Errorf("Panning=%v PanningEnded=%v Tapped=%v", tp.Panning, tp.PanningEnded, tp.Tapped)
	}
	if tp.NumTouches() != 0 {
		t.Errorf("NumTouches = %d", tp.NumTouches())
	}
}

func TestTouchpadPinch(t *testing.T) {
	tp := NewTouchpad(DefaultSetup())
	tp.OnTouchEvent(touch(TouchEventBegan, 0, pt(1, 0, 0)))
	tp.OnTouchEvent(touch(TouchEventBegan, 5*time.Millisecond, TouchPoint{Identifier: 1, Pos: math.NewVec2(0, 0)}, pt(2, 100, 0)))
	if !tp.Pinching || !tp.PinchingStarted || tp.NumTouches() != 2 {
		t.Fatalf("Pinching=%v Started=%v touches=%d", tp.Pinching, tp.PinchingStarted, tp.NumTouches())
	}
	tp.OnTouchEvent(touch(TouchEventMoved, 10*time.Millisecond, pt(2, 80, 0)))
	if tp.Position(1) != math.NewVec2(80, 0) || tp.Movement(1) != math.NewVec2(-20, 0) {
		t.Errorf("finger 1 pos %v movement %v", tp.Position(1), tp.Movement(1))
	}
	tp.OnTouchEvent(touch(TouchEventEnded, 20*time.Millisecond, pt(1, 0, 0)))
	if tp.Pinching || !tp.PinchingEnded || tp.Tapped {
		t.Errorf("Pinching=%v Ended=%v Tapped=%v", tp.Pinching, tp.PinchingEnded, tp.Tapped)
	}
	if tp.Position(2) != (math.Vec2{}) {
		t.Error("out of range finger should be zero")
	}
}

func TestTouchpadPinchEndsWhenPinchFingerLifts(t *testing.T) {
	tp := NewTouchpad(DefaultSetup())
	tp.OnTouchEvent(touch(TouchEventBegan, 0, pt(1, 0, 0), pt(2, 100, 0)))
	if !tp.Pinching {
		t.Fatal("pinch not started")
	}
	tp.OnTouchEvent(touch(TouchEventBegan, 5*time.Millisecond, pt(3, 500, 500)))
	if !tp.Pinching || tp.NumTouches() != 3 {
		t.Fatalf("third finger changed the pinch: Pinching=%v touches=%d", tp.Pinching, tp.NumTouches())
	}

	tp.OnTouchEvent(touch(TouchEventEnded, 10*time.Millisecond, pt(1, 0, 0)))
	if tp.Pinching || !tp.PinchingEnded {
		t.Fatalf("Pinching=%v Ended=%v", tp.Pinching, tp.PinchingEnded)
	}
	tp.Reset()
	tp.OnTouchEvent(touch(TouchEventMoved, 15*time.Millisecond, pt(3, 520, 500)))
	if tp.Position(0) != math.NewVec2(0, 0) || tp.Movement(0) != (math.Vec2{}) {
		t.Errorf("third finger took over the pinch: pos %v movement %v", tp.Position(0), tp.Movement(0))
	}
}
