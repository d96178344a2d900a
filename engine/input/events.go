package input

import (
	"time"

	"github.com/spaghettifunk/lumen/engine/math"
)

// Payloads fired on the input event bus.

type KeyEvent struct {
	Key    Key
	Repeat bool
}

type CharEvent struct {
	Char rune
}

type ButtonEvent struct {
	Button   MouseButton
	Position math.Vec2
}

type MoveEvent struct {
	Position math.Vec2
	Movement math.Vec2
	// Relative is set for raw deltas delivered while the pointer is locked.
	Relative bool
}

type ScrollEvent struct {
	Scroll math.Vec2
}

// MaxNumTouchPoints bounds the points carried by one TouchEvent.
const MaxNumTouchPoints = 8

type TouchEventType uint8

const (
	TouchEventInvalid TouchEventType = iota
	TouchEventBegan
	TouchEventMoved
	TouchEventEnded
	TouchEventCancelled
)

func (t TouchEventType) String() string {
	switch t {
	case TouchEventBegan:
		return "began"
	case TouchEventMoved:
		return "moved"
	case TouchEventEnded:
		return "ended"
	case TouchEventCancelled:
		return "cancelled"
	default:
		return "invalid"
	}
}

type TouchPoint struct {
	Identifier int
	Pos        math.Vec2
	// IsChanged marks points that took part in this event, as opposed to
	// points that are merely still down.
	IsChanged bool
}

// TouchEvent is a batch of touch points delivered by one host callback.
type TouchEvent struct {
	Type       TouchEventType
	Time       time.Time
	NumTouches int
	Points     [MaxNumTouchPoints]TouchPoint
}

// Touches returns the valid points of the batch.
func (e *TouchEvent) Touches() []TouchPoint {
	return e.Points[:e.NumTouches]
}
