package html5

import "github.com/google/uuid"

// Targets understood by every EventSource besides CSS selectors.
const (
	TargetWindow   = "#window"
	TargetDocument = "#document"
)

// EventType names a host input event. String returns the DOM event name.
type EventType uint8

const (
	EventKeyDown EventType = iota
	EventKeyUp
	EventKeyPress
	EventMouseDown
	EventMouseUp
	EventMouseMove
	EventWheel
	EventTouchStart
	EventTouchEnd
	EventTouchMove
	EventTouchCancel
	EventDeviceMotion
	EventDeviceOrientation
	numEventTypes
)

var eventTypeNames = [numEventTypes]string{
	"keydown",
	"keyup",
	"keypress",
	"mousedown",
	"mouseup",
	"mousemove",
	"wheel",
	"touchstart",
	"touchend",
	"touchmove",
	"touchcancel",
	"devicemotion",
	"deviceorientation",
}

func (t EventType) String() string {
	if t >= numEventTypes {
		return "unknown"
	}
	return eventTypeNames[t]
}

// Event is one of the event records below.
type Event interface {
	EventType() EventType
}

type KeyboardEvent struct {
	Type     EventType
	Key      string
	Code     string
	KeyCode  uint32
	CharCode uint32
	Which    uint32
	Repeat   bool
	CtrlKey  bool
	ShiftKey bool
	AltKey   bool
	MetaKey  bool
}

func (e *KeyboardEvent) EventType() EventType { return e.Type }

// MouseEvent mirrors the DOM mouse event. Canvas coordinates are relative to
// the top-left corner of the target element.
type MouseEvent struct {
	Type      EventType
	Button    uint16
	Buttons   uint16
	ClientX   int32
	ClientY   int32
	MovementX int32
	MovementY int32
	CanvasX   int32
	CanvasY   int32
	CtrlKey   bool
	ShiftKey  bool
	AltKey    bool
	MetaKey   bool
}

func (e *MouseEvent) EventType() EventType { return e.Type }

type WheelEvent struct {
	Type      EventType
	Mouse     MouseEvent
	DeltaX    float64
	DeltaY    float64
	DeltaZ    float64
	DeltaMode uint32
}

func (e *WheelEvent) EventType() EventType { return e.Type }

type Touch struct {
	Identifier int
	ClientX    int32
	ClientY    int32
	CanvasX    int32
	CanvasY    int32
	// IsChanged is set for touches listed in the event's changedTouches.
	IsChanged bool
	// OnTarget is set for touches listed in the event's targetTouches.
	OnTarget bool
}

type TouchEvent struct {
	Type EventType
	// NumTouches is the count reported by the host; Touches may be longer
	// but never shorter.
	NumTouches int
	Touches    []Touch
	CtrlKey    bool
	ShiftKey   bool
	AltKey     bool
	MetaKey    bool
}

func (e *TouchEvent) EventType() EventType { return e.Type }

type DeviceMotionEvent struct {
	Type                          EventType
	AccelerationX                 float64
	AccelerationY                 float64
	AccelerationZ                 float64
	AccelerationIncludingGravityX float64
	AccelerationIncludingGravityY float64
	AccelerationIncludingGravityZ float64
	RotationRateAlpha             float64
	RotationRateBeta              float64
	RotationRateGamma             float64
}

func (e *DeviceMotionEvent) EventType() EventType { return e.Type }

// DeviceOrientationEvent angles are in degrees.
type DeviceOrientationEvent struct {
	Type     EventType
	Alpha    float64
	Beta     float64
	Gamma    float64
	Absolute bool
}

func (e *DeviceOrientationEvent) EventType() EventType { return e.Type }

// Handler receives host events. Returning true consumes the event and
// suppresses the host's default handling.
type Handler func(ev Event) bool

// Subscription is one installed host callback.
type Subscription interface {
	ID() uuid.UUID
	Unsubscribe() error
}

// EventSource is the host side of the adapter: it installs callbacks on a
// target and drives the pointer lock.
type EventSource interface {
	Subscribe(typ EventType, target string, useCapture bool, handler Handler) (Subscription, error)
	RequestPointerLock(target string) error
	ExitPointerLock() error
}
