//go:build js && wasm

package dom

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/google/uuid"
	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/input/html5"
)

var ErrTargetNotFound = errors.New("event target not found")

// Source installs DOM event listeners. Listeners call back into Go on the
// browser's event loop, which is the only thread wasm code runs on.
type Source struct {
	window   js.Value
	document js.Value
}

var _ html5.EventSource = (*Source)(nil)

func New() *Source {
	return &Source{
		window:   js.Global(),
		document: js.Global().Get("document"),
	}
}

type subscription struct {
	id       uuid.UUID
	target   js.Value
	name     string
	fn       js.Func
	capture  bool
	released bool
}

func (s *subscription) ID() uuid.UUID {
	return s.id
}

func (s *subscription) Unsubscribe() error {
	if s.released {
		return nil
	}
	s.target.Call("removeEventListener", s.name, s.fn, s.capture)
	s.fn.Release()
	s.released = true
	return nil
}

func (s *Source) element(target string) (js.Value, error) {
	switch target {
	case html5.TargetWindow:
		return s.window, nil
	case html5.TargetDocument:
		return s.document, nil
	}
	el := s.document.Call("querySelector", target)
	if el.IsNull() || el.IsUndefined() {
		return js.Null(), fmt.Errorf("%w: %s", ErrTargetNotFound, target)
	}
	return el, nil
}

func (s *Source) Subscribe(typ html5.EventType, target string, useCapture bool, handler html5.Handler) (html5.Subscription, error) {
	if handler == nil {
		return nil, core.ErrNilCallback
	}
	el, err := s.element(target)
	if err != nil {
		return nil, err
	}

	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		jsEvent := args[0]
		ev := convert(typ, jsEvent, el)
		if ev != nil && handler(ev) {
			jsEvent.Call("preventDefault")
		}
		return nil
	})

	// passive must be off, otherwise preventDefault is ignored for wheel and
	// touch listeners.
	opts := js.ValueOf(map[string]any{
		"capture": useCapture,
		"passive": false,
	})
	el.Call("addEventListener", typ.String(), fn, opts)

	return &subscription{
		id:      uuid.New(),
		target:  el,
		name:    typ.String(),
		fn:      fn,
		capture: useCapture,
	}, nil
}

func (s *Source) RequestPointerLock(target string) error {
	el, err := s.element(target)
	if err != nil {
		return err
	}
	if el.Get("requestPointerLock").IsUndefined() {
		return errors.New("pointer lock not supported")
	}
	el.Call("requestPointerLock")
	return nil
}

func (s *Source) ExitPointerLock() error {
	if s.document.Get("exitPointerLock").IsUndefined() {
		return nil
	}
	s.document.Call("exitPointerLock")
	return nil
}

func convert(typ html5.EventType, ev js.Value, target js.Value) html5.Event {
	switch typ {
	case html5.EventKeyDown, html5.EventKeyUp, html5.EventKeyPress:
		return &html5.KeyboardEvent{
			Type:     typ,
			Key:      str(ev, "key"),
			Code:     str(ev, "code"),
			KeyCode:  uint32(num(ev, "keyCode")),
			CharCode: uint32(num(ev, "charCode")),
			Which:    uint32(num(ev, "which")),
			Repeat:   boolean(ev, "repeat"),
			CtrlKey:  boolean(ev, "ctrlKey"),
			ShiftKey: boolean(ev, "shiftKey"),
			AltKey:   boolean(ev, "altKey"),
			MetaKey:  boolean(ev, "metaKey"),
		}
	case html5.EventMouseDown, html5.EventMouseUp, html5.EventMouseMove:
		e := mouseEvent(typ, ev, target)
		return &e
	case html5.EventWheel:
		return &html5.WheelEvent{
			Type:      typ,
			Mouse:     mouseEvent(typ, ev, target),
			DeltaX:    num(ev, "deltaX"),
			DeltaY:    num(ev, "deltaY"),
			DeltaZ:    num(ev, "deltaZ"),
			DeltaMode: uint32(num(ev, "deltaMode")),
		}
	case html5.EventTouchStart, html5.EventTouchEnd, html5.EventTouchMove, html5.EventTouchCancel:
		return touchEvent(typ, ev, target)
	case html5.EventDeviceMotion:
		e := &html5.DeviceMotionEvent{Type: typ}
		if a := ev.Get("acceleration"); isObject(a) {
			e.AccelerationX, e.AccelerationY, e.AccelerationZ = num(a, "x"), num(a, "y"), num(a, "z")
		}
		if g := ev.Get("accelerationIncludingGravity"); isObject(g) {
			e.AccelerationIncludingGravityX = num(g, "x")
			e.AccelerationIncludingGravityY = num(g, "y")
			e.AccelerationIncludingGravityZ = num(g, "z")
		}
		if r := ev.Get("rotationRate"); isObject(r) {
			e.RotationRateAlpha, e.RotationRateBeta, e.RotationRateGamma = num(r, "alpha"), num(r, "beta"), num(r, "gamma")
		}
		return e
	case html5.EventDeviceOrientation:
		return &html5.DeviceOrientationEvent{
			Type:     typ,
			Alpha:    num(ev, "alpha"),
			Beta:     num(ev, "beta"),
			Gamma:    num(ev, "gamma"),
			Absolute: boolean(ev, "absolute"),
		}
	}
	return nil
}

func mouseEvent(typ html5.EventType, ev js.Value, target js.Value) html5.MouseEvent {
	clientX, clientY := int32(num(ev, "clientX")), int32(num(ev, "clientY"))
	left, top := targetOrigin(target)
	return html5.MouseEvent{
		Type:      typ,
		Button:    uint16(num(ev, "button")),
		Buttons:   uint16(num(ev, "buttons")),
		ClientX:   clientX,
		ClientY:   clientY,
		MovementX: int32(num(ev, "movementX")),
		MovementY: int32(num(ev, "movementY")),
		CanvasX:   clientX - left,
		CanvasY:   clientY - top,
		CtrlKey:   boolean(ev, "ctrlKey"),
		ShiftKey:  boolean(ev, "shiftKey"),
		AltKey:    boolean(ev, "altKey"),
		MetaKey:   boolean(ev, "metaKey"),
	}
}

// touchEvent merges touches and changedTouches, so points that just ended
// are still reported, flagged as changed.
func touchEvent(typ html5.EventType, ev js.Value, target js.Value) *html5.TouchEvent {
	left, top := targetOrigin(target)
	e := &html5.TouchEvent{
		Type:     typ,
		CtrlKey:  boolean(ev, "ctrlKey"),
		ShiftKey: boolean(ev, "shiftKey"),
		AltKey:   boolean(ev, "altKey"),
		MetaKey:  boolean(ev, "metaKey"),
	}
	index := make(map[int]int)
	add := func(list js.Value) []int {
		var ids []int
		if !isObject(list) {
			return ids
		}
		for i := 0; i < list.Length(); i++ {
			t := list.Index(i)
			id := int(num(t, "identifier"))
			ids = append(ids, id)
			if _, ok := index[id]; ok {
				continue
			}
			clientX, clientY := int32(num(t, "clientX")), int32(num(t, "clientY"))
			index[id] = len(e.Touches)
			e.Touches = append(e.Touches, html5.Touch{
				Identifier: id,
				ClientX:    clientX,
				ClientY:    clientY,
				CanvasX:    clientX - left,
				CanvasY:    clientY - top,
			})
		}
		return ids
	}
	add(ev.Get("touches"))
	for _, id := range add(ev.Get("changedTouches")) {
		e.Touches[index[id]].IsChanged = true
	}
	for _, id := range add(ev.Get("targetTouches")) {
		e.Touches[index[id]].OnTarget = true
	}
	e.NumTouches = len(e.Touches)
	return e
}

func targetOrigin(target js.Value) (int32, int32) {
	if target.Get("getBoundingClientRect").IsUndefined() {
		return 0, 0
	}
	rect := target.Call("getBoundingClientRect")
	return int32(num(rect, "left")), int32(num(rect, "top"))
}

func isObject(v js.Value) bool {
	return !v.IsNull() && !v.IsUndefined()
}

func num(v js.Value, name string) float64 {
	f := v.Get(name)
	if f.Type() != js.TypeNumber {
		return 0
	}
	return f.Float()
}

func str(v js.Value, name string) string {
	s := v.Get(name)
	if s.Type() != js.TypeString {
		return ""
	}
	return s.String()
}

func boolean(v js.Value, name string) bool {
	b := v.Get(name)
	return b.Type() == js.TypeBoolean && b.Bool()
}
