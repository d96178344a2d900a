package input

import (
	"time"

	"github.com/spaghettifunk/lumen/engine/math"
)

type touchState struct {
	start math.Vec2
	pos   math.Vec2
	began time.Time
}

// Touchpad turns touch batches into gestures: tap, double tap, single finger
// pan and two finger pinch. Started/Ended and tap flags live for one frame.
type Touchpad struct {
	Attached bool

	Tapped       bool
	DoubleTapped bool

	PanningStarted bool
	Panning        bool
	PanningEnded   bool

	PinchingStarted bool
	Pinching        bool
	PinchingEnded   bool

	position      [2]math.Vec2
	startPosition [2]math.Vec2
	movement      [2]math.Vec2

	touches      map[int]*touchState
	order        []int
	tapCandidate bool

	hasLastTap  bool
	lastTapTime time.Time
	lastTapPos  math.Vec2

	tapMaxDuration  time.Duration
	doubleTapMaxGap time.Duration
	tapMaxDistance  float32
}

func NewTouchpad(setup Setup) *Touchpad {
	tp := &Touchpad{
		touches: make(map[int]*touchState),
	}
	tp.configure(setup)
	return tp
}

func (tp *Touchpad) configure(setup Setup) {
	tp.tapMaxDuration = setup.TapMaxDuration
	tp.doubleTapMaxGap = setup.DoubleTapMaxGap
	tp.tapMaxDistance = setup.TapMaxDistance
}

// Position returns the gesture position of finger i (0 or 1). For taps and
// pans only finger 0 is used.
func (tp *Touchpad) Position(i int) math.Vec2 {
	if i < 0 || i > 1 {
		return math.Vec2{}
	}
	return tp.position[i]
}

func (tp *Touchpad) StartPosition(i int) math.Vec2 {
	if i < 0 || i > 1 {
		return math.Vec2{}
	}
	return tp.startPosition[i]
}

// Movement returns how far finger i moved this frame during a pan or pinch.
func (tp *Touchpad) Movement(i int) math.Vec2 {
	if i < 0 || i > 1 {
		return math.Vec2{}
	}
	return tp.movement[i]
}

// NumTouches returns the number of fingers currently down.
func (tp *Touchpad) NumTouches() int {
	return len(tp.touches)
}

func (tp *Touchpad) OnTouchEvent(ev *TouchEvent) {
	switch ev.Type {
	case TouchEventBegan:
		tp.onBegan(ev)
	case TouchEventMoved:
		tp.onMoved(ev)
	case TouchEventEnded, TouchEventCancelled:
		tp.onEnded(ev)
	}
}

func (tp *Touchpad) onBegan(ev *TouchEvent) {
	for _, p := range ev.Touches() {
		if !p.IsChanged {
			continue
		}
		if _, ok := tp.touches[p.Identifier]; !ok {
			tp.order = append(tp.order, p.Identifier)
		}
		tp.touches[p.Identifier] = &touchState{start: p.Pos, pos: p.Pos, began: ev.Time}
	}

	switch len(tp.touches) {
	case 0:
	case 1:
		tp.tapCandidate = true
	default:
		tp.tapCandidate = false
		if tp.Panning {
			tp.endPan()
		}
		if len(tp.touches) == 2 && !tp.Pinching {
			tp.Pinching = true
			tp.PinchingStarted = true
			for i, id := range tp.order[:2] {
				tp.position[i] = tp.touches[id].pos
				tp.startPosition[i] = tp.touches[id].pos
			}
		}
	}
}

func (tp *Touchpad) onMoved(ev *TouchEvent) {
	for _, p := range ev.Touches() {
		if !p.IsChanged {
			continue
		}
		t, ok := tp.touches[p.Identifier]
		if !ok {
			continue
		}
		delta := p.Pos.Sub(t.pos)
		t.pos = p.Pos

		switch {
		case len(tp.touches) == 1:
			if tp.tapCandidate && t.start.Distance(t.pos) > tp.tapMaxDistance {
				tp.tapCandidate = false
			}
			if !tp.tapCandidate && !tp.Panning {
				tp.Panning = true
				tp.PanningStarted = true
				tp.startPosition[0] = t.start
			}
			if tp.Panning {
				tp.position[0] = t.pos
				tp.movement[0] = tp.movement[0].Add(delta)
			}
		case tp.Pinching:
			for i, id := range tp.order[:2] {
				if id == p.Identifier {
					tp.position[i] = t.pos
					tp.movement[i] = tp.movement[i].Add(delta)
				}
			}
		}
	}
}

func (tp *Touchpad) onEnded(ev *TouchEvent) {
	for _, p := range ev.Touches() {
		if !p.IsChanged {
			continue
		}
		t, ok := tp.touches[p.Identifier]
		if !ok {
			continue
		}
		if len(tp.touches) == 1 && ev.Type == TouchEventEnded && tp.tapCandidate {
			if ev.Time.Sub(t.began) <= tp.tapMaxDuration && t.start.Distance(p.Pos) <= tp.tapMaxDistance {
				tp.onTap(ev.Time, p.Pos)
			}
		}
		if tp.Pinching && tp.isPinchFinger(p.Identifier) {
			tp.Pinching = false
			tp.PinchingEnded = true
		}
		tp.remove(p.Identifier)
	}

	if tp.Pinching && len(tp.touches) < 2 {
		tp.Pinching = false
		tp.PinchingEnded = true
	}
	if len(tp.touches) == 0 {
		tp.tapCandidate = false
		if tp.Panning {
			tp.endPan()
		}
	}
}

func (tp *Touchpad) onTap(at time.Time, pos math.Vec2) {
	tp.Tapped = true
	tp.position[0] = pos
	if tp.hasLastTap && at.Sub(tp.lastTapTime) <= tp.doubleTapMaxGap && tp.lastTapPos.Distance(pos) <= tp.tapMaxDistance {
		tp.DoubleTapped = true
		tp.hasLastTap = false
		return
	}
	tp.hasLastTap = true
	tp.lastTapTime = at
	tp.lastTapPos = pos
}

func (tp *Touchpad) endPan() {
	tp.Panning = false
	tp.PanningEnded = true
}

// isPinchFinger reports whether id is one of the two fingers a pinch
// tracks. Further fingers never take over a running pinch.
func (tp *Touchpad) isPinchFinger(id int) bool {
	for _, o := range tp.order[:min(2, len(tp.order))] {
		if o == id {
			return true
		}
	}
	return false
}

func (tp *Touchpad) remove(id int) {
	delete(tp.touches, id)
	for i, o := range tp.order {
		if o == id {
			tp.order = append(tp.order[:i], tp.order[i+1:]...)
			break
		}
	}
}

// Reset clears the per-frame state.
func (tp *Touchpad) Reset() {
	tp.Tapped = false
	tp.DoubleTapped = false
	tp.PanningStarted = false
	tp.PanningEnded = false
	tp.PinchingStarted = false
	tp.PinchingEnded = false
	tp.movement = [2]math.Vec2{}
}

// ReleaseAll forgets every finger and gesture.
func (tp *Touchpad) ReleaseAll() {
	tp.Reset()
	tp.Panning = false
	tp.Pinching = false
	tp.tapCandidate = false
	tp.hasLastTap = false
	tp.touches = make(map[int]*touchState)
	tp.order = nil
}
