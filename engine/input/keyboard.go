package input

import (
	"github.com/spaghettifunk/lumen/engine/containers"
	"github.com/spaghettifunk/lumen/engine/core"
)

// MaxNumChars is the number of characters captured per frame; extra
// characters are dropped.
const MaxNumChars = 128

// Keyboard holds the key state fed by a platform adapter. Down, up and repeat
// flags live for one frame; pressed flags until the key is released.
type Keyboard struct {
	Attached bool

	pressed [KeyNumKeys]bool
	down    [KeyNumKeys]bool
	up      [KeyNumKeys]bool
	repeat  [KeyNumKeys]bool

	capturingText bool
	chars         *containers.RingQueue[rune]

	bus *core.EventBus
}

func NewKeyboard(bus *core.EventBus) *Keyboard {
	return &Keyboard{
		chars: containers.NewRingQueue[rune](MaxNumChars),
		bus:   bus,
	}
}

// keyboard input
func (kb *Keyboard) KeyPressed(key Key) bool {
	return key.IsValid() && kb.pressed[key]
}

// KeyDown reports whether key went down this frame.
func (kb *Keyboard) KeyDown(key Key) bool {
	return key.IsValid() && kb.down[key]
}

// KeyUp reports whether key went up this frame.
func (kb *Keyboard) KeyUp(key Key) bool {
	return key.IsValid() && kb.up[key]
}

func (kb *Keyboard) KeyRepeat(key Key) bool {
	return key.IsValid() && kb.repeat[key]
}

func (kb *Keyboard) AnyKeyPressed() bool {
	for _, p := range kb.pressed {
		if p {
			return true
		}
	}
	return false
}

func (kb *Keyboard) BeginCaptureText() {
	kb.capturingText = true
	kb.chars.Clear()
}

func (kb *Keyboard) EndCaptureText() {
	kb.capturingText = false
}

func (kb *Keyboard) IsCapturingText() bool {
	return kb.capturingText
}

// CapturedText returns the characters received this frame while capturing.
func (kb *Keyboard) CapturedText() string {
	return string(kb.chars.Items())
}

func (kb *Keyboard) ClearCapturedText() {
	kb.chars.Clear()
}

func (kb *Keyboard) OnKeyDown(key Key) {
	if !key.IsValid() {
		return
	}
	kb.down[key] = true
	kb.pressed[key] = true
	kb.fire(core.EVENT_CODE_KEY_PRESSED, KeyEvent{Key: key})
}

func (kb *Keyboard) OnKeyUp(key Key) {
	if !key.IsValid() {
		return
	}
	kb.up[key] = true
	kb.pressed[key] = false
	kb.fire(core.EVENT_CODE_KEY_RELEASED, KeyEvent{Key: key})
}

func (kb *Keyboard) OnKeyRepeat(key Key) {
	if !key.IsValid() {
		return
	}
	kb.repeat[key] = true
	kb.fire(core.EVENT_CODE_KEY_REPEAT, KeyEvent{Key: key, Repeat: true})
}

// OnChar records a character while text capture is active. Characters
// received while not capturing are still fired on the bus.
func (kb *Keyboard) OnChar(c rune) {
	if kb.capturingText && c != 0 {
		if err := kb.chars.Enqueue(c); err != nil {
			core.LogDebug("dropping character %q: %s", c, err)
		}
	}
	kb.fire(core.EVENT_CODE_CHAR, CharEvent{Char: c})
}

// Reset clears the per-frame state.
func (kb *Keyboard) Reset() {
	kb.down = [KeyNumKeys]bool{}
	kb.up = [KeyNumKeys]bool{}
	kb.repeat = [KeyNumKeys]bool{}
	kb.chars.Clear()
}

// ReleaseAll forgets held keys, used when the adapter loses focus or is
// discarded.
func (kb *Keyboard) ReleaseAll() {
	kb.pressed = [KeyNumKeys]bool{}
	kb.Reset()
}

func (kb *Keyboard) fire(code core.EventCode, data interface{}) {
	if kb.bus != nil {
		kb.bus.Fire(code, kb, core.EventContext{Data: data})
	}
}
