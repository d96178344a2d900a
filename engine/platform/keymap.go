package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/lumen/engine/input"
)

var keyMap = buildKeyMap()

func buildKeyMap() map[glfw.Key]input.Key {
	m := map[glfw.Key]input.Key{
		glfw.KeySpace:        input.KeySpace,
		glfw.KeyApostrophe:   input.KeyApostrophe,
		glfw.KeyComma:        input.KeyComma,
		glfw.KeyMinus:        input.KeyMinus,
		glfw.KeyPeriod:       input.KeyPeriod,
		glfw.KeySlash:        input.KeySlash,
		glfw.KeySemicolon:    input.KeySemicolon,
		glfw.KeyEqual:        input.KeyEqual,
		glfw.KeyLeftBracket:  input.KeyLeftBracket,
		glfw.KeyBackslash:    input.KeyBackSlash,
		glfw.KeyRightBracket: input.KeyRightBracket,
		glfw.KeyGraveAccent:  input.KeyGraveAccent,
		glfw.KeyWorld1:       input.KeyWorld1,
		glfw.KeyWorld2:       input.KeyWorld2,
		glfw.KeyEscape:       input.KeyEscape,
		glfw.KeyEnter:        input.KeyEnter,
		glfw.KeyTab:          input.KeyTab,
		glfw.KeyBackspace:    input.KeyBackSpace,
		glfw.KeyInsert:       input.KeyInsert,
		glfw.KeyDelete:       input.KeyDelete,
		glfw.KeyRight:        input.KeyRight,
		glfw.KeyLeft:         input.KeyLeft,
		glfw.KeyDown:         input.KeyDown,
		glfw.KeyUp:           input.KeyUp,
		glfw.KeyPageUp:       input.KeyPageUp,
		glfw.KeyPageDown:     input.KeyPageDown,
		glfw.KeyHome:         input.KeyHome,
		glfw.KeyEnd:          input.KeyEnd,
		glfw.KeyCapsLock:     input.KeyCapsLock,
		glfw.KeyScrollLock:   input.KeyScrollLock,
		glfw.KeyNumLock:      input.KeyNumLock,
		glfw.KeyPrintScreen:  input.KeyPrintScreen,
		glfw.KeyPause:        input.KeyPause,
		glfw.KeyKPDecimal:    input.KeyNumDecimal,
		glfw.KeyKPDivide:     input.KeyNumDivide,
		glfw.KeyKPMultiply:   input.KeyNumMultiply,
		glfw.KeyKPSubtract:   input.KeyNumSubtract,
		glfw.KeyKPAdd:        input.KeyNumAdd,
		glfw.KeyKPEnter:      input.KeyNumEnter,
		glfw.KeyKPEqual:      input.KeyNumEqual,
		glfw.KeyLeftShift:    input.KeyLeftShift,
		glfw.KeyLeftControl:  input.KeyLeftControl,
		glfw.KeyLeftAlt:      input.KeyLeftAlt,
		glfw.KeyLeftSuper:    input.KeyLeftSuper,
		glfw.KeyRightShift:   input.KeyRightShift,
		glfw.KeyRightControl: input.KeyRightControl,
		glfw.KeyRightAlt:     input.KeyRightAlt,
		glfw.KeyRightSuper:   input.KeyRightSuper,
		glfw.KeyMenu:         input.KeyMenu,
	}
	// Digits, letters, function and keypad keys are contiguous on both sides.
	for i := glfw.Key(0); i <= glfw.Key9-glfw.Key0; i++ {
		m[glfw.Key0+i] = input.KeyN0 + input.Key(i)
		m[glfw.KeyKP0+i] = input.KeyNum0 + input.Key(i)
	}
	for i := glfw.Key(0); i <= glfw.KeyZ-glfw.KeyA; i++ {
		m[glfw.KeyA+i] = input.KeyA + input.Key(i)
	}
	for i := glfw.Key(0); i <= glfw.KeyF25-glfw.KeyF1; i++ {
		m[glfw.KeyF1+i] = input.KeyF1 + input.Key(i)
	}
	return m
}

// MapKey translates a GLFW key into an engine key.
func MapKey(key glfw.Key) input.Key {
	if k, ok := keyMap[key]; ok {
		return k
	}
	return input.KeyInvalid
}
