package html5

import "github.com/spaghettifunk/lumen/engine/input"

// MaxNumKeys is the size of the keyCode table; larger codes are unmapped.
const MaxNumKeys = 256

// keyTable maps DOM keyCode values to engine keys. Every entry not listed
// in setup stays input.KeyInvalid.
type keyTable [MaxNumKeys]input.Key

func (kt *keyTable) setup() {
	for i := range kt {
		kt[i] = input.KeyInvalid
	}

	kt[8] = input.KeyBackSpace
	kt[9] = input.KeyTab
	kt[13] = input.KeyEnter
	kt[16] = input.KeyLeftShift
	kt[17] = input.KeyLeftControl
	kt[18] = input.KeyLeftAlt
	kt[19] = input.KeyPause
	kt[27] = input.KeyEscape
	kt[32] = input.KeySpace
	kt[33] = input.KeyPageUp
	kt[34] = input.KeyPageDown
	kt[35] = input.KeyEnd
	kt[36] = input.KeyHome
	kt[37] = input.KeyLeft
	kt[38] = input.KeyUp
	kt[39] = input.KeyRight
	kt[40] = input.KeyDown
	kt[45] = input.KeyInsert
	kt[46] = input.KeyDelete
	kt[48] = input.KeyN0
	kt[49] = input.KeyN1
	kt[50] = input.KeyN2
	kt[51] = input.KeyN3
	kt[52] = input.KeyN4
	kt[53] = input.KeyN5
	kt[54] = input.KeyN6
	kt[55] = input.KeyN7
	kt[56] = input.KeyN8
	kt[57] = input.KeyN9
	kt[59] = input.KeySemicolon
	kt[64] = input.KeyEqual
	kt[65] = input.KeyA
	kt[66] = input.KeyB
	kt[67] = input.KeyC
	kt[68] = input.KeyD
	kt[69] = input.KeyE
	kt[70] = input.KeyF
	kt[71] = input.KeyG
	kt[72] = input.KeyH
	kt[73] = input.KeyI
	kt[74] = input.KeyJ
	kt[75] = input.KeyK
	kt[76] = input.KeyL
	kt[77] = input.KeyM
	kt[78] = input.KeyN
	kt[79] = input.KeyO
	kt[80] = input.KeyP
	kt[81] = input.KeyQ
	kt[82] = input.KeyR
	kt[83] = input.KeyS
	kt[84] = input.KeyT
	kt[85] = input.KeyU
	kt[86] = input.KeyV
	kt[87] = input.KeyW
	kt[88] = input.KeyX
	kt[89] = input.KeyY
	kt[90] = input.KeyZ
	kt[93] = input.KeyMenu
	kt[96] = input.KeyNum0
	kt[97] = input.KeyNum1
	kt[98] = input.KeyNum2
	kt[99] = input.KeyNum3
	kt[100] = input.KeyNum4
	kt[101] = input.KeyNum5
	kt[102] = input.KeyNum6
	kt[103] = input.KeyNum7
	kt[104] = input.KeyNum8
	kt[105] = input.KeyNum9
	kt[106] = input.KeyNumMultiply
	kt[107] = input.KeyNumAdd
	kt[109] = input.KeyNumSubtract
	kt[110] = input.KeyNumDecimal
	kt[111] = input.KeyNumDivide
	kt[112] = input.KeyF1
	kt[113] = input.KeyF2
	kt[114] = input.KeyF3
	kt[115] = input.KeyF4
	kt[116] = input.KeyF5
	kt[117] = input.KeyF6
	kt[118] = input.KeyF7
	kt[119] = input.KeyF8
	kt[120] = input.KeyF9
	kt[121] = input.KeyF10
	kt[122] = input.KeyF11
	kt[123] = input.KeyF12
	kt[144] = input.KeyNumLock
	kt[145] = input.KeyScrollLock
	kt[173] = input.KeyMinus
	kt[188] = input.KeyComma
	kt[190] = input.KeyPeriod
	kt[191] = input.KeySlash
	kt[192] = input.KeyGraveAccent
	kt[219] = input.KeyLeftBracket
	kt[220] = input.KeyBackSlash
	kt[221] = input.KeyRightBracket
	kt[222] = input.KeyApostrophe
	kt[224] = input.KeyLeftSuper
}

func (kt *keyTable) mapKey(keyCode uint32) input.Key {
	if keyCode < MaxNumKeys {
		return kt[keyCode]
	}
	return input.KeyInvalid
}
