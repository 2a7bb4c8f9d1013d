package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/starlight/platform"
)

var keymap = map[ebiten.Key]platform.Key{
	ebiten.KeyA:              platform.KeyA,
	ebiten.KeyB:              platform.KeyB,
	ebiten.KeyC:              platform.KeyC,
	ebiten.KeyD:              platform.KeyD,
	ebiten.KeyE:              platform.KeyE,
	ebiten.KeyF:              platform.KeyF,
	ebiten.KeyG:              platform.KeyG,
	ebiten.KeyH:              platform.KeyH,
	ebiten.KeyI:              platform.KeyI,
	ebiten.KeyJ:              platform.KeyJ,
	ebiten.KeyK:              platform.KeyK,
	ebiten.KeyL:              platform.KeyL,
	ebiten.KeyM:              platform.KeyM,
	ebiten.KeyN:              platform.KeyN,
	ebiten.KeyO:              platform.KeyO,
	ebiten.KeyP:              platform.KeyP,
	ebiten.KeyQ:              platform.KeyQ,
	ebiten.KeyR:              platform.KeyR,
	ebiten.KeyS:              platform.KeyS,
	ebiten.KeyT:              platform.KeyT,
	ebiten.KeyU:              platform.KeyU,
	ebiten.KeyV:              platform.KeyV,
	ebiten.KeyW:              platform.KeyW,
	ebiten.KeyX:              platform.KeyX,
	ebiten.KeyY:              platform.KeyY,
	ebiten.KeyZ:              platform.KeyZ,
	ebiten.KeyDigit1:         platform.KeyNr1,
	ebiten.KeyDigit2:         platform.KeyNr2,
	ebiten.KeyDigit3:         platform.KeyNr3,
	ebiten.KeyDigit4:         platform.KeyNr4,
	ebiten.KeyDigit5:         platform.KeyNr5,
	ebiten.KeyDigit6:         platform.KeyNr6,
	ebiten.KeyDigit7:         platform.KeyNr7,
	ebiten.KeyDigit8:         platform.KeyNr8,
	ebiten.KeyDigit9:         platform.KeyNr9,
	ebiten.KeyDigit0:         platform.KeyNr0,
	ebiten.KeyEnter:          platform.KeyReturn,
	ebiten.KeyEscape:         platform.KeyEscape,
	ebiten.KeyBackspace:      platform.KeyBackspace,
	ebiten.KeyTab:            platform.KeyTab,
	ebiten.KeySpace:          platform.KeySpace,
	ebiten.KeyMinus:          platform.KeyMinus,
	ebiten.KeyEqual:          platform.KeyEquals,
	ebiten.KeyBracketLeft:    platform.KeyLeftBracket,
	ebiten.KeyBracketRight:   platform.KeyRightBracket,
	ebiten.KeyBackslash:      platform.KeyBackslash,
	ebiten.KeySemicolon:      platform.KeySemicolon,
	ebiten.KeyQuote:          platform.KeyApostrophe,
	ebiten.KeyBackquote:      platform.KeyGrave,
	ebiten.KeyComma:          platform.KeyComma,
	ebiten.KeyPeriod:         platform.KeyPeriod,
	ebiten.KeySlash:          platform.KeySlash,
	ebiten.KeyCapsLock:       platform.KeyCapsLock,
	ebiten.KeyF1:             platform.KeyF1,
	ebiten.KeyF2:             platform.KeyF2,
	ebiten.KeyF3:             platform.KeyF3,
	ebiten.KeyF4:             platform.KeyF4,
	ebiten.KeyF5:             platform.KeyF5,
	ebiten.KeyF6:             platform.KeyF6,
	ebiten.KeyF7:             platform.KeyF7,
	ebiten.KeyF8:             platform.KeyF8,
	ebiten.KeyF9:             platform.KeyF9,
	ebiten.KeyF10:            platform.KeyF10,
	ebiten.KeyF11:            platform.KeyF11,
	ebiten.KeyF12:            platform.KeyF12,
	ebiten.KeyPrintScreen:    platform.KeyPrintScreen,
	ebiten.KeyScrollLock:     platform.KeyScrollLock,
	ebiten.KeyPause:          platform.KeyPause,
	ebiten.KeyInsert:         platform.KeyInsert,
	ebiten.KeyHome:           platform.KeyHome,
	ebiten.KeyPageUp:         platform.KeyPageUp,
	ebiten.KeyDelete:         platform.KeyDelete,
	ebiten.KeyEnd:            platform.KeyEnd,
	ebiten.KeyPageDown:       platform.KeyPageDown,
	ebiten.KeyArrowRight:     platform.KeyRight,
	ebiten.KeyArrowLeft:      platform.KeyLeft,
	ebiten.KeyArrowDown:      platform.KeyDown,
	ebiten.KeyArrowUp:        platform.KeyUp,
	ebiten.KeyNumLock:        platform.KeyNumLock,
	ebiten.KeyNumpadDivide:   platform.KeyKpDivide,
	ebiten.KeyNumpadMultiply: platform.KeyKpMultiply,
	ebiten.KeyNumpadSubtract: platform.KeyKpMinus,
	ebiten.KeyNumpadAdd:      platform.KeyKpPlus,
	ebiten.KeyNumpadEnter:    platform.KeyKpEnter,
	ebiten.KeyNumpad1:        platform.KeyKp1,
	ebiten.KeyNumpad2:        platform.KeyKp2,
	ebiten.KeyNumpad3:        platform.KeyKp3,
	ebiten.KeyNumpad4:        platform.KeyKp4,
	ebiten.KeyNumpad5:        platform.KeyKp5,
	ebiten.KeyNumpad6:        platform.KeyKp6,
	ebiten.KeyNumpad7:        platform.KeyKp7,
	ebiten.KeyNumpad8:        platform.KeyKp8,
	ebiten.KeyNumpad9:        platform.KeyKp9,
	ebiten.KeyNumpad0:        platform.KeyKp0,
	ebiten.KeyNumpadDecimal:  platform.KeyKpPeriod,
	ebiten.KeyNumpadEqual:    platform.KeyKpEquals,
	ebiten.KeyIntlBackslash:  platform.KeyNonUSBackslash,
	ebiten.KeyContextMenu:    platform.KeyApplication,
	ebiten.KeyF13:            platform.KeyF13,
	ebiten.KeyF14:            platform.KeyF14,
	ebiten.KeyF15:            platform.KeyF15,
	ebiten.KeyF16:            platform.KeyF16,
	ebiten.KeyF17:            platform.KeyF17,
	ebiten.KeyF18:            platform.KeyF18,
	ebiten.KeyF19:            platform.KeyF19,
	ebiten.KeyF20:            platform.KeyF20,
	ebiten.KeyF21:            platform.KeyF21,
	ebiten.KeyF22:            platform.KeyF22,
	ebiten.KeyF23:            platform.KeyF23,
	ebiten.KeyF24:            platform.KeyF24,
	ebiten.KeyControlLeft:    platform.KeyLeftCtrl,
	ebiten.KeyShiftLeft:      platform.KeyLeftShift,
	ebiten.KeyAltLeft:        platform.KeyLeftAlt,
	ebiten.KeyMetaLeft:       platform.KeyLeftGui,
	ebiten.KeyControlRight:   platform.KeyRightCtrl,
	ebiten.KeyShiftRight:     platform.KeyRightShift,
	ebiten.KeyAltRight:       platform.KeyRightAlt,
	ebiten.KeyMetaRight:      platform.KeyRightGui,
}

// Scancode maps an ebiten key to its scancode, or platform.KeyUnknown.
func Scancode(key ebiten.Key) platform.Key {
	if k, ok := keymap[key]; ok {
		return k
	}
	return platform.KeyUnknown
}

var buttons = [platform.ButtonCount]ebiten.MouseButton{
	platform.ButtonM1: ebiten.MouseButtonLeft,
	platform.ButtonM2: ebiten.MouseButtonRight,
	platform.ButtonM3: ebiten.MouseButtonMiddle,
	platform.ButtonM4: ebiten.MouseButtonBack,
	platform.ButtonM5: ebiten.MouseButtonForward,
}
