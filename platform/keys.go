package platform

// Key is a keyboard scancode in USB HID usage numbering.
type Key uint16

const (
	KeyUnknown Key = 0

	KeyA              Key = 4
	KeyB              Key = 5
	KeyC              Key = 6
	KeyD              Key = 7
	KeyE              Key = 8
	KeyF              Key = 9
	KeyG              Key = 10
	KeyH              Key = 11
	KeyI              Key = 12
	KeyJ              Key = 13
	KeyK              Key = 14
	KeyL              Key = 15
	KeyM              Key = 16
	KeyN              Key = 17
	KeyO              Key = 18
	KeyP              Key = 19
	KeyQ              Key = 20
	KeyR              Key = 21
	KeyS              Key = 22
	KeyT              Key = 23
	KeyU              Key = 24
	KeyV              Key = 25
	KeyW              Key = 26
	KeyX              Key = 27
	KeyY              Key = 28
	KeyZ              Key = 29
	KeyNr1            Key = 30
	KeyNr2            Key = 31
	KeyNr3            Key = 32
	KeyNr4            Key = 33
	KeyNr5            Key = 34
	KeyNr6            Key = 35
	KeyNr7            Key = 36
	KeyNr8            Key = 37
	KeyNr9            Key = 38
	KeyNr0            Key = 39
	KeyReturn         Key = 40
	KeyEscape         Key = 41
	KeyBackspace      Key = 42
	KeyTab            Key = 43
	KeySpace          Key = 44
	KeyMinus          Key = 45
	KeyEquals         Key = 46
	KeyLeftBracket    Key = 47
	KeyRightBracket   Key = 48
	KeyBackslash      Key = 49
	KeyNonUSHash      Key = 50
	KeySemicolon      Key = 51
	KeyApostrophe     Key = 52
	KeyGrave          Key = 53
	KeyComma          Key = 54
	KeyPeriod         Key = 55
	KeySlash          Key = 56
	KeyCapsLock       Key = 57
	KeyF1             Key = 58
	KeyF2             Key = 59
	KeyF3             Key = 60
	KeyF4             Key = 61
	KeyF5             Key = 62
	KeyF6             Key = 63
	KeyF7             Key = 64
	KeyF8             Key = 65
	KeyF9             Key = 66
	KeyF10            Key = 67
	KeyF11            Key = 68
	KeyF12            Key = 69
	KeyPrintScreen    Key = 70
	KeyScrollLock     Key = 71
	KeyPause          Key = 72
	KeyInsert         Key = 73
	KeyHome           Key = 74
	KeyPageUp         Key = 75
	KeyDelete         Key = 76
	KeyEnd            Key = 77
	KeyPageDown       Key = 78
	KeyRight          Key = 79
	KeyLeft           Key = 80
	KeyDown           Key = 81
	KeyUp             Key = 82
	KeyNumLock        Key = 83
	KeyKpDivide       Key = 84
	KeyKpMultiply     Key = 85
	KeyKpMinus        Key = 86
	KeyKpPlus         Key = 87
	KeyKpEnter        Key = 88
	KeyKp1            Key = 89
	KeyKp2            Key = 90
	KeyKp3            Key = 91
	KeyKp4            Key = 92
	KeyKp5            Key = 93
	KeyKp6            Key = 94
	KeyKp7            Key = 95
	KeyKp8            Key = 96
	KeyKp9            Key = 97
	KeyKp0            Key = 98
	KeyKpPeriod       Key = 99
	KeyNonUSBackslash Key = 100
	KeyApplication    Key = 101
	KeyPower          Key = 102
	KeyKpEquals       Key = 103
	KeyF13            Key = 104
	KeyF14            Key = 105
	KeyF15            Key = 106
	KeyF16            Key = 107
	KeyF17            Key = 108
	KeyF18            Key = 109
	KeyF19            Key = 110
	KeyF20            Key = 111
	KeyF21            Key = 112
	KeyF22            Key = 113
	KeyF23            Key = 114
	KeyF24            Key = 115
	KeyMenu           Key = 118
	KeyMute           Key = 127
	KeyVolumeUp       Key = 128
	KeyVolumeDown     Key = 129
	KeyLeftCtrl       Key = 224
	KeyLeftShift      Key = 225
	KeyLeftAlt        Key = 226
	KeyLeftGui        Key = 227
	KeyRightCtrl      Key = 228
	KeyRightShift     Key = 229
	KeyRightAlt       Key = 230
	KeyRightGui       Key = 231

	// KeyCount bounds every valid scancode.
	KeyCount Key = 512
)

var keyNames = map[Key]string{
	KeyA:              "A",
	KeyB:              "B",
	KeyC:              "C",
	KeyD:              "D",
	KeyE:              "E",
	KeyF:              "F",
	KeyG:              "G",
	KeyH:              "H",
	KeyI:              "I",
	KeyJ:              "J",
	KeyK:              "K",
	KeyL:              "L",
	KeyM:              "M",
	KeyN:              "N",
	KeyO:              "O",
	KeyP:              "P",
	KeyQ:              "Q",
	KeyR:              "R",
	KeyS:              "S",
	KeyT:              "T",
	KeyU:              "U",
	KeyV:              "V",
	KeyW:              "W",
	KeyX:              "X",
	KeyY:              "Y",
	KeyZ:              "Z",
	KeyNr1:            "Nr1",
	KeyNr2:            "Nr2",
	KeyNr3:            "Nr3",
	KeyNr4:            "Nr4",
	KeyNr5:            "Nr5",
	KeyNr6:            "Nr6",
	KeyNr7:            "Nr7",
	KeyNr8:            "Nr8",
	KeyNr9:            "Nr9",
	KeyNr0:            "Nr0",
	KeyReturn:         "Return",
	KeyEscape:         "Escape",
	KeyBackspace:      "Backspace",
	KeyTab:            "Tab",
	KeySpace:          "Space",
	KeyMinus:          "Minus",
	KeyEquals:         "Equals",
	KeyLeftBracket:    "LeftBracket",
	KeyRightBracket:   "RightBracket",
	KeyBackslash:      "Backslash",
	KeyNonUSHash:      "NonUSHash",
	KeySemicolon:      "Semicolon",
	KeyApostrophe:     "Apostrophe",
	KeyGrave:          "Grave",
	KeyComma:          "Comma",
	KeyPeriod:         "Period",
	KeySlash:          "Slash",
	KeyCapsLock:       "CapsLock",
	KeyF1:             "F1",
	KeyF2:             "F2",
	KeyF3:             "F3",
	KeyF4:             "F4",
	KeyF5:             "F5",
	KeyF6:             "F6",
	KeyF7:             "F7",
	KeyF8:             "F8",
	KeyF9:             "F9",
	KeyF10:            "F10",
	KeyF11:            "F11",
	KeyF12:            "F12",
	KeyPrintScreen:    "PrintScreen",
	KeyScrollLock:     "ScrollLock",
	KeyPause:          "Pause",
	KeyInsert:         "Insert",
	KeyHome:           "Home",
	KeyPageUp:         "PageUp",
	KeyDelete:         "Delete",
	KeyEnd:            "End",
	KeyPageDown:       "PageDown",
	KeyRight:          "Right",
	KeyLeft:           "Left",
	KeyDown:           "Down",
	KeyUp:             "Up",
	KeyNumLock:        "NumLock",
	KeyKpDivide:       "KpDivide",
	KeyKpMultiply:     "KpMultiply",
	KeyKpMinus:        "KpMinus",
	KeyKpPlus:         "KpPlus",
	KeyKpEnter:        "KpEnter",
	KeyKp1:            "Kp1",
	KeyKp2:            "Kp2",
	KeyKp3:            "Kp3",
	KeyKp4:            "Kp4",
	KeyKp5:            "Kp5",
	KeyKp6:            "Kp6",
	KeyKp7:            "Kp7",
	KeyKp8:            "Kp8",
	KeyKp9:            "Kp9",
	KeyKp0:            "Kp0",
	KeyKpPeriod:       "KpPeriod",
	KeyNonUSBackslash: "NonUSBackslash",
	KeyApplication:    "Application",
	KeyPower:          "Power",
	KeyKpEquals:       "KpEquals",
	KeyF13:            "F13",
	KeyF14:            "F14",
	KeyF15:            "F15",
	KeyF16:            "F16",
	KeyF17:            "F17",
	KeyF18:            "F18",
	KeyF19:            "F19",
	KeyF20:            "F20",
	KeyF21:            "F21",
	KeyF22:            "F22",
	KeyF23:            "F23",
	KeyF24:            "F24",
	KeyMenu:           "Menu",
	KeyMute:           "Mute",
	KeyVolumeUp:       "VolumeUp",
	KeyVolumeDown:     "VolumeDown",
	KeyLeftCtrl:       "LeftCtrl",
	KeyLeftShift:      "LeftShift",
	KeyLeftAlt:        "LeftAlt",
	KeyLeftGui:        "LeftGui",
	KeyRightCtrl:      "RightCtrl",
	KeyRightShift:     "RightShift",
	KeyRightAlt:       "RightAlt",
	KeyRightGui:       "RightGui",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Button is a mouse button.
type Button uint8

const (
	// ButtonM1 is the left mouse button.
	ButtonM1 Button = iota
	// ButtonM2 is the right mouse button.
	ButtonM2
	// ButtonM3 is the middle mouse button.
	ButtonM3
	// ButtonM4 is the backwards thumb button.
	ButtonM4
	// ButtonM5 is the forward thumb button.
	ButtonM5

	ButtonCount
)

func (b Button) String() string {
	switch b {
	case ButtonM1:
		return "M1"
	case ButtonM2:
		return "M2"
	case ButtonM3:
		return "M3"
	case ButtonM4:
		return "M4"
	case ButtonM5:
		return "M5"
	default:
		return "Unknown"
	}
}
