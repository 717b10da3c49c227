package main

import "fmt"

// UserControlCode is a CEC remote control key code (cec_user_control_code).
type UserControlCode int

const (
	CodeSelect             UserControlCode = 0x00
	CodeUp                 UserControlCode = 0x01
	CodeDown               UserControlCode = 0x02
	CodeLeft               UserControlCode = 0x03
	CodeRight              UserControlCode = 0x04
	CodeExit               UserControlCode = 0x0D
	CodeNumber0            UserControlCode = 0x20
	CodeNumber1            UserControlCode = 0x21
	CodeNumber2            UserControlCode = 0x22
	CodeNumber3            UserControlCode = 0x23
	CodeNumber4            UserControlCode = 0x24
	CodeNumber5            UserControlCode = 0x25
	CodeNumber6            UserControlCode = 0x26
	CodeNumber7            UserControlCode = 0x27
	CodeNumber8            UserControlCode = 0x28
	CodeNumber9            UserControlCode = 0x29
	CodeEnter              UserControlCode = 0x2B
	CodeChannelUp          UserControlCode = 0x30
	CodeChannelDown        UserControlCode = 0x31
	CodeDisplayInformation UserControlCode = 0x35
	CodePlay               UserControlCode = 0x44
	CodeStop               UserControlCode = 0x45
	CodeRecord             UserControlCode = 0x47
	CodeRewind             UserControlCode = 0x48
	CodeFastForward        UserControlCode = 0x49
	CodeF1Blue             UserControlCode = 0x71
	CodeF2Red              UserControlCode = 0x72
	CodeF3Green            UserControlCode = 0x73
	CodeF4Yellow           UserControlCode = 0x74
	CodeAnReturn           UserControlCode = 0x91
)

// Translation is what a handled key code turns into.
type Translation struct {
	Key      Key
	ScanCode int
}

type keyMapEntry struct {
	code UserControlCode
	name string
	Translation
}

// Scan codes are X11 keycodes taken from xev on the reference setup. They are sent as-is
// for consumers that key off raw scan codes; do not derive them from the Linux codes.
var keyTable = []keyMapEntry{
	{CodePlay, "Play", Translation{KeyMediaPlay, 172}},
	{CodeStop, "Stop", Translation{KeyMediaStop, 174}},
	{CodeRecord, "Record", Translation{KeyMediaRecord, 120}},
	{CodeRewind, "Rewind", Translation{KeyMediaPrevious, 173}},
	{CodeFastForward, "FastForward", Translation{KeyMediaNext, 171}},
	{CodeSelect, "Select", Translation{KeySelect, 36}},
	{CodeEnter, "Enter", Translation{KeyEnter, 36}},
	{CodeDisplayInformation, "DisplayInformation", Translation{KeyInfo, 0}},
	{CodeUp, "Up", Translation{KeyUp, 111}},
	{CodeDown, "Down", Translation{KeyDown, 116}},
	{CodeLeft, "Left", Translation{KeyLeft, 113}},
	{CodeRight, "Right", Translation{KeyRight, 114}},
	{CodeNumber0, "0", Translation{Key0, 19}},
	{CodeNumber1, "1", Translation{Key1, 10}},
	{CodeNumber2, "2", Translation{Key2, 11}},
	{CodeNumber3, "3", Translation{Key3, 12}},
	{CodeNumber4, "4", Translation{Key4, 13}},
	{CodeNumber5, "5", Translation{Key5, 14}},
	{CodeNumber6, "6", Translation{Key6, 15}},
	{CodeNumber7, "7", Translation{Key7, 16}},
	{CodeNumber8, "8", Translation{Key8, 17}},
	{CodeNumber9, "9", Translation{Key9, 18}},
	{CodeF1Blue, "Blue", Translation{KeyF1, 67}},
	{CodeF2Red, "Red", Translation{KeyF2, 68}},
	{CodeF3Green, "Green", Translation{KeyF3, 69}},
	{CodeF4Yellow, "Yellow", Translation{KeyF4, 70}},
	{CodeChannelUp, "ChannelUp", Translation{KeyPageUp, 112}},
	{CodeChannelDown, "ChannelDown", Translation{KeyPageDown, 117}},
	{CodeExit, "Exit", Translation{KeyEscape, 9}},
	{CodeAnReturn, "AnReturn", Translation{KeyBackspace, 22}},
}

var keyIndex = func() map[UserControlCode]keyMapEntry {
	m := make(map[UserControlCode]keyMapEntry, len(keyTable))
	for _, e := range keyTable {
		m[e.code] = e
	}
	return m
}()

// Translate maps a CEC key code to a platform key. Unknown codes are not an error;
// they return false.
func Translate(code UserControlCode) (Translation, bool) {
	e, ok := keyIndex[code]
	if !ok {
		return Translation{Key: KeyUnknown}, false
	}
	return e.Translation, true
}

func (c UserControlCode) String() string {
	if e, ok := keyIndex[c]; ok {
		return e.name
	}
	return fmt.Sprintf("0x%02X", int(c))
}

// KeyEventType is the edge a key event reports.
type KeyEventType int

const (
	EventKeyPress KeyEventType = iota
	EventKeyRelease
)

func (t KeyEventType) String() string {
	if t == EventKeyRelease {
		return "release"
	}
	return "press"
}

// eventTypeForDuration turns libcec's duration field into an edge: a key press callback
// arrives with duration 0, the matching release carries how long the key was held.
func eventTypeForDuration(duration int) KeyEventType {
	if duration != 0 {
		return EventKeyRelease
	}
	return EventKeyPress
}
