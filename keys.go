package main

import (
	"fmt"

	keybd "github.com/micmonay/keybd_event"
)

// Key is a platform key symbol, independent of any scan code.
type Key int

const (
	KeyUnknown Key = iota
	KeyMediaPlay
	KeyMediaStop
	KeyMediaRecord
	KeyMediaPrevious
	KeyMediaNext
	KeySelect
	KeyEnter
	KeyInfo
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyPageUp
	KeyPageDown
	KeyEscape
	KeyBackspace
)

var keyNames = map[Key]string{
	KeyMediaPlay:     "MediaPlay",
	KeyMediaStop:     "MediaStop",
	KeyMediaRecord:   "MediaRecord",
	KeyMediaPrevious: "MediaPrevious",
	KeyMediaNext:     "MediaNext",
	KeySelect:        "Select",
	KeyEnter:         "Enter",
	KeyInfo:          "Info",
	KeyUp:            "Up",
	KeyDown:          "Down",
	KeyLeft:          "Left",
	KeyRight:         "Right",
	Key0:             "0",
	Key1:             "1",
	Key2:             "2",
	Key3:             "3",
	Key4:             "4",
	Key5:             "5",
	Key6:             "6",
	Key7:             "7",
	Key8:             "8",
	Key9:             "9",
	KeyF1:            "F1",
	KeyF2:            "F2",
	KeyF3:            "F3",
	KeyF4:            "F4",
	KeyPageUp:        "PageUp",
	KeyPageDown:      "PageDown",
	KeyEscape:        "Escape",
	KeyBackspace:     "Backspace",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// maxLinuxKeyCode is the highest code both the keybd_event and bendahl/uinput virtual
// keyboards register; anything above it is dropped by the kernel or refused.
const maxLinuxKeyCode = 248

// Linux input event codes used by the uinput based injectors. KEY_SELECT and KEY_INFO sit
// above maxLinuxKeyCode, so Select sends Enter and Info sends "i" (Kodi's info key).
var linuxKeyCodes = map[Key]int{
	KeyMediaPlay:     keybd.VK_PLAYPAUSE,
	KeyMediaStop:     keybd.VK_STOPCD,
	KeyMediaRecord:   keybd.VK_RECORD,
	KeyMediaPrevious: keybd.VK_PREVIOUSSONG,
	KeyMediaNext:     keybd.VK_NEXTSONG,
	KeySelect:        keybd.VK_ENTER,
	KeyEnter:         keybd.VK_ENTER,
	KeyInfo:          keybd.VK_I,
	KeyUp:            keybd.VK_UP,
	KeyDown:          keybd.VK_DOWN,
	KeyLeft:          keybd.VK_LEFT,
	KeyRight:         keybd.VK_RIGHT,
	Key0:             keybd.VK_0,
	Key1:             keybd.VK_1,
	Key2:             keybd.VK_2,
	Key3:             keybd.VK_3,
	Key4:             keybd.VK_4,
	Key5:             keybd.VK_5,
	Key6:             keybd.VK_6,
	Key7:             keybd.VK_7,
	Key8:             keybd.VK_8,
	Key9:             keybd.VK_9,
	KeyF1:            keybd.VK_F1,
	KeyF2:            keybd.VK_F2,
	KeyF3:            keybd.VK_F3,
	KeyF4:            keybd.VK_F4,
	KeyPageUp:        keybd.VK_PAGEUP,
	KeyPageDown:      keybd.VK_PAGEDOWN,
	KeyEscape:        keybd.VK_ESC,
	KeyBackspace:     keybd.VK_BACKSPACE,
}

// LinuxCode returns the evdev KEY_* code for k, if the virtual keyboards can emit it.
func (k Key) LinuxCode() (int, bool) {
	code, ok := linuxKeyCodes[k]
	if !ok || code < 1 || code > maxLinuxKeyCode {
		return 0, false
	}
	return code, true
}
