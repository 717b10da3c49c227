package libcec

// #include <stdint.h>
import "C"

// These are called from the trampolines in bridge.c on libcec's own threads.

//export cecKeyboardLogMessage
func cecKeyboardLogMessage(token C.uintptr_t, message *C.char) {
	dispatchLogMessage(uintptr(token), C.GoString(message))
}

//export cecKeyboardKeyPress
func cecKeyboardKeyPress(token C.uintptr_t, keycode C.int, duration C.uint) {
	dispatchKeyPress(uintptr(token), int(keycode), int(duration))
}

//export cecKeyboardCommand
func cecKeyboardCommand(token C.uintptr_t, initiator, destination, opcode C.int) {
	dispatchCommand(uintptr(token), int(initiator), int(destination), int(opcode))
}

//export cecKeyboardAlert
func cecKeyboardAlert(token C.uintptr_t, alert, paramType C.int, text *C.char, present C.int) {
	var s string
	if text != nil {
		s = C.GoString(text)
	}
	dispatchAlert(uintptr(token), int(alert), int(paramType), s, present != 0)
}

//export cecKeyboardSourceActivated
func cecKeyboardSourceActivated(token C.uintptr_t, address, activated C.int) {
	dispatchSourceActivated(uintptr(token), int(address), activated != 0)
}
