package libcec

import (
	"log/slog"

	"github.com/claes/cec"
)

func dispatchLogMessage(token uintptr, message string) {
	cb := lookup(token)
	if cb == nil || cb.LogMessage == nil {
		return
	}
	cb.LogMessage(message)
}

func dispatchKeyPress(token uintptr, keycode, duration int) {
	slog.Debug("CEC keycode rx", "code", keycode, "duration", duration)

	cb := lookup(token)
	if cb == nil || cb.KeyPress == nil {
		return
	}
	cb.KeyPress(&cec.KeyPress{KeyCode: keycode, Duration: duration})
}

func dispatchCommand(token uintptr, initiator, destination, opcode int) {
	cb := lookup(token)
	if cb == nil || cb.CommandReceived == nil {
		return
	}
	cb.CommandReceived(&Command{Initiator: initiator, Destination: destination, Opcode: opcode})
}

func dispatchAlert(token uintptr, alert, paramType int, text string, present bool) {
	cb := lookup(token)
	if cb == nil || cb.Alert == nil {
		return
	}
	cb.Alert(AlertType(alert), Parameter{Type: ParameterType(paramType), Data: text, Present: present})
}

func dispatchSourceActivated(token uintptr, address int, activated bool) {
	cb := lookup(token)
	if cb == nil || cb.SourceActivated == nil {
		return
	}
	cb.SourceActivated(&cec.SourceActivation{
		LogicalAddress:     address,
		LogicalAddressName: logicalAddressName(address),
		State:              activated,
	})
}
