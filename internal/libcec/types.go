package libcec

import (
	"fmt"

	"github.com/claes/cec"
)

const (
	// MaxAdapters is the size of the adapter discovery buffer.
	MaxAdapters = 10

	// DeviceNameSize is how many bytes of the device name are copied into libcec's
	// strDeviceName field, which is itself larger.
	DeviceNameSize = 13

	// ClientVersionCurrent asks the binding to use LIBCEC_VERSION_CURRENT of the linked library.
	ClientVersionCurrent uint32 = 0
)

// DeviceType mirrors cec_device_type.
type DeviceType int

const (
	DeviceTypeTV              DeviceType = 0
	DeviceTypeRecordingDevice DeviceType = 1
	DeviceTypeReserved        DeviceType = 2
	DeviceTypeTuner           DeviceType = 3
	DeviceTypePlaybackDevice  DeviceType = 4
	DeviceTypeAudioSystem     DeviceType = 5
)

// AlertType mirrors libcec_alert.
type AlertType int

const (
	AlertServiceDevice AlertType = iota
	AlertConnectionLost
	AlertPermissionError
	AlertPortBusy
	AlertPhysicalAddressError
	AlertTVPollFailed
)

func (a AlertType) String() string {
	switch a {
	case AlertServiceDevice:
		return "service-device"
	case AlertConnectionLost:
		return "connection-lost"
	case AlertPermissionError:
		return "permission-error"
	case AlertPortBusy:
		return "port-busy"
	case AlertPhysicalAddressError:
		return "physical-address-error"
	case AlertTVPollFailed:
		return "tv-poll-failed"
	default:
		return fmt.Sprintf("alert(%d)", int(a))
	}
}

// ParameterType mirrors libcec_parameter_type.
type ParameterType int

const (
	ParameterUnknown ParameterType = 0
	ParameterString  ParameterType = 1
)

// Parameter is the decoded payload attached to an alert.
// Present reports whether libcec attached any data at all.
type Parameter struct {
	Type    ParameterType
	Data    string
	Present bool
}

// Command is the subset of cec_command forwarded to Go.
type Command struct {
	Initiator   int
	Destination int
	Opcode      int
}

// Callbacks is the table of functions libcec calls back into.
// Any nil entry is skipped.
type Callbacks struct {
	LogMessage      func(message string)
	KeyPress        func(kp *cec.KeyPress)
	CommandReceived func(cmd *Command)
	Alert           func(alert AlertType, param Parameter)
	SourceActivated func(src *cec.SourceActivation)
}

// Configuration is what the binding copies into libcec_configuration.
type Configuration struct {
	DeviceName     string
	ClientVersion  uint32
	ActivateSource bool
	DeviceType     DeviceType
	Callbacks      *Callbacks
}

// AdapterDescriptor identifies one detected adapter.
type AdapterDescriptor struct {
	ComName string
	ComPath string
}

// logicalAddressName renders a CEC logical address, tolerating CECDEVICE_UNKNOWN (-1)
// and CECDEVICE_BROADCAST (15).
func logicalAddressName(address int) string {
	if address < 0 || address > 15 {
		return "unknown"
	}
	return cec.GetLogicalNameByAddress(address)
}
