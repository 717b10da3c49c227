package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/claes/cec"
	"github.com/eliottness/cec-keyboard/internal/libcec"
)

const (
	logCategory       = "cec.keyboard"
	defaultDeviceName = "QPi"
	maxCECDevices     = libcec.MaxAdapters
)

var (
	ErrAdapterCreationFailed = errors.New("could not create CEC adapter with current config")
	ErrNoDevicesFound        = errors.New("no CEC devices found")
	ErrOpenFailed            = errors.New("can't open CEC device")
)

// State is where an Agent is in its one-shot lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateConfiguring
	StateAdapterCreated
	StateVideoInitialized
	StateDevicesDetected
	StateOpened
	StateRunning
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConfiguring:
		return "configuring"
	case StateAdapterCreated:
		return "adapter-created"
	case StateVideoInitialized:
		return "video-initialized"
	case StateDevicesDetected:
		return "devices-detected"
	case StateOpened:
		return "opened"
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Agent owns one libcec connection and turns its key presses into injected key events.
//
// Setup happens once in NewAgent; any failure leaves the agent closed and inert, and is
// only reported through the log and Err. There is no retry: a new agent is a new attempt.
type Agent struct {
	lib       CECLibrary
	injector  Injector
	log       *slog.Logger
	callbacks libcec.Callbacks

	mu      sync.RWMutex
	adapter CECAdapter
	state   State
	err     error
}

// NewAgent configures libcec, opens the first detected adapter and starts receiving
// callbacks. It never fails; check Err or State to know whether CEC input is live.
func NewAgent(lib CECLibrary, injector Injector, appName string, logger *slog.Logger) *Agent {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Agent{
		lib:      lib,
		injector: injector,
		log:      logger.With("category", logCategory),
	}
	a.open(appName)
	return a
}

// DeviceName is the name advertised on the CEC bus: the application name, or a fixed
// placeholder, cut to fit libcec's 13 byte field without splitting a UTF-8 sequence.
func DeviceName(appName string) string {
	name := appName
	if name == "" {
		name = defaultDeviceName
	}
	if len(name) <= libcec.DeviceNameSize {
		return name
	}
	cut := libcec.DeviceNameSize
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}

func (a *Agent) open(appName string) {
	a.setState(StateConfiguring)

	a.callbacks = libcec.Callbacks{
		LogMessage:      a.onLogMessage,
		KeyPress:        a.onKeyPress,
		CommandReceived: a.onCommand,
		Alert:           a.onAlert,
		SourceActivated: a.onSourceActivated,
	}
	cfg := &libcec.Configuration{
		DeviceName:     DeviceName(appName),
		ClientVersion:  libcec.ClientVersionCurrent,
		ActivateSource: false,
		DeviceType:     libcec.DeviceTypeRecordingDevice,
		Callbacks:      &a.callbacks,
	}

	adapter, err := a.lib.Initialise(cfg)
	if err != nil || adapter == nil {
		a.log.Log(context.Background(), LevelCritical, "Could not create CEC adaptor with current config", "error", err)
		if err != nil {
			a.fail(fmt.Errorf("%w: %w", ErrAdapterCreationFailed, err))
		} else {
			a.fail(ErrAdapterCreationFailed)
		}
		return
	}

	a.mu.Lock()
	a.adapter = adapter
	a.state = StateAdapterCreated
	a.mu.Unlock()

	adapter.InitVideoStandalone()
	a.setState(StateVideoInitialized)

	devices := adapter.DetectAdapters(maxCECDevices)
	if len(devices) > maxCECDevices {
		devices = devices[:maxCECDevices]
	}
	if len(devices) < 1 {
		a.log.Warn("No CEC devices found")
		a.fail(ErrNoDevicesFound)
		return
	}
	a.setState(StateDevicesDetected)

	device := devices[0]
	if !adapter.Open(device.ComName) {
		a.log.Log(context.Background(), LevelCritical, "Can't open device 0 (assumed to be TV)", "device", device.ComName)
		a.fail(fmt.Errorf("%w: %s", ErrOpenFailed, device.ComName))
		return
	}
	a.setState(StateOpened)

	a.log.Debug("Successfully created CEC input agent", "device", device.ComName, "device-name", cfg.DeviceName, "detected", len(devices))
	a.setState(StateRunning)
}

func (a *Agent) setState(s State) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()
}

func (a *Agent) fail(err error) {
	a.mu.Lock()
	a.err = err
	a.mu.Unlock()
	a.Close()
}

// Close closes and unloads the adapter. Calling it again is a no-op.
func (a *Agent) Close() {
	a.mu.Lock()
	adapter := a.adapter
	a.adapter = nil
	a.state = StateClosed
	a.mu.Unlock()

	if adapter == nil {
		return
	}

	// libcec may wait for its callback threads here, so the lock must not be held.
	a.log.Debug("Closing the CEC device")
	adapter.Close()
	a.lib.Unload(adapter)
}

func (a *Agent) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// Err reports why setup failed, or nil.
func (a *Agent) Err() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.err
}

func (a *Agent) Running() bool {
	return a.State() == StateRunning
}

// AddressToString names a logical address through the open adapter, or returns "".
func (a *Agent) AddressToString(address int) string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.adapter == nil {
		return ""
	}
	return a.adapter.AddressToString(address)
}

func (a *Agent) onLogMessage(message string) {
	if message == "" {
		return
	}
	a.log.Debug("CEC log message", "message", message)
}

func (a *Agent) onKeyPress(kp *cec.KeyPress) {
	if kp == nil {
		return
	}
	code := UserControlCode(kp.KeyCode)
	tr, ok := Translate(code)
	if !ok {
		a.log.Warn("CEC key press not handled by the CEC input agent", "code", code)
		return
	}

	ev := KeyEvent{
		Type:     eventTypeForDuration(kp.Duration),
		Key:      tr.Key,
		ScanCode: tr.ScanCode,
	}
	a.log.Debug("Injecting key event", "code", code, "key", ev.Key, "type", ev.Type, "scan-code", ev.ScanCode)

	if a.injector == nil {
		return
	}
	if err := a.injector.HandleExtendedKeyEvent(ev); err != nil {
		a.log.Error("Failed to inject key event", "key", ev.Key, "type", ev.Type, "error", err)
	}
}

// onCommand is where incoming CEC commands would be handled; none are needed yet.
func (a *Agent) onCommand(*libcec.Command) {}

func (a *Agent) onAlert(alert libcec.AlertType, param libcec.Parameter) {
	var attrs []any
	switch {
	case param.Type == libcec.ParameterString && param.Present:
		attrs = append(attrs, "param", param.Data)
	case param.Present:
		attrs = append(attrs, "param", fmt.Sprintf("UNKNOWN param has type %d", int(param.Type)))
	}

	ctx := context.Background()
	switch alert {
	case libcec.AlertServiceDevice:
		a.log.Warn("CEC alert device service message", attrs...)
	case libcec.AlertConnectionLost:
		a.log.Debug("CEC device connection lost", attrs...)
	case libcec.AlertPermissionError, libcec.AlertPortBusy:
		// libcec reports these while probing ports it cannot use; not actionable.
	case libcec.AlertPhysicalAddressError:
		a.log.Log(ctx, LevelCritical, "CEC physical address error", attrs...)
	case libcec.AlertTVPollFailed:
		a.log.Log(ctx, LevelCritical, "CEC alert device can't poll TV", attrs...)
	default:
		a.log.Debug("UNKNOWN CEC device alert", append([]any{"alert", int(alert)}, attrs...)...)
	}
}

func (a *Agent) onSourceActivated(src *cec.SourceActivation) {
	if src == nil {
		return
	}
	a.log.Debug("CEC source activation changed", "activated", src.State, "address", a.AddressToString(src.LogicalAddress), "logical-address", src.LogicalAddress)
}
