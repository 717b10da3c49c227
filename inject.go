package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Modifiers is a keyboard modifier mask. Remote key presses never carry modifiers.
type Modifiers uint32

const NoModifier Modifiers = 0

// KeyEvent is an extended key event as handed to the windowing system.
// Window 0 targets whatever has focus.
type KeyEvent struct {
	Window          uintptr
	Type            KeyEventType
	Key             Key
	Modifiers       Modifiers
	ScanCode        int
	VirtualKey      uint32
	NativeModifiers uint32
	Text            string
	Autorepeat      bool
}

const (
	injectorKeyboard = "keyboard"
	injectorUInput   = "uinput"
	injectorMPRIS    = "mpris"
	injectorMQTT     = "mqtt"
)

var knownInjectors = []string{injectorKeyboard, injectorUInput, injectorMPRIS, injectorMQTT}

// newInjector builds the injector chain described by cfg.
func newInjector(cfg *Config) (Injector, error) {
	if cfg.DryRun {
		return &logInjector{log: slog.Default().With("category", logCategory)}, nil
	}

	var injectors multiInjector
	for _, name := range cfg.Injectors {
		inj, err := openInjector(name, cfg)
		if err != nil {
			injectors.Close()
			return nil, fmt.Errorf("failed to open %s injector: %w", name, err)
		}
		slog.Info("Injector ready", "injector", name)
		injectors = append(injectors, inj)
	}

	switch len(injectors) {
	case 0:
		return nil, errors.New("no injector configured")
	case 1:
		return injectors[0], nil
	default:
		return injectors, nil
	}
}

func openInjector(name string, cfg *Config) (Injector, error) {
	switch name {
	case injectorKeyboard:
		return newKeyboardInjector()
	case injectorUInput:
		return newUInputInjector(cfg.UInputPath, DeviceName(cfg.DeviceName))
	case injectorMPRIS:
		return newMPRISInjector()
	case injectorMQTT:
		return newMQTTInjector(cfg.MQTTBroker, cfg.MQTTClientID, cfg.MQTTTopic)
	default:
		return nil, fmt.Errorf("unknown injector %q (known: %s)", name, strings.Join(knownInjectors, ", "))
	}
}

// multiInjector hands every event to each injector in turn.
type multiInjector []Injector

func (m multiInjector) HandleExtendedKeyEvent(ev KeyEvent) error {
	var errs []error
	for _, inj := range m {
		if err := inj.HandleExtendedKeyEvent(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m multiInjector) Close() error {
	var errs []error
	for _, inj := range m {
		if err := inj.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// logInjector only logs, for --dry-run.
type logInjector struct {
	log *slog.Logger
}

func (l *logInjector) HandleExtendedKeyEvent(ev KeyEvent) error {
	l.log.Info("Key event", "key", ev.Key, "type", ev.Type, "scan-code", ev.ScanCode)
	return nil
}

func (l *logInjector) Close() error { return nil }
