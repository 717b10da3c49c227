package main

import "github.com/eliottness/cec-keyboard/internal/libcec"

// CECLibrary abstracts libcec's initialise/unload entry points for testing
type CECLibrary interface {
	// Initialise returns a nil adapter and an error when libcec refuses the configuration.
	Initialise(cfg *libcec.Configuration) (CECAdapter, error)
	Unload(adapter CECAdapter)
}

// CECAdapter abstracts one libcec connection
type CECAdapter interface {
	InitVideoStandalone()
	DetectAdapters(limit int) []libcec.AdapterDescriptor
	Open(comName string) bool
	Close()
	AddressToString(address int) string
}

// Injector is the windowing system's synthetic key event entry point
type Injector interface {
	HandleExtendedKeyEvent(ev KeyEvent) error
	Close() error
}

// LibCECWrapper wraps the real libcec binding
type LibCECWrapper struct {
	lib *libcec.Library
}

func NewLibCECWrapper() *LibCECWrapper {
	return &LibCECWrapper{lib: libcec.New()}
}

func (w *LibCECWrapper) Initialise(cfg *libcec.Configuration) (CECAdapter, error) {
	conn, err := w.lib.Initialise(cfg)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func (w *LibCECWrapper) Unload(adapter CECAdapter) {
	if conn, ok := adapter.(*libcec.Connection); ok {
		w.lib.Unload(conn)
	}
}
