// Package libcec is a narrow cgo binding over libcec's C API: configure, initialise,
// detect adapters, open, close and unload, plus the five callbacks the agent needs.
package libcec

/*
#cgo pkg-config: libcec
#include <stdlib.h>
#include "bridge.h"
*/
import "C"

import (
	"log/slog"
	"time"
	"unsafe"

	"github.com/juju/errors"
)

const openTimeout = 10 * time.Second

// Library creates and unloads connections.
type Library struct{}

func New() *Library {
	return &Library{}
}

// Connection is one libcec_connection_t together with its callback registration.
type Connection struct {
	bridge *C.cec_bridge
	token  uintptr
}

// Initialise registers cfg.Callbacks and asks libcec for a connection built from cfg.
func (l *Library) Initialise(cfg *Configuration) (*Connection, error) {
	if cfg == nil {
		return nil, errors.New("nil CEC configuration")
	}
	callbacks := cfg.Callbacks
	if callbacks == nil {
		callbacks = &Callbacks{}
	}

	token := register(callbacks)

	name := C.CString(cfg.DeviceName)
	defer C.free(unsafe.Pointer(name))

	activate := C.int(0)
	if cfg.ActivateSource {
		activate = 1
	}

	b := C.cec_bridge_initialise(name, C.uint32_t(cfg.ClientVersion), activate, C.int(cfg.DeviceType), C.uintptr_t(token))
	if b == nil {
		unregister(token)
		return nil, errors.Errorf("libcec_initialise failed for device name %q", cfg.DeviceName)
	}

	slog.Debug("libcec connection initialised", "device-name", cfg.DeviceName, "token", token)
	return &Connection{bridge: b, token: token}, nil
}

// Unload destroys the connection and drops its callbacks. Safe on a nil or unloaded connection.
func (l *Library) Unload(c *Connection) {
	if c == nil || c.bridge == nil {
		return
	}
	C.cec_bridge_unload(c.bridge)
	c.bridge = nil
	unregister(c.token)
}

func (c *Connection) InitVideoStandalone() {
	if c == nil || c.bridge == nil {
		return
	}
	C.cec_bridge_init_video(c.bridge)
}

// DetectAdapters scans for at most limit adapters (clamped to 1..MaxAdapters).
func (c *Connection) DetectAdapters(limit int) []AdapterDescriptor {
	if c == nil || c.bridge == nil {
		return nil
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxAdapters {
		limit = MaxAdapters
	}

	var devices [MaxAdapters]C.cec_adapter_descriptor
	n := int(C.cec_bridge_detect(c.bridge, &devices[0], C.uint8_t(limit)))
	if n <= 0 {
		return nil
	}
	if n > limit {
		n = limit
	}

	found := make([]AdapterDescriptor, 0, n)
	for i := 0; i < n; i++ {
		found = append(found, AdapterDescriptor{
			ComName: C.GoString(&devices[i].strComName[0]),
			ComPath: C.GoString(&devices[i].strComPath[0]),
		})
	}
	return found
}

func (c *Connection) Open(comName string) bool {
	if c == nil || c.bridge == nil {
		return false
	}
	port := C.CString(comName)
	defer C.free(unsafe.Pointer(port))
	return C.cec_bridge_open(c.bridge, port, C.uint32_t(openTimeout/time.Millisecond)) != 0
}

func (c *Connection) Close() {
	if c == nil || c.bridge == nil {
		return
	}
	C.cec_bridge_close(c.bridge)
}

// AddressToString names a logical address the way libcec's ToString does.
func (c *Connection) AddressToString(address int) string {
	if c == nil || c.bridge == nil {
		return ""
	}
	return logicalAddressName(address)
}
