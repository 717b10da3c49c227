package main

import (
	"fmt"
	"sync"

	"github.com/bendahl/uinput"
	keybd "github.com/micmonay/keybd_event"
)

// keyBonding is the part of keybd.KeyBonding used here.
type keyBonding interface {
	SetKeys(keys ...int)
	Press() error
	Release() error
}

// keyboardInjector drives keybd_event's virtual keyboard.
type keyboardInjector struct {
	mu sync.Mutex
	kb keyBonding
}

func newKeyboardInjector() (*keyboardInjector, error) {
	kb, err := keybd.NewKeyBonding()
	if err != nil {
		return nil, err
	}
	return &keyboardInjector{kb: &kb}, nil
}

func (k *keyboardInjector) HandleExtendedKeyEvent(ev KeyEvent) error {
	code, ok := ev.Key.LinuxCode()
	if !ok {
		return fmt.Errorf("no linux key code for %s", ev.Key)
	}

	// KeyBonding keeps the key list between calls; callbacks may arrive concurrently.
	k.mu.Lock()
	defer k.mu.Unlock()
	k.kb.SetKeys(code)
	if ev.Type == EventKeyRelease {
		return k.kb.Release()
	}
	return k.kb.Press()
}

func (k *keyboardInjector) Close() error { return nil }

// virtualKeyboard is the part of uinput.Keyboard used here.
type virtualKeyboard interface {
	KeyDown(key int) error
	KeyUp(key int) error
	Close() error
}

// uinputInjector creates its own named uinput keyboard.
type uinputInjector struct {
	kb virtualKeyboard
}

func newUInputInjector(path, name string) (*uinputInjector, error) {
	kb, err := uinput.CreateKeyboard(path, []byte(name))
	if err != nil {
		return nil, err
	}
	return &uinputInjector{kb: kb}, nil
}

func (u *uinputInjector) HandleExtendedKeyEvent(ev KeyEvent) error {
	code, ok := ev.Key.LinuxCode()
	if !ok {
		return fmt.Errorf("no linux key code for %s", ev.Key)
	}
	if ev.Type == EventKeyRelease {
		return u.kb.KeyUp(code)
	}
	return u.kb.KeyDown(code)
}

func (u *uinputInjector) Close() error {
	return u.kb.Close()
}
