package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"
)

const (
	logindSender    = "org.freedesktop.login1"
	logindManager   = "org.freedesktop.login1.Manager"
	prepareForSleep = logindManager + ".PrepareForSleep"
)

// signalBus is the part of *dbus.Conn used to follow logind
type signalBus interface {
	AddMatchSignal(options ...dbus.MatchOption) error
	Signal(ch chan<- *dbus.Signal)
}

// watchSleep follows logind's PrepareForSleep signal. The returned channel yields true
// when the system is about to sleep and false once it has resumed.
func watchSleep(ctx context.Context, bus signalBus) (<-chan bool, error) {
	if err := bus.AddMatchSignal(dbus.WithMatchSender(logindSender),
		dbus.WithMatchInterface(logindManager),
		dbus.WithMatchMember("PrepareForSleep"),
	); err != nil {
		return nil, fmt.Errorf("failed to add match for sleep signals: %w", err)
	}

	signalCh := make(chan *dbus.Signal, 10)
	bus.Signal(signalCh)

	sleeps := make(chan bool, 4)
	go func() {
		defer close(sleeps)
		for {
			select {
			case sig, ok := <-signalCh:
				if !ok {
					return
				}
				sleeping, ok := parseSleepSignal(sig)
				if !ok {
					continue
				}
				slog.Debug("Sleep signal", "sleeping", sleeping)
				select {
				case sleeps <- sleeping:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return sleeps, nil
}

func parseSleepSignal(sig *dbus.Signal) (bool, bool) {
	if sig == nil || sig.Name != prepareForSleep || len(sig.Body) == 0 {
		return false, false
	}
	sleeping, ok := sig.Body[0].(bool)
	return sleeping, ok
}
