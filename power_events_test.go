package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSignalBus struct {
	matchErr error
	matches  int
	ch       chan<- *dbus.Signal
}

func (f *fakeSignalBus) AddMatchSignal(options ...dbus.MatchOption) error {
	f.matches++
	return f.matchErr
}

func (f *fakeSignalBus) Signal(ch chan<- *dbus.Signal) { f.ch = ch }

func sleepSignal(sleeping bool) *dbus.Signal {
	return &dbus.Signal{Name: prepareForSleep, Body: []interface{}{sleeping}}
}

func TestParseSleepSignal(t *testing.T) {
	tests := []struct {
		name     string
		sig      *dbus.Signal
		sleeping bool
		ok       bool
	}{
		{name: "sleep", sig: sleepSignal(true), sleeping: true, ok: true},
		{name: "resume", sig: sleepSignal(false), sleeping: false, ok: true},
		{name: "nil", sig: nil},
		{name: "other signal", sig: &dbus.Signal{Name: logindManager + ".PrepareForShutdown", Body: []interface{}{true}}},
		{name: "empty body", sig: &dbus.Signal{Name: prepareForSleep}},
		{name: "wrong body type", sig: &dbus.Signal{Name: prepareForSleep, Body: []interface{}{"yes"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sleeping, ok := parseSleepSignal(tt.sig)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.sleeping, sleeping)
		})
	}
}

func TestWatchSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := &fakeSignalBus{}
	sleeps, err := watchSleep(ctx, bus)
	require.NoError(t, err)
	require.NotNil(t, bus.ch)
	assert.Equal(t, 1, bus.matches)

	bus.ch <- sleepSignal(true)
	bus.ch <- &dbus.Signal{Name: "org.example.Other"}
	bus.ch <- sleepSignal(false)

	for _, want := range []bool{true, false} {
		select {
		case got := <-sleeps:
			assert.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for sleep event")
		}
	}

	cancel()
	select {
	case _, ok := <-sleeps:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatchSleep_MatchError(t *testing.T) {
	bus := &fakeSignalBus{matchErr: errors.New("access denied")}

	sleeps, err := watchSleep(context.Background(), bus)

	assert.Nil(t, sleeps)
	assert.ErrorContains(t, err, "access denied")
	assert.Nil(t, bus.ch)
}
