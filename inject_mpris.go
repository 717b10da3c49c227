package main

import (
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	mprisNamePrefix = "org.mpris.MediaPlayer2."
	mprisObjectPath = "/org/mpris/MediaPlayer2"
	mprisPlayer     = "org.mpris.MediaPlayer2.Player"
)

var errNoMediaPlayer = errors.New("no MPRIS media player on the session bus")

var mprisMethods = map[Key]string{
	KeyMediaPlay:     "PlayPause",
	KeyMediaStop:     "Stop",
	KeyMediaNext:     "Next",
	KeyMediaPrevious: "Previous",
}

// mprisBus abstracts the session bus calls for testing
type mprisBus interface {
	ListNames() ([]string, error)
	CallPlayer(dest, method string) error
	Close() error
}

type dbusMPRISBus struct {
	conn *dbus.Conn
}

func (b *dbusMPRISBus) ListNames() ([]string, error) {
	var names []string
	err := b.conn.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names)
	return names, err
}

func (b *dbusMPRISBus) CallPlayer(dest, method string) error {
	return b.conn.Object(dest, dbus.ObjectPath(mprisObjectPath)).Call(mprisPlayer+"."+method, 0).Err
}

func (b *dbusMPRISBus) Close() error {
	return b.conn.Close()
}

// mprisInjector sends media keys to the first MPRIS player instead of faking key strokes.
// Everything that is not a media key press is ignored.
type mprisInjector struct {
	bus mprisBus
}

func newMPRISInjector() (*mprisInjector, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &mprisInjector{bus: &dbusMPRISBus{conn: conn}}, nil
}

func (m *mprisInjector) HandleExtendedKeyEvent(ev KeyEvent) error {
	if ev.Type != EventKeyPress {
		return nil
	}
	method, ok := mprisMethods[ev.Key]
	if !ok {
		return nil
	}

	player, err := m.player()
	if err != nil {
		return err
	}
	slog.Debug("Sending MPRIS command", "player", player, "method", method)
	return m.bus.CallPlayer(player, method)
}

func (m *mprisInjector) player() (string, error) {
	names, err := m.bus.ListNames()
	if err != nil {
		return "", err
	}
	var players []string
	for _, name := range names {
		if strings.HasPrefix(name, mprisNamePrefix) {
			players = append(players, name)
		}
	}
	if len(players) == 0 {
		return "", errNoMediaPlayer
	}
	sort.Strings(players)
	return players[0], nil
}

func (m *mprisInjector) Close() error {
	return m.bus.Close()
}
