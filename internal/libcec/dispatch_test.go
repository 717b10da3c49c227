package libcec

import (
	"testing"

	"github.com/claes/cec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	a := &Callbacks{}
	b := &Callbacks{}

	ta := register(a)
	tb := register(b)
	defer unregister(ta)
	defer unregister(tb)

	assert.NotZero(t, ta)
	assert.NotZero(t, tb)
	assert.NotEqual(t, ta, tb)
	assert.Same(t, a, lookup(ta))
	assert.Same(t, b, lookup(tb))

	unregister(ta)
	assert.Nil(t, lookup(ta))
	assert.Same(t, b, lookup(tb))
}

func TestRegistry_ZeroTokenNeverResolves(t *testing.T) {
	token := register(&Callbacks{})
	defer unregister(token)

	assert.Nil(t, lookup(0))
}

func TestDispatch_KeyPress(t *testing.T) {
	var got []*cec.KeyPress
	token := register(&Callbacks{KeyPress: func(kp *cec.KeyPress) { got = append(got, kp) }})
	defer unregister(token)

	dispatchKeyPress(token, 0x44, 0)
	dispatchKeyPress(token, 0x44, 500)

	require.Len(t, got, 2)
	assert.Equal(t, 0x44, got[0].KeyCode)
	assert.Equal(t, 0, got[0].Duration)
	assert.Equal(t, 500, got[1].Duration)
}

func TestDispatch_UnknownTokenIsIgnored(t *testing.T) {
	assert.NotPanics(t, func() {
		dispatchLogMessage(987654, "hello")
		dispatchKeyPress(987654, 1, 0)
		dispatchCommand(987654, 0, 1, 0x36)
		dispatchAlert(987654, int(AlertConnectionLost), 0, "", false)
		dispatchSourceActivated(987654, 4, true)
	})
}

func TestDispatch_NilEntriesAreSkipped(t *testing.T) {
	token := register(&Callbacks{})
	defer unregister(token)

	assert.NotPanics(t, func() {
		dispatchLogMessage(token, "hello")
		dispatchKeyPress(token, 1, 0)
		dispatchCommand(token, 0, 1, 0x36)
		dispatchAlert(token, int(AlertTVPollFailed), 1, "tv", true)
		dispatchSourceActivated(token, 4, false)
	})
}

func TestDispatch_Alert(t *testing.T) {
	var gotAlert AlertType
	var gotParam Parameter
	token := register(&Callbacks{Alert: func(a AlertType, p Parameter) {
		gotAlert = a
		gotParam = p
	}})
	defer unregister(token)

	dispatchAlert(token, int(AlertServiceDevice), int(ParameterString), "firmware update", true)

	assert.Equal(t, AlertServiceDevice, gotAlert)
	assert.Equal(t, Parameter{Type: ParameterString, Data: "firmware update", Present: true}, gotParam)
}

func TestDispatch_CommandAndLog(t *testing.T) {
	var cmd *Command
	var msg string
	token := register(&Callbacks{
		CommandReceived: func(c *Command) { cmd = c },
		LogMessage:      func(m string) { msg = m },
	})
	defer unregister(token)

	dispatchCommand(token, 0, 4, 0x82)
	dispatchLogMessage(token, "adapter opened")

	require.NotNil(t, cmd)
	assert.Equal(t, Command{Initiator: 0, Destination: 4, Opcode: 0x82}, *cmd)
	assert.Equal(t, "adapter opened", msg)
}

func TestDispatch_SourceActivated(t *testing.T) {
	var got *cec.SourceActivation
	token := register(&Callbacks{SourceActivated: func(s *cec.SourceActivation) { got = s }})
	defer unregister(token)

	dispatchSourceActivated(token, -1, true)

	require.NotNil(t, got)
	assert.Equal(t, -1, got.LogicalAddress)
	assert.Equal(t, "unknown", got.LogicalAddressName)
	assert.True(t, got.State)
}

func TestAlertType_String(t *testing.T) {
	assert.Equal(t, "port-busy", AlertPortBusy.String())
	assert.Equal(t, "alert(42)", AlertType(42).String())
}

func TestConnection_NilIsSafe(t *testing.T) {
	var c *Connection
	lib := New()

	assert.NotPanics(t, func() {
		c.InitVideoStandalone()
		c.Close()
		lib.Unload(c)
	})
	assert.Nil(t, c.DetectAdapters(MaxAdapters))
	assert.False(t, c.Open("/dev/ttyACM0"))
	assert.Empty(t, c.AddressToString(0))
}
