package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_Keys(t *testing.T) {
	f := &Factory{}
	assert.Equal(t, []string{"CECAgent"}, f.Keys())
}

func TestFactory_Create(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: "CECAgent", want: true},
		{key: "cecagent", want: true},
		{key: "CECAGENT", want: true},
		{key: "Other", want: false},
		{key: "", want: false},
		{key: "CECAgent2", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			lib := &MockCECLibrary{Adapter: workingAdapter()}
			f := &Factory{Library: lib, Injector: &RecordingInjector{}, AppName: "Kodi", Logger: (&logCapture{}).logger()}

			agent := f.Create(tt.key)

			if !tt.want {
				assert.Nil(t, agent)
				assert.Empty(t, lib.Configs)
				return
			}
			require.NotNil(t, agent)
			assert.True(t, agent.Running())
			require.Len(t, lib.Configs, 1)
			assert.Equal(t, "Kodi", lib.Configs[0].DeviceName)
		})
	}
}

func TestFactory_CreateReturnsInertAgentOnFailure(t *testing.T) {
	lib := &MockCECLibrary{}
	f := &Factory{Library: lib, Injector: &RecordingInjector{}, Logger: (&logCapture{}).logger()}

	agent := f.Create(PluginKey)

	require.NotNil(t, agent)
	assert.False(t, agent.Running())
	assert.ErrorIs(t, agent.Err(), ErrAdapterCreationFailed)
}

func TestFactory_EachCreateIsAFreshAttempt(t *testing.T) {
	lib := &MockCECLibrary{Adapter: workingAdapter()}
	f := &Factory{Library: lib, Injector: &RecordingInjector{}, Logger: (&logCapture{}).logger()}

	first := f.Create(PluginKey)
	first.Close()
	second := f.Create(PluginKey)

	assert.NotSame(t, first, second)
	assert.Equal(t, StateClosed, first.State())
	assert.True(t, second.Running())
	assert.Len(t, lib.Configs, 2)
	assert.Equal(t, []string{"/dev/ttyACM0", "/dev/ttyACM0"}, lib.Adapter.OpenCalls)
}
