package main

import (
	"log/slog"
	"strings"
)

// PluginKey is the key hosts use to ask the factory for a CEC agent.
const PluginKey = "CECAgent"

// Factory creates agents for hosts that look plugins up by key.
type Factory struct {
	Library  CECLibrary
	Injector Injector
	AppName  string
	Logger   *slog.Logger
}

func (f *Factory) Keys() []string {
	return []string{PluginKey}
}

// Create returns a new Agent when key matches PluginKey, ignoring case, and nil otherwise.
// The returned agent may be inert if libcec setup failed.
func (f *Factory) Create(key string) *Agent {
	if !strings.EqualFold(key, PluginKey) {
		return nil
	}
	return NewAgent(f.Library, f.Injector, f.AppName, f.Logger)
}
