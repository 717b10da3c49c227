package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFilePath = "/etc/cec-keyboard.yaml"

	defaultUInputPath   = "/dev/uinput"
	defaultMQTTTopic    = "cec-keyboard/keys"
	defaultMQTTClientID = "cec-keyboard"
)

type Config struct {
	DeviceName    string
	Debug         bool
	DryRun        bool
	Plugin        string
	Injectors     []string
	UInputPath    string
	MQTTBroker    string
	MQTTTopic     string
	MQTTClientID  string
	NoPowerEvents bool
}

func setConfigDefaults() {
	viper.SetDefault("plugin", PluginKey)
	viper.SetDefault("injectors", []string{injectorKeyboard})
	viper.SetDefault("uinput-path", defaultUInputPath)
	viper.SetDefault("mqtt-topic", defaultMQTTTopic)
	viper.SetDefault("mqtt-client-id", defaultMQTTClientID)
}

// loadConfig loads configuration from the config file and bound CLI flags
// CLI flags take precedence over config file, which takes precedence over defaults
func loadConfig(path string) (*Config, error) {
	setConfigDefaults()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	// Attempt to read config file (not an error if it doesn't exist)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Error reading config file", "path", path, "error", err)
		}
	}

	cfg := &Config{
		DeviceName:    viper.GetString("device-name"),
		Debug:         viper.GetBool("debug"),
		DryRun:        viper.GetBool("dry-run"),
		Plugin:        viper.GetString("plugin"),
		Injectors:     parseInjectors(viper.GetStringSlice("injectors")),
		UInputPath:    viper.GetString("uinput-path"),
		MQTTBroker:    viper.GetString("mqtt-broker"),
		MQTTTopic:     viper.GetString("mqtt-topic"),
		MQTTClientID:  viper.GetString("mqtt-client-id"),
		NoPowerEvents: viper.GetBool("no-power-events"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DryRun {
		return nil
	}
	if len(c.Injectors) == 0 {
		return errors.New("at least one injector is required")
	}
	for _, name := range c.Injectors {
		if !slices.Contains(knownInjectors, name) {
			return fmt.Errorf("unknown injector %q (known: %s)", name, strings.Join(knownInjectors, ", "))
		}
	}
	if slices.Contains(c.Injectors, injectorMQTT) && c.MQTTBroker == "" {
		return errors.New("the mqtt injector needs mqtt-broker")
	}
	return nil
}

// parseInjectors accepts both list entries and comma separated values, dropping duplicates.
func parseInjectors(values []string) []string {
	var result []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" || slices.Contains(result, part) {
				continue
			}
			result = append(result, part)
		}
	}
	return result
}
