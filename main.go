package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "cec-keyboard",
		Short:         "Forward HDMI-CEC remote control key presses as keyboard input",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			setupLogger(cfg.Debug)
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", configFilePath, "Path to the YAML config file")
	addConfigFlags(cmd.Flags())
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}
	return cmd
}

func addConfigFlags(flags *pflag.FlagSet) {
	flags.String("device-name", "", "Name advertised on the CEC bus (max 13 bytes, default \""+defaultDeviceName+"\")")
	flags.Bool("debug", false, "Enable debug output")
	flags.Bool("dry-run", false, "Log key events instead of injecting them")
	flags.String("plugin", PluginKey, "Plugin key to create the CEC agent with")
	flags.StringSlice("injectors", []string{injectorKeyboard}, "Key event injectors ("+strings.Join(knownInjectors, ", ")+")")
	flags.String("uinput-path", defaultUInputPath, "uinput device used by the uinput injector")
	flags.String("mqtt-broker", "", "MQTT broker URL for the mqtt injector (e.g. tcp://localhost:1883)")
	flags.String("mqtt-topic", defaultMQTTTopic, "MQTT topic key events are published to")
	flags.String("mqtt-client-id", defaultMQTTClientID, "MQTT client id")
	flags.Bool("no-power-events", false, "Keep the CEC adapter open across system sleep")
}

func run(ctx context.Context, cfg *Config) error {
	slog.Info("Starting cec-keyboard", "config", cfg)

	injector, err := newInjector(cfg)
	if err != nil {
		return err
	}
	defer injector.Close()

	factory := &Factory{
		Library:  NewLibCECWrapper(),
		Injector: injector,
		AppName:  cfg.DeviceName,
		Logger:   slog.Default(),
	}

	agent := factory.Create(cfg.Plugin)
	if agent == nil {
		return fmt.Errorf("no CEC agent for plugin key %q (supported: %s)", cfg.Plugin, strings.Join(factory.Keys(), ", "))
	}
	defer func() { agent.Close() }()
	reportAgent(agent)

	var sleeps <-chan bool
	if !cfg.NoPowerEvents {
		conn, err := dbus.ConnectSystemBus()
		if err != nil {
			slog.Warn("System bus unavailable, sleep handling disabled", "error", err)
		} else {
			defer conn.Close()
			if sleeps, err = watchSleep(ctx, conn); err != nil {
				slog.Warn("Failed to follow sleep signals", "error", err)
			}
		}
	}

	slog.Info("Listening for CEC key events... (Ctrl+C to exit)")
	for {
		select {
		case sleeping, ok := <-sleeps:
			if !ok {
				sleeps = nil
				continue
			}
			if sleeping {
				slog.Info("System going to sleep, releasing CEC adapter")
				agent.Close()
				continue
			}
			slog.Info("System resumed, reopening CEC adapter")
			agent.Close()
			agent = factory.Create(cfg.Plugin)
			reportAgent(agent)
		case <-ctx.Done():
			slog.Info("Shutting down...")
			return nil
		}
	}
}

// reportAgent tells the user when CEC input is absent; the daemon keeps running either way.
func reportAgent(agent *Agent) {
	if err := agent.Err(); err != nil {
		slog.Warn("CEC agent is inactive, remote control input disabled", "error", err)
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		slog.Error("cec-keyboard failed", "error", err)
		os.Exit(1)
	}
}
