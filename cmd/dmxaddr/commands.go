package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nerrad567/gray-logic-dmx/internal/bridges/dmx"
	"github.com/nerrad567/gray-logic-dmx/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-dmx/internal/infrastructure/logging"
)

// app holds state shared by the subcommands for one invocation.
type app struct {
	configPath   string
	outputFormat string

	out  io.Writer
	cfg  *config.Config
	base *logging.Logger
	log  *logging.Logger
}

// addressView is the json/yaml rendering of an address.
type addressView struct {
	Address  string `json:"address" yaml:"address"`
	Universe uint16 `json:"universe" yaml:"universe"`
	Channel  uint16 `json:"channel" yaml:"channel"`
	Absolute uint32 `json:"absolute" yaml:"absolute"`
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dmxaddr",
		Short: "Parse and format DMX512 addresses",
		Long: strings.TrimSpace(`
Parse and format DMX512 addresses.

Addresses are written either as universe.channel (e.g. 1.511) or as an
absolute index across all universes (e.g. 1024). Universes run from 1 to
63999, channels from 1 to 512.`),
		Version:           fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "",
		"path to YAML config file (default $"+configEnvVar+")")
	root.PersistentFlags().StringVarP(&a.outputFormat, "output", "o", "",
		"output format: "+strings.Join(config.OutputFormats, ", ")+" (overrides output.format)")

	root.AddCommand(a.parseCommand(), a.formatCommand())
	return root
}

func (a *app) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <address>",
		Short: "Parse a dotted or absolute DMX address",
		Example: strings.TrimSpace(`
  dmxaddr parse 1.9
  dmxaddr parse 513 --output json
  dmxaddr parse -- -3          # "--" ends flags so a leading '-' reaches the parser`),
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			addr, err := dmx.ParseAddress(args[0])
			if err != nil {
				a.log.Warn("invalid address", "input", args[0], "error", err)
				return fmt.Errorf("parsing %q: %w", args[0], err)
			}
			a.log.Debug("address parsed", "input", args[0], "address", addr.String(), "absolute", addr.Absolute)
			return a.render(addr)
		},
	}
}

func (a *app) formatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format <universe> <channel>",
		Short: "Build a DMX address from universe and channel",
		Example: strings.TrimSpace(`
  dmxaddr format 1 9
  dmxaddr format 3 210 -o yaml`),
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			universe, uErr := strconv.ParseUint(args[0], 10, 16)
			channel, cErr := strconv.ParseUint(args[1], 10, 16)
			if uErr != nil || cErr != nil {
				a.log.Warn("invalid address", "universe", args[0], "channel", args[1], "error", dmx.ErrInvalidAddress)
				return fmt.Errorf("universe %q, channel %q: %w", args[0], args[1], dmx.ErrInvalidAddress)
			}

			addr, err := dmx.NewAddress(uint16(universe), uint16(channel))
			if err != nil {
				a.log.Warn("invalid address", "universe", universe, "channel", channel, "error", err)
				return fmt.Errorf("universe %d, channel %d: %w", universe, channel, err)
			}
			a.log.Debug("address built", "address", addr.String(), "absolute", addr.Absolute)
			return a.render(addr)
		},
	}
}

// setup loads configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	// Use default logger until config is loaded
	a.log = logging.Default().With("command", cmd.Name())

	cfg, err := a.loadConfig()
	if err != nil {
		a.log.Error("configuration failed", "error", err)
		return err
	}

	if cmd.Flags().Changed("output") {
		if !slices.Contains(config.OutputFormats, strings.ToLower(a.outputFormat)) {
			return fmt.Errorf("--output must be one of %s, got %q", strings.Join(config.OutputFormats, ", "), a.outputFormat)
		}
		cfg.Output.Format = a.outputFormat
	}

	a.cfg = cfg
	a.base = logging.New(cfg.Logging, version)
	a.log = a.base.With("command", cmd.Name())
	return nil
}

// loadConfig resolves the config path from the flag, then the environment.
// Without either, defaults are used.
func (a *app) loadConfig() (*config.Config, error) {
	path := a.configPath
	if path == "" {
		path = os.Getenv(configEnvVar)
	}

	if path == "" {
		cfg, err := config.Default()
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// render writes addr to the output in the configured format.
func (a *app) render(addr dmx.Address) error {
	view := addressView{
		Address:  addr.String(),
		Universe: addr.Universe,
		Channel:  addr.Channel,
		Absolute: addr.Absolute,
	}

	switch strings.ToLower(a.cfg.Output.Format) {
	case "json":
		return json.NewEncoder(a.out).Encode(view)
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintf(a.out, "%s (absolute %d)\n", addr, addr.Absolute)
		return err
	}
}

// close releases the logger's file output, if any.
func (a *app) close() error {
	if a.base == nil {
		return nil
	}
	return a.base.Close()
}
