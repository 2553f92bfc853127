// Package shared provides common CLI flag definitions, injectable stdio and
// config loading used across intmat's command-line interface.
package shared

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/intmat/internal/config"
	"github.com/katalvlaran/intmat/internal/log"
)

const categoryCommon = "common"

// ConfigFlag is the name of the flag that points at a TOML config file.
const ConfigFlag = "config"

// VerboseFlag is the name of the flag to enable debug logging.
const VerboseFlag = "verbose"

// NoColorFlag is the name of the flag that disables colored diagnostics.
const NoColorFlag = "no-color"

// GetCommonFlags returns the flags every subcommand accepts.
func GetCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     ConfigFlag,
			Aliases:  []string{"c"},
			Usage:    "Config file (TOML); defaults to $INTMAT_CONFIG or ~/.config/intmat/config.toml",
			Category: categoryCommon,
			Value:    "",
			Required: false,
		},
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Verbose logging on stderr",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
		&cli.BoolFlag{
			Name:     NoColorFlag,
			Usage:    "Disable colored diagnostics",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
	}
}

// LoadConfig reads the configuration selected by --config, applies the
// flag overrides registered by the subcommand and validates the result.
// Logging is configured as a side effect.
func LoadConfig(cmd *cli.Command, overrides ...Override) (config.Config, error) {
	cfg, err := config.Load(cmd.String(ConfigFlag))
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %s", err)
	}
	for _, o := range overrides {
		o(cmd, &cfg)
	}

	log.SetVerbose(cmd.Bool(VerboseFlag))
	log.SetColor(cfg.Output.Color && !cmd.Bool(NoColorFlag))

	if errors := cfg.Validate(); len(errors) > 0 {
		log.ErrorMsg("Configuration errors:\n")
		for _, err := range errors {
			log.ErrorMsg(" - %s\n", err)
		}
		return config.Config{}, &ExitError{Code: ExitUsage, Err: fmt.Errorf("invalid configuration"), Silent: true}
	}

	return cfg, nil
}

// Override copies an explicitly set flag into the configuration.
type Override func(cmd *cli.Command, cfg *config.Config)

// StringOverride applies flag to *field when the user set it.
func StringOverride(flag string, field func(*config.Config) *string) Override {
	return func(cmd *cli.Command, cfg *config.Config) {
		if cmd.IsSet(flag) {
			*field(cfg) = cmd.String(flag)
		}
	}
}

// IntOverride applies flag to *field when the user set it.
func IntOverride(flag string, field func(*config.Config) *int) Override {
	return func(cmd *cli.Command, cfg *config.Config) {
		if cmd.IsSet(flag) {
			*field(cfg) = int(cmd.Int(flag))
		}
	}
}

// BoolOverride applies flag to *field when the user set it.
func BoolOverride(flag string, field func(*config.Config) *bool) Override {
	return func(cmd *cli.Command, cfg *config.Config) {
		if cmd.IsSet(flag) {
			*field(cfg) = cmd.Bool(flag)
		}
	}
}
