// Package configcmd implements the config command, which shows the effective
// configuration or writes it to a TOML file.
package configcmd

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/intmat/cmd/shared"
	"github.com/katalvlaran/intmat/internal/config"
	"github.com/katalvlaran/intmat/internal/log"
)

// OutputFlag names the file `config init` writes to.
const OutputFlag = "output"

// GetCommand returns the CLI command for configuration management.
func GetCommand(deps *shared.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Inspect or initialise the configuration file",
		Commands: []*cli.Command{
			showCommand(deps),
			initCommand(deps),
		},
	}
}

func showCommand(deps *shared.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the effective configuration",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := shared.LoadConfig(cmd)
			if err != nil {
				return err
			}

			return writeConfig(shared.GetStdoutFunc(deps)(), cfg)
		},
		Flags: shared.GetCommonFlags(),
	}
}

func initCommand(deps *shared.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write the effective configuration to a TOML file",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := shared.LoadConfig(cmd)
			if err != nil {
				return err
			}

			path, err := config.Save(cfg, cmd.String(OutputFlag))
			if err != nil {
				return err
			}
			log.InfoMsg("Wrote %s\n", path)
			_, err = fmt.Fprintln(shared.GetStdoutFunc(deps)(), path)

			return err
		},
		Flags: append(shared.GetCommonFlags(), &cli.StringFlag{
			Name:    OutputFlag,
			Aliases: []string{"o"},
			Usage:   "Destination file; defaults to $INTMAT_CONFIG or ~/.config/intmat/config.toml",
		}),
	}
}

func writeConfig(w io.Writer, cfg config.Config) error {
	_, err := fmt.Fprintf(w,
		"session.prompts = %s\n"+
			"output.format = %s\n"+
			"output.color = %t\n"+
			"arithmetic.overflow = %s\n"+
			"limits.max_dim = %d\n"+
			"limits.int32_input = %t\n"+
			"exit.mismatch_code = %d\n",
		cfg.Session.Prompts,
		cfg.Output.Format,
		cfg.Output.Color,
		cfg.Arithmetic.Overflow,
		cfg.Limits.MaxDim,
		cfg.Limits.Int32Input,
		cfg.Exit.MismatchCode,
	)

	return err
}
