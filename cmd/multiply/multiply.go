// Package multiply implements the multiply command, which runs the console
// dialogue that reads two (or more) integer matrices and prints their product.
package multiply

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/intmat/cmd/shared"
	"github.com/katalvlaran/intmat/internal/config"
	"github.com/katalvlaran/intmat/internal/log"
	"github.com/katalvlaran/intmat/matrix"
	"github.com/katalvlaran/intmat/render"
	"github.com/katalvlaran/intmat/session"
)

const categorySession = "session"

// Flag names.
const (
	PromptsFlag    = "prompts"
	FormatFlag     = "format"
	OverflowFlag   = "overflow"
	MaxDimFlag     = "max-dim"
	Int32InputFlag = "int32-input"
	ChainFlag      = "chain"
)

// GetCommand returns the CLI command for the multiplication dialogue.
func GetCommand(deps *shared.Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "multiply",
		Aliases:     []string{"mul"},
		Usage:       "Read matrices from stdin and print their product",
		Description: "Reads the dimensions of every operand first. If adjacent operands are not conformable it prints \"" + session.MsgNotPossible + "\" and stops without reading elements.",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 0 {
				return fmt.Errorf("multiply takes no arguments, got %d", cmd.Args().Len())
			}

			cfg, err := shared.LoadConfig(cmd, overrides()...)
			if err != nil {
				return err
			}

			chain := int(cmd.Int(ChainFlag))
			if chain < 1 {
				return &shared.ExitError{Code: shared.ExitUsage, Err: fmt.Errorf("--%s must be >= 1, got %d", ChainFlag, chain)}
			}

			return run(cfg, chain, deps)
		},
		Flags: getFlags(),
	}
}

func run(cfg config.Config, chain int, deps *shared.Dependencies) error {
	in := shared.GetStdinFunc(deps)()
	out := shared.GetStdoutFunc(deps)()
	isTerminal := shared.GetIsTerminalFunc(deps)

	opts, err := sessionOptions(cfg, func() bool { return isTerminal(in) })
	if err != nil {
		return &shared.ExitError{Code: shared.ExitUsage, Err: err}
	}
	log.DebugMsg("session: chain=%d prompts=%t format=%s overflow=%s max_dim=%d\n",
		chain, opts.Prompts, opts.Format, opts.Overflow, opts.MaxDim)

	res, err := session.New(in, out, opts).RunChain(chain)
	if err != nil {
		if errors.Is(err, matrix.ErrDimensionMismatch) {
			log.DebugMsg("%s\n", err)
			return &shared.ExitError{Code: cfg.Exit.MismatchCode, Err: err, Silent: true}
		}
		return &shared.ExitError{Code: shared.ExitFailure, Err: err}
	}
	log.DebugMsg("product is %d×%d\n", res.Product.Rows(), res.Product.Cols())

	return nil
}

func sessionOptions(cfg config.Config, isTerminal func() bool) (session.Options, error) {
	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return session.Options{}, err
	}
	overflow, err := matrix.ParseOverflowPolicy(cfg.Arithmetic.Overflow)
	if err != nil {
		return session.Options{}, err
	}

	return session.Options{
		Prompts:    session.PromptsFor(cfg.Session.Prompts, isTerminal),
		MaxDim:     cfg.Limits.MaxDim,
		Int32Input: cfg.Limits.Int32Input,
		Format:     format,
		Overflow:   overflow,
	}, nil
}

func overrides() []shared.Override {
	return []shared.Override{
		shared.StringOverride(PromptsFlag, func(c *config.Config) *string { return &c.Session.Prompts }),
		shared.StringOverride(FormatFlag, func(c *config.Config) *string { return &c.Output.Format }),
		shared.StringOverride(OverflowFlag, func(c *config.Config) *string { return &c.Arithmetic.Overflow }),
		shared.IntOverride(MaxDimFlag, func(c *config.Config) *int { return &c.Limits.MaxDim }),
		shared.BoolOverride(Int32InputFlag, func(c *config.Config) *bool { return &c.Limits.Int32Input }),
	}
}

func getFlags() []cli.Flag {
	flags := []cli.Flag{}

	flags = append(flags, shared.GetCommonFlags()...)
	flags = append(flags, []cli.Flag{
		&cli.StringFlag{
			Name:     PromptsFlag,
			Usage:    "Prompt mode: auto (only on a terminal), always or never",
			Category: categorySession,
			Value:    config.PromptsAuto,
		},
		&cli.StringFlag{
			Name:     FormatFlag,
			Aliases:  []string{"f"},
			Usage:    "Output format: plain or grid",
			Category: categorySession,
			Value:    config.FormatPlain,
		},
		&cli.StringFlag{
			Name:     OverflowFlag,
			Usage:    "Arithmetic: checked (error on int64 overflow) or wrap32 (32-bit wrap-around)",
			Category: categorySession,
			Value:    matrix.OverflowChecked.String(),
		},
		&cli.IntFlag{
			Name:     MaxDimFlag,
			Usage:    "Largest accepted number of rows or columns",
			Category: categorySession,
			Value:    session.DefaultMaxDim,
		},
		&cli.BoolFlag{
			Name:     Int32InputFlag,
			Usage:    "Reject elements outside the 32-bit signed range",
			Category: categorySession,
			Value:    true,
		},
		&cli.IntFlag{
			Name:     ChainFlag,
			Aliases:  []string{"n"},
			Usage:    "Number of matrices to multiply left to right",
			Category: categorySession,
			Value:    2,
		},
	}...)

	return flags
}
