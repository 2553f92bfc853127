// Package calc implements the calc command, a four-function calculator on
// two decimal operands.
package calc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/intmat/calc"
	"github.com/katalvlaran/intmat/cmd/shared"
	"github.com/katalvlaran/intmat/internal/log"
)

// AllFlag prints the four results for a pair of operands.
const AllFlag = "all"

// GetCommand returns the CLI command for the calculator.
func GetCommand(deps *shared.Dependencies) *cli.Command {
	return &cli.Command{
		Name:      "calc",
		Usage:     "Add, subtract, multiply or divide two numbers",
		ArgsUsage: "<a> <op> <b> | --all <a> <b>",
		Description: "op is one of + - * x /. Put -- before a negative first operand.\n" +
			"With --all, prints the sum, difference, product and quotient of a and b.",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := shared.LoadConfig(cmd); err != nil {
				return err
			}
			out := shared.GetStdoutFunc(deps)()
			args := cmd.Args()

			if cmd.Bool(AllFlag) {
				if args.Len() != 2 {
					return usageErr("--all needs exactly two operands, got %d (%s)", args.Len(), strings.Join(args.Slice(), ", "))
				}
				a, b, err := parseOperands(args.Get(0), args.Get(1))
				if err != nil {
					return err
				}
				return writeAll(out, calc.All(a, b))
			}

			if args.Len() != 3 {
				return usageErr("must provide exactly three arguments, got %d (%s)", args.Len(), strings.Join(args.Slice(), ", "))
			}
			op, err := calc.ParseOp(args.Get(1))
			if err != nil {
				return usageErr("parsing operator: %s", err)
			}
			a, b, err := parseOperands(args.Get(0), args.Get(2))
			if err != nil {
				return err
			}
			log.DebugMsg("calc: %v %s %v\n", a, op, b)

			v, err := calc.Apply(op, a, b)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, formatNumber(v))

			return err
		},
		Flags: getFlags(),
	}
}

func writeAll(w io.Writer, results calc.Results) error {
	for _, r := range results {
		var err error
		if r.Err != nil {
			_, err = fmt.Fprintf(w, "%s result: Error: %s\n", r.Op.Name(), describe(r.Err))
		} else {
			_, err = fmt.Fprintf(w, "%s result: %s\n", r.Op.Name(), formatNumber(r.Value))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// describe shortens calculator errors for the labelled listing.
func describe(err error) string {
	switch {
	case errors.Is(err, calc.ErrDivideByZero):
		return "Div by 0"
	case errors.Is(err, calc.ErrNotFinite):
		return "not a finite number"
	default:
		return err.Error()
	}
}

func parseOperands(sa, sb string) (float64, float64, error) {
	a, err := parseNumber(sa)
	if err != nil {
		return 0, 0, err
	}
	b, err := parseNumber(sb)
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, usageErr("parsing operand %q: not a number", s)
	}

	return v, nil
}

// formatNumber prints integral values without a fraction and everything
// else in the shortest form that round-trips.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func usageErr(format string, a ...interface{}) error {
	return &shared.ExitError{Code: shared.ExitUsage, Err: fmt.Errorf(format, a...)}
}

func getFlags() []cli.Flag {
	flags := []cli.Flag{}

	flags = append(flags, shared.GetCommonFlags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:  AllFlag,
		Usage: "Print all four results for two operands",
		Value: false,
	})

	return flags
}
