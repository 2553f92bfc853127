// Command intmat multiplies integer matrices typed at the console.
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/intmat/cmd/calc"
	"github.com/katalvlaran/intmat/cmd/configcmd"
	"github.com/katalvlaran/intmat/cmd/multiply"
	"github.com/katalvlaran/intmat/cmd/shared"
	"github.com/katalvlaran/intmat/cmd/version"
	"github.com/katalvlaran/intmat/internal/log"
)

func main() {
	os.Exit(run(context.Background(), os.Args, nil))
}

// run executes the app and returns the process exit code.
func run(ctx context.Context, args []string, deps *shared.Dependencies) int {
	err := newApp(deps).Run(ctx, args)
	if err != nil && !shared.IsSilent(err) {
		log.ErrorMsg("%s\n", err)
	}

	return shared.ExitCodeOf(err)
}

func newApp(deps *shared.Dependencies) *cli.Command {
	return &cli.Command{
		Name:   "intmat",
		Usage:  "integer matrix product at the console",
		Writer: shared.GetStdoutFunc(deps)(),
		Commands: []*cli.Command{
			multiply.GetCommand(deps),
			calc.GetCommand(deps),
			configcmd.GetCommand(deps),
			version.GetCommand(deps),
		},
		DefaultCommand: "multiply",
	}
}
