// Package version implements the version command.
package version

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/intmat/cmd/shared"
)

// Version is set at build time via -ldflags "-X .../cmd/version.Version=...".
var Version = "unknown"

// GetCommand returns the CLI command that prints the program version.
func GetCommand(deps *shared.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Program version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintln(shared.GetStdoutFunc(deps)(), Version)
			return err
		},
		Flags: []cli.Flag{},
	}
}
