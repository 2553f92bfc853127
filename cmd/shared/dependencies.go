package shared

import (
	"errors"
	"io"
	"os"

	"github.com/katalvlaran/intmat/session"
)

// Dependencies contains injectable dependencies for testing and customization.
// All fields are optional and will use default implementations if nil.
type Dependencies struct {
	Stdin      StdinFunc
	Stdout     StdoutFunc
	IsTerminal IsTerminalFunc
}

// StdinFunc returns the reader the session consumes.
type StdinFunc func() io.Reader

// StdoutFunc returns the writer results are printed to.
type StdoutFunc func() io.Writer

// IsTerminalFunc reports whether r is an interactive terminal.
type IsTerminalFunc func(r io.Reader) bool

// GetStdinFunc returns the stdin function from dependencies, or os.Stdin.
func GetStdinFunc(deps *Dependencies) StdinFunc {
	if deps != nil && deps.Stdin != nil {
		return deps.Stdin
	}
	return func() io.Reader {
		return os.Stdin
	}
}

// GetStdoutFunc returns the stdout function from dependencies, or os.Stdout.
func GetStdoutFunc(deps *Dependencies) StdoutFunc {
	if deps != nil && deps.Stdout != nil {
		return deps.Stdout
	}
	return func() io.Writer {
		return os.Stdout
	}
}

// GetIsTerminalFunc returns the terminal check from dependencies, or session.IsInteractive.
func GetIsTerminalFunc(deps *Dependencies) IsTerminalFunc {
	if deps != nil && deps.IsTerminal != nil {
		return deps.IsTerminal
	}
	return session.IsInteractive
}

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError carries the process exit code for an error.
// Silent errors have already been reported to the user.
type ExitError struct {
	Code   int
	Err    error
	Silent bool
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeOf maps err to a process exit code.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}

	return ExitFailure
}

// IsSilent reports whether err was already shown to the user.
func IsSilent(err error) bool {
	var ee *ExitError
	return errors.As(err, &ee) && ee.Silent
}
