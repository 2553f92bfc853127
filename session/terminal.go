package session

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether r is an *os.File attached to a terminal.
func IsInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok || f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// PromptsFor resolves a prompt mode ("auto", "always", "never").
// For "auto" (and unknown modes) it consults isTerminal.
func PromptsFor(mode string, isTerminal func() bool) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal != nil && isTerminal()
	}
}
