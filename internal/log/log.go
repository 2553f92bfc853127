// Package log provides colored diagnostic output on stderr.
// Diagnostics never go to stdout, so piped products stay clean.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stderr
	verbose bool
)

var (
	red    = color.New(color.FgRed).FprintfFunc()
	blue   = color.New(color.FgBlue).FprintfFunc()
	yellow = color.New(color.FgYellow).FprintfFunc()
)

// SetOutput redirects all diagnostics to w. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
}

// SetVerbose toggles DebugMsg output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// SetColor disables ANSI colors globally when enabled is false. Enabling
// leaves fatih/color's own terminal and NO_COLOR detection in charge.
func SetColor(enabled bool) {
	if !enabled {
		color.NoColor = true
	}
}

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	red(out, "[!] Error: "+format, a...)
}

// InfoMsg prints an informational message to stderr in blue color.
func InfoMsg(format string, a ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	blue(out, "[+] "+format, a...)
}

// DebugMsg prints a yellow message only when verbose output is enabled.
func DebugMsg(format string, a ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	yellow(out, "[*] "+format, a...)
}
