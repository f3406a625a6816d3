package logging

import (
	"os"

	"github.com/buildbarn/bb-lzw/pkg/lzwclient/arguments"
	"github.com/buildbarn/bb-storage/pkg/clock"

	"golang.org/x/term"
)

// Logger of messages that are displayed to the user of the command
// line tool.
type Logger interface {
	Error(v ...any)
	Errorf(format string, v ...any)
	Fatal(v ...any)
	Fatalf(format string, v ...any)
	Info(v ...any)
	Infof(format string, v ...any)
	Successf(format string, v ...any)

	// StartSpinner displays an animation on the last line of
	// output, indicating that an operation is in progress. Messages
	// logged while the spinner is active are printed above it.
	StartSpinner(message string) Spinner
}

// Spinner that was started by Logger.StartSpinner().
type Spinner interface {
	Stop()
}

// NewLoggerFromFlags creates a Logger that writes to standard error.
// Whether colors and animations are used depends on the --color flag
// and on whether standard error is a terminal.
func NewLoggerFromFlags(commonFlags *arguments.CommonFlags) Logger {
	w := os.Stderr
	var escapeSequences *EscapeSequences
	switch commonFlags.Color {
	case arguments.Color_Yes:
		escapeSequences = &VT100EscapeSequences
	case arguments.Color_No:
		escapeSequences = &NoEscapeSequences
	default:
		if term.IsTerminal(int(w.Fd())) {
			escapeSequences = &VT100EscapeSequences
		} else {
			escapeSequences = &NoEscapeSequences
		}
	}
	return NewConsoleLogger(w, escapeSequences, clock.SystemClock)
}
