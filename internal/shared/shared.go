// package shared defines shared helpers
package shared

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NewLogger creates a new [log.Logger] instance with the specified [io.Writer], with timestamps enabled.
//
// The writer defaults to [os.Stderr]. Every logger carries a "run" key with
// a fresh run id so log lines from distinct sync runs can be told apart.
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true}
	return log.NewWithOptions(w, opts).With("run", GenerateID())
}

// WithLogger creates a child [log.Logger] with the specified key-value pairs added to all log entries.
func WithLogger(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// VerbosityLevel maps repeatable --verbose/--quiet flag counts to a [log.Level].
//
// The default is info; each --verbose lowers the threshold towards debug,
// each --quiet raises it towards error.
func VerbosityLevel(verbose, quiet int) log.Level {
	switch verbosity := verbose - quiet; {
	case verbosity <= -2:
		return log.ErrorLevel
	case verbosity == -1:
		return log.WarnLevel
	case verbosity == 0:
		return log.InfoLevel
	default:
		return log.DebugLevel
	}
}

// GenerateID generates a new v4 [uuid.UUID] as a string
func GenerateID() string {
	return uuid.New().String()
}
