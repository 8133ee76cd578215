// Package logger is a small leveled logging facade over the standard log
// package. Output goes to stderr so it never mixes with the pricing report
// on stdout.
//
// Verbosity levels, in increasing order: Error < Info < Debug < Trace.
// Set the level once at startup (from the -v flag or LOG_VERBOSITY) and use
// the printf-style helpers everywhere else.
package logger

import (
	"log"
	"os"
)

// Level is a logging verbosity level. Higher means chattier.
type Level int

const (
	Error Level = iota // critical failures only
	Info               // high-level lifecycle events
	Debug              // diagnostic detail (request URLs, resolved inputs)
	Trace              // per-iteration detail, very verbose
)

// current is the active verbosity; messages above it are dropped.
var current Level = Info

func init() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

// SetVerbosity sets the global verbosity. Call once during startup.
func SetVerbosity(v int) {
	current = Level(v)
}

func logf(l Level, prefix, format string, args ...any) {
	if current >= l {
		log.Printf(prefix+format, args...)
	}
}

// Errorf logs a failure that requires attention.
func Errorf(format string, args ...any) { logf(Error, "[ERROR] ", format, args...) }

// Infof logs a major lifecycle event.
func Infof(format string, args ...any) { logf(Info, "[INFO]  ", format, args...) }

// Debugf logs diagnostic detail useful during development.
func Debugf(format string, args ...any) { logf(Debug, "[DEBUG] ", format, args...) }

// Tracef logs fine-grained execution detail.
func Tracef(format string, args ...any) { logf(Trace, "[TRACE] ", format, args...) }
