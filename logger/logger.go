// Package logger provides a configurable logger across circuitgraph components
//
// The root logger defined by default uses github.com/rs/zerolog with a console writer.
// Its verbosity can be set with the CIRCUITGRAPH_VERBOSITY environment variable
// (trace, debug, info, warn, error, fatal, panic or disabled).
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/consensys/circuitgraph/debug"
	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if v := os.Getenv("CIRCUITGRAPH_VERBOSITY"); v != "" {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			logger = logger.Level(lvl)
		}
	}

	if !debug.Debug && strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}

}

// SetOutput changes the output of the global logger
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set allow a circuitgraph user to override the global logger
func Set(l zerolog.Logger) {
	logger = l
}

// Disable disables logging
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns a sublogger for a component
func Logger() zerolog.Logger {
	return logger
}
