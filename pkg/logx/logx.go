package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"kamakpos/m/internal/core"
)

type Options struct {
	Environment core.Environment
	// Output defaults to stdout in production and stderr elsewhere.
	Output io.Writer
}

// New builds a logger for opts. Production gets JSON at info level; every
// other environment gets a console writer at debug level with callers.
func New(opts Options) zerolog.Logger {
	if opts.Environment.IsProduction() {
		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		return zerolog.New(out).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: out}).Level(zerolog.DebugLevel).
		With().Timestamp().Caller().Logger()
}

// Init replaces the global logger used by the helpers below.
func Init(opts Options) {
	log.Logger = New(opts)
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
