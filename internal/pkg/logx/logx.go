/*
Package logx wraps zerolog with the logging conventions used across the tracker.

The server and the terminal client share one global logger. Development builds write
human-readable console output at debug level; every other environment writes JSON at info
level. The helpers accept trailing key/value pairs so call sites stay short.
*/
package logx

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitGlobalLogger configures the global zerolog instance for the given environment.
// Log lines carry a Unix timestamp and the caller location.
func InitGlobalLogger(isDevelopment bool) {
	InitGlobalLoggerTo(os.Stdout, isDevelopment)
}

// InitGlobalLoggerTo is InitGlobalLogger with an explicit destination. The terminal client
// uses it to keep diagnostics on stderr, away from command output.
func InitGlobalLoggerTo(out io.Writer, isDevelopment bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(out).With().Timestamp().Logger()

	if isDevelopment {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		})
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	log.Logger = logger.With().Caller().Logger()
}

// Disable silences the global logger. Tests and quiet CLI runs use it.
func Disable() {
	log.Logger = zerolog.Nop()
}

// Logger returns the global logger.
func Logger() *zerolog.Logger {
	return &log.Logger
}

// Component returns a child logger tagged with the component name.
func Component(name string) zerolog.Logger {
	return Logger().With().Str("component", name).Logger()
}

// pairs drops the fields when they are not key/value pairs, since zerolog's Fields
// panics on an odd-length slice.
func pairs(level string, fields []any) []any {
	if len(fields)%2 == 0 {
		return fields
	}

	Logger().Warn().
		Int("fields_count", len(fields)).
		Str("log_level", level).
		Msg("logx: odd number of fields, dropping them")
	return nil
}

// Debug logs at debug level.
func Debug(msg string, fields ...any) {
	Logger().Debug().
		Fields(pairs("debug", fields)).
		CallerSkipFrame(1).
		Msg(msg)
}

// Info logs at info level.
func Info(msg string, fields ...any) {
	Logger().Info().
		Fields(pairs("info", fields)).
		CallerSkipFrame(1).
		Msg(msg)
}

// Warn logs at warn level.
func Warn(msg string, fields ...any) {
	Logger().Warn().
		Fields(pairs("warn", fields)).
		CallerSkipFrame(1).
		Msg(msg)
}

// Error logs err at error level.
func Error(err error, msg string, fields ...any) {
	Logger().Error().
		Err(err).
		Fields(pairs("error", fields)).
		CallerSkipFrame(1).
		Msg(msg)
}

// Fatal logs err and exits the process with status 1.
func Fatal(err error, msg string, fields ...any) {
	Logger().Fatal().
		Err(err).
		Fields(pairs("fatal", fields)).
		CallerSkipFrame(1).
		Msg(msg)
}
