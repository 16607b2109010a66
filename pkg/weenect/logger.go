package weenect

import (
	"os"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts a zerolog.Logger to the Logger interface used
// throughout the client.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger wraps an existing zerolog.Logger.
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{logger: logger}
}

// NewDefaultLogger returns a ZerologLogger writing JSON to stdout with
// timestamps.
func NewDefaultLogger() *ZerologLogger {
	return &ZerologLogger{
		logger: zerolog.New(os.Stdout).With().Timestamp().Logger(),
	}
}

// Debug logs a debug message with key/value pairs
func (l *ZerologLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

// Info logs an info message with key/value pairs
func (l *ZerologLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info().Fields(keysAndValues).Msg(msg)
}

// Warn logs a warning message with key/value pairs
func (l *ZerologLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}

// Error logs an error message with key/value pairs
func (l *ZerologLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}
