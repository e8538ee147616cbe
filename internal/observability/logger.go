package observability

import (
	"os"

	"github.com/rs/zerolog"
)

type Logger struct {
	zl zerolog.Logger
}

func NewLogger() *Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

func (l *Logger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

func (l *Logger) Error(msg string, err error) {
	l.zl.Error().Err(err).Msg(msg)
}

// Zerolog exposes the underlying logger for middleware that attaches
// per-request fields.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
