package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide console logger.
func NewLogger() *zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05 MST",
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldInteger = true

	log := zerolog.New(output).
		With().
		Timestamp().
		Logger()

	return &log
}
