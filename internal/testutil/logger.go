package testutil

import (
	"io"
	"log/slog"

	"github.com/umtaldejr/money-tracker-api/internal/logger"
)

// MakeNoopLogger returns a logger that discards every record.
func MakeNoopLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}
