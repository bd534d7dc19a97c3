package testutil

import (
	"io"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/logger"
)

// MakeNoopLogger returns a logger that discards everything.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, -4, "text")
}
