package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/specgraph/internal/config"
)

// newLogger builds the application logger from the logging section of the
// project configuration. The global slog default is left untouched.
func newLogger(cfg config.Logging, outW io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch cfg.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(outW, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(outW, opts)), nil
	default:
		return nil, fmt.Errorf("invalid logging.format %q: must be 'text' or 'json'", cfg.Format)
	}
}
