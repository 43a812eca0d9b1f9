package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// FileName is the configuration file looked up in the working directory
// when no explicit path is given.
const FileName = "specgraph.hcl"

const (
	defaultEntry           = "main.sdl"
	defaultRoot            = "."
	defaultExtension       = ".sdl"
	defaultMaxIncludeDepth = 20
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
)

// Config is the full project configuration.
type Config struct {
	Project Project
	Logging Logging

	// Path is the file the configuration was loaded from. It is empty for
	// Default().
	Path string
}

// Project describes where the model sources live.
type Project struct {
	// Entry is the root source file.
	Entry string
	// Root bounds every include path.
	Root            string
	Extension       string
	MaxIncludeDepth int
}

// Logging selects the level and handler format of the application logger.
type Logging struct {
	Level  string
	Format string
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel returns the slog level named by Level.
func (l Logging) SlogLevel() (slog.Level, error) {
	level, ok := logLevels[l.Level]
	if !ok {
		return 0, fmt.Errorf("invalid logging.level %q: must be 'debug', 'info', 'warn', or 'error'", l.Level)
	}
	return level, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Project: Project{
			Entry:           defaultEntry,
			Root:            defaultRoot,
			Extension:       defaultExtension,
			MaxIncludeDepth: defaultMaxIncludeDepth,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Project.Entry) == "" {
		errs = append(errs, errors.New("project.entry must not be empty"))
	}
	if !strings.HasPrefix(c.Project.Extension, ".") || len(c.Project.Extension) < 2 {
		errs = append(errs, fmt.Errorf("project.extension %q must start with a dot", c.Project.Extension))
	}
	if c.Project.MaxIncludeDepth < 1 {
		errs = append(errs, fmt.Errorf("project.max_include_depth must be positive, got %d", c.Project.MaxIncludeDepth))
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid logging.format %q: must be 'text' or 'json'", c.Logging.Format))
	}
	return errors.Join(errs...)
}
