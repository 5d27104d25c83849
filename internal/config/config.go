package config

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	TextFormat = "text"
	JSONFormat = "json"

	EnvLogLevel  = "PQUEUE_LOG_LEVEL"
	EnvLogFormat = "PQUEUE_LOG_FORMAT"
)

var ErrInvalidFormat = errors.New("invalid log format")

type Config struct {
	LogLevel  logrus.Level
	LogFormat string
}

// Default logs warnings and above as text.
func Default() *Config {
	return &Config{
		LogLevel:  logrus.WarnLevel,
		LogFormat: TextFormat,
	}
}

// Parse builds a Config from textual level and format values. Empty values
// keep the defaults.
func Parse(level, format string) (*Config, error) {
	cfg := Default()
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, errors.Wrap(err, "config: log level")
		}
		cfg.LogLevel = lvl
	}
	if format != "" {
		cfg.LogFormat = format
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.LogFormat {
	case TextFormat, JSONFormat:
		return nil
	default:
		return errors.Wrapf(ErrInvalidFormat, "config: %q", c.LogFormat)
	}
}

// NewLogger returns a logger writing to out with the configured level and formatter.
func NewLogger(cfg *Config, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(cfg.LogLevel)
	if cfg.LogFormat == JSONFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return logger
}
