// Package cliconfig loads the tc command's ambient settings from the
// environment.
package cliconfig

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config is the environment-driven configuration shared by every tc
// subcommand. Flags override it per invocation.
type Config struct {
	FPS       float64 `envconfig:"TC_FPS" default:"24"`
	DropFrame bool    `envconfig:"TC_DROP_FRAME"`
	NonStrict bool    `envconfig:"TC_NON_STRICT"`
	LogLevel  string  `envconfig:"TC_LOG_LEVEL" default:"warning"`
}

// Load reads the config from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "loading environment config")
	}
	return &cfg, nil
}

// Logger builds a logger at the configured level.
func (c *Config) Logger() (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing log level %q", c.LogLevel)
	}
	l := logrus.New()
	l.SetLevel(lvl)
	return l, nil
}
