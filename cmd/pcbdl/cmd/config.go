package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DefaultConfigFile is looked up in the working directory when --config
// is not given.
const DefaultConfigFile = "pcbdl.toml"

// Config holds the optional TOML configuration. Flags win over file
// values.
type Config struct {
	// NoConnectPrefix overrides the auto-generated net name prefix the
	// loader's no-connect filter matches on.
	NoConnectPrefix string `toml:"no_connect_prefix"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// LoadConfig decodes the config file at path. An empty path falls back
// to pcbdl.toml in the working directory; that file being absent is not
// an error, an explicitly given file must exist.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return cfg, nil
}

// Level maps the configured log level to a charmbracelet level,
// defaulting to info.
func (c Config) Level() log.Level {
	switch c.LogLevel {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	}
	return log.InfoLevel
}
