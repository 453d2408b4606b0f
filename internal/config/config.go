package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "tagbatch"

const (
	defaultPollInterval = 100 * time.Millisecond
	defaultRecentLimit  = 10
	defaultLogLevel     = "info"
	logFileName         = "tagbatch.log"
)

type Config struct {
	DefaultFolder  string `koanf:"default_folder"`   // directory offered when opening; empty means cwd
	PollIntervalMS int    `koanf:"poll_interval_ms"` // progress polling period (default: 100)
	LogFile        string `koanf:"log_file"`         // empty means $XDG_STATE_HOME/tagbatch/tagbatch.log
	LogLevel       string `koanf:"log_level"`        // logrus level name (default: "info")
	RecentLimit    int    `koanf:"recent_limit"`     // recent directories kept (default: 10)
}

// Load reads the config files in order of priority (last wins).
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files, skipping those that do not exist.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = ExpandPath(cfg.DefaultFolder)
	}
	if cfg.LogFile != "" {
		cfg.LogFile = ExpandPath(cfg.LogFile)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/tagbatch/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ~/.config/tagbatch/config.toml, when XDG points elsewhere
	if home, err := os.UserHomeDir(); err == nil {
		legacy := filepath.Join(home, ".config", appName, "config.toml")
		if legacy != paths[0] {
			paths = append(paths, legacy)
		}
	}

	// 3. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// ExpandPath replaces a leading ~ with the user home directory.
func ExpandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// PollInterval returns how often the UI polls a running job, defaulting to 100ms.
func (c *Config) PollInterval() time.Duration {
	if c.PollIntervalMS <= 0 {
		return defaultPollInterval
	}
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// RecentDirsLimit returns the number of recent directories to keep.
func (c *Config) RecentDirsLimit() int {
	if c.RecentLimit <= 0 {
		return defaultRecentLimit
	}
	return c.RecentLimit
}

// Level returns the configured log level name, defaulting to "info".
func (c *Config) Level() string {
	if c.LogLevel == "" {
		return defaultLogLevel
	}
	return c.LogLevel
}

// LogPath returns the log file path, creating the default state directory if needed.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return xdg.StateFile(filepath.Join(appName, logFileName))
}
