// Package config loads client configuration from defaults, an optional
// config file and ECHOED_* environment variables, in that order.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration
type Config struct {
	ServerURL   string        // base URL of the Echoed backend
	DataDir     string        // directory for the session and history databases
	LogLevel    string        // debug, info, warn, error
	HTTPTimeout time.Duration // per-request timeout
	HistorySize int           // max rows kept per history table
}

// Load reads configuration. configFile may be empty; then an optional
// config.yaml inside the data dir is used if present.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.url", "http://localhost:8080/api/v1")
	v.SetDefault("data.dir", defaultDataDir())
	v.SetDefault("log.level", "info")
	v.SetDefault("http.timeout", "30s")
	v.SetDefault("history.size", 200)

	v.SetEnvPrefix("ECHOED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(v.GetString("data.dir"))
		if err := v.ReadInConfig(); err != nil {
			// a missing default config file is fine
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				if !os.IsNotExist(err) {
					return nil, fmt.Errorf("failed to read config file: %w", err)
				}
			}
		}
	}

	cfg := &Config{
		ServerURL:   strings.TrimRight(v.GetString("server.url"), "/"),
		DataDir:     v.GetString("data.dir"),
		LogLevel:    v.GetString("log.level"),
		HTTPTimeout: v.GetDuration("http.timeout"),
		HistorySize: v.GetInt("history.size"),
	}

	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("server url must not be empty")
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	return cfg, nil
}

// SlogLevel maps the configured level onto slog
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SessionDBPath is the BoltDB file holding the durable session scope
func (c *Config) SessionDBPath() string {
	return filepath.Join(c.DataDir, "session.db")
}

// HistoryDBPath is the SQLite file holding the local history cache
func (c *Config) HistoryDBPath() string {
	return filepath.Join(c.DataDir, "history.db")
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".echoed"
	}
	return filepath.Join(base, "echoed")
}
