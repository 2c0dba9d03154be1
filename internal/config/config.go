// Package config loads application configuration from Viper-managed
// sources: the config file, COBRADOR_ environment variables and flags.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the commands need to wire the engine.
type Config struct {
	StoragePath   string
	LogLevel      string
	LogFormat     string
	LimiteDespesa float64
}

// Load reads the configuration from Viper with sensible defaults.
func Load() Config {
	cfg := Config{
		StoragePath:   "~/.local/share/cobrador/cobrador.db",
		LogLevel:      "info",
		LogFormat:     "console",
		LimiteDespesa: 0, // 0 means the synthesizer default
	}

	if v := viper.GetString("storage.path"); v != "" {
		cfg.StoragePath = v
	}
	if v := viper.GetString("logging.level"); v != "" {
		cfg.LogLevel = v
	}
	if v := viper.GetString("logging.format"); v != "" {
		cfg.LogFormat = v
	}
	if v := viper.GetFloat64("alerts.expense_threshold"); v > 0 {
		cfg.LimiteDespesa = v
	}

	cfg.StoragePath = ExpandPath(cfg.StoragePath)
	return cfg
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	} else if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return os.ExpandEnv(path)
}
