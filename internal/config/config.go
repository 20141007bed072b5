// Package config loads logtime settings from defaults, an optional YAML
// file and LOGTIME_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "LOGTIME"
	dirName   = ".logtime"
)

// Setting keys. Each can be overridden by LOGTIME_<KEY in upper case>.
const (
	KeyDBPath       = "db_path"
	KeyTimezone     = "timezone"
	KeyShellOut     = "shell_out"
	KeyShellDialect = "shell_dialect"
	KeyLogUseCases  = "log_use_cases"
)

// Config holds all settings read at startup. Timezone is fixed for the
// lifetime of the process.
type Config struct {
	DBPath       string `mapstructure:"db_path"`
	Timezone     string `mapstructure:"timezone"`
	ShellOut     string `mapstructure:"shell_out"`
	ShellDialect string `mapstructure:"shell_dialect"`
	LogUseCases  bool   `mapstructure:"log_use_cases"`

	// File is the config file that was read, or "" when none was.
	File string `mapstructure:"-"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:       filepath.Join(home, dirName, "logtime.db"),
		Timezone:     "UTC",
		ShellDialect: "posix",
	}
}

// DefaultFile is the config file looked up under home.
func DefaultFile(home string) string {
	return filepath.Join(home, dirName, "config.yaml")
}

// Load builds the configuration for a user whose home directory is home.
// LOGTIME_CONFIG names an alternative config file, which must then exist.
func Load(home string) (*Config, error) {
	v := viper.New()
	def := DefaultConfig(home)
	v.SetDefault(KeyDBPath, def.DBPath)
	v.SetDefault(KeyTimezone, def.Timezone)
	v.SetDefault(KeyShellOut, def.ShellOut)
	v.SetDefault(KeyShellDialect, def.ShellDialect)
	v.SetDefault(KeyLogUseCases, def.LogUseCases)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file, required := os.Getenv(EnvPrefix+"_CONFIG"), true
	if file == "" {
		file, required = DefaultFile(home), false
	}
	if _, err := os.Stat(file); err == nil {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	} else if required || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file: %w", err)
	} else {
		file = ""
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = file
	cfg.DBPath = expandHome(cfg.DBPath, home)
	cfg.ShellOut = expandHome(cfg.ShellOut, home)
	if cfg.Timezone == "" {
		cfg.Timezone = def.Timezone
	}
	return &cfg, nil
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
