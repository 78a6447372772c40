package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/balkashynov/studylog/internal/logger"
)

// Upper bounds of the adjust form inputs.
const (
	DefaultMaxHours   = 999
	DefaultMaxMinutes = 999
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Storage StorageConfig `toml:"storage"`
	Adjust  AdjustConfig  `toml:"adjust"`
	Log     LogConfig     `toml:"log"`
	UI      UIConfig      `toml:"ui"`
}

// StorageConfig maps storage settings.
type StorageConfig struct {
	Path *string `toml:"path"`
}

// AdjustConfig maps limits for manual adjustments. 0 disables a limit.
type AdjustConfig struct {
	MaxHours   *int `toml:"max-hours"`
	MaxMinutes *int `toml:"max-minutes"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// UIConfig maps terminal UI settings.
type UIConfig struct {
	Animations   *bool `toml:"animations"`
	ReduceMotion *bool `toml:"reduce-motion"`
}

// Config is the resolved configuration with defaults applied.
type Config struct {
	DBPath     string
	MaxHours   int
	MaxMinutes int
	LogLevel   string
	LogFile    string

	Animations   bool
	ReduceMotion bool
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DBPath:     DefaultDBPath(),
		MaxHours:   DefaultMaxHours,
		MaxMinutes: DefaultMaxMinutes,
		LogLevel:   "info",
		LogFile:    DefaultLogPath(),
		Animations: true,
	}
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Load reads the file at path and merges it over the defaults.
func Load(path string) (Config, error) {
	fileCfg, err := LoadConfig(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := cfg.apply(fileCfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(f FileConfig) error {
	if f.Storage.Path != nil && *f.Storage.Path != "" {
		c.DBPath = expandHome(*f.Storage.Path)
	}
	if f.Adjust.MaxHours != nil {
		if *f.Adjust.MaxHours < 0 {
			return fmt.Errorf("adjust.max-hours must not be negative")
		}
		c.MaxHours = *f.Adjust.MaxHours
	}
	if f.Adjust.MaxMinutes != nil {
		if *f.Adjust.MaxMinutes < 0 {
			return fmt.Errorf("adjust.max-minutes must not be negative")
		}
		c.MaxMinutes = *f.Adjust.MaxMinutes
	}
	if f.Log.Level != nil {
		if _, err := logger.ParseLevel(*f.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
		c.LogLevel = *f.Log.Level
	}
	if f.Log.File != nil && *f.Log.File != "" {
		c.LogFile = expandHome(*f.Log.File)
	}
	if f.UI.Animations != nil {
		c.Animations = *f.UI.Animations
	}
	if f.UI.ReduceMotion != nil {
		c.ReduceMotion = *f.UI.ReduceMotion
	}
	return nil
}
