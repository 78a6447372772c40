package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, DefaultMaxHours, cfg.MaxHours)
	assert.Equal(t, DefaultMaxMinutes, cfg.MaxMinutes)
	assert.Equal(t, filepath.Join("/tmp/xdg-data", "studylog", "studylog.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join("/tmp/xdg-data", "studylog", "studylog.log"), cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Animations, "animations should default on")
	assert.False(t, cfg.ReduceMotion)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[storage]
path = "/var/lib/studylog/tracker.db"

[adjust]
max-hours = 24
max-minutes = 0

[log]
level = "debug"
file = "/var/log/studylog.log"

[ui]
reduce-motion = true
`)
	cfg, err := Load(path)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "/var/lib/studylog/tracker.db", cfg.DBPath)
	assert.Equal(t, 24, cfg.MaxHours)
	assert.Equal(t, 0, cfg.MaxMinutes, "0 disables the minutes bound")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/var/log/studylog.log", cfg.LogFile)
	assert.True(t, cfg.Animations, "unset keys keep their defaults")
	assert.True(t, cfg.ReduceMotion)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"negative hours":   "[adjust]\nmax-hours = -1\n",
		"negative minutes": "[adjust]\nmax-minutes = -5\n",
		"bad level":        "[log]\nlevel = \"chatty\"\n",
		"bad toml":         "[adjust\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		t.Skip("no home directory")
	}
	assert.Equal(t, filepath.Join(home, "data", "studylog.db"), expandHome("~/data/studylog.db"))
	assert.Equal(t, "/abs/path", expandHome("/abs/path"))
	assert.Equal(t, "~", expandHome("~"))
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}
