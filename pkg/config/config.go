// Package config reads settings from .todo config files and TODO_ variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"tableflip.dev/todo/pkg/notify"
	"tableflip.dev/todo/pkg/tasklist"
)

const (
	keyPath           = "path"
	keySort           = "sort"
	keyNoticeDuration = "notice_duration"
	keyLogLevel       = "log_level"

	// EnvConfigPath names an extra directory to search for .todo files.
	EnvConfigPath = "TODO_CONFIG_PATH"
)

// Config holds every setting the CLI and UI read.
type Config struct {
	Path           string
	SortOrder      tasklist.SortOrder
	NoticeDuration time.Duration
	LogLevel       log.Level
}

// BasePath is where the store keeps its data.
func (c *Config) BasePath() string {
	return c.Path
}

// Load reads the config file (if any) and environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault(keyPath, "~/.todo.db")
	v.SetDefault(keySort, string(tasklist.Desc))
	v.SetDefault(keyNoticeDuration, notify.DefaultDuration.String())
	v.SetDefault(keyLogLevel, log.WarnLevel.String())
	v.SetConfigName(".todo") // .yaml, .toml or .json
	v.SetEnvPrefix("TODO")
	v.AutomaticEnv()

	if override := os.Getenv(EnvConfigPath); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	} else {
		log.WithField("file", v.ConfigFileUsed()).Debug("config: loaded")
	}

	path, err := homedir.Expand(v.GetString(keyPath))
	if err != nil {
		return nil, fmt.Errorf("config: expand path: %w", err)
	}

	order, err := tasklist.ParseSortOrder(v.GetString(keySort))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	d := v.GetDuration(keyNoticeDuration)
	if d <= 0 {
		d = notify.DefaultDuration
	}

	level, err := log.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &Config{
		Path:           path,
		SortOrder:      order,
		NoticeDuration: d,
		LogLevel:       level,
	}, nil
}
