package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"

	DefaultPath     = "~/.groupdo"
	DefaultKey      = "TodoSaveData"
	DefaultTheme    = "dark"
	DefaultBackend  = BackendDiskv
	DefaultLogLevel = "warn"

	// ConfigPathEnv names a directory searched for .groupdo.yaml first.
	ConfigPathEnv = "GROUPDO_CONFIG_PATH"
)

// Config is what the store, the theme and the logger need from the user's
// configuration.
type Config interface {
	BasePath() string
	Backend() string
	Key() string
	Theme() string
	LogLevel() string
}

// LoadConfig reads .groupdo.yaml from $GROUPDO_CONFIG_PATH or the working
// directory. Every key can be overridden with a GROUPDO_ environment variable.
// A missing file is not an error.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("backend", DefaultBackend)
	v.SetDefault("key", DefaultKey)
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetConfigName(".groupdo") // .yaml is implicit
	v.SetEnvPrefix("GROUPDO")
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &Settings{
		Path:         path,
		StoreBackend: v.GetString("backend"),
		SaveKey:      v.GetString("key"),
		ThemeName:    v.GetString("theme"),
		Level:        v.GetString("log_level"),
	}, nil
}

// Settings is a plain Config. Empty fields fall back to the defaults.
type Settings struct {
	Path         string `json:"path"`
	StoreBackend string `json:"backend"`
	SaveKey      string `json:"key"`
	ThemeName    string `json:"theme"`
	Level        string `json:"log_level"`
}

var _ Config = (*Settings)(nil)

func (s *Settings) BasePath() string {
	if s.Path == "" {
		p, _ := homedir.Expand(DefaultPath)
		return p
	}
	return s.Path
}

func (s *Settings) Backend() string {
	if s.StoreBackend == "" {
		return DefaultBackend
	}
	return s.StoreBackend
}

func (s *Settings) Key() string {
	if s.SaveKey == "" {
		return DefaultKey
	}
	return s.SaveKey
}

func (s *Settings) Theme() string {
	if s.ThemeName == "" {
		return DefaultTheme
	}
	return s.ThemeName
}

func (s *Settings) LogLevel() string {
	if s.Level == "" {
		return DefaultLogLevel
	}
	return s.Level
}
