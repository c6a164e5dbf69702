package store

import (
	"os"
	"path/filepath"
	"testing"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(ConfigPathEnv, dir)
	for _, key := range []string{"PATH", "BACKEND", "KEY", "THEME", "LOG_LEVEL"} {
		t.Setenv("GROUPDO_"+key, "")
	}
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "backend", got: cfg.Backend(), want: DefaultBackend},
		{name: "key", got: cfg.Key(), want: DefaultKey},
		{name: "theme", got: cfg.Theme(), want: DefaultTheme},
		{name: "log level", got: cfg.LogLevel(), want: DefaultLogLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	var empty Settings
	if empty.Theme() != DefaultTheme || empty.LogLevel() != DefaultLogLevel {
		t.Fatalf("empty Settings = %q %q", empty.Theme(), empty.LogLevel())
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolateConfig(t)
	data := "path: " + filepath.Join(dir, "data") + "\nbackend: sqlite\ntheme: light\nlog_level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, ".groupdo.yaml"), []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "data") || cfg.Backend() != BackendSQLite {
		t.Fatalf("store settings = %q %q", cfg.BasePath(), cfg.Backend())
	}
	if cfg.Theme() != "light" || cfg.LogLevel() != "debug" {
		t.Fatalf("theme/log level = %q %q", cfg.Theme(), cfg.LogLevel())
	}
}
