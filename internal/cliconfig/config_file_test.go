package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfigFile(t, `
host = "darts.local"
port = 8080
log_level = "debug"
reconnect_interval = "2s"
max_reconnects = 10
http_timeout = "30s"
once = true
`)

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.Host != "darts.local" {
		t.Errorf("Host = %q, want darts.local", fc.Host)
	}
	if fc.Port != 8080 {
		t.Errorf("Port = %d, want 8080", fc.Port)
	}
	if fc.ReconnectInterval != "2s" {
		t.Errorf("ReconnectInterval = %q, want 2s", fc.ReconnectInterval)
	}
	if fc.Once == nil || !*fc.Once {
		t.Error("Once = false, want true")
	}
}

func TestLoadFileConfig_MissingFile(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadFileConfig() error = nil for missing file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	path := writeConfigFile(t, `host = [unclosed`)
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("LoadFileConfig() error = nil for invalid TOML")
	}
}

func TestApplyFileConfig(t *testing.T) {
	cfg := DefaultConfig()
	once := true
	fc := FileConfig{
		Host:              "darts.local",
		Port:              8080,
		LogLevel:          "debug",
		ReconnectInterval: "2s",
		MaxReconnects:     3,
		HTTPTimeout:       "30s",
		Once:              &once,
	}

	if err := ApplyFileConfig(&cfg, fc, nil); err != nil {
		t.Fatalf("ApplyFileConfig() error = %v", err)
	}

	if cfg.Host != "darts.local" || cfg.Port != 8080 {
		t.Errorf("endpoint = %s:%d, want darts.local:8080", cfg.Host, cfg.Port)
	}
	if cfg.ReconnectInterval != 2*time.Second {
		t.Errorf("ReconnectInterval = %v, want 2s", cfg.ReconnectInterval)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v, want 30s", cfg.HTTPTimeout)
	}
	if cfg.MaxReconnects != 3 {
		t.Errorf("MaxReconnects = %d, want 3", cfg.MaxReconnects)
	}
	if !cfg.Once {
		t.Error("Once = false, want true")
	}
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Host = "flag-host"
	cfg.Port = 9999

	fc := FileConfig{Host: "file-host", Port: 8080, LogLevel: "debug"}
	changed := map[string]bool{"host": true, "port": true}

	if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
		t.Fatalf("ApplyFileConfig() error = %v", err)
	}

	if cfg.Host != "flag-host" || cfg.Port != 9999 {
		t.Errorf("endpoint = %s:%d, file overrode explicit flags", cfg.Host, cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, unchanged flag should take the file value", cfg.LogLevel)
	}
}

func TestApplyFileConfig_BadDuration(t *testing.T) {
	cfg := DefaultConfig()
	fc := FileConfig{ReconnectInterval: "soon"}

	if err := ApplyFileConfig(&cfg, fc, nil); err == nil {
		t.Error("ApplyFileConfig() error = nil for bad duration")
	}
}

func TestFileExists(t *testing.T) {
	path := writeConfigFile(t, "host = \"x\"\n")

	if !FileExists(path) {
		t.Error("FileExists() = false for existing file")
	}
	if FileExists(filepath.Join(t.TempDir(), "absent.toml")) {
		t.Error("FileExists() = true for missing file")
	}
}
