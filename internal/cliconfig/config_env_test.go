package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("BOARDLINK_HOST", "env-host")
	t.Setenv("BOARDLINK_PORT", "4444")
	t.Setenv("BOARDLINK_LOG_LEVEL", "warn")
	t.Setenv("BOARDLINK_RECONNECT_INTERVAL", "10s")
	t.Setenv("BOARDLINK_MAX_RECONNECTS", "5")
	t.Setenv("BOARDLINK_HTTP_TIMEOUT", "20s")
	t.Setenv("BOARDLINK_ONCE", "1")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}

	if cfg.Host != "env-host" {
		t.Errorf("Host = %q, want env-host", cfg.Host)
	}
	if cfg.Port != 4444 {
		t.Errorf("Port = %d, want 4444", cfg.Port)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.ReconnectInterval != 10*time.Second {
		t.Errorf("ReconnectInterval = %v, want 10s", cfg.ReconnectInterval)
	}
	if cfg.MaxReconnects != 5 {
		t.Errorf("MaxReconnects = %d, want 5", cfg.MaxReconnects)
	}
	if cfg.HTTPTimeout != 20*time.Second {
		t.Errorf("HTTPTimeout = %v, want 20s", cfg.HTTPTimeout)
	}
	if !cfg.Once {
		t.Error("Once = false, want true")
	}
}

func TestApplyEnvConfig_FlagsWin(t *testing.T) {
	t.Setenv("BOARDLINK_HOST", "env-host")
	t.Setenv("BOARDLINK_PORT", "4444")

	cfg := DefaultConfig()
	cfg.Host = "flag-host"
	changed := map[string]bool{"host": true}

	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}

	if cfg.Host != "flag-host" {
		t.Errorf("Host = %q, env overrode explicit flag", cfg.Host)
	}
	if cfg.Port != 4444 {
		t.Errorf("Port = %d, want 4444 from env", cfg.Port)
	}
}

func TestApplyEnvConfig_InvalidPort(t *testing.T) {
	t.Setenv("BOARDLINK_PORT", "not-a-port")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err == nil {
		t.Error("ApplyEnvConfig() error = nil for invalid port")
	}
}

func TestApplyEnvConfig_EmptyEnvKeepsDefaults(t *testing.T) {
	t.Setenv("BOARDLINK_HOST", "")
	t.Setenv("BOARDLINK_PORT", "")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}
	if cfg.Host != DefaultHost || cfg.Port != DefaultPort {
		t.Errorf("config = %s:%d, want defaults", cfg.Host, cfg.Port)
	}
}
