package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (BOARDLINK_*).
// It respects flags that have been explicitly set (changed map).
// Returns an error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("host", os.Getenv("BOARDLINK_HOST"), &cfg.Host)
	s.setString("state-dir", os.Getenv("BOARDLINK_STATE_DIR"), &cfg.StateDir)
	s.setString("log-level", os.Getenv("BOARDLINK_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("port", os.Getenv("BOARDLINK_PORT"), &cfg.Port); err != nil {
		return err
	}
	if err := s.setIntFromString("max-reconnects", os.Getenv("BOARDLINK_MAX_RECONNECTS"), &cfg.MaxReconnects); err != nil {
		return err
	}

	if err := s.setDuration("reconnect-interval", os.Getenv("BOARDLINK_RECONNECT_INTERVAL"), &cfg.ReconnectInterval); err != nil {
		return err
	}
	if err := s.setDuration("timeout", os.Getenv("BOARDLINK_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setBoolFromString("once", os.Getenv("BOARDLINK_ONCE"), &cfg.Once)

	return nil
}
