package boardlink

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/bullseye-labs/boardlink/internal/domain"
)

// Default connection values. 3180 is the board client's default port.
const (
	DefaultHost              = "localhost"
	DefaultPort              = 3180
	DefaultReconnectInterval = 5 * time.Second
	DefaultHTTPTimeout       = 15 * time.Second
)

// eventsPath is the board's stream endpoint; the type query parameter
// filters the envelope kinds delivered on the stream.
const eventsPath = "/api/events"

// Config holds the configuration for the board client.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// Host is the IP address or hostname of the board client.
	Host string

	// Port is the port of the board client.
	Port int

	// StateDir is where status.json is written. Empty disables session
	// state persistence.
	StateDir string

	// ReconnectInterval is the fixed delay before redialing the stream.
	ReconnectInterval time.Duration

	// MaxReconnects caps consecutive failed reconnect attempts; 0 means
	// unlimited.
	MaxReconnects int

	// HTTPTimeout bounds each control command request.
	HTTPTimeout time.Duration

	// Once exits after the first disconnect instead of reconnecting.
	Once bool
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Host:              DefaultHost,
		Port:              DefaultPort,
		ReconnectInterval: DefaultReconnectInterval,
		HTTPTimeout:       DefaultHTTPTimeout,
	}
}

// SetDefaults fills zero-valued fields with defaults.
func (c *Config) SetDefaults() {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.ReconnectInterval == 0 {
		c.ReconnectInterval = DefaultReconnectInterval
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: host is required", domain.ErrInvalidConfig)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", domain.ErrInvalidConfig, c.Port)
	}
	if c.ReconnectInterval <= 0 {
		return fmt.Errorf("%w: reconnect interval must be positive", domain.ErrInvalidConfig)
	}
	if c.MaxReconnects < 0 {
		return fmt.Errorf("%w: max reconnects must not be negative", domain.ErrInvalidConfig)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: http timeout must be positive", domain.ErrInvalidConfig)
	}
	return nil
}

// BaseURL returns the board's HTTP control base URL.
func (c Config) BaseURL() string {
	return "http://" + c.hostPort()
}

// EventsURL returns the websocket stream URL subscribed to state frames.
func (c Config) EventsURL() string {
	u := url.URL{
		Scheme:   "ws",
		Host:     c.hostPort(),
		Path:     eventsPath,
		RawQuery: url.Values{"type": []string{"state"}}.Encode(),
	}
	return u.String()
}

func (c Config) hostPort() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
