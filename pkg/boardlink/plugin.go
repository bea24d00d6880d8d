package boardlink

import (
	"context"

	"github.com/bullseye-labs/boardlink/pkg/log"
)

// Plugin extends the board client with optional functionality. Plugins are
// initialized in registration order when the client starts and shut down in
// reverse order when it stops.
type Plugin interface {
	// Name returns the plugin identifier used in logs.
	Name() string

	// Initialize starts the plugin. The context lives for the client run.
	Initialize(ctx context.Context, cfg PluginConfig) error

	// Shutdown stops the plugin and releases its resources.
	Shutdown(ctx context.Context) error
}

// PluginConfig is the runtime context handed to plugins on initialization.
type PluginConfig struct {
	// Host and Port identify the board the client is connected to.
	Host string
	Port int

	// StateDir is the session state directory; may be empty.
	StateDir string

	// Logger is the client's logger.
	Logger log.Logger
}
