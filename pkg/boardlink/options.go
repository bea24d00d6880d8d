package boardlink

import (
	"github.com/bullseye-labs/boardlink/internal/ports"
	"github.com/bullseye-labs/boardlink/pkg/log"
)

// Logger is the structured logging interface accepted by WithLogger.
type Logger = log.Logger

// LogField is a single structured logging field passed to Logger methods.
type LogField = log.Field

// StreamDialer opens connections to the board's event stream.
// The default implementation uses gorilla/websocket.
type StreamDialer = ports.StreamDialer

// StreamConn is one established event stream connection.
type StreamConn = ports.StreamConn

// BoardController issues start/stop/reset commands against the board.
// The default implementation uses the board's HTTP API.
type BoardController = ports.BoardController

// StateRepository persists session state between runs.
type StateRepository = ports.StateRepository

// Option configures optional behavior of a Board.
type Option func(*options)

// options holds the optional configuration for a Board instance.
type options struct {
	logger     ports.Logger
	dialer     ports.StreamDialer
	controller ports.BoardController
	stateRepo  ports.StateRepository
	handler    EventHandler
	plugins    []Plugin
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDialer sets a custom stream dialer, used for dependency injection in
// tests or to replace the websocket transport.
func WithDialer(dialer StreamDialer) Option {
	return func(o *options) {
		o.dialer = dialer
	}
}

// WithController sets a custom board controller.
func WithController(controller BoardController) Option {
	return func(o *options) {
		o.controller = controller
	}
}

// WithStateRepository sets a custom session state store.
// If not provided, state is written to Config.StateDir, or kept in memory
// when StateDir is empty.
func WithStateRepository(repo StateRepository) Option {
	return func(o *options) {
		o.stateRepo = repo
	}
}

// WithEventHandler sets a handler for board client events.
// Events are called synchronously from the consuming goroutine.
// If not provided, no events are emitted.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.handler = handler
	}
}

// WithPlugin registers a plugin to be initialized when the client starts.
// Plugins are initialized in registration order and shut down in reverse
// order.
func WithPlugin(plugin Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, plugin)
	}
}
