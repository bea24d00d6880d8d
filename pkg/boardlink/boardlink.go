package boardlink

import (
	"context"
	"errors"
	"sync"

	fsAdapter "github.com/bullseye-labs/boardlink/internal/adapters/fs"
	httpAdapter "github.com/bullseye-labs/boardlink/internal/adapters/http"
	logAdapter "github.com/bullseye-labs/boardlink/internal/adapters/log"
	wsAdapter "github.com/bullseye-labs/boardlink/internal/adapters/ws"
	"github.com/bullseye-labs/boardlink/internal/app"
	"github.com/bullseye-labs/boardlink/internal/domain"
	"github.com/bullseye-labs/boardlink/internal/ports"
)

// Board is a dartboard stream client that can be embedded in other
// applications. Use New() to create an instance, then Start() to begin
// consuming the event stream.
type Board struct {
	config     Config
	opts       options
	lifecycle  *app.Lifecycle
	listener   *app.Listener
	controller ports.BoardController
	stateRepo  ports.StateRepository
	logger     ports.Logger
	plugins    []Plugin

	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	runErr error
}

// New creates a new Board instance with the given configuration.
// The instance is created in StateStopped; call Start() to begin consuming.
// Returns an error if the configuration is invalid.
func New(cfg Config, opts ...Option) (*Board, error) {
	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var logger ports.Logger
	if o.logger != nil {
		logger = o.logger
	} else {
		logger = logAdapter.NewNoopLogger()
	}

	emitter := &eventEmitterWrapper{handler: o.handler}

	lifecycle := app.NewLifecycle(logger, emitter)

	dialer := o.dialer
	if dialer == nil {
		dialer = wsAdapter.NewDialer(logger)
	}

	controller := o.controller
	if controller == nil {
		controller = httpAdapter.NewController(cfg.BaseURL(), cfg.HTTPTimeout, logger)
	}

	stateRepo := o.stateRepo
	if stateRepo == nil {
		if cfg.StateDir != "" {
			stateRepo = fsAdapter.NewStateFileRepository(cfg.StateDir)
		} else {
			stateRepo = &memoryStateRepository{}
		}
	}

	listenerCfg := app.ListenerConfig{
		Endpoint: cfg.EventsURL(),
		Reconnect: app.ReconnectPolicy{
			Interval:    cfg.ReconnectInterval,
			MaxAttempts: cfg.MaxReconnects,
		},
		Once: cfg.Once,
	}
	listener := app.NewListener(listenerCfg, dialer, stateRepo, logger, emitter)

	return &Board{
		config:     cfg,
		opts:       o,
		lifecycle:  lifecycle,
		listener:   listener,
		controller: controller,
		stateRepo:  stateRepo,
		logger:     logger,
		plugins:    o.plugins,
	}, nil
}

// Start begins consuming the event stream in the background.
// Returns immediately after starting the consuming goroutine.
// Returns an error if already running or if a plugin fails to initialize.
// The provided context is used for the lifetime of the stream.
func (b *Board) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.lifecycle.CanStart() {
		return domain.ErrAlreadyRunning
	}

	if err := b.lifecycle.TransitionTo(app.StateStarting, "Start() called"); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	b.ctx = runCtx
	b.cancel = cancel
	b.done = make(chan struct{})
	b.runErr = nil
	b.lifecycle.SetCancel(cancel)

	pluginCfg := PluginConfig{
		Host:     b.config.Host,
		Port:     b.config.Port,
		StateDir: b.config.StateDir,
		Logger:   b.logger,
	}
	for _, p := range b.plugins {
		if err := p.Initialize(runCtx, pluginCfg); err != nil {
			b.logger.Error("plugin initialization failed",
				ports.String("plugin", p.Name()),
				ports.Err(err))
			cancel()
			_ = b.lifecycle.TransitionTo(app.StateCrashed, "plugin init failed: "+p.Name())
			return err
		}
		b.logger.Info("plugin initialized", ports.String("plugin", p.Name()))
	}

	b.lifecycle.AddWorker()
	go func() {
		defer b.lifecycle.WorkerDone()
		defer close(b.done)

		if err := b.lifecycle.TransitionTo(app.StateRunning, "listener starting"); err != nil {
			b.logger.Error("failed to transition to running", ports.Err(err))
			return
		}

		err := b.listener.Run(runCtx)

		switch {
		case err == nil:
			// Once mode: the stream ended and no reconnect was requested.
			_ = b.lifecycle.TransitionTo(app.StateStopping, "stream finished")
			_ = b.lifecycle.TransitionTo(app.StateStopped, "stream finished")
		case errors.Is(err, context.Canceled) || runCtx.Err() != nil:
			// When Stop() is in flight the state is already Stopping and
			// Stop() owns the final transition. An embedder canceling the
			// Start context directly skips Stop(), so finish the shutdown
			// here if this goroutine wins the Running->Stopping race.
			if txErr := b.lifecycle.TransitionTo(app.StateStopping, "context canceled"); txErr == nil {
				_ = b.lifecycle.TransitionTo(app.StateStopped, "context canceled")
			}
		default:
			b.logger.Error("listener error", ports.Err(err))
			b.setRunErr(err)
			_ = b.lifecycle.TransitionTo(app.StateCrashed, err.Error())
		}
	}()

	return nil
}

// Stop gracefully shuts down the client: cancels the stream, waits for the
// consuming goroutine, and shuts down plugins in reverse order.
// Returns nil on graceful shutdown, ErrShutdownTimeout if forced.
func (b *Board) Stop() error {
	b.mu.Lock()

	if !b.lifecycle.CanStop() {
		b.mu.Unlock()
		return domain.ErrNotRunning
	}

	if err := b.lifecycle.TransitionTo(app.StateStopping, "Stop() called"); err != nil {
		b.mu.Unlock()
		return err
	}

	if b.cancel != nil {
		b.cancel()
	}

	b.mu.Unlock()

	err := b.lifecycle.WaitWithTimeout(app.ShutdownTimeout)

	shutdownCtx := context.Background()
	for i := len(b.plugins) - 1; i >= 0; i-- {
		p := b.plugins[i]
		if shutdownErr := p.Shutdown(shutdownCtx); shutdownErr != nil {
			b.logger.Error("plugin shutdown failed",
				ports.String("plugin", p.Name()),
				ports.Err(shutdownErr))
		} else {
			b.logger.Info("plugin shutdown complete", ports.String("plugin", p.Name()))
		}
	}

	if err != nil {
		_ = b.lifecycle.TransitionTo(app.StateCrashed, "shutdown timeout")
	} else {
		_ = b.lifecycle.TransitionTo(app.StateStopped, "graceful shutdown")
	}

	return err
}

// Status returns the current lifecycle state.
// Safe to call concurrently from any goroutine.
func (b *Board) Status() State {
	return convertState(b.lifecycle.State())
}

// Done returns a channel closed when the consuming goroutine exits.
// Useful with Once mode or to observe crashes.
func (b *Board) Done() <-chan struct{} {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return b.done
}

// Err returns the terminal error from the last run: the error that drove the
// client into StateCrashed (for example reconnect exhaustion), or nil after a
// graceful stop. Read it after Done() is closed.
func (b *Board) Err() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.runErr
}

func (b *Board) setRunErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.runErr = err
}

// StartBoard resumes throw detection on the board (PUT /api/start).
// Independent of the event stream; may be called whether or not the
// client is running.
func (b *Board) StartBoard(ctx context.Context) error {
	return b.controller.Start(ctx)
}

// StopBoard pauses throw detection on the board (PUT /api/stop).
func (b *Board) StopBoard(ctx context.Context) error {
	return b.controller.Stop(ctx)
}

// ResetBoard forces the board out of a stuck state (POST /api/reset).
func (b *Board) ResetBoard(ctx context.Context) error {
	return b.controller.Reset(ctx)
}

// memoryStateRepository keeps session state in memory only.
// Used when no StateDir is configured.
type memoryStateRepository struct {
	mu    sync.Mutex
	state domain.SessionState
}

func (r *memoryStateRepository) Load(ctx context.Context) (domain.SessionState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state, nil
}

func (r *memoryStateRepository) Save(ctx context.Context, state domain.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state
	return nil
}
