// Package configwatcher provides config file monitoring for boardlink.
// When enabled, it watches the client's config file for changes, applies
// log-level updates at runtime, and reports every other change as requiring
// a restart (the board address is fixed at startup).
package configwatcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bullseye-labs/boardlink/internal/cliconfig"
	"github.com/bullseye-labs/boardlink/pkg/boardlink"
	"github.com/bullseye-labs/boardlink/pkg/log"
)

// Plugin implements config file watching. It monitors the TOML config file
// the CLI was started with and reacts to writes.
type Plugin struct {
	mu sync.RWMutex

	// Configuration
	path          string
	debounceDelay time.Duration

	// Runtime state
	logger    log.Logger
	lastLevel string
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	debounce  *time.Timer
}

// Config holds configuration options for the config watcher plugin.
type Config struct {
	// Path is the config file to watch. Required; the plugin disables
	// itself when empty.
	Path string

	// DebounceDelay is the delay to wait after a file change before
	// reloading. Default: 100 milliseconds.
	DebounceDelay time.Duration
}

// New creates a new config watcher plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}

	return &Plugin{
		path:          cfg.Path,
		debounceDelay: cfg.DebounceDelay,
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "configwatcher"
}

// Initialize sets up the plugin and starts the watcher loop.
func (p *Plugin) Initialize(ctx context.Context, cfg boardlink.PluginConfig) error {
	p.mu.Lock()
	p.logger = cfg.Logger
	p.mu.Unlock()

	if p.path == "" {
		p.logger.Warn("config watcher disabled: no config path")
		return nil
	}

	if fc, err := cliconfig.LoadFileConfig(p.path); err == nil {
		p.mu.Lock()
		p.lastLevel = fc.LogLevel
		p.mu.Unlock()
	}

	watchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.logger.Info("config watcher initialized", log.String("path", p.path))

	p.wg.Add(1)
	go p.watchLoop(watchCtx)

	return nil
}

// Shutdown stops the config watcher and any pending debounced reload.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()

	p.mu.Lock()
	if p.debounce != nil {
		p.debounce.Stop()
		p.debounce = nil
	}
	p.mu.Unlock()

	return nil
}

// watchLoop watches the config file's directory for changes. Watching the
// directory rather than the file survives editors that replace the file on
// save.
func (p *Plugin) watchLoop(ctx context.Context) {
	defer p.wg.Done()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		p.logger.Error("config watcher: failed to create watcher", log.Err(err))
		return
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(p.path)); err != nil {
		p.logger.Error("config watcher: failed to watch directory", log.Err(err))
		return
	}

	target := filepath.Base(p.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			p.debounceReload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("config watcher: watcher error", log.Err(err))
		}
	}
}

func (p *Plugin) debounceReload() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.debounce != nil {
		p.debounce.Stop()
	}

	p.debounce = time.AfterFunc(p.debounceDelay, p.reload)
}

// reload re-reads the config file. Only the log level takes effect at
// runtime; everything else needs a restart.
func (p *Plugin) reload() {
	fc, err := cliconfig.LoadFileConfig(p.path)
	if err != nil {
		p.logger.Warn("config watcher: reload failed", log.Err(err))
		return
	}

	p.mu.Lock()
	previous := p.lastLevel
	p.lastLevel = fc.LogLevel
	p.mu.Unlock()

	if fc.LogLevel != "" && fc.LogLevel != previous {
		if err := cliconfig.ApplyLogLevel(fc.LogLevel); err != nil {
			p.logger.Warn("config watcher: invalid log level",
				log.String("log_level", fc.LogLevel),
				log.Err(err))
		} else {
			p.logger.Info("config watcher: log level updated",
				log.String("log_level", fc.LogLevel))
		}
		return
	}

	p.logger.Info("config watcher: configuration changed, restart to apply")
}

// Ensure Plugin implements boardlink.Plugin.
var _ boardlink.Plugin = (*Plugin)(nil)
