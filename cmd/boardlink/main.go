package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bullseye-labs/boardlink/internal/cliconfig"
	"github.com/bullseye-labs/boardlink/pkg/boardlink"
	"github.com/bullseye-labs/boardlink/pkg/log"
	"github.com/bullseye-labs/boardlink/plugins/configwatcher"
)

const helpBanner = `
 ▄▄▄▄    ▒█████   ▄▄▄       ██▀███  ▓█████▄  ██▓     ██▓ ███▄    █  ██ ▄█▀
▓█████▄ ▒██▒  ██▒▒████▄    ▓██ ▒ ██▒▒██▀ ██▌▓██▒    ▓██▒ ██ ▀█   █  ██▄█▒
▒██▒ ▄██▒██░  ██▒▒██  ▀█▄  ▓██ ░▄█ ▒░██   █▌▒██░    ▒██▒▓██  ▀█ ██▒▓███▄░
▒██░█▀  ▒██   ██░░██▄▄▄▄██ ▒██▀▀█▄  ░▓█▄   ▌▒██░    ░██░▓██▒  ▐▌██▒▓██ █▄
░▓█  ▀█▓░ ████▓▒░ ▓█   ▓██▒░██▓ ▒██▒░▒████▓ ░██████▒░██░▒██░   ▓██░▒██▒ █▄
`

const helpDescription = `
Follow your dartboard's live event stream and drive its controls.

Highlights:
  - Decodes every state frame into typed throws with derived scores.
  - Reconnects automatically with a configurable fixed-delay policy.
  - Configure via file, environment (BOARDLINK_*), or flags.
  - start/stop/reset subcommands for one-shot board control.
`

var longHelp = strings.TrimSpace(helpBanner) + "\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  boardlink --host 192.168.1.50 --port 3180
  boardlink --config $HOME/.boardlink/config.toml --once
  boardlink reset --host 192.168.1.50
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// throwPrinter renders dispatch output through the CLI logger.
type throwPrinter struct {
	boardlink.BaseEventHandler
	logger log.Logger
}

func (h *throwPrinter) OnThrow(event boardlink.ThrowEvent) {
	h.logger.Info("throw",
		log.String("event", event.Event),
		log.String("status", event.Status),
		log.Int("num_throws", event.NumThrows),
		log.String("segment", event.Segment),
		log.Int("score", event.Score),
	)
}

func (h *throwPrinter) OnBoardEvent(event boardlink.BoardEvent) {
	h.logger.Info("board",
		log.String("event", event.Event),
		log.String("status", event.Status),
	)
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	zl := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "boardlink",
		Short:   "Follow your dartboard's live event stream and drive its controls",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolvedPath, err := resolveConfig(cmd, &cfg, cfgPath)
			if err != nil {
				return err
			}

			zl.Info().
				Str("host", cfg.Host).
				Int("port", cfg.Port).
				Dur("reconnect_interval", cfg.ReconnectInterval).
				Int("max_reconnects", cfg.MaxReconnects).
				Bool("once", cfg.Once).
				Msg("configuration")

			logger := log.NewZerologAdapterWithLogger(zl)

			libCfg := boardlink.Config{
				Host:              cfg.Host,
				Port:              cfg.Port,
				StateDir:          cfg.StateDir,
				ReconnectInterval: cfg.ReconnectInterval,
				MaxReconnects:     cfg.MaxReconnects,
				HTTPTimeout:       cfg.HTTPTimeout,
				Once:              cfg.Once,
			}

			opts := []boardlink.Option{
				boardlink.WithLogger(logger),
				boardlink.WithEventHandler(&throwPrinter{logger: logger}),
			}
			if resolvedPath != "" {
				opts = append(opts, configwatcher.WithConfigWatcher(configwatcher.Config{
					Path: resolvedPath,
				}))
			}

			b, err := boardlink.New(libCfg, opts...)
			if err != nil {
				return fmt.Errorf("create client: %w", err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			if err := b.Start(ctx); err != nil {
				return fmt.Errorf("start client: %w", err)
			}

			select {
			case <-sigCh:
				zl.Info().Msg("received signal, stopping...")
			case <-b.Done():
			}

			if err := b.Stop(); err != nil && !errors.Is(err, boardlink.ErrNotRunning) {
				return fmt.Errorf("stop client: %w", err)
			}
			if err := b.Err(); err != nil {
				return fmt.Errorf("client crashed: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.boardlink/config.toml)")
	root.PersistentFlags().StringVar(&cfg.Host, "host", cfg.Host, "board client hostname or IP")
	root.PersistentFlags().IntVar(&cfg.Port, "port", cfg.Port, "board client port")
	root.PersistentFlags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout for control commands")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")

	root.Flags().StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "directory for status.json (default: $HOME/.boardlink)")
	root.Flags().DurationVar(&cfg.ReconnectInterval, "reconnect-interval", cfg.ReconnectInterval, "fixed delay before redialing the stream")
	root.Flags().IntVar(&cfg.MaxReconnects, "max-reconnects", cfg.MaxReconnects, "max consecutive failed reconnects (0 = unlimited)")
	root.Flags().BoolVar(&cfg.Once, "once", cfg.Once, "exit after the first disconnect")

	root.AddCommand(
		controlCommand(&cfg, &cfgPath, "start", "Resume throw detection on the board",
			func(ctx context.Context, b *boardlink.Board) error { return b.StartBoard(ctx) }),
		controlCommand(&cfg, &cfgPath, "stop", "Pause throw detection on the board",
			func(ctx context.Context, b *boardlink.Board) error { return b.StopBoard(ctx) }),
		controlCommand(&cfg, &cfgPath, "reset", "Force the board out of a stuck state",
			func(ctx context.Context, b *boardlink.Board) error { return b.ResetBoard(ctx) }),
	)

	if err := root.Execute(); err != nil {
		zl.Error().Err(err).Msg("boardlink")
		os.Exit(1)
	}
}

// controlCommand builds a one-shot subcommand against the board's control
// surface. Control calls are fire-and-forget: no retry, no body parsing.
func controlCommand(cfg *cliconfig.Config, cfgPath *string, name, short string, run func(context.Context, *boardlink.Board) error) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := resolveConfig(cmd, cfg, *cfgPath); err != nil {
				return err
			}

			libCfg := boardlink.Config{
				Host:        cfg.Host,
				Port:        cfg.Port,
				HTTPTimeout: cfg.HTTPTimeout,
			}
			b, err := boardlink.New(libCfg)
			if err != nil {
				return fmt.Errorf("create client: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout+time.Second)
			defer cancel()

			if err := run(ctx, b); err != nil {
				return err
			}
			logger := cliconfig.Logger()
			logger.Info().Str("command", name).Msg("board command sent")
			return nil
		},
	}
}

// resolveConfig loads the config file (unless flags override its values),
// applies BOARDLINK_* environment variables, validates, and sets the log
// level. Returns the config file path actually used, if any.
func resolveConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) (string, error) {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	resolved := ""
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return "", fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return "", err
		}
		resolved = cfgFile
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return "", err
	}

	if err := cfg.Validate(); err != nil {
		return "", err
	}

	if err := cliconfig.ApplyLogLevel(cfg.LogLevel); err != nil {
		return "", fmt.Errorf("parse log-level: %w", err)
	}

	return resolved, nil
}
