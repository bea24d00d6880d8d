// Package boardlink provides an embeddable client for an electronic
// dartboard controller.
//
// The client subscribes to the board's websocket event stream, decodes state
// frames into typed messages, and summarizes detected throws. It also exposes
// the board's control surface (start, stop, reset) as fire-and-forget HTTP
// commands.
//
// # Basic Usage
//
//	cfg := boardlink.Config{Host: "localhost", Port: 3180}
//
//	board, err := boardlink.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if err := board.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	// ... run until shutdown signal ...
//
//	if err := board.Stop(); err != nil {
//	    log.Printf("shutdown error: %v", err)
//	}
//
// # Event Handling
//
// To receive throw summaries and stream notifications, implement
// [EventHandler] and pass it via [WithEventHandler]:
//
//	handler := &myHandler{}
//	board, err := boardlink.New(cfg, boardlink.WithEventHandler(handler))
//
// Handlers are called synchronously from the consuming goroutine and should
// return quickly. Embed [BaseEventHandler] for no-op defaults.
//
// # Control Commands
//
// [Board.StartBoard], [Board.StopBoard], and [Board.ResetBoard] issue one
// HTTP command each against the board. They do not parse the response body
// and never retry; a failure wraps domain sentinel errors checkable with
// errors.Is.
//
// # Lifecycle States
//
// A Board instance is in one of five states: [StateStopped], [StateStarting],
// [StateRunning], [StateStopping], or [StateCrashed]. Use [Board.Status] to
// query the current state.
//
// # Plugins
//
// Optional plugins extend the client:
//
//	import "github.com/bullseye-labs/boardlink/plugins/configwatcher"
//
//	board, err := boardlink.New(cfg,
//	    configwatcher.WithConfigWatcher(configwatcher.Config{Path: cfgPath}),
//	)
//
// Plugins are initialized in registration order and shut down in reverse.
package boardlink
