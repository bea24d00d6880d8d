// Package ports defines the interfaces that connect the application layer
// to infrastructure adapters.
//
// Ports are the boundaries between the application core and the outside
// world. They describe what the core needs from external systems without
// fixing how those needs are met.
//
// # Port Interfaces
//
//   - [StreamDialer] / [StreamConn]: the board's websocket event stream
//   - [BoardController]: the board's HTTP control surface (start/stop/reset)
//   - [StateRepository]: persists and loads session state
//   - [Logger]: structured logging abstraction
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) supply the concrete
// implementations (gorilla websocket, resty, file system, zerolog).
package ports
