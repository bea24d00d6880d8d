package configwatcher

import "github.com/bullseye-labs/boardlink/pkg/boardlink"

// WithConfigWatcher returns a boardlink Option that enables config file
// watching for the given file.
//
// Usage:
//
//	b, err := boardlink.New(cfg,
//	    configwatcher.WithConfigWatcher(configwatcher.Config{
//	        Path: "/home/user/.boardlink/config.toml",
//	    }),
//	)
func WithConfigWatcher(cfg Config) boardlink.Option {
	plugin := New(cfg)
	return boardlink.WithPlugin(plugin)
}
