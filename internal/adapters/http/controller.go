// Package http implements the board control port over the board's HTTP API.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bullseye-labs/boardlink/internal/domain"
	"github.com/bullseye-labs/boardlink/internal/ports"
)

// Control endpoints on the board.
const (
	startPath = "/api/start"
	stopPath  = "/api/stop"
	resetPath = "/api/reset"
)

// Controller implements ports.BoardController using resty. Commands are
// fire-and-forget: the response body is never parsed and nothing is retried.
type Controller struct {
	client *resty.Client
	logger ports.Logger
}

// NewController creates a controller for the board at baseURL
// (e.g. "http://localhost:3180").
func NewController(baseURL string, timeout time.Duration, logger ports.Logger) *Controller {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0)
	return &Controller{client: client, logger: logger}
}

// NewControllerWithHTTPClient creates a controller backed by a custom
// *http.Client, used for dependency injection in tests.
func NewControllerWithHTTPClient(baseURL string, hc *http.Client, logger ports.Logger) *Controller {
	client := resty.NewWithClient(hc).
		SetBaseURL(baseURL).
		SetRetryCount(0)
	return &Controller{client: client, logger: logger}
}

// Start resumes throw detection.
func (c *Controller) Start(ctx context.Context) error {
	return c.command(ctx, http.MethodPut, startPath)
}

// Stop pauses throw detection.
func (c *Controller) Stop(ctx context.Context) error {
	return c.command(ctx, http.MethodPut, stopPath)
}

// Reset forces the board out of a stuck state.
func (c *Controller) Reset(ctx context.Context) error {
	return c.command(ctx, http.MethodPost, resetPath)
}

func (c *Controller) command(ctx context.Context, method, path string) error {
	resp, err := c.client.R().SetContext(ctx).Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrControlRequest, method, path, err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("%w: %s %s: status %d", domain.ErrControlRequest, method, path, resp.StatusCode())
	}

	c.logger.Debug("control command sent",
		ports.String("method", method),
		ports.String("path", path),
		ports.Int("status", resp.StatusCode()),
	)
	return nil
}
