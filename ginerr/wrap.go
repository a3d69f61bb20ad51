// Package ginerr connects the apperr taxonomy to gin: it wraps
// error-returning handlers so every failure is forwarded to the
// context's error list, where the terminal ErrorHandler middleware
// turns it into the JSON envelope.
package ginerr

import (
	"context"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// HandlerFunc is a request handler that reports failure by returning
// an error instead of writing an error response itself.
type HandlerFunc func(c *gin.Context) error

// AsyncHandlerFunc is a request handler whose result is still pending
// when it returns: the channel eventually delivers nil on success or
// the failure. A nil channel means there is nothing to wait for.
type AsyncHandlerFunc func(c *gin.Context) <-chan error

// Wrap converts a HandlerFunc into a gin.HandlerFunc. A returned error
// is attached to the context's error list and the remaining handler
// chain is skipped. Panics pass through untouched; the recovery
// middleware owns those. Wrap itself never fails.
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			_ = c.Error(err)
			c.Abort()
		}
	}
}

// WrapAsync converts an AsyncHandlerFunc into a gin.HandlerFunc. It
// waits for the pending result and forwards a failure the same way
// Wrap does, so the handler never has to forward it explicitly.
func WrapAsync(h AsyncHandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := h(c)
		if done == nil {
			return
		}
		if err := <-done; err != nil {
			_ = c.Error(err)
			c.Abort()
		}
	}
}

// Go runs fns concurrently under the request context and returns the
// first failure, for handlers that fan work out before responding.
func Go(c *gin.Context, fns ...func(ctx context.Context) error) error {
	g, ctx := errgroup.WithContext(c.Request.Context())
	for _, fn := range fns {
		g.Go(func() error {
			return fn(ctx)
		})
	}
	return g.Wait()
}
