package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zherve/ginvelope/apperr"
	"github.com/zherve/ginvelope/ginerr"
)

// Untyped returns an unclassified error; the terminal middleware must
// collapse it to the generic 500 envelope.
func Untyped(_ *gin.Context) error {
	return errors.New("simulated driver failure: connection reset")
}

// Panics panics mid-request; the recovery middleware forwards the
// defect through the usual channel.
func Panics(_ *gin.Context) error {
	panic("simulated handler panic")
}

// Fanout runs two checks concurrently; the failing one aborts the
// request through the usual channel.
func Fanout(c *gin.Context) error {
	return ginerr.Go(c,
		func(ctx context.Context) error {
			return nil
		},
		func(ctx context.Context) error {
			return apperr.ServiceUnavailable("upstream check failed")
		},
	)
}

// Deferred returns a pending result that fails after the handler has
// already returned, without any explicit forwarding code.
func Deferred(_ *gin.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		time.Sleep(25 * time.Millisecond)
		done <- apperr.ServerError("deferred work failed", http.StatusBadGateway)
	}()
	return done
}
