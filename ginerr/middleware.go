package ginerr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zherve/ginvelope/apperr"
)

// Options configure the ErrorHandler and Recovery middleware.
type Options struct {
	logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger installs a logger: non-operational failures are logged at
// error level, operational ones at debug level. Without it the
// middleware stays silent.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// fallbackEnvelope is written when formatting or writing the envelope
// itself fails; the request must never be left hanging.
var fallbackEnvelope = apperr.Envelope{
	Status:     "error",
	StatusCode: http.StatusInternalServerError,
	Message:    "Something went wrong",
	Code:       "INTERNAL_SERVER_ERROR",
}

// ErrorHandler returns the terminal middleware. Install it before any
// other middleware or routes so it is outermost in the chain and
// observes every failure after the rest of the chain has run. It
// writes exactly one JSON envelope response for the last collected
// error; if the response was already written the error is dropped,
// matching gin's own behavior for late errors.
func ErrorHandler(opts ...Option) gin.HandlerFunc {
	o := buildOptions(opts)
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		writeEnvelope(c, c.Errors.Last().Err, o)
	}
}

func writeEnvelope(c *gin.Context, err error, o *Options) {
	defer func() {
		if r := recover(); r != nil {
			if o.logger != nil {
				o.logger.Error("error handler failed", zap.Any("panic", r))
			}
			if !c.Writer.Written() {
				c.JSON(fallbackEnvelope.StatusCode, fallbackEnvelope)
			}
		}
	}()

	logError(c, err, o)
	if c.Writer.Written() {
		return
	}
	env := apperr.Format(err)
	c.JSON(env.StatusCode, env)
}

func logError(c *gin.Context, err error, o *Options) {
	if o.logger == nil {
		return
	}
	var e *apperr.Error
	if errors.As(err, &e) && e.Operational {
		o.logger.Debug("request failed",
			zap.Int("status", e.StatusCode),
			zap.String("code", e.Code),
			zap.String("path", c.Request.URL.Path),
		)
		return
	}
	o.logger.Error("unexpected failure",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
}

// Recovery returns middleware that converts a handler panic into a
// non-operational failure on the context's error list, so the
// ErrorHandler responds with the generic 500 envelope instead of the
// connection being dropped. The panic value is preserved as the
// defect's cause.
func Recovery(opts ...Option) gin.HandlerFunc {
	o := buildOptions(opts)
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if o.logger != nil {
					o.logger.Error("handler panic",
						zap.Any("panic", r),
						zap.Stack("stack"),
					)
				}
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", r)
				}
				_ = c.Error(apperr.Defect(err))
				c.Abort()
			}
		}()
		c.Next()
	}
}
