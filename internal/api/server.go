// Package api provides the demo server's routes and middleware setup.
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zherve/ginvelope/apperr"
	"github.com/zherve/ginvelope/ginerr"
	"github.com/zherve/ginvelope/internal/config"
	"github.com/zherve/ginvelope/internal/logger"
)

// SetupRouter builds the demo engine. ErrorHandler is installed first
// so it is the outermost middleware: every failure the rest of the
// chain forwards ends up in its single envelope write.
func SetupRouter() *gin.Engine {
	if config.Cfg.App.Environment == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(ginerr.ErrorHandler(ginerr.WithLogger(logger.L)))
	r.Use(requestID())
	r.Use(ginLogger(logger.L))
	r.Use(ginerr.Recovery(ginerr.WithLogger(logger.L)))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.Cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		env := apperr.Format(apperr.NotFound())
		c.JSON(env.StatusCode, env)
	})

	api := ginerr.NewRouter(r.Group("/api"))
	RegisterAPIRoutes(api)

	return r
}

// requestID tags every request with an id for log correlation,
// honoring an id supplied by the caller.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func ginLogger(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		l.Info(path,
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
