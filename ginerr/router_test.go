package ginerr

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/zherve/ginvelope/apperr"
)

func TestRouter_MethodsWrapHandlers(t *testing.T) {
	failing := func(c *gin.Context) error {
		return apperr.Conflict("already exists")
	}

	tests := []struct {
		method   string
		register func(r *Router)
	}{
		{method: http.MethodGet, register: func(r *Router) { r.GET("/res", failing) }},
		{method: http.MethodPost, register: func(r *Router) { r.POST("/res", failing) }},
		{method: http.MethodPut, register: func(r *Router) { r.PUT("/res", failing) }},
		{method: http.MethodPatch, register: func(r *Router) { r.PATCH("/res", failing) }},
		{method: http.MethodDelete, register: func(r *Router) { r.DELETE("/res", failing) }},
		{method: http.MethodOptions, register: func(r *Router) { r.OPTIONS("/res", failing) }},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			engine, router := newTestEngine()
			tt.register(router)

			resp := doRequest(engine, tt.method, "/res")

			assert.Equal(t, http.StatusConflict, resp.Code)
			env := decodeEnvelope(t, resp.Body)
			assert.Equal(t, "already exists", env.Message)
			assert.Equal(t, "CONFLICT", env.Code)
		})
	}
}

func TestRouter_Handle(t *testing.T) {
	engine, router := newTestEngine()
	router.Handle(http.MethodGet, "/direct", func(c *gin.Context) error {
		return apperr.Gone()
	})

	resp := doRequest(engine, http.MethodGet, "/direct")

	assert.Equal(t, http.StatusGone, resp.Code)
}

func TestRouter_Any(t *testing.T) {
	engine, router := newTestEngine()
	router.Any("/anything", func(c *gin.Context) error {
		return apperr.TooManyRequests()
	})

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		resp := doRequest(engine, method, "/anything")
		assert.Equal(t, http.StatusTooManyRequests, resp.Code)
	}
}

func TestRouter_GroupNesting(t *testing.T) {
	engine, router := newTestEngine()

	api := router.Group("/api")
	v1 := api.Group("/v1")
	v1.GET("/notes/:id", func(c *gin.Context) error {
		return apperr.NotFound("note " + c.Param("id") + " not found")
	})
	v1.GET("/health", func(c *gin.Context) error {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return nil
	})

	resp := doRequest(engine, http.MethodGet, "/api/v1/notes/7")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	env := decodeEnvelope(t, resp.Body)
	assert.Equal(t, "note 7 not found", env.Message)

	resp = doRequest(engine, http.MethodGet, "/api/v1/health")
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestRouter_UsePlainMiddleware(t *testing.T) {
	engine, router := newTestEngine()

	api := router.Group("/api")
	api.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Flavor", "demo")
		c.Next()
	})
	api.GET("/ping", func(c *gin.Context) error {
		c.String(http.StatusOK, "pong")
		return nil
	})

	resp := doRequest(engine, http.MethodGet, "/api/ping")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "demo", resp.Header().Get("X-Flavor"))
}

func TestRouter_AsyncRegistration(t *testing.T) {
	engine, router := newTestEngine()
	router.Async(http.MethodPost, "/jobs", func(c *gin.Context) <-chan error {
		done := make(chan error, 1)
		go func() {
			time.Sleep(5 * time.Millisecond)
			done <- apperr.GatewayTimeout("job backend timed out")
		}()
		return done
	})

	resp := doRequest(engine, http.MethodPost, "/jobs")

	assert.Equal(t, http.StatusGatewayTimeout, resp.Code)
	env := decodeEnvelope(t, resp.Body)
	assert.Equal(t, "GATEWAY_TIMEOUT", env.Code)
}
