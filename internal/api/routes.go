package api

import (
	"net/http"

	"github.com/zherve/ginvelope/ginerr"
	"github.com/zherve/ginvelope/internal/api/handlers"
)

// RegisterAPIRoutes registers all demo routes on the wrapped router.
func RegisterAPIRoutes(router *ginerr.Router) {
	noteHandler := handlers.NewNoteHandler(handlers.NewNoteStore())

	// Note management
	notes := router.Group("/notes")
	{
		notes.GET("", noteHandler.List)
		notes.POST("", noteHandler.Create)
		notes.GET("/:id", noteHandler.Get)
		notes.DELETE("/:id", noteHandler.Delete)
	}

	// Failure showcases: each route exercises one propagation path.
	failures := router.Group("/failures")
	{
		failures.GET("/untyped", handlers.Untyped)
		failures.GET("/panic", handlers.Panics)
		failures.GET("/fanout", handlers.Fanout)
		failures.Async(http.MethodGet, "/deferred", handlers.Deferred)
	}
}
