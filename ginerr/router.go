package ginerr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router is a registration facade over a gin router. Every handler
// registered through it is wrapped with Wrap before being delegated,
// so coverage does not depend on call sites remembering to wrap.
// Double-wrapping cannot happen: a wrapped handler is a
// gin.HandlerFunc, not a HandlerFunc.
type Router struct {
	r gin.IRouter
}

// NewRouter creates a facade over the given gin router or route group.
func NewRouter(r gin.IRouter) *Router {
	return &Router{r: r}
}

// Handle registers handlers for the given method and path.
func (r *Router) Handle(method, path string, handlers ...HandlerFunc) *Router {
	r.r.Handle(method, path, wrapAll(handlers)...)
	return r
}

// GET registers handlers for GET requests on path.
func (r *Router) GET(path string, handlers ...HandlerFunc) *Router {
	return r.Handle(http.MethodGet, path, handlers...)
}

// POST registers handlers for POST requests on path.
func (r *Router) POST(path string, handlers ...HandlerFunc) *Router {
	return r.Handle(http.MethodPost, path, handlers...)
}

// PUT registers handlers for PUT requests on path.
func (r *Router) PUT(path string, handlers ...HandlerFunc) *Router {
	return r.Handle(http.MethodPut, path, handlers...)
}

// PATCH registers handlers for PATCH requests on path.
func (r *Router) PATCH(path string, handlers ...HandlerFunc) *Router {
	return r.Handle(http.MethodPatch, path, handlers...)
}

// DELETE registers handlers for DELETE requests on path.
func (r *Router) DELETE(path string, handlers ...HandlerFunc) *Router {
	return r.Handle(http.MethodDelete, path, handlers...)
}

// HEAD registers handlers for HEAD requests on path.
func (r *Router) HEAD(path string, handlers ...HandlerFunc) *Router {
	return r.Handle(http.MethodHead, path, handlers...)
}

// OPTIONS registers handlers for OPTIONS requests on path.
func (r *Router) OPTIONS(path string, handlers ...HandlerFunc) *Router {
	return r.Handle(http.MethodOptions, path, handlers...)
}

// Any registers handlers for all standard methods on path.
func (r *Router) Any(path string, handlers ...HandlerFunc) *Router {
	r.r.Any(path, wrapAll(handlers)...)
	return r
}

// Async registers an asynchronous handler for the given method and
// path, wrapped with WrapAsync.
func (r *Router) Async(method, path string, h AsyncHandlerFunc) *Router {
	r.r.Handle(method, path, WrapAsync(h))
	return r
}

// Group creates a sub-facade; handlers registered on it are wrapped
// the same way, however deeply groups are nested.
func (r *Router) Group(path string, middleware ...gin.HandlerFunc) *Router {
	return &Router{r: r.r.Group(path, middleware...)}
}

// Use attaches plain gin middleware unchanged.
func (r *Router) Use(middleware ...gin.HandlerFunc) *Router {
	r.r.Use(middleware...)
	return r
}

func wrapAll(handlers []HandlerFunc) []gin.HandlerFunc {
	wrapped := make([]gin.HandlerFunc, len(handlers))
	for i, h := range handlers {
		wrapped[i] = Wrap(h)
	}
	return wrapped
}
