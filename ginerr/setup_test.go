package ginerr

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/zherve/ginvelope/apperr"
)

// newTestEngine builds a gin engine with the library middleware chain
// and a registration facade over it.
func newTestEngine(opts ...Option) (*gin.Engine, *Router) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandler(opts...))
	r.Use(Recovery(opts...))
	return r, NewRouter(r)
}

func doRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeEnvelope(t *testing.T, body io.Reader) apperr.Envelope {
	t.Helper()

	var env apperr.Envelope
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env
}

func wantEnvelope(status int) apperr.Envelope {
	return apperr.Envelope{
		Status:     "error",
		StatusCode: status,
		Message:    apperr.Phrase(status),
		Code:       apperr.CodeName(status),
	}
}
