package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Envelope
	}{
		{
			name: "default not found",
			err:  NotFound(),
			want: Envelope{Status: "error", StatusCode: 404, Message: "Not Found", Code: "NOT_FOUND"},
		},
		{
			name: "server error keeps its message",
			err:  ServerError("db down"),
			want: Envelope{Status: "error", StatusCode: 500, Message: "db down", Code: "INTERNAL_SERVER_ERROR"},
		},
		{
			name: "explicit message passes through unchanged",
			err:  Conflict("task already running"),
			want: Envelope{Status: "error", StatusCode: 409, Message: "task already running", Code: "CONFLICT"},
		},
		{
			name: "wrapped operational error is still recognized",
			err:  fmt.Errorf("lookup: %w", NotFound("note missing")),
			want: Envelope{Status: "error", StatusCode: 404, Message: "note missing", Code: "NOT_FOUND"},
		},
		{
			name: "untyped error collapses to generic 500",
			err:  errors.New("pq: relation does not exist"),
			want: Envelope{Status: "error", StatusCode: 500, Message: "Internal Server Error", Code: "INTERNAL_SERVER_ERROR"},
		},
		{
			name: "defect collapses to generic 500",
			err:  Defect(errors.New("index out of range")),
			want: Envelope{Status: "error", StatusCode: 500, Message: "Internal Server Error", Code: "INTERNAL_SERVER_ERROR"},
		},
		{
			name: "nil collapses to generic 500",
			err:  nil,
			want: Envelope{Status: "error", StatusCode: 500, Message: "Internal Server Error", Code: "INTERNAL_SERVER_ERROR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.err))
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	inputs := []error{
		NotFound(),
		ServerError("db down", http.StatusServiceUnavailable),
		errors.New("opaque"),
		nil,
	}

	for _, err := range inputs {
		assert.Equal(t, Format(err), Format(err))
	}
}

func TestFormat_NonOperationalMessageNeverLeaks(t *testing.T) {
	defect := Defect(errors.New("password=hunter2 rejected by backend"))

	env := Format(defect)

	assert.Equal(t, "Internal Server Error", env.Message)
	assert.NotContains(t, env.Message, "hunter2")
}

func TestFormat_DoesNotMutateInput(t *testing.T) {
	err := BadRequest("field title is required")
	_ = Format(err)

	assert.Equal(t, "field title is required", err.Message)
	assert.Equal(t, "BAD_REQUEST", err.Code)
}
