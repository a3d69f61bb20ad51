package apperr

import (
	"errors"
	"net/http"
)

// Envelope is the wire shape every failed request reduces to.
type Envelope struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Code       string `json:"code"`
}

// Format reduces any failure value to an Envelope. Operational
// taxonomy errors keep their own status, message and code; everything
// else (unknown errors, defects, nil) becomes the generic 500 envelope
// so that unclassified detail never reaches a client.
func Format(err error) Envelope {
	var e *Error
	if errors.As(err, &e) && e.Operational {
		return Envelope{
			Status:     "error",
			StatusCode: e.StatusCode,
			Message:    e.Message,
			Code:       e.Code,
		}
	}
	return Envelope{
		Status:     "error",
		StatusCode: http.StatusInternalServerError,
		Message:    Phrase(http.StatusInternalServerError),
		Code:       CodeName(http.StatusInternalServerError),
	}
}
