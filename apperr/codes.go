package apperr

import "net/http"

// statusNames maps HTTP status codes to stable, machine-readable
// symbolic names exposed in the envelope's "code" field.
var statusNames = map[int]string{
	http.StatusBadRequest:            "BAD_REQUEST",
	http.StatusUnauthorized:          "UNAUTHORIZED",
	http.StatusPaymentRequired:       "PAYMENT_REQUIRED",
	http.StatusForbidden:             "FORBIDDEN",
	http.StatusNotFound:              "NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusNotAcceptable:         "NOT_ACCEPTABLE",
	http.StatusRequestTimeout:        "REQUEST_TIMEOUT",
	http.StatusConflict:              "CONFLICT",
	http.StatusGone:                  "GONE",
	http.StatusPreconditionFailed:    "PRECONDITION_FAILED",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
	http.StatusUnprocessableEntity:   "UNPROCESSABLE_ENTITY",
	http.StatusTooManyRequests:       "TOO_MANY_REQUESTS",
	http.StatusInternalServerError:   "INTERNAL_SERVER_ERROR",
	http.StatusNotImplemented:        "NOT_IMPLEMENTED",
	http.StatusBadGateway:            "BAD_GATEWAY",
	http.StatusServiceUnavailable:    "SERVICE_UNAVAILABLE",
	http.StatusGatewayTimeout:        "GATEWAY_TIMEOUT",
	http.StatusInsufficientStorage:   "INSUFFICIENT_STORAGE",
}

// statusCodes is the inverse of statusNames. Both maps are read-only
// after init.
var statusCodes map[string]int

func init() {
	statusCodes = make(map[string]int, len(statusNames))
	for code, name := range statusNames {
		statusCodes[name] = code
	}
}

// CodeName returns the symbolic name for an HTTP status code. Codes
// without a table entry fall back to the name for 500 rather than
// leaking an unnamed status to clients.
func CodeName(status int) string {
	if name, ok := statusNames[status]; ok {
		return name
	}
	return statusNames[http.StatusInternalServerError]
}

// StatusOf returns the HTTP status code for a symbolic name.
func StatusOf(name string) (int, bool) {
	code, ok := statusCodes[name]
	return code, ok
}

// Phrase returns the canonical reason phrase for an HTTP status code,
// falling back to the 500 phrase for codes the standard library does
// not know.
func Phrase(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}
