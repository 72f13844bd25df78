package apiclient

import (
	"errors"
	"fmt"
)

// ErrMissingBaseURL is returned before any network attempt when a relative
// path is requested and no API base URL is configured.
var ErrMissingBaseURL = errors.New("api base url is not configured (PUBLIC_API_BASE_URL)")

// APIError is a non-2xx response. Payload holds the body as parsed by
// safeParse: a decoded JSON value, the raw text, or nil.
type APIError struct {
	Message string
	Status  int
	Payload any
}

func (e *APIError) Error() string {
	return e.Message
}

// TransportError is a request that never produced a response: network
// failure, cancellation or timeout.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError is a 2xx response whose body does not decode into the
// requested type.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status carried by err, or 0 when err is not an
// *APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
