package directory

import "errors"

var (
	// ErrInvalidConfig is returned when the client configuration is incomplete
	ErrInvalidConfig = errors.New("invalid directory client configuration")

	// ErrNetworkError is returned when there's a network communication error
	ErrNetworkError = errors.New("network error")

	// ErrRejected is returned when the directory responds with a non-ok status
	ErrRejected = errors.New("submission rejected by directory")

	// ErrInvalidResponse is returned when an ok response does not carry a JSON body
	ErrInvalidResponse = errors.New("directory returned a non-JSON response")
)
