package api

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse marks a response body that could not be decoded
// into the endpoint's result type. It is a distinct error kind so
// callers can tell a broken payload from a transport failure.
var ErrMalformedResponse = errors.New("malformed response payload")

// StatusError is a non-success HTTP response from the remote API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}
