package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUserNotFound is matched by errors.Is when the API reports an unknown account.
var ErrUserNotFound = errors.New("user not found")

// NetworkError reports that the transport could not complete a request
// (DNS, TCP, TLS, timeout). Requests are never retried.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to query GitHub (%s): %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not valid JSON for the expected shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse JSON (%s): %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.StatusCode == http.StatusNotFound {
		return fmt.Sprintf("%s: %v", e.Op, ErrUserNotFound)
	}
	if e.Message == "" {
		return fmt.Sprintf("%s: API returned status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: API returned status %d: %s", e.Op, e.StatusCode, e.Message)
}

// Is makes a 404 match ErrUserNotFound.
func (e *StatusError) Is(target error) bool {
	return target == ErrUserNotFound && e.StatusCode == http.StatusNotFound
}
