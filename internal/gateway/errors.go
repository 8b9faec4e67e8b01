package gateway

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrNoToken is returned by Login when the backend accepted the credentials
// but the response carries no recognizable token.
var ErrNoToken = errors.New("login response carries no token")

// HTTPError is a non-2xx answer from the backend.
type HTTPError struct {
	Op     string
	Status int
	Body   []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: backend answered %d", e.Op, e.Status)
}

// TransportError means the request never produced a response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status
	}
	return 0
}
