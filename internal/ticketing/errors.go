package ticketing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest marks a query that is malformed before dispatch.
	ErrInvalidRequest = errors.New("ticketing: invalid request")

	// ErrRateLimited maps an upstream 429.
	ErrRateLimited = errors.New("ticketing: rate limited, try again in a moment")
)

// HTTPError is a non-2xx upstream status other than 429.
type HTTPError struct {
	Code int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("ticketing: upstream status %d", e.Code)
}

// DecodeError wraps a payload that did not match the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ticketing: decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
