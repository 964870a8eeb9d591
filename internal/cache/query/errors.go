package query

import (
	"errors"
	"fmt"
)

// ErrClosed is reported by a Client after Close
var ErrClosed = errors.New("query client closed")

// FetchError is the terminal failure of a fetch once retries are exhausted
type FetchError struct {
	Key      Key
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("query %s failed after %d attempt(s): %v", e.Key, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
