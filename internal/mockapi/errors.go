package mockapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrErrorMode is returned by FetchDataWithError on every call
	ErrErrorMode = errors.New("error mode is enabled, the request failed; turn error mode off and try again")
	// ErrSimulatedFailure marks a randomly injected failure
	ErrSimulatedFailure = errors.New("simulated failure")
	// ErrUnknownScenario is returned by MockFetch for anything but success or error
	ErrUnknownScenario = errors.New("unknown scenario")
	// ErrUserNotFound is returned when no user has the requested id
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidInput wraps validation failures
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal is returned by the error endpoint
	ErrInternal = errors.New("internal server error")
)

// APIError is a failure carrying the HTTP status the mocked server would answer with
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// StatusCode returns the HTTP status of the error, 500 when Code is unset
func (e *APIError) StatusCode() int {
	if e.Code == 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

var errorResponses = []APIError{
	{Code: http.StatusBadRequest, Message: "Bad request. Check the request parameters.", Details: "Invalid request parameters"},
	{Code: http.StatusUnauthorized, Message: "Authentication failed. Please sign in.", Details: "Authentication failed"},
	{Code: http.StatusNotFound, Message: "The requested resource could not be found.", Details: "Resource not found"},
	{Code: http.StatusInternalServerError, Message: "Internal server error. Try again in a moment.", Details: "Internal server error"},
	{Code: http.StatusServiceUnavailable, Message: "The service is temporarily unavailable.", Details: "Service unavailable"},
}
