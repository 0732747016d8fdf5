package httpserver

import (
	"errors"
	"fmt"
	"net/http"
)

// Conditions raised by the pipeline itself rather than by a handler.
var (
	ErrOverloaded = errors.New("service is overloaded, try again later")
	ErrTimeout    = errors.New("request timed out")
)

// InternalError wraps any failure the handlers did not translate themselves.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("Unhandled internal error: %v", e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// StatusCode maps a pipeline error to its HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrTimeout):
		return http.StatusRequestTimeout
	case errors.Is(err, ErrOverloaded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WritePipelineError is the single place where pipeline failures become
// HTTP responses.
func WritePipelineError(w http.ResponseWriter, err error) {
	status := StatusCode(err)

	var internalErr *InternalError
	if status == http.StatusInternalServerError && !errors.As(err, &internalErr) {
		err = &InternalError{Err: err}
	}

	http.Error(w, err.Error(), status)
}
