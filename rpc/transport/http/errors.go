package http

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Error kinds
// --------------------------------------------------------------------------

var (
	// ErrClientBuilder is returned by Build when the client builder failed
	// to produce an HTTP client. Construction is aborted, never retried.
	ErrClientBuilder = errors.New("failed to create the http client")

	// ErrExecutor is returned by Build when the execution context could not
	// be brought up (the standalone goroutine died before reporting back).
	ErrExecutor = errors.New("failed to start the request executor")

	// ErrNotListening is the per-call error for a send attempted after the
	// dispatch side is gone. Terminal for that call, no I/O was attempted.
	ErrNotListening = errors.New("not listening for requests")

	// ErrNoResponse is the per-call error for a send the dispatch side
	// accepted but never resolved (it exited mid-flight).
	ErrNoResponse = errors.New("died without returning response")
)

// HttpError reports a response with a status code other than 200 OK.
type HttpError struct {
	Code int
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("http error. status code %d", e.Code)
}
