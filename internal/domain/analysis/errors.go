package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the trimmed input is empty; no request is sent.
	ErrEmptyInput = errors.New("input text is empty")
	// ErrInFlight is returned when a submission is already running.
	ErrInFlight = errors.New("a submission is already in flight")
	// ErrSuperseded is returned when a response arrives after a newer submission or reset.
	ErrSuperseded = errors.New("response superseded by a newer submission")
)

// ErrorKind classifies a failed submission.
type ErrorKind int

const (
	// KindTransport: the request could not be completed.
	KindTransport ErrorKind = iota
	// KindProtocol: a response arrived with a non-success status.
	KindProtocol
	// KindApplication: a success status whose payload carries an error.
	KindApplication
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindProtocol:
		return "protocol"
	case KindApplication:
		return "application"
	default:
		return "unknown"
	}
}

// Error is a terminal failure of one submission. Its Error() text is the
// exact message shown to the user.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return "Network error: " + e.Message
	case KindProtocol:
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error { return e.Err }

// TransportError wraps a failure to complete the request.
func TransportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: err.Error(), Err: err}
}

// ProtocolError builds the error for a non-2xx status.
func ProtocolError(status int, statusText string) *Error {
	return &Error{Kind: KindProtocol, StatusCode: status, Message: statusText}
}

// ApplicationError carries the service's error message verbatim.
func ApplicationError(msg string) *Error {
	return &Error{Kind: KindApplication, Message: msg}
}
