package inference

import (
	"errors"
	"fmt"
)

// Failure kinds shared by all backends. Each error returned from a Client
// matches exactly one of them through errors.Is.
var (
	// ErrInvalidArgument is returned when a required request field is empty.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrBackendUnreachable is returned on connection failures, timeouts and 5xx responses.
	ErrBackendUnreachable = errors.New("backend unreachable")

	// ErrBackendRejected is returned when the backend refused the input (4xx).
	ErrBackendRejected = errors.New("backend rejected request")

	// ErrBackendProtocol is returned when a backend response cannot be mapped
	// onto the expected result.
	ErrBackendProtocol = errors.New("backend protocol error")

	// ErrNotImplemented is returned by backend variants lacking an operation.
	ErrNotImplemented = errors.New("not implemented")
)

var kinds = []error{
	ErrInvalidArgument,
	ErrBackendUnreachable,
	ErrBackendRejected,
	ErrBackendProtocol,
	ErrNotImplemented,
}

// BackendError describes a failed backend operation.
type BackendError struct {
	// Kind is one of the sentinel errors above.
	Kind error
	// Operation is one of the Op* constants.
	Operation string
	// StatusCode is the HTTP status returned by the backend, zero if none was received.
	StatusCode int
	// Err is the underlying cause, may be nil.
	Err error
}

// NewBackendError builds a BackendError of the given kind.
func NewBackendError(kind error, operation string, err error) *BackendError {
	return &BackendError{Kind: kind, Operation: operation, Err: err}
}

func (e *BackendError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Operation, e.Kind)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *BackendError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the sentinel kind err matches, or nil when it matches none.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
