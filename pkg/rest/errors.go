package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/Aleph-Alpha/inference-gateway/pkg/inference"
)

// TranslateError maps a failure of the HTTP exchange onto the inference
// error taxonomy. Errors that already carry a kind are returned as that kind.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if kind := inference.KindOf(err); kind != nil {
		return kind
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return inference.ErrBackendProtocol
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return inference.ErrBackendUnreachable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return inference.ErrBackendUnreachable
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return inference.ErrBackendUnreachable
	}

	return translateByErrorMessage(strings.ToLower(err.Error()))
}

// StatusKind maps an HTTP status onto a failure kind, nil for 2xx.
func StatusKind(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code >= 400 && code < 500:
		return inference.ErrBackendRejected
	case code >= 500:
		return inference.ErrBackendUnreachable
	default:
		// 1xx and unfollowed redirects are not part of the contract
		return inference.ErrBackendProtocol
	}
}

func translateByErrorMessage(msg string) error {
	switch {
	case strings.Contains(msg, "malformed http response"),
		strings.Contains(msg, "invalid character"),
		strings.Contains(msg, "cannot unmarshal"):
		return inference.ErrBackendProtocol
	default:
		// anything else failed before a response was read
		return inference.ErrBackendUnreachable
	}
}

// statusError is the cause recorded for non-2xx responses.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	if e.body == "" {
		return http.StatusText(e.code)
	}
	return e.body
}
