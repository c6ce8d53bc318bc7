package gateway

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Aleph-Alpha/inference-gateway/pkg/inference"
)

// ToStatus maps err onto exactly one gRPC status. Failures caused by the
// caller abandoning the call take precedence over the backend failure kind.
func ToStatus(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return status.FromContextError(ctxErr).Err()
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(Code(err), Message(err))
}

// Message is the caller-facing text of err. Backend failures are reduced to
// operation, kind and HTTP status; their causes carry backend addresses and
// stay in the logs.
func Message(err error) string {
	var be *inference.BackendError
	if errors.As(err, &be) {
		msg := fmt.Sprintf("%s: %v", be.Operation, be.Kind)
		if be.StatusCode != 0 {
			msg = fmt.Sprintf("%s (status %d)", msg, be.StatusCode)
		}
		return msg
	}
	if errors.Is(err, inference.ErrInvalidArgument) {
		return err.Error()
	}
	if kind := inference.KindOf(err); kind != nil {
		return kind.Error()
	}
	if errors.Is(err, context.Canceled) {
		return context.Canceled.Error()
	}
	return "internal error"
}

// Code returns the gRPC code for a failure kind.
func Code(err error) codes.Code {
	switch inference.KindOf(err) {
	case inference.ErrInvalidArgument, inference.ErrBackendRejected:
		return codes.InvalidArgument
	case inference.ErrBackendUnreachable:
		return codes.Unavailable
	case inference.ErrBackendProtocol:
		return codes.Internal
	case inference.ErrNotImplemented:
		return codes.Unimplemented
	}
	if errors.Is(err, context.Canceled) {
		return codes.Canceled
	}
	return codes.Internal
}
