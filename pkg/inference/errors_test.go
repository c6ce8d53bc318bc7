package inference

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBackendError_MatchesKindAndCause(t *testing.T) {
	cause := context.DeadlineExceeded
	err := fmt.Errorf("call failed: %w", NewBackendError(ErrBackendUnreachable, OpEmbeddings, cause))

	require.ErrorIs(t, err, ErrBackendUnreachable)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotErrorIs(t, err, ErrBackendRejected)

	var be *BackendError
	require.True(t, errors.As(err, &be))
	require.Equal(t, OpEmbeddings, be.Operation)
}

func TestBackendError_Message(t *testing.T) {
	err := &BackendError{Kind: ErrBackendRejected, Operation: OpMetadata, StatusCode: 422, Err: errors.New("text too long")}
	require.Equal(t, "metadata: backend rejected request (status 422): text too long", err.Error())

	err = NewBackendError(ErrNotImplemented, OpHealthCheck, nil)
	require.Equal(t, "health_check: not implemented", err.Error())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"plain", errors.New("boom"), nil},
		{"sentinel", ErrInvalidArgument, ErrInvalidArgument},
		{"wrapped", fmt.Errorf("x: %w", ErrNotImplemented), ErrNotImplemented},
		{"backend error", NewBackendError(ErrBackendProtocol, OpTokenClassification, errors.New("bad json")), ErrBackendProtocol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
