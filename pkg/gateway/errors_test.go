package gateway

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Aleph-Alpha/inference-gateway/pkg/inference"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"invalid argument", fmt.Errorf("%w: text must not be empty", inference.ErrInvalidArgument), codes.InvalidArgument},
		{"rejected", &inference.BackendError{Kind: inference.ErrBackendRejected, Operation: inference.OpEmbeddings, StatusCode: 422}, codes.InvalidArgument},
		{"unreachable", inference.NewBackendError(inference.ErrBackendUnreachable, inference.OpEmbeddings, errors.New("dial tcp: connection refused")), codes.Unavailable},
		{"protocol", inference.NewBackendError(inference.ErrBackendProtocol, inference.OpEmbeddings, errors.New("missing field")), codes.Internal},
		{"not implemented", inference.NewBackendError(inference.ErrNotImplemented, inference.OpMetadata, nil), codes.Unimplemented},
		{"canceled", context.Canceled, codes.Canceled},
		{"unclassified", errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestToStatus(t *testing.T) {
	require.NoError(t, ToStatus(context.Background(), nil))

	err := ToStatus(context.Background(), &inference.BackendError{Kind: inference.ErrBackendUnreachable, Operation: inference.OpEmbeddings, StatusCode: 503})
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.Unavailable, st.Code())
	require.Contains(t, st.Message(), "embeddings")

	existing := status.Error(codes.ResourceExhausted, "slow down")
	require.Equal(t, existing, ToStatus(context.Background(), existing))
}

func TestToStatus_CallerGoneWins(t *testing.T) {
	unreachable := inference.NewBackendError(inference.ErrBackendUnreachable, inference.OpEmbeddings, context.Canceled)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Equal(t, codes.Canceled, status.Code(ToStatus(ctx, unreachable)))

	ctx, cancel = context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()
	require.Equal(t, codes.DeadlineExceeded, status.Code(ToStatus(ctx, unreachable)))
}

func TestToStatus_HidesBackendCause(t *testing.T) {
	cause := errors.New(`Post "http://10.0.0.7:5050/embeddings": dial tcp 10.0.0.7:5050: connect: connection refused`)
	err := ToStatus(context.Background(), inference.NewBackendError(inference.ErrBackendUnreachable, inference.OpEmbeddings, cause))

	st := status.Convert(err)
	require.Equal(t, codes.Unavailable, st.Code())
	require.Equal(t, "embeddings: backend unreachable", st.Message())
	require.NotContains(t, st.Message(), "10.0.0.7")

	err = ToStatus(context.Background(), &inference.BackendError{
		Kind: inference.ErrBackendRejected, Operation: inference.OpQuestionAnswering, StatusCode: 422, Err: errors.New("context too long"),
	})
	require.Equal(t, "question_answering: backend rejected request (status 422)", status.Convert(err).Message())

	err = ToStatus(context.Background(), fmt.Errorf("%w: text must not be empty", inference.ErrInvalidArgument))
	require.Equal(t, "invalid argument: text must not be empty", status.Convert(err).Message())

	require.Equal(t, "internal error", status.Convert(ToStatus(context.Background(), errors.New("secret detail"))).Message())
}
