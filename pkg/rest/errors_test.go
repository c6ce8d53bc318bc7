package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/inference-gateway/pkg/inference"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"deadline", fmt.Errorf("get: %w", context.DeadlineExceeded), inference.ErrBackendUnreachable},
		{"canceled", context.Canceled, inference.ErrBackendUnreachable},
		{"dial", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, inference.ErrBackendUnreachable},
		{"errno", fmt.Errorf("read: %w", syscall.ECONNRESET), inference.ErrBackendUnreachable},
		{"json syntax", json.Unmarshal([]byte("{"), &struct{}{}), inference.ErrBackendProtocol},
		{"json type", json.Unmarshal([]byte(`{"a":"x"}`), &struct{ A int }{}), inference.ErrBackendProtocol},
		{"malformed", errors.New("net/http: malformed HTTP response \"hello\""), inference.ErrBackendProtocol},
		{"already classified", fmt.Errorf("x: %w", inference.ErrBackendRejected), inference.ErrBackendRejected},
		{"unknown", errors.New("something odd"), inference.ErrBackendUnreachable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TranslateError(tt.err))
		})
	}
}

func TestStatusKind(t *testing.T) {
	require.NoError(t, StatusKind(200))
	require.NoError(t, StatusKind(204))
	require.Equal(t, inference.ErrBackendRejected, StatusKind(400))
	require.Equal(t, inference.ErrBackendRejected, StatusKind(422))
	require.Equal(t, inference.ErrBackendUnreachable, StatusKind(500))
	require.Equal(t, inference.ErrBackendUnreachable, StatusKind(503))
	require.Equal(t, inference.ErrBackendProtocol, StatusKind(302))
}
