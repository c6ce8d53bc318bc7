package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Aleph-Alpha/inference-gateway/pkg/mightypb"
)

type fakeGateway struct {
	mightypb.MightyInferenceClient
	embeddingsErr error
}

func (f *fakeGateway) HealthCheck(context.Context, *mightypb.Empty, ...grpc.CallOption) (*mightypb.HealthcheckResponse, error) {
	return &mightypb.HealthcheckResponse{Success: true}, nil
}

func (f *fakeGateway) Metadata(context.Context, *mightypb.Empty, ...grpc.CallOption) (*mightypb.MetadataResponse, error) {
	return &mightypb.MetadataResponse{Metadata: map[string]string{"model": "bert-base"}}, nil
}

func (f *fakeGateway) Embeddings(_ context.Context, in *mightypb.TextRequest, _ ...grpc.CallOption) (*mightypb.EmbeddingsResponse, error) {
	if f.embeddingsErr != nil {
		return nil, f.embeddingsErr
	}
	return &mightypb.EmbeddingsResponse{
		Took:       7,
		Text:       in.Text,
		Embeddings: []*mightypb.Embedding{{Values: []float32{1, 2, 3}}},
		Shape:      &mightypb.Shape{Dim1: 1, Dim2: 3},
	}, nil
}

func TestProbe(t *testing.T) {
	res, err := probe(context.Background(), &fakeGateway{}, "hello")
	require.NoError(t, err)
	require.True(t, res.Healthy)
	require.Equal(t, "bert-base", res.Metadata["model"])
	require.Equal(t, []int32{1, 3}, res.Shape)
	require.Equal(t, int32(7), res.TookMs)

	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, res))
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, true, decoded["healthy"])
}

func TestProbe_PropagatesFailure(t *testing.T) {
	_, err := probe(context.Background(), &fakeGateway{embeddingsErr: status.Error(codes.Unavailable, "backend down")}, "hello")
	require.ErrorContains(t, err, "embeddings")
	require.Equal(t, codes.Unavailable, status.Code(err))
}

func TestNewApp(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "false")
	require.NoError(t, newApp("").Err())

	require.Error(t, newApp(filepath.Join(t.TempDir(), "absent.yaml")).Err())
}
