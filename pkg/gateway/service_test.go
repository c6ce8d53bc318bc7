package gateway

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/Aleph-Alpha/inference-gateway/pkg/inference"
	"github.com/Aleph-Alpha/inference-gateway/pkg/logger"
	"github.com/Aleph-Alpha/inference-gateway/pkg/mightypb"
)

type recordedHealth struct {
	mu       sync.Mutex
	statuses []healthpb.HealthCheckResponse_ServingStatus
}

func (r *recordedHealth) SetServingStatus(service string, st healthpb.HealthCheckResponse_ServingStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, st)
}

func (r *recordedHealth) last() healthpb.HealthCheckResponse_ServingStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.statuses[len(r.statuses)-1]
}

func newTestService(t *testing.T) (*Service, *inference.MockClient, *recordedHealth) {
	ctrl := gomock.NewController(t)
	client := inference.NewMockClient(ctrl)
	hs := &recordedHealth{}
	return NewService(client, logger.NewFromZap(zaptest.NewLogger(t), false), hs), client, hs
}

func TestService_Embeddings(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	client.EXPECT().Embeddings(gomock.Any(), inference.TextRequest{Text: "hello"}).Return(&inference.EmbeddingsResult{
		Embeddings: []inference.Embedding{{Values: []float32{0.1, 0.2}}, {Values: []float32{0.3, 0.4}}},
		Shape:      inference.Shape{Dim1: 2, Dim2: 2},
		Took:       12 * time.Millisecond,
	}, nil)

	resp, err := svc.Embeddings(ctx, &mightypb.TextRequest{Text: "hello"})
	require.NoError(t, err)
	require.Equal(t, "hello", resp.Text)
	require.Equal(t, int32(12), resp.Took)
	require.Equal(t, &mightypb.Shape{Dim1: 2, Dim2: 2}, resp.Shape)
	require.Len(t, resp.Embeddings, 2)
	require.Equal(t, []float32{0.1, 0.2}, resp.Embeddings[0].Values)
	require.Equal(t, []float32{0.3, 0.4}, resp.Embeddings[1].Values)
}

func TestService_EmptyFieldsNeverReachBackend(t *testing.T) {
	// the mock fails the test on any unexpected call
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Embeddings(ctx, &mightypb.TextRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = svc.SentenceTransformers(ctx, &mightypb.TextRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = svc.SequenceClassification(ctx, &mightypb.TextRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = svc.TokenClassification(ctx, &mightypb.TextRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.QuestionAnswering(ctx, &mightypb.QuestionAnswerRequest{Context: "Paris is in France."})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.Contains(t, status.Convert(err).Message(), "question")
	_, err = svc.QuestionAnswering(ctx, &mightypb.QuestionAnswerRequest{Question: "Where is Paris?"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.Contains(t, status.Convert(err).Message(), "context")
}

func TestService_InvalidUTF8NeverReachesBackend(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Embeddings(ctx, &mightypb.TextRequest{Text: "caf\xe9"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.Contains(t, status.Convert(err).Message(), "UTF-8")
	_, err = svc.QuestionAnswering(ctx, &mightypb.QuestionAnswerRequest{Question: "Where?", Context: "\xff\xfe"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestService_QuestionAnswering(t *testing.T) {
	svc, client, _ := newTestService(t)
	req := inference.QuestionAnswerRequest{Question: "Where is Paris?", Context: "Paris is in France."}

	client.EXPECT().QuestionAnswering(gomock.Any(), req).Return(&inference.AnswerResult{
		Answer: "France", StartIdx: 12, EndIdx: 18, Took: 3 * time.Millisecond,
	}, nil)

	resp, err := svc.QuestionAnswering(context.Background(), &mightypb.QuestionAnswerRequest{Question: req.Question, Context: req.Context})
	require.NoError(t, err)
	require.Equal(t, &mightypb.QuestionAnswerResponse{
		Took: 3, Question: req.Question, Context: req.Context, Answer: "France", StartIdx: 12, EndIdx: 18,
	}, resp)
}

func TestService_ClassificationAndMetadata(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	client.EXPECT().SequenceClassification(gomock.Any(), inference.TextRequest{Text: "great"}).Return(&inference.LogitsResult{
		Logits: []float32{-1.5, 2.25}, Shape: inference.Shape{Dim1: 1, Dim2: 2},
	}, nil)
	client.EXPECT().TokenClassification(gomock.Any(), inference.TextRequest{Text: "Anna lives in Berlin"}).Return(&inference.EntitiesResult{
		Entities: []inference.Entity{{ID: "ent-1", Label: "PER", Text: "Anna", Score: 0.99, StartOffset: 0, EndOffset: 4}},
		Shape:    inference.Shape{Dim1: 1, Dim2: 1},
	}, nil)
	client.EXPECT().Metadata(gomock.Any()).Return(&inference.MetadataResult{
		Metadata: map[string]string{"model": "bert-base", "max_length": "512"},
	}, nil)

	seq, err := svc.SequenceClassification(ctx, &mightypb.TextRequest{Text: "great"})
	require.NoError(t, err)
	require.Equal(t, []float32{-1.5, 2.25}, seq.Logits)
	require.Equal(t, "great", seq.Text)
	require.Equal(t, int32(0), seq.Took)

	tok, err := svc.TokenClassification(ctx, &mightypb.TextRequest{Text: "Anna lives in Berlin"})
	require.NoError(t, err)
	require.Equal(t, []*mightypb.Entity{{Id: "ent-1", Label: "PER", Text: "Anna", Score: 0.99, StartOffset: 0, EndOffset: 4}}, tok.Entities)
	require.Equal(t, &mightypb.Shape{Dim1: 1, Dim2: 1}, tok.Shape)

	meta, err := svc.Metadata(ctx, &mightypb.Empty{})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"model": "bert-base", "max_length": "512"}, meta.Metadata)
}

func TestService_BackendFailures(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	client.EXPECT().Embeddings(gomock.Any(), gomock.Any()).Return(nil,
		inference.NewBackendError(inference.ErrBackendUnreachable, inference.OpEmbeddings, context.DeadlineExceeded))
	client.EXPECT().SentenceTransformers(gomock.Any(), gomock.Any()).Return(nil,
		&inference.BackendError{Kind: inference.ErrBackendRejected, Operation: inference.OpSentenceTransformers, StatusCode: 400})
	client.EXPECT().SequenceClassification(gomock.Any(), gomock.Any()).Return(nil,
		inference.NewBackendError(inference.ErrBackendProtocol, inference.OpSequenceClassification, errors.New("missing logits")))
	client.EXPECT().Metadata(gomock.Any()).Return(nil,
		inference.NewBackendError(inference.ErrNotImplemented, inference.OpMetadata, nil))

	resp, err := svc.Embeddings(ctx, &mightypb.TextRequest{Text: "hello"})
	require.Nil(t, resp)
	require.Equal(t, codes.Unavailable, status.Code(err))

	_, err = svc.SentenceTransformers(ctx, &mightypb.TextRequest{Text: "hello"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.SequenceClassification(ctx, &mightypb.TextRequest{Text: "hello"})
	require.Equal(t, codes.Internal, status.Code(err))

	_, err = svc.Metadata(ctx, &mightypb.Empty{})
	require.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestService_HealthCheck(t *testing.T) {
	svc, client, hs := newTestService(t)
	ctx := context.Background()

	client.EXPECT().HealthCheck(gomock.Any()).Return(nil)
	resp, err := svc.HealthCheck(ctx, &mightypb.Empty{})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, hs.last())

	client.EXPECT().HealthCheck(gomock.Any()).Return(
		&inference.BackendError{Kind: inference.ErrBackendUnreachable, Operation: inference.OpHealthCheck, StatusCode: 503})
	resp, err = svc.HealthCheck(ctx, &mightypb.Empty{})
	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, hs.last())

	client.EXPECT().HealthCheck(gomock.Any()).Return(
		inference.NewBackendError(inference.ErrNotImplemented, inference.OpHealthCheck, nil))
	resp, err = svc.HealthCheck(ctx, &mightypb.Empty{})
	require.Nil(t, resp)
	require.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestTookMillis(t *testing.T) {
	require.Equal(t, int32(0), tookMillis(-time.Second))
	require.Equal(t, int32(0), tookMillis(900*time.Microsecond))
	require.Equal(t, int32(1500), tookMillis(1500*time.Millisecond))
	require.Equal(t, int32(math.MaxInt32), tookMillis(time.Duration(math.MaxInt64)))
}
