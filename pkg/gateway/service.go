package gateway

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/Aleph-Alpha/inference-gateway/pkg/inference"
	"github.com/Aleph-Alpha/inference-gateway/pkg/mightypb"
)

// Logger is the logging surface of the gateway.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// HealthSetter publishes serving status, e.g. *health.Server.
type HealthSetter interface {
	SetServingStatus(service string, servingStatus healthpb.HealthCheckResponse_ServingStatus)
}

// Service implements the MightyInference RPCs on top of an inference.Client.
// It keeps no per-call state and is safe for any number of concurrent calls.
type Service struct {
	client inference.Client
	logger Logger
	health HealthSetter
}

var _ mightypb.MightyInferenceServer = (*Service)(nil)

// NewService builds a Service. health may be nil.
func NewService(client inference.Client, logger Logger, health HealthSetter) *Service {
	return &Service{client: client, logger: logger, health: health}
}

func (s *Service) Embeddings(ctx context.Context, req *mightypb.TextRequest) (*mightypb.EmbeddingsResponse, error) {
	if err := requireField("text", req.Text); err != nil {
		return nil, ToStatus(ctx, err)
	}
	res, err := s.client.Embeddings(ctx, inference.TextRequest{Text: req.Text})
	if err != nil {
		return nil, s.fail(ctx, inference.OpEmbeddings, err)
	}
	return &mightypb.EmbeddingsResponse{
		Took:       tookMillis(res.Took),
		Text:       req.Text,
		Embeddings: toEmbeddings(res.Embeddings),
		Shape:      toShape(res.Shape),
	}, nil
}

func (s *Service) QuestionAnswering(ctx context.Context, req *mightypb.QuestionAnswerRequest) (*mightypb.QuestionAnswerResponse, error) {
	if err := requireField("question", req.Question); err != nil {
		return nil, ToStatus(ctx, err)
	}
	if err := requireField("context", req.Context); err != nil {
		return nil, ToStatus(ctx, err)
	}
	res, err := s.client.QuestionAnswering(ctx, inference.QuestionAnswerRequest{Question: req.Question, Context: req.Context})
	if err != nil {
		return nil, s.fail(ctx, inference.OpQuestionAnswering, err)
	}
	return &mightypb.QuestionAnswerResponse{
		Took:     tookMillis(res.Took),
		Question: req.Question,
		Context:  req.Context,
		Answer:   res.Answer,
		StartIdx: res.StartIdx,
		EndIdx:   res.EndIdx,
	}, nil
}

func (s *Service) SentenceTransformers(ctx context.Context, req *mightypb.TextRequest) (*mightypb.SentenceTransformersResponse, error) {
	if err := requireField("text", req.Text); err != nil {
		return nil, ToStatus(ctx, err)
	}
	res, err := s.client.SentenceTransformers(ctx, inference.TextRequest{Text: req.Text})
	if err != nil {
		return nil, s.fail(ctx, inference.OpSentenceTransformers, err)
	}
	return &mightypb.SentenceTransformersResponse{
		Took:       tookMillis(res.Took),
		Text:       req.Text,
		Embeddings: toEmbeddings(res.Embeddings),
		Shape:      toShape(res.Shape),
	}, nil
}

func (s *Service) SequenceClassification(ctx context.Context, req *mightypb.TextRequest) (*mightypb.SequenceClassificationResponse, error) {
	if err := requireField("text", req.Text); err != nil {
		return nil, ToStatus(ctx, err)
	}
	res, err := s.client.SequenceClassification(ctx, inference.TextRequest{Text: req.Text})
	if err != nil {
		return nil, s.fail(ctx, inference.OpSequenceClassification, err)
	}
	return &mightypb.SequenceClassificationResponse{
		Took:   tookMillis(res.Took),
		Text:   req.Text,
		Logits: res.Logits,
		Shape:  toShape(res.Shape),
	}, nil
}

func (s *Service) TokenClassification(ctx context.Context, req *mightypb.TextRequest) (*mightypb.TokenClassificationResponse, error) {
	if err := requireField("text", req.Text); err != nil {
		return nil, ToStatus(ctx, err)
	}
	res, err := s.client.TokenClassification(ctx, inference.TextRequest{Text: req.Text})
	if err != nil {
		return nil, s.fail(ctx, inference.OpTokenClassification, err)
	}
	return &mightypb.TokenClassificationResponse{
		Took:     tookMillis(res.Took),
		Text:     req.Text,
		Entities: toEntities(res.Entities),
		Shape:    toShape(res.Shape),
	}, nil
}

func (s *Service) Metadata(ctx context.Context, _ *mightypb.Empty) (*mightypb.MetadataResponse, error) {
	res, err := s.client.Metadata(ctx)
	if err != nil {
		return nil, s.fail(ctx, inference.OpMetadata, err)
	}
	return &mightypb.MetadataResponse{Metadata: res.Metadata}, nil
}

// HealthCheck reports whether the backend answers its health probe. A
// failed probe is success=false rather than an error. A backend without a
// health probe at all answers Unimplemented.
func (s *Service) HealthCheck(ctx context.Context, _ *mightypb.Empty) (*mightypb.HealthcheckResponse, error) {
	ok, err := s.probe(ctx)
	if err != nil {
		return nil, ToStatus(ctx, err)
	}
	return &mightypb.HealthcheckResponse{Success: ok}, nil
}

// probe runs the backend health check and publishes the result. The
// returned error is only set when the backend cannot be probed at all.
func (s *Service) probe(ctx context.Context) (bool, error) {
	err := s.client.HealthCheck(ctx)
	if errors.Is(err, inference.ErrNotImplemented) {
		s.setServing(false)
		return false, err
	}
	if err != nil {
		s.logger.WarnWithContext(ctx, "backend health probe failed", err, map[string]interface{}{
			"outcome": inference.Outcome(err),
		})
	}
	s.setServing(err == nil)
	return err == nil, nil
}

func (s *Service) setServing(ok bool) {
	if s.health == nil {
		return
	}
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(mightypb.ServiceName, st)
}

// fail logs a backend failure and converts it into a gRPC status.
func (s *Service) fail(ctx context.Context, operation string, err error) error {
	s.logger.WarnWithContext(ctx, "backend call failed", err, map[string]interface{}{
		"operation": operation,
		"outcome":   inference.Outcome(err),
	})
	return ToStatus(ctx, err)
}

func requireField(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s must not be empty", inference.ErrInvalidArgument, name)
	}
	if !utf8.ValidString(value) {
		return fmt.Errorf("%w: %s is not valid UTF-8", inference.ErrInvalidArgument, name)
	}
	return nil
}

// tookMillis converts a measured duration into whole, non-negative milliseconds.
func tookMillis(d time.Duration) int32 {
	ms := d.Milliseconds()
	switch {
	case ms < 0:
		return 0
	case ms > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(ms)
}

func toShape(s inference.Shape) *mightypb.Shape {
	return &mightypb.Shape{Dim1: s.Dim1, Dim2: s.Dim2}
}

func toEmbeddings(in []inference.Embedding) []*mightypb.Embedding {
	out := make([]*mightypb.Embedding, len(in))
	for i, e := range in {
		out[i] = &mightypb.Embedding{Values: e.Values}
	}
	return out
}

func toEntities(in []inference.Entity) []*mightypb.Entity {
	out := make([]*mightypb.Entity, len(in))
	for i, e := range in {
		out[i] = &mightypb.Entity{
			Id:          e.ID,
			Label:       e.Label,
			Text:        e.Text,
			Score:       e.Score,
			StartOffset: e.StartOffset,
			EndOffset:   e.EndOffset,
		}
	}
	return out
}
