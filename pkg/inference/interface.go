package inference

import "context"

// Client is the capability set every inference backend implements.
//
// Implementations must be safe for concurrent use. Failures are reported
// with the sentinel errors of this package, see errors.go.
//
//go:generate mockgen -source=interface.go -destination=mock_client.go -package=inference
type Client interface {
	Embeddings(ctx context.Context, req TextRequest) (*EmbeddingsResult, error)
	QuestionAnswering(ctx context.Context, req QuestionAnswerRequest) (*AnswerResult, error)
	SentenceTransformers(ctx context.Context, req TextRequest) (*EmbeddingsResult, error)
	SequenceClassification(ctx context.Context, req TextRequest) (*LogitsResult, error)
	TokenClassification(ctx context.Context, req TextRequest) (*EntitiesResult, error)
	Metadata(ctx context.Context) (*MetadataResult, error)

	// HealthCheck probes the backend. A nil error means it is reachable and ready.
	HealthCheck(ctx context.Context) error
}
