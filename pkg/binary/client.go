// Package binary reserves the in-process inference path. The wire contract
// of that path is not defined yet, so every operation fails with
// inference.ErrNotImplemented and no I/O takes place.
package binary

import (
	"context"

	"github.com/Aleph-Alpha/inference-gateway/pkg/inference"
)

// Client is the in-process backend placeholder.
type Client struct{}

var _ inference.Client = (*Client)(nil)

func NewClient() *Client {
	return &Client{}
}

func notImplemented(operation string) error {
	return inference.NewBackendError(inference.ErrNotImplemented, operation, nil)
}

func (c *Client) Embeddings(context.Context, inference.TextRequest) (*inference.EmbeddingsResult, error) {
	return nil, notImplemented(inference.OpEmbeddings)
}

func (c *Client) QuestionAnswering(context.Context, inference.QuestionAnswerRequest) (*inference.AnswerResult, error) {
	return nil, notImplemented(inference.OpQuestionAnswering)
}

func (c *Client) SentenceTransformers(context.Context, inference.TextRequest) (*inference.EmbeddingsResult, error) {
	return nil, notImplemented(inference.OpSentenceTransformers)
}

func (c *Client) SequenceClassification(context.Context, inference.TextRequest) (*inference.LogitsResult, error) {
	return nil, notImplemented(inference.OpSequenceClassification)
}

func (c *Client) TokenClassification(context.Context, inference.TextRequest) (*inference.EntitiesResult, error) {
	return nil, notImplemented(inference.OpTokenClassification)
}

func (c *Client) Metadata(context.Context) (*inference.MetadataResult, error) {
	return nil, notImplemented(inference.OpMetadata)
}

func (c *Client) HealthCheck(context.Context) error {
	return notImplemented(inference.OpHealthCheck)
}
