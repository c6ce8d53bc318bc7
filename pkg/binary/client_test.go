package binary

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/inference-gateway/pkg/inference"
)

func TestEveryOperationIsNotImplemented(t *testing.T) {
	ctx := context.Background()
	c := NewClient()
	text := inference.TextRequest{Text: "hello"}

	_, err := c.Embeddings(ctx, text)
	require.ErrorIs(t, err, inference.ErrNotImplemented)
	_, err = c.QuestionAnswering(ctx, inference.QuestionAnswerRequest{Question: "q", Context: "c"})
	require.ErrorIs(t, err, inference.ErrNotImplemented)
	_, err = c.SentenceTransformers(ctx, text)
	require.ErrorIs(t, err, inference.ErrNotImplemented)
	_, err = c.SequenceClassification(ctx, text)
	require.ErrorIs(t, err, inference.ErrNotImplemented)
	_, err = c.TokenClassification(ctx, text)
	require.ErrorIs(t, err, inference.ErrNotImplemented)
	_, err = c.Metadata(ctx)
	require.ErrorIs(t, err, inference.ErrNotImplemented)
	require.ErrorIs(t, c.HealthCheck(ctx), inference.ErrNotImplemented)
}
