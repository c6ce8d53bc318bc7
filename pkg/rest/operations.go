package rest

import (
	"context"
	"fmt"

	"github.com/Aleph-Alpha/inference-gateway/pkg/inference"
)

// Embeddings computes one embedding per output row of the model.
func (c *Client) Embeddings(ctx context.Context, req inference.TextRequest) (*inference.EmbeddingsResult, error) {
	return c.embeddings(ctx, inference.OpEmbeddings, c.paths.Embeddings, req)
}

// SentenceTransformers computes sentence embeddings. The response layout
// is the same as for Embeddings.
func (c *Client) SentenceTransformers(ctx context.Context, req inference.TextRequest) (*inference.EmbeddingsResult, error) {
	return c.embeddings(ctx, inference.OpSentenceTransformers, c.paths.SentenceTransformers, req)
}

func (c *Client) embeddings(ctx context.Context, operation, path string, req inference.TextRequest) (*inference.EmbeddingsResult, error) {
	var res inference.EmbeddingsResult
	took, err := c.invoke(ctx, operation, path, []param{{"text", req.Text}}, func(doc document) error {
		raw, ok := doc.lookup(c.fields.Embeddings)
		if !ok {
			return missingField(c.fields.Embeddings)
		}
		rows, err := decodeMatrix(raw)
		if err != nil {
			return err
		}
		res.Embeddings = make([]inference.Embedding, len(rows))
		for i, row := range rows {
			res.Embeddings[i] = inference.Embedding{Values: row}
		}
		derived, err := inference.EmbeddingShape(res.Embeddings)
		if err != nil {
			return err
		}
		declared, err := doc.shape(c.fields.Shape)
		if err != nil {
			return err
		}
		if declared != nil && *declared != derived && (len(rows) > 0 || declared.Elements() != 0) {
			return fmt.Errorf("declared shape [%d, %d] does not match embeddings [%d, %d]",
				declared.Dim1, declared.Dim2, derived.Dim1, derived.Dim2)
		}
		res.Shape = derived
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Took = took
	return &res, nil
}

// QuestionAnswering extracts the answer to a question from its context.
func (c *Client) QuestionAnswering(ctx context.Context, req inference.QuestionAnswerRequest) (*inference.AnswerResult, error) {
	var res inference.AnswerResult
	params := []param{{"question", req.Question}, {"context", req.Context}}
	took, err := c.invoke(ctx, inference.OpQuestionAnswering, c.paths.QuestionAnswering, params, func(doc document) error {
		var start, end int64
		if err := doc.require(c.fields.Answer, &res.Answer); err != nil {
			return err
		}
		if err := doc.require(c.fields.StartIdx, &start); err != nil {
			return err
		}
		if err := doc.require(c.fields.EndIdx, &end); err != nil {
			return err
		}
		if !fitsInt32(start) || !fitsInt32(end) {
			return fmt.Errorf("answer span [%d, %d] out of range", start, end)
		}
		if err := inference.CheckSpan(int32(start), int32(end), req.Context); err != nil {
			return err
		}
		res.StartIdx, res.EndIdx = int32(start), int32(end)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Took = took
	return &res, nil
}

// SequenceClassification returns the classification logits for a text.
// Nested logits are flattened row-major.
func (c *Client) SequenceClassification(ctx context.Context, req inference.TextRequest) (*inference.LogitsResult, error) {
	var res inference.LogitsResult
	took, err := c.invoke(ctx, inference.OpSequenceClassification, c.paths.SequenceClassification, []param{{"text", req.Text}}, func(doc document) error {
		raw, ok := doc.lookup(c.fields.Logits)
		if !ok {
			return missingField(c.fields.Logits)
		}
		rows, err := decodeMatrix(raw)
		if err != nil {
			return err
		}
		embeddings := make([]inference.Embedding, len(rows))
		for i, row := range rows {
			embeddings[i] = inference.Embedding{Values: row}
			res.Logits = append(res.Logits, row...)
		}
		if res.Logits == nil {
			res.Logits = []float32{}
		}
		derived, err := inference.EmbeddingShape(embeddings)
		if err != nil {
			return err
		}
		declared, err := doc.shape(c.fields.Shape)
		if err != nil {
			return err
		}
		if declared == nil {
			res.Shape = derived
			return nil
		}
		if err := inference.CheckShape(*declared, len(res.Logits)); err != nil {
			return err
		}
		res.Shape = *declared
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Took = took
	return &res, nil
}

// TokenClassification returns the labelled spans of a text. Offsets are
// checked against the request text.
func (c *Client) TokenClassification(ctx context.Context, req inference.TextRequest) (*inference.EntitiesResult, error) {
	var res inference.EntitiesResult
	took, err := c.invoke(ctx, inference.OpTokenClassification, c.paths.TokenClassification, []param{{"text", req.Text}}, func(doc document) error {
		var payloads []entityPayload
		if err := doc.require(c.fields.Entities, &payloads); err != nil {
			return err
		}
		res.Entities = make([]inference.Entity, 0, len(payloads))
		for i, p := range payloads {
			entity, err := p.toEntity(req.Text)
			if err != nil {
				return fmt.Errorf("entity %d: %w", i, err)
			}
			res.Entities = append(res.Entities, entity)
		}
		declared, err := doc.shape(c.fields.Shape)
		if err != nil {
			return err
		}
		switch {
		case declared != nil:
			res.Shape = *declared
		case len(res.Entities) > 0:
			res.Shape = inference.Shape{Dim1: 1, Dim2: int32(len(res.Entities))}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Took = took
	return &res, nil
}

// Metadata returns the model metadata. Non-string values are rendered as
// compact JSON.
func (c *Client) Metadata(ctx context.Context) (*inference.MetadataResult, error) {
	var res inference.MetadataResult
	took, err := c.invoke(ctx, inference.OpMetadata, c.paths.Metadata, nil, func(doc document) error {
		res.Metadata = make(map[string]string, len(doc))
		for key, raw := range doc {
			value, err := renderValue(raw)
			if err != nil {
				return fmt.Errorf("metadata %q: %w", key, err)
			}
			res.Metadata[key] = value
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Took = took
	return &res, nil
}

// HealthCheck succeeds when the health endpoint answers with a 2xx status.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.invoke(ctx, inference.OpHealthCheck, c.paths.HealthCheck, nil, nil)
	return err
}
