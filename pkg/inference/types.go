package inference

import "time"

// Operation names, used for error context, metrics labels and span names.
const (
	OpEmbeddings             = "embeddings"
	OpQuestionAnswering      = "question_answering"
	OpSentenceTransformers   = "sentence_transformers"
	OpSequenceClassification = "sequence_classification"
	OpTokenClassification    = "token_classification"
	OpMetadata               = "metadata"
	OpHealthCheck            = "health_check"
)

// TextRequest is the input of every single-text operation.
type TextRequest struct {
	Text string
}

// QuestionAnswerRequest is the input of extractive question answering.
type QuestionAnswerRequest struct {
	Question string
	Context  string
}

// Shape describes a rank-2 tensor: Dim1 rows of Dim2 values each.
type Shape struct {
	Dim1 int32
	Dim2 int32
}

// Elements returns the number of values a tensor of this shape holds.
func (s Shape) Elements() int64 {
	return int64(s.Dim1) * int64(s.Dim2)
}

// Embedding is a single embedding vector.
type Embedding struct {
	Values []float32
}

// Entity is one token classification span. Offsets are character offsets
// into the classified text.
type Entity struct {
	ID          string
	Label       string
	Text        string
	Score       float32
	StartOffset int32
	EndOffset   int32
}

// EmbeddingsResult is returned by Embeddings and SentenceTransformers.
type EmbeddingsResult struct {
	Embeddings []Embedding
	Shape      Shape
	Took       time.Duration
}

// AnswerResult is returned by QuestionAnswering. StartIdx and EndIdx index
// characters of the request context.
type AnswerResult struct {
	Answer   string
	StartIdx int32
	EndIdx   int32
	Took     time.Duration
}

// LogitsResult is returned by SequenceClassification. Logits are flattened
// row-major according to Shape.
type LogitsResult struct {
	Logits []float32
	Shape  Shape
	Took   time.Duration
}

// EntitiesResult is returned by TokenClassification.
type EntitiesResult struct {
	Entities []Entity
	Shape    Shape
	Took     time.Duration
}

// MetadataResult carries the model metadata reported by the backend.
type MetadataResult struct {
	Metadata map[string]string
	Took     time.Duration
}
