package mightypb

// Empty is the request of Metadata and HealthCheck.
type Empty struct{}

type TextRequest struct {
	Text string
}

type QuestionAnswerRequest struct {
	Question string
	Context  string
}

// Shape is the rank-2 shape of returned numeric data.
type Shape struct {
	Dim1 int32
	Dim2 int32
}

type Embedding struct {
	Values []float32
}

type Entity struct {
	Id          string
	Label       string
	Text        string
	Score       float32
	StartOffset int32
	EndOffset   int32
}

type EmbeddingsResponse struct {
	Took       int32
	Text       string
	Embeddings []*Embedding
	Shape      *Shape
}

// SentenceTransformersResponse has the same layout as EmbeddingsResponse.
type SentenceTransformersResponse struct {
	Took       int32
	Text       string
	Embeddings []*Embedding
	Shape      *Shape
}

type QuestionAnswerResponse struct {
	Took     int32
	Question string
	Context  string
	Answer   string
	StartIdx int32
	EndIdx   int32
}

type SequenceClassificationResponse struct {
	Took   int32
	Text   string
	Logits []float32
	Shape  *Shape
}

type TokenClassificationResponse struct {
	Took     int32
	Text     string
	Entities []*Entity
	Shape    *Shape
}

type MetadataResponse struct {
	Metadata map[string]string
}

type HealthcheckResponse struct {
	Success bool
}

// GetShape returns the shape or a zero shape when unset.
func (r *EmbeddingsResponse) GetShape() Shape {
	if r == nil || r.Shape == nil {
		return Shape{}
	}
	return *r.Shape
}

func (r *SentenceTransformersResponse) GetShape() Shape {
	if r == nil || r.Shape == nil {
		return Shape{}
	}
	return *r.Shape
}

func (r *SequenceClassificationResponse) GetShape() Shape {
	if r == nil || r.Shape == nil {
		return Shape{}
	}
	return *r.Shape
}

func (r *TokenClassificationResponse) GetShape() Shape {
	if r == nil || r.Shape == nil {
		return Shape{}
	}
	return *r.Shape
}
