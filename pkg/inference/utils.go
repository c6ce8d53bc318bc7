package inference

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// EmbeddingShape derives the shape of a batch of embeddings. Every vector
// must have the same length; an empty batch has shape {0, 0}.
func EmbeddingShape(embeddings []Embedding) (Shape, error) {
	if len(embeddings) == 0 {
		return Shape{}, nil
	}
	width := len(embeddings[0].Values)
	for i, e := range embeddings {
		if len(e.Values) != width {
			return Shape{}, fmt.Errorf("embedding %d has %d values, expected %d", i, len(e.Values), width)
		}
	}
	if len(embeddings) > math.MaxInt32 || width > math.MaxInt32 {
		return Shape{}, fmt.Errorf("embedding batch %dx%d exceeds int32 shape", len(embeddings), width)
	}
	return Shape{Dim1: int32(len(embeddings)), Dim2: int32(width)}, nil
}

// CheckShape verifies that a declared shape accounts for exactly elements values.
func CheckShape(declared Shape, elements int) error {
	if declared.Dim1 < 0 || declared.Dim2 < 0 {
		return fmt.Errorf("negative shape [%d, %d]", declared.Dim1, declared.Dim2)
	}
	if declared.Elements() != int64(elements) {
		return fmt.Errorf("shape [%d, %d] does not match %d values", declared.Dim1, declared.Dim2, elements)
	}
	return nil
}

// CheckSpan verifies 0 <= start <= end <= number of characters in text.
func CheckSpan(start, end int32, text string) error {
	n := utf8.RuneCountInString(text)
	if start < 0 || start > end || int(end) > n {
		return fmt.Errorf("span [%d, %d] outside text of %d characters", start, end, n)
	}
	return nil
}

// Outcome returns a short label for the failure kind of err, "ok" for nil.
// Used as a low-cardinality metrics label.
func Outcome(err error) string {
	switch KindOf(err) {
	case nil:
		if err == nil {
			return "ok"
		}
		return "error"
	case ErrInvalidArgument:
		return "invalid_argument"
	case ErrBackendUnreachable:
		return "unreachable"
	case ErrBackendRejected:
		return "rejected"
	case ErrBackendProtocol:
		return "protocol_error"
	case ErrNotImplemented:
		return "not_implemented"
	}
	return "error"
}
