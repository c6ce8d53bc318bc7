package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Aleph-Alpha/inference-gateway/pkg/inference"
)

// document is a decoded top-level JSON object of a backend response.
type document map[string]json.RawMessage

func parseDocument(body []byte) (document, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.New("response body is not a JSON object")
	}
	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return doc, nil
}

// lookup returns the first non-null field among names.
func (d document) lookup(names []string) (json.RawMessage, bool) {
	for _, name := range names {
		raw, ok := d[name]
		if ok && !isNull(raw) {
			return raw, true
		}
	}
	return nil, false
}

// require decodes the first field among names into out.
func (d document) require(names []string, out any) error {
	raw, ok := d.lookup(names)
	if !ok {
		return missingField(names)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("field %s: %w", strings.Join(names, "|"), err)
	}
	return nil
}

// shape decodes an optional [dim1, dim2] field. It returns nil when absent.
func (d document) shape(names []string) (*inference.Shape, error) {
	raw, ok := d.lookup(names)
	if !ok {
		return nil, nil
	}
	var dims []int64
	if err := json.Unmarshal(raw, &dims); err != nil {
		return nil, fmt.Errorf("field %s: %w", strings.Join(names, "|"), err)
	}
	if len(dims) != 2 {
		return nil, fmt.Errorf("field %s: expected 2 dimensions, got %d", strings.Join(names, "|"), len(dims))
	}
	for _, v := range dims {
		if v < 0 || v > math.MaxInt32 {
			return nil, fmt.Errorf("field %s: dimension %d out of range", strings.Join(names, "|"), v)
		}
	}
	return &inference.Shape{Dim1: int32(dims[0]), Dim2: int32(dims[1])}, nil
}

// decodeMatrix accepts either a list of rows or a single flat row.
func decodeMatrix(raw json.RawMessage) ([][]float32, error) {
	var rows [][]float32
	if err := json.Unmarshal(raw, &rows); err == nil {
		return rows, nil
	}
	var row []float32
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, fmt.Errorf("expected a numeric array or an array of numeric arrays: %w", err)
	}
	return [][]float32{row}, nil
}

// renderValue turns a JSON value into text: strings verbatim, everything
// else as compact JSON.
func renderValue(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// flexString decodes any JSON scalar or structure into its text form.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	s, err := renderValue(data)
	if err != nil {
		return err
	}
	*f = flexString(s)
	return nil
}

// entityPayload accepts both the server's own entity layout and the
// token-classification pipeline layout (entity, word, start, end).
type entityPayload struct {
	ID          flexString `json:"id"`
	Label       string     `json:"label"`
	Entity      string     `json:"entity"`
	Text        string     `json:"text"`
	Word        string     `json:"word"`
	Score       float32    `json:"score"`
	Offsets     []int64    `json:"offsets"`
	StartOffset *int64     `json:"start_offset"`
	EndOffset   *int64     `json:"end_offset"`
	Start       *int64     `json:"start"`
	End         *int64     `json:"end"`
}

func (p entityPayload) toEntity(source string) (inference.Entity, error) {
	start, end, err := p.offsets()
	if err != nil {
		return inference.Entity{}, err
	}
	if !fitsInt32(start) || !fitsInt32(end) {
		return inference.Entity{}, fmt.Errorf("offsets [%d, %d] out of range", start, end)
	}
	if err := inference.CheckSpan(int32(start), int32(end), source); err != nil {
		return inference.Entity{}, err
	}
	return inference.Entity{
		ID:          string(p.ID),
		Label:       firstNonEmpty(p.Label, p.Entity),
		Text:        firstNonEmpty(p.Text, p.Word),
		Score:       p.Score,
		StartOffset: int32(start),
		EndOffset:   int32(end),
	}, nil
}

func (p entityPayload) offsets() (int64, int64, error) {
	switch {
	case p.Offsets != nil:
		if len(p.Offsets) != 2 {
			return 0, 0, fmt.Errorf("offsets must hold 2 values, got %d", len(p.Offsets))
		}
		return p.Offsets[0], p.Offsets[1], nil
	case p.StartOffset != nil && p.EndOffset != nil:
		return *p.StartOffset, *p.EndOffset, nil
	case p.Start != nil && p.End != nil:
		return *p.Start, *p.End, nil
	default:
		return 0, 0, errors.New("entity has no offsets")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func fitsInt32(v int64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func missingField(names []string) error {
	return fmt.Errorf("missing field %s", strings.Join(names, "|"))
}
