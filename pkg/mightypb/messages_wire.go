package mightypb

import "google.golang.org/protobuf/encoding/protowire"

func marshal(m wireMessage) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(utf8Error)
			if !ok {
				panic(r)
			}
			b, err = nil, e
		}
	}()
	return m.appendTo(nil), nil
}

func unmarshalInto(m interface{ reset() }, w wireMessage, b []byte) error {
	m.reset()
	return w.unmarshal(b)
}

func (m *Empty) appendTo(b []byte) []byte { return b }
func (m *Empty) unmarshal(b []byte) error {
	return decodeFields(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}
func (m *Empty) reset()                   { *m = Empty{} }
func (m *Empty) Marshal() ([]byte, error) { return marshal(m) }
func (m *Empty) Unmarshal(b []byte) error { return unmarshalInto(m, m, b) }

func (m *TextRequest) appendTo(b []byte) []byte {
	return appendString(b, 1, m.Text)
}

func (m *TextRequest) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &m.Text)
		}
		return 0, nil
	})
}

func (m *TextRequest) reset()                   { *m = TextRequest{} }
func (m *TextRequest) Marshal() ([]byte, error) { return marshal(m) }
func (m *TextRequest) Unmarshal(b []byte) error { return unmarshalInto(m, m, b) }

func (m *QuestionAnswerRequest) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Question)
	return appendString(b, 2, m.Context)
}

func (m *QuestionAnswerRequest) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Question)
		case 2:
			return consumeString(typ, b, &m.Context)
		}
		return 0, nil
	})
}

func (m *QuestionAnswerRequest) reset()                   { *m = QuestionAnswerRequest{} }
func (m *QuestionAnswerRequest) Marshal() ([]byte, error) { return marshal(m) }
func (m *QuestionAnswerRequest) Unmarshal(b []byte) error { return unmarshalInto(m, m, b) }

func (m *Shape) appendTo(b []byte) []byte {
	b = appendInt32(b, 1, m.Dim1)
	return appendInt32(b, 2, m.Dim2)
}

func (m *Shape) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt32(typ, b, &m.Dim1)
		case 2:
			return consumeInt32(typ, b, &m.Dim2)
		}
		return 0, nil
	})
}

func (m *Shape) reset()                   { *m = Shape{} }
func (m *Shape) Marshal() ([]byte, error) { return marshal(m) }
func (m *Shape) Unmarshal(b []byte) error { return unmarshalInto(m, m, b) }

func (m *Embedding) appendTo(b []byte) []byte {
	return appendPackedFloats(b, 1, m.Values)
}

func (m *Embedding) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeFloats(typ, b, &m.Values)
		}
		return 0, nil
	})
}

func (m *Embedding) reset()                   { *m = Embedding{} }
func (m *Embedding) Marshal() ([]byte, error) { return marshal(m) }
func (m *Embedding) Unmarshal(b []byte) error { return unmarshalInto(m, m, b) }

func (m *Entity) appendTo(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Label)
	b = appendString(b, 3, m.Text)
	b = appendFloat(b, 4, m.Score)
	b = appendInt32(b, 5, m.StartOffset)
	return appendInt32(b, 6, m.EndOffset)
}

func (m *Entity) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Id)
		case 2:
			return consumeString(typ, b, &m.Label)
		case 3:
			return consumeString(typ, b, &m.Text)
		case 4:
			return consumeFloat(typ, b, &m.Score)
		case 5:
			return consumeInt32(typ, b, &m.StartOffset)
		case 6:
			return consumeInt32(typ, b, &m.EndOffset)
		}
		return 0, nil
	})
}

func (m *Entity) reset()                   { *m = Entity{} }
func (m *Entity) Marshal() ([]byte, error) { return marshal(m) }
func (m *Entity) Unmarshal(b []byte) error { return unmarshalInto(m, m, b) }

// embeddingsLayout is shared by the two embedding responses:
// took=1, text=2, embeddings=3, shape=4.
func appendEmbeddingsLayout(b []byte, took int32, text string, embeddings []*Embedding, shape *Shape) []byte {
	b = appendInt32(b, 1, took)
	b = appendString(b, 2, text)
	for _, e := range embeddings {
		if e == nil {
			e = &Embedding{}
		}
		b = appendMessage(b, 3, e)
	}
	if shape != nil {
		b = appendMessage(b, 4, shape)
	}
	return b
}

func decodeEmbeddingsLayout(b []byte, took *int32, text *string, embeddings *[]*Embedding, shape **Shape) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt32(typ, b, took)
		case 2:
			return consumeString(typ, b, text)
		case 3:
			e := &Embedding{}
			n, err := consumeMessage(typ, b, e)
			if n > 0 {
				*embeddings = append(*embeddings, e)
			}
			return n, err
		case 4:
			if *shape == nil {
				*shape = &Shape{}
			}
			return consumeMessage(typ, b, *shape)
		}
		return 0, nil
	})
}

func (m *EmbeddingsResponse) appendTo(b []byte) []byte {
	return appendEmbeddingsLayout(b, m.Took, m.Text, m.Embeddings, m.Shape)
}

func (m *EmbeddingsResponse) unmarshal(b []byte) error {
	return decodeEmbeddingsLayout(b, &m.Took, &m.Text, &m.Embeddings, &m.Shape)
}

func (m *EmbeddingsResponse) reset()                   { *m = EmbeddingsResponse{} }
func (m *EmbeddingsResponse) Marshal() ([]byte, error) { return marshal(m) }
func (m *EmbeddingsResponse) Unmarshal(b []byte) error { return unmarshalInto(m, m, b) }

func (m *SentenceTransformersResponse) appendTo(b []byte) []byte {
	return appendEmbeddingsLayout(b, m.Took, m.Text, m.Embeddings, m.Shape)
}

func (m *SentenceTransformersResponse) unmarshal(b []byte) error {
	return decodeEmbeddingsLayout(b, &m.Took, &m.Text, &m.Embeddings, &m.Shape)
}

func (m *SentenceTransformersResponse) reset()                   { *m = SentenceTransformersResponse{} }
func (m *SentenceTransformersResponse) Marshal() ([]byte, error) { return marshal(m) }
func (m *SentenceTransformersResponse) Unmarshal(b []byte) error { return unmarshalInto(m, m, b) }

func (m *QuestionAnswerResponse) appendTo(b []byte) []byte {
	b = appendInt32(b, 1, m.Took)
	b = appendString(b, 2, m.Question)
	b = appendString(b, 3, m.Context)
	b = appendString(b, 4, m.Answer)
	b = appendInt32(b, 5, m.StartIdx)
	return appendInt32(b, 6, m.EndIdx)
}

func (m *QuestionAnswerResponse) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt32(typ, b, &m.Took)
		case 2:
			return consumeString(typ, b, &m.Question)
		case 3:
			return consumeString(typ, b, &m.Context)
		case 4:
			return consumeString(typ, b, &m.Answer)
		case 5:
			return consumeInt32(typ, b, &m.StartIdx)
		case 6:
			return consumeInt32(typ, b, &m.EndIdx)
		}
		return 0, nil
	})
}

func (m *QuestionAnswerResponse) reset()                   { *m = QuestionAnswerResponse{} }
func (m *QuestionAnswerResponse) Marshal() ([]byte, error) { return marshal(m) }
func (m *QuestionAnswerResponse) Unmarshal(b []byte) error { return unmarshalInto(m, m, b) }

func (m *SequenceClassificationResponse) appendTo(b []byte) []byte {
	b = appendInt32(b, 1, m.Took)
	b = appendString(b, 2, m.Text)
	b = appendPackedFloats(b, 3, m.Logits)
	if m.Shape != nil {
		b = appendMessage(b, 4, m.Shape)
	}
	return b
}

func (m *SequenceClassificationResponse) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt32(typ, b, &m.Took)
		case 2:
			return consumeString(typ, b, &m.Text)
		case 3:
			return consumeFloats(typ, b, &m.Logits)
		case 4:
			if m.Shape == nil {
				m.Shape = &Shape{}
			}
			return consumeMessage(typ, b, m.Shape)
		}
		return 0, nil
	})
}

func (m *SequenceClassificationResponse) reset()                   { *m = SequenceClassificationResponse{} }
func (m *SequenceClassificationResponse) Marshal() ([]byte, error) { return marshal(m) }
func (m *SequenceClassificationResponse) Unmarshal(b []byte) error { return unmarshalInto(m, m, b) }

func (m *TokenClassificationResponse) appendTo(b []byte) []byte {
	b = appendInt32(b, 1, m.Took)
	b = appendString(b, 2, m.Text)
	for _, e := range m.Entities {
		if e == nil {
			e = &Entity{}
		}
		b = appendMessage(b, 3, e)
	}
	if m.Shape != nil {
		b = appendMessage(b, 4, m.Shape)
	}
	return b
}

func (m *TokenClassificationResponse) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt32(typ, b, &m.Took)
		case 2:
			return consumeString(typ, b, &m.Text)
		case 3:
			e := &Entity{}
			n, err := consumeMessage(typ, b, e)
			if n > 0 {
				m.Entities = append(m.Entities, e)
			}
			return n, err
		case 4:
			if m.Shape == nil {
				m.Shape = &Shape{}
			}
			return consumeMessage(typ, b, m.Shape)
		}
		return 0, nil
	})
}

func (m *TokenClassificationResponse) reset()                   { *m = TokenClassificationResponse{} }
func (m *TokenClassificationResponse) Marshal() ([]byte, error) { return marshal(m) }
func (m *TokenClassificationResponse) Unmarshal(b []byte) error { return unmarshalInto(m, m, b) }

func (m *MetadataResponse) appendTo(b []byte) []byte {
	return appendStringMap(b, 1, m.Metadata)
}

func (m *MetadataResponse) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeStringMapEntry(typ, b, &m.Metadata)
		}
		return 0, nil
	})
}

func (m *MetadataResponse) reset()                   { *m = MetadataResponse{} }
func (m *MetadataResponse) Marshal() ([]byte, error) { return marshal(m) }
func (m *MetadataResponse) Unmarshal(b []byte) error { return unmarshalInto(m, m, b) }

func (m *HealthcheckResponse) appendTo(b []byte) []byte {
	return appendBool(b, 1, m.Success)
}

func (m *HealthcheckResponse) unmarshal(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeBool(typ, b, &m.Success)
		}
		return 0, nil
	})
}

func (m *HealthcheckResponse) reset()                   { *m = HealthcheckResponse{} }
func (m *HealthcheckResponse) Marshal() ([]byte, error) { return marshal(m) }
func (m *HealthcheckResponse) Unmarshal(b []byte) error { return unmarshalInto(m, m, b) }
