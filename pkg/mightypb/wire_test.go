package mightypb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func field(name string, num int32, typ descriptorpb.FieldDescriptorProto_Type, repeated bool, typeName string) *descriptorpb.FieldDescriptorProto {
	label := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	if repeated {
		label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED
	}
	f := &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(name),
		Number:   proto.Int32(num),
		Type:     typ.Enum(),
		Label:    label.Enum(),
	}
	if typeName != "" {
		f.TypeName = proto.String(typeName)
	}
	return f
}

// contract builds the descriptors of the .proto file so the protobuf
// runtime can be used as the reference encoder.
func contract(t *testing.T) protoreflect.FileDescriptor {
	t.Helper()
	const (
		tInt32   = descriptorpb.FieldDescriptorProto_TYPE_INT32
		tString  = descriptorpb.FieldDescriptorProto_TYPE_STRING
		tFloat   = descriptorpb.FieldDescriptorProto_TYPE_FLOAT
		tMessage = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
	)
	fd := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("mighty_inference.proto"),
		Package: proto.String("mighty_inference_server"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name:  proto.String("Shape"),
				Field: []*descriptorpb.FieldDescriptorProto{field("dim1", 1, tInt32, false, ""), field("dim2", 2, tInt32, false, "")},
			},
			{
				Name:  proto.String("Embedding"),
				Field: []*descriptorpb.FieldDescriptorProto{field("values", 1, tFloat, true, "")},
			},
			{
				Name: proto.String("EmbeddingsResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("took", 1, tInt32, false, ""),
					field("text", 2, tString, false, ""),
					field("embeddings", 3, tMessage, true, ".mighty_inference_server.Embedding"),
					field("shape", 4, tMessage, false, ".mighty_inference_server.Shape"),
				},
			},
			{
				Name: proto.String("Entity"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("id", 1, tString, false, ""),
					field("label", 2, tString, false, ""),
					field("text", 3, tString, false, ""),
					field("score", 4, tFloat, false, ""),
					field("start_offset", 5, tInt32, false, ""),
					field("end_offset", 6, tInt32, false, ""),
				},
			},
			{
				Name:  proto.String("MetadataResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{field("metadata", 1, tMessage, true, ".mighty_inference_server.MetadataResponse.MetadataEntry")},
				NestedType: []*descriptorpb.DescriptorProto{{
					Name:    proto.String("MetadataEntry"),
					Field:   []*descriptorpb.FieldDescriptorProto{field("key", 1, tString, false, ""), field("value", 2, tString, false, "")},
					Options: &descriptorpb.MessageOptions{MapEntry: proto.Bool(true)},
				}},
			},
		},
	}
	file, err := protodesc.NewFile(fd, nil)
	require.NoError(t, err)
	return file
}

func TestEmbeddingsResponse_CompatibleWithProtobufRuntime(t *testing.T) {
	desc := contract(t).Messages().ByName("EmbeddingsResponse")

	ours := &EmbeddingsResponse{
		Took: 42,
		Text: "hello",
		Embeddings: []*Embedding{
			{Values: []float32{0.1, 0.2}},
			{Values: []float32{-0.3, 0.4}},
		},
		Shape: &Shape{Dim1: 2, Dim2: 2},
	}
	data, err := ours.Marshal()
	require.NoError(t, err)

	dyn := dynamicpb.NewMessage(desc)
	require.NoError(t, proto.Unmarshal(data, dyn))
	require.Equal(t, int64(42), dyn.Get(desc.Fields().ByName("took")).Int())
	require.Equal(t, "hello", dyn.Get(desc.Fields().ByName("text")).String())

	embeddings := dyn.Get(desc.Fields().ByName("embeddings")).List()
	require.Equal(t, 2, embeddings.Len())
	values := embeddings.Get(1).Message().Get(embeddings.Get(1).Message().Descriptor().Fields().ByName("values")).List()
	require.Equal(t, float32(-0.3), float32(values.Get(0).Float()))

	shape := dyn.Get(desc.Fields().ByName("shape")).Message()
	require.Equal(t, int64(2), shape.Get(shape.Descriptor().Fields().ByName("dim1")).Int())

	// and back: bytes written by the runtime decode into our types
	back, err := proto.Marshal(dyn)
	require.NoError(t, err)
	var decoded EmbeddingsResponse
	require.NoError(t, decoded.Unmarshal(back))
	require.Equal(t, *ours, decoded)
}

func TestMetadataResponse_CompatibleWithProtobufRuntime(t *testing.T) {
	desc := contract(t).Messages().ByName("MetadataResponse")

	ours := &MetadataResponse{Metadata: map[string]string{"version": "1.0", "model": "bert-base"}}
	data, err := ours.Marshal()
	require.NoError(t, err)

	dyn := dynamicpb.NewMessage(desc)
	require.NoError(t, proto.Unmarshal(data, dyn))
	m := dyn.Get(desc.Fields().ByName("metadata")).Map()
	require.Equal(t, 2, m.Len())
	require.Equal(t, "bert-base", m.Get(protoreflect.ValueOfString("model").MapKey()).String())

	back, err := proto.Marshal(dyn)
	require.NoError(t, err)
	var decoded MetadataResponse
	require.NoError(t, decoded.Unmarshal(back))
	require.Equal(t, ours.Metadata, decoded.Metadata)
}

func TestEntity_NegativeOffsetsAndScore(t *testing.T) {
	desc := contract(t).Messages().ByName("Entity")

	ours := &Entity{Id: "7", Label: "ORG", Text: "Aleph", Score: 0.75, StartOffset: -1, EndOffset: 5}
	data, err := ours.Marshal()
	require.NoError(t, err)

	dyn := dynamicpb.NewMessage(desc)
	require.NoError(t, proto.Unmarshal(data, dyn))
	require.Equal(t, int64(-1), dyn.Get(desc.Fields().ByName("start_offset")).Int())
	require.Equal(t, 0.75, dyn.Get(desc.Fields().ByName("score")).Float())

	var decoded Entity
	require.NoError(t, decoded.Unmarshal(data))
	require.Equal(t, *ours, decoded)
}

func TestDecode_UnpackedFloatsAndUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, math.Float32bits(1.5))
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "from a newer server")
	b = protowire.AppendTag(b, 1, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, math.Float32bits(-2))

	var e Embedding
	require.NoError(t, e.Unmarshal(b))
	require.Equal(t, []float32{1.5, -2}, e.Values)
}

func TestDecode_Truncated(t *testing.T) {
	data, err := (&TextRequest{Text: "hello"}).Marshal()
	require.NoError(t, err)

	var req TextRequest
	require.Error(t, req.Unmarshal(data[:len(data)-2]))
}

func TestDecode_InvalidUTF8(t *testing.T) {
	var req TextRequest
	require.ErrorIs(t, req.Unmarshal([]byte{0x0a, 0x01, 0xff}), ErrInvalidUTF8)

	var entity []byte
	entity = protowire.AppendTag(entity, 2, protowire.BytesType)
	entity = protowire.AppendBytes(entity, []byte("PER\xc3"))
	var b []byte
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendBytes(b, entity)
	var tok TokenClassificationResponse
	require.ErrorIs(t, tok.Unmarshal(b), ErrInvalidUTF8)

	var entry []byte
	entry = protowire.AppendTag(entry, 1, protowire.BytesType)
	entry = protowire.AppendString(entry, "model")
	entry = protowire.AppendTag(entry, 2, protowire.BytesType)
	entry = protowire.AppendBytes(entry, []byte{0xe2, 0x28, 0xa1})
	b = protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendBytes(b, entry)
	var meta MetadataResponse
	require.ErrorIs(t, meta.Unmarshal(b), ErrInvalidUTF8)
}

func TestEncode_InvalidUTF8(t *testing.T) {
	_, err := (&EmbeddingsResponse{Text: "\xff"}).Marshal()
	require.ErrorIs(t, err, ErrInvalidUTF8)

	_, err = (&TokenClassificationResponse{Text: "ok", Entities: []*Entity{{Label: "LOC", Text: "Z\xfcrich"}}}).Marshal()
	require.ErrorIs(t, err, ErrInvalidUTF8)

	_, err = (&MetadataResponse{Metadata: map[string]string{"model\xff": "bert"}}).Marshal()
	require.ErrorIs(t, err, ErrInvalidUTF8)

	_, err = Codec{}.Marshal(&TextRequest{Text: "\xc0\xaf"})
	require.ErrorIs(t, err, ErrInvalidUTF8)

	data, err := (&TextRequest{Text: "Zürich"}).Marshal()
	require.NoError(t, err)
	var req TextRequest
	require.NoError(t, req.Unmarshal(data))
	require.Equal(t, "Zürich", req.Text)
}

func TestUnmarshal_Resets(t *testing.T) {
	req := QuestionAnswerRequest{Question: "old", Context: "old"}
	data, err := (&QuestionAnswerRequest{Question: "new"}).Marshal()
	require.NoError(t, err)

	require.NoError(t, req.Unmarshal(data))
	require.Equal(t, QuestionAnswerRequest{Question: "new"}, req)
}

func TestEncode_OmitsDefaults(t *testing.T) {
	data, err := (&HealthcheckResponse{}).Marshal()
	require.NoError(t, err)
	require.Empty(t, data)

	data, err = (&HealthcheckResponse{Success: true}).Marshal()
	require.NoError(t, err)
	require.Equal(t, []byte{0x08, 0x01}, data)

	// an empty but present shape is still written
	data, err = (&SequenceClassificationResponse{Shape: &Shape{}}).Marshal()
	require.NoError(t, err)
	require.Equal(t, []byte{0x22, 0x00}, data)
}

func TestCodec(t *testing.T) {
	c := Codec{}
	require.Equal(t, "proto", c.Name())

	data, err := c.Marshal(&TextRequest{Text: "hi"})
	require.NoError(t, err)
	var req TextRequest
	require.NoError(t, c.Unmarshal(data, &req))
	require.Equal(t, "hi", req.Text)

	data, err = c.Marshal(wrapperspb.String("plain protobuf"))
	require.NoError(t, err)
	var w wrapperspb.StringValue
	require.NoError(t, c.Unmarshal(data, &w))
	require.Equal(t, "plain protobuf", w.GetValue())

	_, err = c.Marshal(struct{}{})
	require.Error(t, err)
	require.Error(t, c.Unmarshal(nil, &struct{}{}))
}
