package mightypb

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
)

// Codec is a gRPC codec for the messages of this package. proto.Message
// values, such as those of the gRPC health service, are delegated to the
// protobuf runtime so one server can host both.
type Codec struct{}

var _ encoding.Codec = Codec{}

// Name reports "proto" so the content-type stays application/grpc+proto.
func (Codec) Name() string {
	return "proto"
}

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case Message:
		return m.Marshal()
	case proto.Message:
		return proto.Marshal(m)
	default:
		return nil, fmt.Errorf("mightypb: cannot marshal %T", v)
	}
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case Message:
		return m.Unmarshal(data)
	case proto.Message:
		return proto.Unmarshal(data, m)
	default:
		return fmt.Errorf("mightypb: cannot unmarshal into %T", v)
	}
}
