package mightypb

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every type of this package.
type Message interface {
	Marshal() ([]byte, error)
	Unmarshal(b []byte) error
}

type wireMessage interface {
	appendTo(b []byte) []byte
	unmarshal(b []byte) error
}

// ErrInvalidUTF8 is returned when a string field holds invalid UTF-8, on
// decode and on encode alike.
var ErrInvalidUTF8 = errors.New("string field contains invalid UTF-8")

// utf8Error carries an encode failure out of the append helpers, which have
// no error return. marshal recovers it.
type utf8Error struct {
	field protowire.Number
}

func (e utf8Error) Error() string {
	return fmt.Sprintf("field %d: %v", e.field, ErrInvalidUTF8)
}

func (e utf8Error) Unwrap() error { return ErrInvalidUTF8 }

// Fields are encoded in field-number order and proto3 defaults are omitted,
// so the output matches what protoc-generated code produces.

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	if !utf8.ValidString(v) {
		panic(utf8Error{field: num})
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	// negative values are sign-extended to ten bytes
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendFloat(b []byte, num protowire.Number, v float32) []byte {
	bits := math.Float32bits(v)
	if bits == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, bits)
}

func appendPackedFloats(b []byte, num protowire.Number, vs []float32) []byte {
	if len(vs) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(4*len(vs)))
	for _, v := range vs {
		b = protowire.AppendFixed32(b, math.Float32bits(v))
	}
	return b
}

func appendMessage(b []byte, num protowire.Number, m wireMessage) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.appendTo(nil))
}

// appendStringMap encodes a map<string, string> with sorted keys so the
// output is deterministic.
func appendStringMap(b []byte, num protowire.Number, m map[string]string) []byte {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var entry []byte
		entry = appendString(entry, 1, k)
		entry = appendString(entry, 2, m[k])
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	return b
}

// decodeFields walks the fields of b. field returns the number of bytes it
// consumed, or 0 to have the field skipped as unknown.
func decodeFields(b []byte, field func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		m, err := field(num, typ, b)
		if err != nil {
			return err
		}
		if m == 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return protowire.ParseError(m)
			}
		}
		b = b[m:]
	}
	return nil
}

// The consume helpers return 0 on a wire type mismatch so the field is
// skipped, as protobuf does for unknown encodings.

func consumeString(typ protowire.Type, b []byte, dst *string) (int, error) {
	if typ != protowire.BytesType {
		return 0, nil
	}
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if !utf8.ValidString(v) {
		return 0, ErrInvalidUTF8
	}
	*dst = v
	return n, nil
}

func consumeInt32(typ protowire.Type, b []byte, dst *int32) (int, error) {
	if typ != protowire.VarintType {
		return 0, nil
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = int32(v)
	return n, nil
}

func consumeBool(typ protowire.Type, b []byte, dst *bool) (int, error) {
	if typ != protowire.VarintType {
		return 0, nil
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = protowire.DecodeBool(v)
	return n, nil
}

func consumeFloat(typ protowire.Type, b []byte, dst *float32) (int, error) {
	if typ != protowire.Fixed32Type {
		return 0, nil
	}
	v, n := protowire.ConsumeFixed32(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = math.Float32frombits(v)
	return n, nil
}

// consumeFloats accepts both packed and unpacked repeated floats.
func consumeFloats(typ protowire.Type, b []byte, dst *[]float32) (int, error) {
	switch typ {
	case protowire.Fixed32Type:
		var v float32
		n, err := consumeFloat(typ, b, &v)
		if err != nil {
			return 0, err
		}
		*dst = append(*dst, v)
		return n, nil
	case protowire.BytesType:
		payload, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		if len(payload)%4 != 0 {
			return 0, protowire.ParseError(-1)
		}
		for len(payload) > 0 {
			v, m := protowire.ConsumeFixed32(payload)
			*dst = append(*dst, math.Float32frombits(v))
			payload = payload[m:]
		}
		return n, nil
	default:
		return 0, nil
	}
}

func consumeMessage(typ protowire.Type, b []byte, m wireMessage) (int, error) {
	if typ != protowire.BytesType {
		return 0, nil
	}
	payload, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if err := m.unmarshal(payload); err != nil {
		return 0, err
	}
	return n, nil
}

func consumeStringMapEntry(typ protowire.Type, b []byte, dst *map[string]string) (int, error) {
	if typ != protowire.BytesType {
		return 0, nil
	}
	payload, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	var key, value string
	err := decodeFields(payload, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &key)
		case 2:
			return consumeString(typ, b, &value)
		}
		return 0, nil
	})
	if err != nil {
		return 0, err
	}
	if *dst == nil {
		*dst = make(map[string]string)
	}
	(*dst)[key] = value
	return n, nil
}
