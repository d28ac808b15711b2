package gogocodec

import (
	"fmt"
	"reflect"
	"strings"

	gogoproto "github.com/gogo/protobuf/proto"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
)

const googolProtoGenPkgPath = "github.com/googol-search/googol/pkg/googolpb"

// gogoCodec forces gogo proto marshalling for googolpb types, which are
// generated with gogoproto, and delegates every other type to the standard
// proto codec. Register it before creating any grpc client or server.
type gogoCodec struct{}

var _ encoding.Codec = (*gogoCodec)(nil)

func NewCodec() *gogoCodec {
	return &gogoCodec{}
}

// Name implements encoding.Codec
func (c *gogoCodec) Name() string {
	return "proto"
}

// Marshal implements encoding.Codec
func (c *gogoCodec) Marshal(v any) ([]byte, error) {
	if msg, ok := v.(gogoproto.Message); ok && useGogo(reflect.TypeOf(v)) {
		return gogoproto.Marshal(msg)
	}
	if msg, ok := v.(proto.Message); ok {
		return proto.Marshal(msg)
	}
	return nil, fmt.Errorf("unsupported marshal type %T", v)
}

// Unmarshal implements encoding.Codec
func (c *gogoCodec) Unmarshal(data []byte, v any) error {
	if msg, ok := v.(gogoproto.Message); ok && useGogo(reflect.TypeOf(v)) {
		return gogoproto.Unmarshal(data, msg)
	}
	if msg, ok := v.(proto.Message); ok {
		return proto.Unmarshal(data, msg)
	}
	return fmt.Errorf("unsupported unmarshal type %T", v)
}

func useGogo(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return strings.HasPrefix(t.PkgPath(), googolProtoGenPkgPath)
}
