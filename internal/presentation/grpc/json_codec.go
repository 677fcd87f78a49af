package grpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// The wire messages in this package are JSON-tagged structs rather than
// protobuf-generated types, so the server speaks JSON until the proto
// definitions are generated.
func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "json"
}
