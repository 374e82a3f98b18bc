package rpc

import (
	"encoding/json"

	"connectrpc.com/connect"
)

const codecNameJSON = "json"

// jsonCodec serializes plain Go message structs. It replaces Connect's
// default protojson codec under the same name, so clients and handlers
// negotiate application/json as usual.
type jsonCodec struct{}

func (jsonCodec) Name() string { return codecNameJSON }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

// WithJSON configures a client or handler to use the JSON codec.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
