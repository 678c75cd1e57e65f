// Package api defines the docshelf RPC messages.
//
// Messages are plain Go structs carried as JSON. apiconnect mounts them on
// Connect handlers and clients with Codec registered under the "json" name,
// so any Connect client speaking application/json can call the API.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Codec is a connect.Codec marshaling messages with encoding/json.
type Codec struct{}

// Name implements connect.Codec.
func (Codec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// Unmarshal implements connect.Codec. Unknown fields are rejected so typos in
// field-level updates do not silently no-op.
func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(msg); err != nil {
		return fmt.Errorf("decode %T: %w", msg, err)
	}
	return nil
}
