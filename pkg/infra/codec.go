package infra

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Codec encodes/decodes Go values to/from slices of bytes.
type Codec interface {
	// Marshal encodes a Go value to a slice of bytes.
	Marshal(v any) ([]byte, error)
	// Unmarshal decodes a slice of bytes into a Go value.
	Unmarshal(data []byte, v any) error
}

// Convenience variables
var (
	// JSON is a JSONcodec that encodes/decodes Go values to/from indented JSON.
	JSON = JSONcodec{Indent: "  "}
	// YAML is a YAMLcodec that encodes/decodes Go values to/from YAML.
	YAML = YAMLcodec{}
)

// JSONcodec encodes/decodes Go values to/from JSON.
// You can use infra.JSON instead of creating an instance of this struct.
type JSONcodec struct {
	Indent string
}

// Marshal encodes a Go value to JSON.
func (c JSONcodec) Marshal(v any) ([]byte, error) {
	if c.Indent == "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", c.Indent)
}

// Unmarshal decodes a JSON value into a Go value.
func (c JSONcodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// YAMLcodec encodes/decodes Go values to/from YAML with two-space indent.
type YAMLcodec struct{}

// Marshal encodes a Go value to YAML.
func (c YAMLcodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a YAML value into a Go value.
func (c YAMLcodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
