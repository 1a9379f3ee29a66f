package schema

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// MarshalIndent serializes a schema tree with two-space indentation, the
// format the intermediate schema.json file is written in.
func MarshalIndent(node Node) ([]byte, error) {
	raw, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: marshal document: %w", err)
	}
	return raw, nil
}

// Unmarshal decodes a serialized schema document back into a tree. Used by
// tests and callers that inspect generated documents.
func Unmarshal(raw []byte) (Node, error) {
	var node Node
	if err := json.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("schema: decode document: %w", err)
	}
	return node, nil
}
