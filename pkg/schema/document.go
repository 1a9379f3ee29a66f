// Package schema synthesizes and cleans the combined JSON Schema document fed
// to the external compiler. It owns the synthetic wrapper construction, the
// back-end selection for a run, and the post-generation cleanup pass.
package schema

import "errors"

// Node is one JSON-tree fragment of a schema document, mutated in place by
// the cleaner.
type Node = map[string]any

// Document wraps the serialized wrapper-schema payload together with the
// back-end that produced it and the side-table key it uses.
type Document struct {
	raw     []byte
	backend string
	defsKey string
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(backend, defsKey string, raw []byte) (Document, error) {
	if backend == "" {
		return Document{}, errors.New("schema: backend is required")
	}
	if defsKey == "" {
		return Document{}, errors.New("schema: defs key is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("schema: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{raw: clone, backend: backend, defsKey: defsKey}, nil
}

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Backend returns the name of the back-end that generated the document.
func (d Document) Backend() string {
	return d.backend
}

// DefsKey returns the side-table key ("$defs" or "definitions").
func (d Document) DefsKey() string {
	return d.defsKey
}
