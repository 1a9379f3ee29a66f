package schema

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-models2ts/pkg/declmodel"
	"github.com/goliatone/go-models2ts/pkg/model"
)

// CleanNode post-processes one sub-schema in place:
//
//  1. Drop descriptions that are auto-generated boilerplate — the legacy
//     back-end's enum and string-literal stamps. Exact string comparison is
//     deliberate: user-authored docs must survive untouched.
//  2. Drop every property title. Naive generators title each property with
//     its own name, and the downstream compiler would otherwise mint a
//     spurious named interface per property.
//  3. For legacy models, repair nullability: the legacy dialect emits
//     optional fields as their bare type, so declared-nullable fields whose
//     node lacks a null marker are rewritten as a union with an explicit
//     null member. Already-nullable nodes are left unchanged, which makes
//     the rewrite idempotent.
//
// A failed rewrite for one field is logged and skipped; it never aborts the
// run. This is the only place a per-item failure is swallowed.
func CleanNode(node Node, m model.Model, logger *zap.Logger) {
	if node == nil {
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	description, _ := node["description"].(string)
	if _, isEnum := node["enum"]; isEnum && description == declmodel.EnumDescription {
		delete(node, "description")
	} else if description == declmodel.LiteralDescription {
		delete(node, "description")
	}

	properties, _ := node["properties"].(map[string]any)
	for _, raw := range properties {
		if prop, ok := raw.(map[string]any); ok {
			delete(prop, "title")
		}
	}

	if m == nil || m.Backend() != model.BackendLegacy {
		return
	}

	for _, field := range m.Fields() {
		if !field.Nullable {
			continue
		}
		key := field.Key()
		raw, ok := properties[key]
		if !ok {
			continue
		}
		prop, ok := raw.(map[string]any)
		if !ok {
			logger.Error("failed to ensure nullability for field",
				zap.String("model", m.Name()),
				zap.String("field", key))
			continue
		}
		if !isNullable(prop) {
			properties[key] = map[string]any{
				"anyOf": []any{prop, map[string]any{"type": "null"}},
			}
		}
	}
}

// isNullable reports whether a schema node already admits null: its type is
// or includes "null", or it is a union with a nullable member.
func isNullable(node map[string]any) bool {
	switch t := node["type"].(type) {
	case string:
		if t == "null" {
			return true
		}
	case []any:
		for _, entry := range t {
			if entry == "null" {
				return true
			}
		}
	}

	if union, ok := node["anyOf"].([]any); ok {
		for _, member := range union {
			if m, ok := member.(map[string]any); ok && isNullable(m) {
				return true
			}
		}
	}
	return false
}
