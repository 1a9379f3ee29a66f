package declmodel

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-models2ts/pkg/model"
)

// Boilerplate descriptions the legacy back-end stamps onto generated schemas.
// The cleaner strips them by exact comparison; user-authored docs replace them
// and are kept.
const (
	// EnumDescription is the canned doc emitted for enum models.
	EnumDescription = "An enumeration."
	// LiteralDescription is the canned doc emitted for bare string-literal
	// models.
	LiteralDescription = "A fixed string value."
)

const dialect = "http://json-schema.org/draft-07/schema#"

// GenerateMaster builds the draft-07 wrapper document for a set of legacy
// models: a top-level object with one required property per model and a
// "definitions" side-table keyed by model name. A model from another back-end
// is a caller configuration error and aborts generation.
func GenerateMaster(models []model.Model) (map[string]any, error) {
	defs := make(map[string]any, len(models))
	props := make(map[string]any, len(models))
	required := make([]any, 0, len(models))

	for _, m := range models {
		lm, ok := m.(*Model)
		if !ok {
			return nil, fmt.Errorf("declmodel: model %q does not belong to the legacy back-end", m.Name())
		}

		def, err := lm.schemaNode()
		if err != nil {
			return nil, err
		}

		defs[lm.Name()] = def
		props[lm.Name()] = map[string]any{"$ref": "#/definitions/" + lm.Name()}
		required = append(required, lm.Name())
	}

	return map[string]any{
		"$schema":     dialect,
		"title":       model.WrapperName,
		"type":        "object",
		"properties":  props,
		"required":    required,
		"definitions": defs,
	}, nil
}

// schemaNode renders one model definition. Optional fields are emitted as
// their bare type without a null marker: that is the legacy dialect's
// convention, repaired later by the cleaner.
func (m *Model) schemaNode() (map[string]any, error) {
	switch {
	case len(m.enum) > 0:
		return m.enumNode(), nil
	case m.literal != nil:
		return m.literalNode(), nil
	}
	return m.objectNode()
}

func (m *Model) enumNode() map[string]any {
	description := EnumDescription
	if m.doc != "" {
		description = m.doc
	}
	return map[string]any{
		"title":       m.name,
		"description": description,
		"enum":        append([]any(nil), m.enum...),
	}
}

func (m *Model) literalNode() map[string]any {
	description := LiteralDescription
	if m.doc != "" {
		description = m.doc
	}
	return map[string]any{
		"title":       m.name,
		"description": description,
		"type":        "string",
		"enum":        []any{*m.literal},
	}
}

func (m *Model) objectNode() (map[string]any, error) {
	props := make(map[string]any, len(m.fields))
	required := make([]any, 0, len(m.fields))

	for _, f := range m.fields {
		node, err := m.fieldNode(f)
		if err != nil {
			return nil, err
		}
		props[f.Key()] = node
		if !f.Nullable && f.Default == nil {
			required = append(required, f.Key())
		}
	}

	node := map[string]any{
		"title":      m.name,
		"type":       "object",
		"properties": props,
	}
	if m.doc != "" {
		node["description"] = m.doc
	}
	if len(required) > 0 {
		node["required"] = required
	}
	switch m.extra {
	case model.ExtraForbid:
		node["additionalProperties"] = false
	case model.ExtraAllow:
		node["additionalProperties"] = true
	}
	return node, nil
}

func (m *Model) fieldNode(f declField) (map[string]any, error) {
	node, err := m.exprNode(f.expr)
	if err != nil {
		return nil, fmt.Errorf("declmodel: model %q field %q: %w", m.name, f.Name, err)
	}
	if _, isRef := node["$ref"]; !isRef {
		node["title"] = titleize(f.Key())
	}
	if f.Default != nil {
		node["default"] = f.Default
	}
	return node, nil
}

func (m *Model) exprNode(e *typeExpr) (map[string]any, error) {
	switch e.kind {
	case kindString:
		return map[string]any{"type": "string"}, nil
	case kindInt:
		return map[string]any{"type": "integer"}, nil
	case kindFloat:
		return map[string]any{"type": "number"}, nil
	case kindBool:
		return map[string]any{"type": "boolean"}, nil
	case kindAny:
		return map[string]any{}, nil
	case kindList:
		elem, err := m.exprNode(e.elem)
		if err != nil {
			return nil, err
		}
		return map[string]any{"type": "array", "items": elem}, nil
	case kindMap:
		elem, err := m.exprNode(e.elem)
		if err != nil {
			return nil, err
		}
		return map[string]any{"type": "object", "additionalProperties": elem}, nil
	case kindParam:
		return nil, fmt.Errorf("unbound template parameter %q", e.ref)
	}
	return m.refNode(e.ref)
}

// refNode resolves a model reference through the global registry. The
// enclosing module was registered before its body executed, so self and
// forward references resolve here even though generation runs much later.
func (m *Model) refNode(ref string) (map[string]any, error) {
	moduleName, modelName := m.moduleName, ref
	if i := strings.LastIndex(ref, "."); i >= 0 {
		moduleName, modelName = ref[:i], ref[i+1:]
	}

	mod, err := model.Lookup(moduleName)
	if err != nil {
		return nil, fmt.Errorf("unresolved reference %q: %w", ref, err)
	}
	if _, ok := mod.Model(modelName); !ok {
		return nil, fmt.Errorf("unresolved reference %q: no model %q in module %q", ref, modelName, moduleName)
	}

	return map[string]any{"$ref": "#/definitions/" + modelName}, nil
}

// titleize renders the legacy dialect's auto-generated property title:
// underscore-separated words, each capitalized.
func titleize(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
