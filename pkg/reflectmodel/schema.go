package reflectmodel

import (
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"

	"github.com/goliatone/go-models2ts/pkg/model"
)

// GenerateMaster builds the Draft 2020-12 wrapper document for a set of
// struct models. It assembles an anonymous wrapper struct with one field per
// model, reflects it in a single pass so every model lands in "$defs", then
// applies each model's extra-fields policy and computed fields onto its
// definition. The reflected view follows json tags, i.e. the serialized
// representation of each model.
func GenerateMaster(models []model.Model) (map[string]any, error) {
	structFields := make([]reflect.StructField, 0, len(models))
	byName := make(map[string]*Model, len(models))

	for _, m := range models {
		rm, ok := m.(*Model)
		if !ok {
			return nil, fmt.Errorf("reflectmodel: model %q does not belong to the struct back-end", m.Name())
		}
		byName[rm.Name()] = rm
		structFields = append(structFields, reflect.StructField{
			Name: rm.Name(),
			Type: rm.typ,
			Tag:  reflect.StructTag(fmt.Sprintf(`json:%q`, rm.Name())),
		})
	}

	wrapper := reflect.StructOf(structFields)

	reflector := &jsonschema.Reflector{
		Anonymous:                 true,
		AllowAdditionalProperties: true,
		FieldNameTag:              "json",
	}
	generated := reflector.ReflectFromType(wrapper)

	raw, err := json.Marshal(generated)
	if err != nil {
		return nil, fmt.Errorf("reflectmodel: marshal generated schema: %w", err)
	}
	var reflected map[string]any
	if err := json.Unmarshal(raw, &reflected); err != nil {
		return nil, fmt.Errorf("reflectmodel: decode generated schema: %w", err)
	}

	defs, ok := reflected["$defs"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("reflectmodel: generated schema has no $defs side-table")
	}

	props := make(map[string]any, len(models))
	required := make([]any, 0, len(models))
	for _, m := range models {
		props[m.Name()] = map[string]any{"$ref": "#/$defs/" + m.Name()}
		required = append(required, m.Name())
	}

	for name, rm := range byName {
		def, ok := defs[name].(map[string]any)
		if !ok {
			// The reflector could not derive a stable name for this type;
			// the definition is absent and there is nothing to decorate.
			continue
		}
		applyPolicy(def, rm.ExtraPolicy())
		if err := injectComputed(def, rm.computed); err != nil {
			return nil, fmt.Errorf("reflectmodel: model %q: %w", name, err)
		}
	}

	return map[string]any{
		"$schema":    "https://json-schema.org/draft/2020-12/schema",
		"title":      model.WrapperName,
		"type":       "object",
		"properties": props,
		"required":   required,
		"$defs":      defs,
	}, nil
}

func applyPolicy(def map[string]any, policy model.ExtraPolicy) {
	switch policy {
	case model.ExtraForbid:
		def["additionalProperties"] = false
	case model.ExtraAllow:
		def["additionalProperties"] = true
	default:
		delete(def, "additionalProperties")
	}
}

// injectComputed adds derived serialization-only fields into a definition's
// properties and marks them required, mirroring what a consumer of the
// serialized JSON actually receives.
func injectComputed(def map[string]any, computed []model.Field) error {
	if len(computed) == 0 {
		return nil
	}

	props, ok := def["properties"].(map[string]any)
	if !ok {
		props = make(map[string]any)
		def["properties"] = props
	}
	required, _ := def["required"].([]any)

	for _, f := range computed {
		node, err := computedNode(f)
		if err != nil {
			return err
		}
		props[f.Key()] = node
		required = append(required, f.Key())
	}

	def["required"] = required
	return nil
}

func computedNode(f model.Field) (map[string]any, error) {
	switch f.Type {
	case "str", "string":
		return map[string]any{"type": "string"}, nil
	case "int", "integer":
		return map[string]any{"type": "integer"}, nil
	case "float", "number":
		return map[string]any{"type": "number"}, nil
	case "bool", "boolean":
		return map[string]any{"type": "boolean"}, nil
	case "":
		return map[string]any{}, nil
	}
	return nil, fmt.Errorf("computed field %q has unsupported type %q", f.Key(), f.Type)
}
