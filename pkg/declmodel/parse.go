package declmodel

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-models2ts/pkg/model"
)

// fileDoc mirrors the on-disk document shape. YAML is the canonical syntax;
// JSON parses through the same decoder.
type fileDoc struct {
	Models  map[string]modelDoc `yaml:"models"`
	Modules map[string]fileDoc  `yaml:"modules"`
}

type modelDoc struct {
	Doc     string     `yaml:"doc"`
	Fields  []fieldDoc `yaml:"fields"`
	Enum    []any      `yaml:"enum"`
	Literal *string    `yaml:"literal"`
	Extra   string     `yaml:"extra"`
	Params  []string   `yaml:"params"`
}

type fieldDoc struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Alias    string `yaml:"alias"`
	Nullable bool   `yaml:"nullable"`
	Default  any    `yaml:"default"`
}

// ParseInto parses a declarative model document into an already-registered
// module. The module must be in the global registry before parsing starts:
// type expressions resolve their enclosing module by name at generation time,
// and submodules created here are registered the same way before their bodies
// are populated.
func ParseInto(mod *model.Module, data []byte) error {
	if mod == nil {
		return fmt.Errorf("declmodel: module is required")
	}

	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("declmodel: parse module %q: %w", mod.Name(), err)
	}

	return populate(mod, doc)
}

func populate(mod *model.Module, doc fileDoc) error {
	for _, name := range sortedKeys(doc.Models) {
		mdl, err := buildModel(mod.Name(), name, doc.Models[name])
		if err != nil {
			return err
		}
		if err := mod.AddModel(mdl); err != nil {
			return err
		}
	}

	for _, attr := range sortedKeys(doc.Modules) {
		child := model.NewModule(mod.Name() + "." + attr)
		if err := model.Register(child); err != nil {
			return err
		}
		if err := populate(child, doc.Modules[attr]); err != nil {
			return err
		}
		if err := mod.AddModule(attr, child); err != nil {
			return err
		}
	}

	return nil
}

func buildModel(moduleName, name string, doc modelDoc) (*Model, error) {
	variants := 0
	if len(doc.Fields) > 0 {
		variants++
	}
	if len(doc.Enum) > 0 {
		variants++
	}
	if doc.Literal != nil {
		variants++
	}
	if variants != 1 {
		return nil, fmt.Errorf("declmodel: model %q must declare exactly one of fields, enum, or literal", name)
	}

	extra, err := parseExtra(name, doc.Extra)
	if err != nil {
		return nil, err
	}

	m := &Model{
		name:       name,
		moduleName: moduleName,
		doc:        doc.Doc,
		enum:       doc.Enum,
		literal:    doc.Literal,
		params:     doc.Params,
		extra:      extra,
	}

	seen := make(map[string]struct{}, len(doc.Fields))
	for _, f := range doc.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("declmodel: model %q has a field without a name", name)
		}
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("declmodel: model %q declares field %q twice", name, f.Name)
		}
		seen[f.Name] = struct{}{}

		expr, err := parseTypeExpr(f.Type, doc.Params)
		if err != nil {
			return nil, fmt.Errorf("declmodel: model %q field %q: %w", name, f.Name, err)
		}

		m.fields = append(m.fields, declField{
			Field: model.Field{
				Name:     f.Name,
				Alias:    f.Alias,
				Type:     expr.String(),
				Default:  f.Default,
				Nullable: f.Nullable,
			},
			expr: expr,
		})
	}

	return m, nil
}

func parseExtra(name, raw string) (model.ExtraPolicy, error) {
	switch model.ExtraPolicy(raw) {
	case model.ExtraUnset, model.ExtraAllow, model.ExtraForbid, model.ExtraIgnore:
		return model.ExtraPolicy(raw), nil
	}
	return model.ExtraUnset, fmt.Errorf("declmodel: model %q has invalid extra policy %q", name, raw)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
