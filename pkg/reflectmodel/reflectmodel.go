// Package reflectmodel implements the current schema back-end: Go struct
// types registered as models, generating Draft 2020-12 schema trees with a
// "$defs" side-table through invopop/jsonschema.
package reflectmodel

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-models2ts/pkg/model"
)

// Config lets a struct declare its extra-fields policy. Registration options
// take precedence when both are present.
type Config interface {
	ExtraFields() model.ExtraPolicy
}

// Computed lets a struct surface derived fields that appear in its serialized
// form but not in its declared fields. Field.Type names a primitive
// ("str", "int", "float", "bool") or is left empty for an untyped value.
type Computed interface {
	ComputedFields() []model.Field
}

// Options configures model registration.
type Options struct {
	// Extra sets the model's extra-fields policy.
	Extra model.ExtraPolicy
}

// Model is a registered struct type. It implements model.Model.
type Model struct {
	typ        reflect.Type
	moduleName string
	fields     []model.Field
	computed   []model.Field
	extra      model.ExtraPolicy
}

// Add registers a struct value's type as a model attribute of mod. The type
// must be a named, exported struct: its name becomes the schema side-table
// key and a field name on the synthetic wrapper.
func Add(mod *model.Module, value any, opts Options) (*Model, error) {
	if mod == nil {
		return nil, fmt.Errorf("reflectmodel: module is required")
	}

	t := reflect.TypeOf(value)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("reflectmodel: model must be a struct, got %T", value)
	}
	name := t.Name()
	if name == "" {
		return nil, fmt.Errorf("reflectmodel: anonymous structs cannot be models")
	}
	if first := name[:1]; first != strings.ToUpper(first) {
		return nil, fmt.Errorf("reflectmodel: model %q must be exported", name)
	}

	m := &Model{
		typ:        t,
		moduleName: mod.Name(),
		fields:     structFields(t),
		extra:      opts.Extra,
	}

	if m.extra == model.ExtraUnset {
		if cfg, ok := value.(Config); ok {
			m.extra = cfg.ExtraFields()
		}
	}
	if c, ok := value.(Computed); ok {
		m.computed = c.ComputedFields()
	}

	if err := mod.AddModel(m); err != nil {
		return nil, err
	}
	return m, nil
}

// MustAdd panics on registration failure. Useful for init-time wiring.
func MustAdd(mod *model.Module, value any) *Model {
	m, err := Add(mod, value, Options{})
	if err != nil {
		panic(err)
	}
	return m
}

func structFields(t reflect.Type) []model.Field {
	var out []model.Field
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}

		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		alias, _, _ := strings.Cut(tag, ",")

		out = append(out, model.Field{
			Name:     f.Name,
			Alias:    alias,
			Type:     f.Type.String(),
			Nullable: f.Type.Kind() == reflect.Pointer,
		})
	}
	return out
}

// Name returns the struct type name.
func (m *Model) Name() string {
	return m.typ.Name()
}

// QualifiedName returns the module-qualified model name.
func (m *Model) QualifiedName() string {
	return m.moduleName + "." + m.typ.Name()
}

// Backend reports the current back-end.
func (m *Model) Backend() model.Backend {
	return model.BackendCurrent
}

// Concrete is always true: the runtime cannot represent a struct type with
// unbound type parameters, so every registered type is fully instantiated.
func (m *Model) Concrete() bool {
	return true
}

// Fields returns the declared fields in struct order.
func (m *Model) Fields() []model.Field {
	return append([]model.Field(nil), m.fields...)
}

// ExtraPolicy returns the current extra-fields policy.
func (m *Model) ExtraPolicy() model.ExtraPolicy {
	return m.extra
}

// SetExtraPolicy replaces the extra-fields policy.
func (m *Model) SetExtraPolicy(p model.ExtraPolicy) {
	m.extra = p
}

// Is reports whether a model belongs to this back-end.
func Is(m model.Model) bool {
	_, ok := m.(*Model)
	return ok
}
