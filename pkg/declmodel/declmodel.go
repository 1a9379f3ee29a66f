// Package declmodel implements the legacy schema back-end: models declared in
// YAML or JSON documents, generating draft-07 schema trees with a
// "definitions" side-table. The legacy dialect serializes optional fields as
// their bare type without a null marker; the schema cleaner repairs that.
package declmodel

import (
	"github.com/goliatone/go-models2ts/pkg/model"
)

// Model is a declarative model definition. It implements model.Model.
type Model struct {
	name       string
	moduleName string
	doc        string
	fields     []declField
	enum       []any
	literal    *string
	params     []string
	extra      model.ExtraPolicy
}

// declField pairs the introspectable field descriptor with its parsed type
// expression.
type declField struct {
	model.Field
	expr *typeExpr
}

// Name returns the simple model name.
func (m *Model) Name() string {
	return m.name
}

// QualifiedName returns the module-qualified model name.
func (m *Model) QualifiedName() string {
	return m.moduleName + "." + m.name
}

// Backend reports the legacy back-end.
func (m *Model) Backend() model.Backend {
	return model.BackendLegacy
}

// Concrete reports whether the model carries no unbound template parameters.
func (m *Model) Concrete() bool {
	return len(m.params) == 0
}

// Fields returns the declared fields in source order.
func (m *Model) Fields() []model.Field {
	out := make([]model.Field, 0, len(m.fields))
	for _, f := range m.fields {
		out = append(out, f.Field)
	}
	return out
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
