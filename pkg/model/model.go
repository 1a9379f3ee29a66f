// Package model defines the contracts shared by every schema back-end: the
// introspectable Model interface, its field descriptors, the extra-fields
// policy, and the process-global module registry.
package model

// WrapperName is the reserved name of the synthetic aggregate model built
// during schema generation. It never survives into final output.
const WrapperName = "_Master_"

// ExtraPolicy describes how a model treats object keys that are not declared
// as fields.
type ExtraPolicy string

const (
	// ExtraUnset means the model never declared a policy.
	ExtraUnset ExtraPolicy = ""
	// ExtraAllow keeps undeclared keys.
	ExtraAllow ExtraPolicy = "allow"
	// ExtraForbid rejects undeclared keys and closes the generated shape.
	ExtraForbid ExtraPolicy = "forbid"
	// ExtraIgnore drops undeclared keys silently.
	ExtraIgnore ExtraPolicy = "ignore"
)

// Backend identifies which schema-generation back-end a model belongs to.
type Backend string

const (
	// BackendLegacy is the declarative back-end emitting draft-07 documents
	// with a "definitions" side-table.
	BackendLegacy Backend = "legacy"
	// BackendCurrent is the struct-reflection back-end emitting Draft 2020-12
	// documents with a "$defs" side-table.
	BackendCurrent Backend = "current"
)

// Field describes one declared field of a model as seen by schema generation.
type Field struct {
	// Name is the declared field name.
	Name string
	// Alias is the serialization alias. Empty means the field serializes
	// under its declared name.
	Alias string
	// Type is the back-end-specific type expression, rendered as text.
	Type string
	// Default carries the declared default value, nil when absent.
	Default any
	// Nullable reports whether the field accepts an explicit null.
	Nullable bool
}

// Key returns the name the field serializes under.
func (f Field) Key() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// Model is the schema-description interface every back-end adapter
// implements. Models are read-only to this system apart from the scoped
// extra-fields mutation performed through SetExtraPolicy.
type Model interface {
	// Name is the simple class name, used as the schema side-table key.
	// Collisions across modules are a correctness risk the caller owns.
	Name() string

	// QualifiedName is the module-qualified name, used by exclusion
	// filtering.
	QualifiedName() string

	// Backend reports which schema back-end generates this model's schema.
	Backend() Backend

	// Concrete reports whether the model is fully instantiated rather than
	// an abstract template awaiting type-parameter binding.
	Concrete() bool

	// Fields lists the declared fields in source order.
	Fields() []Field

	// ExtraPolicy returns the current extra-fields policy.
	ExtraPolicy() ExtraPolicy

	// SetExtraPolicy replaces the extra-fields policy. Callers must restore
	// the prior value; see TightenForGeneration.
	SetExtraPolicy(p ExtraPolicy)
}
