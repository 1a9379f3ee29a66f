package model

import (
	"fmt"
	"sort"
	"strings"
)

// Module is a named attribute container holding models and submodules. It is
// the introspectable unit the loader resolves and the discoverer walks.
type Module struct {
	name    string
	models  map[string]Model
	modules map[string]*Module
}

// NewModule creates an empty module with the given qualified name.
func NewModule(name string) *Module {
	return &Module{
		name:    name,
		models:  make(map[string]Model),
		modules: make(map[string]*Module),
	}
}

// Name returns the module's qualified name.
func (m *Module) Name() string {
	return m.name
}

// AddModel registers a model attribute. Duplicate names return an error.
func (m *Module) AddModel(mdl Model) error {
	if mdl == nil {
		return fmt.Errorf("model: model is required")
	}
	name := mdl.Name()
	if name == "" {
		return fmt.Errorf("model: model name is required")
	}
	if _, exists := m.models[name]; exists {
		return fmt.Errorf("model: model %q already defined in module %q", name, m.name)
	}
	m.models[name] = mdl
	return nil
}

// MustAddModel panics on registration failure. Useful for init-time wiring.
func (m *Module) MustAddModel(mdl Model) {
	if err := m.AddModel(mdl); err != nil {
		panic(err)
	}
}

// AddModule registers a child module under an attribute name. The child keeps
// its own qualified name, which may differ from the attribute (a re-export);
// discovery only recurses into children whose qualified name extends the
// parent's.
func (m *Module) AddModule(attr string, child *Module) error {
	if attr == "" {
		return fmt.Errorf("model: attribute name is required")
	}
	if child == nil {
		return fmt.Errorf("model: child module is required")
	}
	if _, exists := m.modules[attr]; exists {
		return fmt.Errorf("model: module attribute %q already defined in module %q", attr, m.name)
	}
	m.modules[attr] = child
	return nil
}

// Model returns the model registered under the given attribute name.
func (m *Module) Model(name string) (Model, bool) {
	mdl, ok := m.models[name]
	return mdl, ok
}

// Models returns the module's model attributes in lexical name order.
func (m *Module) Models() []Model {
	names := make([]string, 0, len(m.models))
	for name := range m.models {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Model, 0, len(names))
	for _, name := range names {
		out = append(out, m.models[name])
	}
	return out
}

// Modules returns the child modules in lexical attribute order.
func (m *Module) Modules() []*Module {
	attrs := make([]string, 0, len(m.modules))
	for attr := range m.modules {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	out := make([]*Module, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, m.modules[attr])
	}
	return out
}

// Contains reports whether child is a true submodule of m, i.e. its
// qualified name is prefixed by m's name. Re-exported unrelated modules fail
// this check.
func (m *Module) Contains(child *Module) bool {
	if child == nil {
		return false
	}
	return strings.HasPrefix(child.Name(), m.name+".")
}
