package model

import (
	"errors"
	"fmt"
	"sync"
)

// ErrModuleNotFound reports a dotted-name lookup that matched no registered
// module. Callers rely on detecting this kind with errors.Is, so it is never
// replaced, only wrapped.
var ErrModuleNotFound = errors.New("model: module not found")

// registry is the process-global module namespace. Entries registered for a
// run are never removed; the process is short-lived and the leak is accepted.
var registry = struct {
	mu      sync.RWMutex
	modules map[string]*Module
}{modules: make(map[string]*Module)}

// Register adds a module to the global namespace under its qualified name.
// Registration must happen before the module body executes so that type
// expressions resolving their enclosing module by name succeed, including
// forward and self references.
func Register(m *Module) error {
	if m == nil {
		return fmt.Errorf("model: module is required")
	}
	if m.Name() == "" {
		return fmt.Errorf("model: module name is required")
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.modules[m.Name()]; exists {
		return fmt.Errorf("model: module %q already registered", m.Name())
	}
	registry.modules[m.Name()] = m
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func MustRegister(m *Module) {
	if err := Register(m); err != nil {
		panic(err)
	}
}

// Lookup resolves a dotted module name against the global namespace.
func Lookup(name string) (*Module, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	m, ok := registry.modules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, name)
	}
	return m, nil
}
