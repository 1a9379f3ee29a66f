// Package discovery walks a module tree and collects every concrete model it
// contains.
package discovery

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-models2ts/pkg/model"
)

// Discoverer collects concrete models from a module and its submodules.
type Discoverer struct {
	logger *zap.Logger
}

// New constructs a Discoverer. A nil logger falls back to a no-op logger.
func New(logger *zap.Logger) *Discoverer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Discoverer{logger: logger}
}

// Discover returns every concrete model transitively reachable from mod,
// de-duplicated by identity. Attributes enumerate in lexical name order and
// recursion is depth-first, so the result order is deterministic. Recursion
// only descends into true submodules — children whose qualified name extends
// the parent's — never into re-exported unrelated modules. Module containment
// is acyclic, so no cycle protection is needed.
func (d *Discoverer) Discover(mod *model.Module) []model.Model {
	if mod == nil {
		return nil
	}

	seen := make(map[model.Model]struct{})
	models := d.collect(mod, seen, nil)

	d.logger.Debug("discovered models",
		zap.String("module", mod.Name()),
		zap.Int("count", len(models)))
	return models
}

func (d *Discoverer) collect(mod *model.Module, seen map[model.Model]struct{}, out []model.Model) []model.Model {
	for _, m := range mod.Models() {
		if !m.Concrete() {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}

	for _, child := range mod.Modules() {
		if !mod.Contains(child) {
			continue
		}
		out = d.collect(child, seen, out)
	}
	return out
}

// Filter removes models whose simple or qualified name appears in exclude.
func Filter(models []model.Model, exclude []string) []model.Model {
	if len(exclude) == 0 {
		return models
	}

	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}

	kept := make([]model.Model, 0, len(models))
	for _, m := range models {
		if _, ok := excluded[m.Name()]; ok {
			continue
		}
		if _, ok := excluded[m.QualifiedName()]; ok {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}
