// Package loader resolves a module identifier — an existing filepath or a
// dotted registered name — into an introspectable module.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-models2ts/pkg/declmodel"
	"github.com/goliatone/go-models2ts/pkg/model"
)

// Loader resolves module identifiers. The zero value is not usable; call New.
type Loader struct {
	logger *zap.Logger
}

// New constructs a Loader. A nil logger falls back to a no-op logger.
func New(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Load resolves an identifier to a module. A path that exists on disk loads
// as a declarative model file; anything else resolves as a dotted name
// against the global registry.
//
// File loads register the module under a process-unique synthetic name
// BEFORE the body is parsed: declarative type expressions resolve their
// enclosing module by name through the registry, so self-referential and
// forward references fail if registration happens after execution. Registry
// entries are never removed within a run.
//
// Failures are logged with a usage hint and returned wrapped with %w, so
// callers can still detect the underlying kind (e.g. model.ErrModuleNotFound).
func (l *Loader) Load(identifier string) (*model.Module, error) {
	if identifier == "" {
		return nil, fmt.Errorf("loader: module identifier is required")
	}

	mod, err := l.resolve(identifier)
	if err != nil {
		l.logger.Error("module must be a dotted path or a valid filepath",
			zap.String("module", identifier),
			zap.Error(err))
		return nil, err
	}
	return mod, nil
}

func (l *Loader) resolve(identifier string) (*model.Module, error) {
	if _, statErr := os.Stat(identifier); statErr == nil {
		return l.loadFile(identifier)
	}
	return model.Lookup(identifier)
}

func (l *Loader) loadFile(path string) (*model.Module, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("loader: resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("loader: read module file %q: %w", path, err)
	}

	name := syntheticName()
	mod := model.NewModule(name)
	if err := model.Register(mod); err != nil {
		return nil, err
	}

	if err := declmodel.ParseInto(mod, data); err != nil {
		return nil, err
	}

	l.logger.Debug("loaded module file",
		zap.String("path", abs),
		zap.String("name", name))
	return mod, nil
}

// syntheticName yields a process-unique module name for file loads. The
// leading prefix keeps synthetic names out of any dotted namespace a caller
// would plausibly register.
func syntheticName() string {
	return "file_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
