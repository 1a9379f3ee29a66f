package schema

import (
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/goliatone/go-models2ts/pkg/declmodel"
	"github.com/goliatone/go-models2ts/pkg/model"
	"github.com/goliatone/go-models2ts/pkg/reflectmodel"
)

// Option customises the synthesizer configuration.
type Option func(*Synthesizer)

// WithLogger injects the logger used for non-fatal cleanup failures.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Synthesizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Synthesizer turns a discovered model set into one cleaned, serialized
// schema document via the synthetic wrapper model.
type Synthesizer struct {
	logger *zap.Logger
}

// NewSynthesizer constructs a Synthesizer applying any provided options.
func NewSynthesizer(options ...Option) *Synthesizer {
	s := &Synthesizer{logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Generate builds the wrapper schema document for the models, cleans every
// side-table entry, and returns the indented serialization. Extra-fields
// policies are tightened for the duration of generation and restored on every
// exit path; callers observe the same policy values before and after.
//
// Back-end selection follows discovery: the legacy back-end wins if any
// legacy model is present, and the generators reject mixed sets with an error
// that propagates unmodified — a configuration error by the caller.
func (s *Synthesizer) Generate(models []model.Model) (Document, error) {
	if len(models) == 0 {
		return Document{}, errors.New("schema: at least one model is required")
	}

	restore := model.TightenForGeneration(models)
	defer restore()

	backend := selectBackend(models)

	var (
		doc Node
		err error
	)
	switch backend {
	case model.BackendLegacy:
		doc, err = declmodel.GenerateMaster(models)
	default:
		doc, err = reflectmodel.GenerateMaster(models)
	}
	if err != nil {
		return Document{}, err
	}

	byName := make(map[string]model.Model, len(models))
	for _, m := range models {
		byName[m.Name()] = m
	}

	defsKey, defs := locateDefs(doc)
	for _, name := range sortedKeys(defs) {
		node, ok := defs[name].(map[string]any)
		if !ok {
			continue
		}
		CleanNode(node, byName[name], s.logger)
	}

	raw, err := MarshalIndent(doc)
	if err != nil {
		return Document{}, err
	}
	return NewDocument(string(backend), defsKey, raw)
}

// selectBackend picks the run's back-end from the discovered models.
func selectBackend(models []model.Model) model.Backend {
	for _, m := range models {
		if declmodel.Is(m) {
			return model.BackendLegacy
		}
	}
	return model.BackendCurrent
}

// locateDefs finds the sub-schema side-table; its key name differs by
// back-end.
func locateDefs(doc Node) (string, map[string]any) {
	for _, key := range []string{"$defs", "definitions"} {
		if defs, ok := doc[key].(map[string]any); ok {
			return key, defs
		}
	}
	return "$defs", nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
