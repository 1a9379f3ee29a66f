// Package orchestrator coordinates the full pipeline from module identifier
// to finalized TypeScript definitions: load → discover → synthesize schema →
// external compiler → finalize. Data flows strictly forward; no stage calls
// back into an earlier one.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-models2ts/internal/discovery"
	"github.com/goliatone/go-models2ts/internal/loader"
	"github.com/goliatone/go-models2ts/pkg/model"
	"github.com/goliatone/go-models2ts/pkg/schema"
	"github.com/goliatone/go-models2ts/pkg/tsgen"
)

// ModuleLoader resolves a module identifier to an introspectable module.
type ModuleLoader interface {
	Load(identifier string) (*model.Module, error)
}

// Discoverer collects the concrete models reachable from a module.
type Discoverer interface {
	Discover(mod *model.Module) []model.Model
}

// Synthesizer turns a model set into a serialized schema document.
type Synthesizer interface {
	Generate(models []model.Model) (schema.Document, error)
}

// Compiler turns a schema payload into TypeScript definitions at the output
// path.
type Compiler interface {
	Validate() error
	Compile(ctx context.Context, schemaPayload []byte, output string) error
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLogger injects the logger shared by the pipeline stages.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLoader injects a custom module loader.
func WithLoader(l ModuleLoader) Option {
	return func(o *Orchestrator) {
		o.loader = l
	}
}

// WithDiscoverer injects a custom model discoverer.
func WithDiscoverer(d Discoverer) Option {
	return func(o *Orchestrator) {
		o.discoverer = d
	}
}

// WithSynthesizer injects a custom schema synthesizer.
func WithSynthesizer(s Synthesizer) Option {
	return func(o *Orchestrator) {
		o.synth = s
	}
}

// WithCompiler injects a compiler, bypassing the json2ts command a request
// names. Intended for tests and embedders that manage the compiler
// themselves.
func WithCompiler(c Compiler) Option {
	return func(o *Orchestrator) {
		o.compiler = c
	}
}

// Orchestrator runs the generation pipeline. Missing dependencies are
// initialised with the built-in implementations so callers can start with a
// single constructor call.
type Orchestrator struct {
	logger     *zap.Logger
	loader     ModuleLoader
	discoverer Discoverer
	synth      Synthesizer
	compiler   Compiler
	finalize   func(path string) error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		logger:   zap.NewNop(),
		finalize: tsgen.Finalize,
	}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}
	if o.loader == nil {
		o.loader = loader.New(o.logger)
	}
	if o.discoverer == nil {
		o.discoverer = discovery.New(o.logger)
	}
	if o.synth == nil {
		o.synth = schema.NewSynthesizer(schema.WithLogger(o.logger))
	}
	return o
}

// Request describes one generation run.
type Request struct {
	// Module is a dotted registered-module name or a filepath to a
	// declarative model file.
	Module string

	// Output is the file the TypeScript definitions are written to.
	Output string

	// Exclude lists model names (simple or qualified) omitted from the
	// output.
	Exclude []string

	// JSON2TSCmd overrides the json2ts command. Defaults to "json2ts".
	// Ignored when a Compiler was injected.
	JSON2TSCmd string
}

// Generate executes one run. It is a single-attempt batch operation: no
// retries, no concurrency, and the external compiler call blocks until exit.
// When discovery (after exclusion) yields no models, Generate logs and
// returns nil without producing an output file.
func (o *Orchestrator) Generate(ctx context.Context, req Request) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if req.Module == "" {
		return errors.New("orchestrator: module identifier is required")
	}
	if req.Output == "" {
		return errors.New("orchestrator: output path is required")
	}

	compiler := o.compiler
	if compiler == nil {
		compiler = tsgen.NewRunner(tsgen.NewCommand(req.JSON2TSCmd), o.logger)
	}
	if err := compiler.Validate(); err != nil {
		return err
	}

	o.logger.Info("finding models", zap.String("module", req.Module))

	mod, err := o.loader.Load(req.Module)
	if err != nil {
		return err
	}

	models := discovery.Filter(o.discoverer.Discover(mod), req.Exclude)
	if len(models) == 0 {
		o.logger.Info("no models found, exiting", zap.String("module", req.Module))
		return nil
	}

	o.logger.Info("generating JSON schema from models", zap.Int("models", len(models)))

	doc, err := o.synth.Generate(models)
	if err != nil {
		return err
	}

	o.logger.Info("converting JSON schema to typescript definitions")

	if err := compiler.Compile(ctx, doc.Raw(), req.Output); err != nil {
		return err
	}
	if err := o.finalize(req.Output); err != nil {
		return fmt.Errorf("orchestrator: finalize output: %w", err)
	}

	o.logger.Info("saved typescript definitions", zap.String("output", req.Output))
	return nil
}
