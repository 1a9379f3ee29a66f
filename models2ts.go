// Package models2ts converts data-model definitions into TypeScript
// interface declarations. Models come from a declarative model file or from
// modules registered in-process; the derived JSON Schema is compiled by the
// external json2ts tool and the output cleaned up afterwards.
//
// It is a one-shot utility: a run performs a single forward pass and exits.
package models2ts

import (
	"context"

	"github.com/goliatone/go-models2ts/pkg/orchestrator"
)

// Request aliases the orchestrator request for convenience.
type Request = orchestrator.Request

// Option aliases the orchestrator option type.
type Option = orchestrator.Option

// WithLogger re-exports the orchestrator logger option.
var WithLogger = orchestrator.WithLogger

// New exposes the orchestrator constructor from the top-level module.
func New(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateTypeScriptDefs runs the whole pipeline for one module. It is the
// simplest entry point for callers that just want an output file.
//
// module is a dotted registered-module name or a filepath to a declarative
// model file; output is the destination .ts file; exclude lists model names
// to omit; json2tsCmd overrides the compiler command (empty means "json2ts").
func GenerateTypeScriptDefs(ctx context.Context, module, output string, exclude []string, json2tsCmd string, options ...orchestrator.Option) error {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Module:     module,
		Output:     output,
		Exclude:    exclude,
		JSON2TSCmd: json2tsCmd,
	})
}
