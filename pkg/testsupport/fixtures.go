// Package testsupport provides fixture helpers shared by package tests.
package testsupport

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-models2ts/pkg/model"
)

// UniqueModuleName returns a registry-safe module name. The global module
// registry is never cleaned up within a process, so every test registration
// needs a fresh name.
func UniqueModuleName(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// RegisterModule creates and registers a module under a unique name derived
// from prefix.
func RegisterModule(t *testing.T, prefix string) *model.Module {
	t.Helper()

	mod := model.NewModule(UniqueModuleName(prefix))
	if err := model.Register(mod); err != nil {
		t.Fatalf("register module: %v", err)
	}
	return mod
}

// WriteModuleFile writes a declarative model document into a temp dir and
// returns its path.
func WriteModuleFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "models.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write module file: %v", err)
	}
	return path
}

// FakeCompiler satisfies the orchestrator's Compiler contract without
// spawning a subprocess. It records the schema payload it received and writes
// canned TypeScript output.
type FakeCompiler struct {
	// Output is the canned text written to the output path on Compile.
	Output string
	// ValidateErr is returned from Validate when set.
	ValidateErr error
	// CompileErr is returned from Compile when set.
	CompileErr error

	// Payload holds the schema bytes from the last Compile call.
	Payload []byte
	// Calls counts Compile invocations.
	Calls int
}

// Validate implements the eager compiler presence check.
func (c *FakeCompiler) Validate() error {
	return c.ValidateErr
}

// Compile records the payload and writes the canned output file.
func (c *FakeCompiler) Compile(ctx context.Context, schemaPayload []byte, output string) error {
	if ctx == nil {
		return errors.New("testsupport: context is required")
	}
	c.Calls++
	c.Payload = append([]byte(nil), schemaPayload...)
	if c.CompileErr != nil {
		return c.CompileErr
	}
	return os.WriteFile(output, []byte(c.Output), 0o644)
}
