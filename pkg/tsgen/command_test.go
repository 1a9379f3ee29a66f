package tsgen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewCommand_Default(t *testing.T) {
	if got := NewCommand("").String(); got != DefaultCommand {
		t.Fatalf("default command = %q", got)
	}
	if got := NewCommand("  yarn json2ts  ").String(); got != "yarn json2ts" {
		t.Fatalf("command = %q", got)
	}
}

func TestValidate_MissingBareCommand(t *testing.T) {
	err := NewCommand("definitely-not-a-real-compiler-4f9a").Validate()
	if err == nil {
		t.Fatal("expected missing-compiler error")
	}
	if !errors.Is(err, ErrCompilerMissing) {
		t.Fatalf("error = %v, want ErrCompilerMissing", err)
	}

	want := "json2ts must be installed. Instructions can be found here: " +
		"https://www.npmjs.com/package/json-schema-to-typescript"
	if err.Error() != want {
		t.Fatalf("message = %q, want the literal npm instructions", err.Error())
	}
}

func TestValidate_SpacedCommandSkipsLookup(t *testing.T) {
	// A managed invocation is only checked when it runs.
	if err := NewCommand("definitely-not-real json2ts").Validate(); err != nil {
		t.Fatalf("spaced command validated eagerly: %v", err)
	}
}

func TestValidate_DiscoverableCommand(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "fake-json2ts")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write fake compiler: %v", err)
	}

	if err := NewCommand(exe).Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestArgv(t *testing.T) {
	argv, err := NewCommand("yarn json2ts --cwd 'my dir'").argv()
	if err != nil {
		t.Fatalf("argv: %v", err)
	}
	want := []string{"yarn", "json2ts", "--cwd", "my dir"}
	if len(argv) != len(want) {
		t.Fatalf("argv = %v", argv)
	}
	for i := range want {
		if argv[i] != want[i] {
			t.Fatalf("argv[%d] = %q, want %q", i, argv[i], want[i])
		}
	}
}
