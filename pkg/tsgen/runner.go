package tsgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"
)

// Runner invokes the external compiler on a schema payload. The call blocks
// until the compiler exits; there is no timeout beyond whatever deadline the
// caller's context carries.
type Runner struct {
	cmd    Command
	logger *zap.Logger
}

// NewRunner constructs a Runner. A nil logger falls back to a no-op logger.
func NewRunner(cmd Command, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{cmd: cmd, logger: logger}
}

// Validate performs the runner's eager command check.
func (r *Runner) Validate() error {
	return r.cmd.Validate()
}

// Compile writes the schema to a fresh temporary directory, runs the
// compiler as `<cmd> -i <schema> -o <output> --bannerComment ""`, and removes
// the directory regardless of outcome. The banner is suppressed because the
// finalizer supplies its own. A non-zero exit is fatal and the error carries
// the exact command string and exit code.
func (r *Runner) Compile(ctx context.Context, schema []byte, output string) error {
	if ctx == nil {
		return errors.New("tsgen: context is required")
	}
	if output == "" {
		return errors.New("tsgen: output path is required")
	}
	if len(schema) == 0 {
		return errors.New("tsgen: schema payload is empty")
	}

	argv, err := r.cmd.argv()
	if err != nil {
		return err
	}

	dir, err := os.MkdirTemp("", "models2ts-")
	if err != nil {
		return fmt.Errorf("tsgen: create schema dir: %w", err)
	}
	defer os.RemoveAll(dir)

	schemaPath := filepath.Join(dir, "schema.json")
	if err := os.WriteFile(schemaPath, schema, 0o644); err != nil {
		return fmt.Errorf("tsgen: write schema file: %w", err)
	}

	args := append(argv[1:], "-i", schemaPath, "-o", output, "--bannerComment", "")
	cmd := exec.CommandContext(ctx, argv[0], args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	r.logger.Debug("running external compiler",
		zap.String("command", r.cmd.String()),
		zap.String("schema", schemaPath),
		zap.String("output", output))

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%q failed with exit code %d", r.cmd.String(), exitErr.ExitCode())
		}
		return fmt.Errorf("tsgen: run %q: %w", r.cmd.String(), err)
	}
	return nil
}
