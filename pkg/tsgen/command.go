// Package tsgen drives the external json-schema-to-typescript compiler and
// post-processes its output.
package tsgen

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// DefaultCommand is the json2ts executable looked up on PATH when the caller
// does not override the command.
const DefaultCommand = "json2ts"

// ErrCompilerMissing reports that the compiler executable is absent from the
// search path. The message is load-bearing: callers and users match it
// verbatim.
var ErrCompilerMissing = errors.New(
	"json2ts must be installed. Instructions can be found here: " +
		"https://www.npmjs.com/package/json-schema-to-typescript")

// Command wraps the raw json2ts command string. A bare executable name is
// checked against the search path up front; a string with embedded spaces is
// treated as a managed invocation (for example "yarn json2ts") and only
// fails when it runs.
type Command struct {
	raw string
}

// NewCommand builds a Command, defaulting to DefaultCommand when raw is
// empty.
func NewCommand(raw string) Command {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultCommand
	}
	return Command{raw: raw}
}

// String returns the raw command string.
func (c Command) String() string {
	return c.raw
}

// Validate eagerly checks that a bare command is discoverable on the search
// path. Spaced commands are accepted as-is.
func (c Command) Validate() error {
	if strings.Contains(c.raw, " ") {
		return nil
	}
	if _, err := exec.LookPath(c.raw); err != nil {
		return ErrCompilerMissing
	}
	return nil
}

// argv splits the raw command into an exec-ready argument vector.
func (c Command) argv() ([]string, error) {
	parts, err := shellquote.Split(c.raw)
	if err != nil {
		return nil, fmt.Errorf("tsgen: split command %q: %w", c.raw, err)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("tsgen: empty command")
	}
	return parts, nil
}
