// Package shell runs the configured command against the selected file.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Runner executes a command line through an embedded POSIX shell,
// wired to the process's standard streams
type Runner struct {
	logger *zap.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a runner that inherits stdin, stdout and stderr
func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetStdIO replaces the streams handed to the command
func (r *Runner) SetStdIO(in io.Reader, out, err io.Writer) {
	r.stdin = in
	r.stdout = out
	r.stderr = err
}

// Compose builds "<template> <path>"
func Compose(template, path string) string {
	return template + " " + path
}

// Run executes template with path appended and waits for it to finish.
// The command's exit status is not reported; only a line that cannot be
// parsed or a runner that cannot be set up is an error.
func (r *Runner) Run(ctx context.Context, template, path string) error {
	line := Compose(template, path)

	prog, err := syntax.NewParser().Parse(strings.NewReader(line), "")
	if err != nil {
		return fmt.Errorf("parse error in command %q: %w", line, err)
	}

	runner, err := interp.New(
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(r.stdin, r.stdout, r.stderr),
	)
	if err != nil {
		return fmt.Errorf("runner creation error: %w", err)
	}

	r.logger.Debug("Running command", zap.String("command", line))

	err = runner.Run(ctx, prog)
	var status interp.ExitStatus
	switch {
	case err == nil:
		r.logger.Debug("Command finished", zap.String("command", line))
	case errors.As(err, &status):
		r.logger.Debug("Command exited", zap.String("command", line), zap.Uint8("status", uint8(status)))
	default:
		r.logger.Warn("Command failed", zap.String("command", line), zap.Error(err))
	}

	return nil
}
