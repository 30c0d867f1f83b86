// Package formatter runs an external source-formatting command over a
// generated file.
package formatter

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"
	"time"

	"github.com/arthur-debert/itergen/pkg/errors"
	"github.com/arthur-debert/itergen/pkg/logging"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a formatter run when none is configured.
const DefaultTimeout = 2 * time.Minute

// Formatter runs Command with the generated file path appended as its final
// argument. Command is split with shell quoting rules, so it may carry its
// own flags ("clang-format -i", "./format.sh --quiet").
type Formatter struct {
	Command string
	Timeout time.Duration

	logger zerolog.Logger
}

// New creates a formatter for command.
func New(command string, timeout time.Duration) *Formatter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Formatter{
		Command: command,
		Timeout: timeout,
		logger:  logging.GetLogger("formatter"),
	}
}

// Run formats the file at path. A non-zero exit is returned as a
// FORMATTER_FAILED error carrying the exit code and captured output; the
// file itself is left as the formatter left it.
func (f *Formatter) Run(ctx context.Context, path string) error {
	argv, err := shellquote.Split(f.Command)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "cannot parse formatter command %q", f.Command)
	}
	if len(argv) == 0 {
		return errors.New(errors.ErrInvalidInput, "formatter command is empty")
	}
	argv = append(argv, path)

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	f.logger.Info().
		Str("command", argv[0]).
		Strs("args", argv[1:]).
		Msg("Running formatter")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	if stdout.Len() > 0 {
		f.logger.Debug().Str("output", stdout.String()).Msg("Formatter stdout")
	}
	if stderr.Len() > 0 {
		f.logger.Debug().Str("output", stderr.String()).Msg("Formatter stderr")
	}

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return errors.Wrapf(err, errors.ErrFormatterFailed, "call to %s failed", f.Command).
			WithDetail("path", path).
			WithDetail("exit_code", exitCode).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}

	return nil
}
