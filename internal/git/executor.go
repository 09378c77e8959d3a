package git

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/George-Madeley/Tools/internal/errors"
)

// CommandExecutor runs external commands on behalf of the CLI backend.
type CommandExecutor interface {
	// ExecuteWithOutput runs name with args and returns its stdout.
	ExecuteWithOutput(ctx context.Context, name string, args ...string) (string, error)
}

// ExecExecutor is the default CommandExecutor, delegating to os/exec.
type ExecExecutor struct{}

// NewExecExecutor creates a new ExecExecutor
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// ExecuteWithOutput implements CommandExecutor.ExecuteWithOutput. Failures are
// returned as a *errors.QueryError carrying stderr; a context deadline is
// reported as errors.ErrQueryTimeout.
func (e *ExecExecutor) ExecuteWithOutput(ctx context.Context, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cause := errors.Wrap(errors.ErrQueryFailed, err.Error())
		if ctx.Err() == context.DeadlineExceeded {
			cause = errors.Wrap(errors.ErrQueryTimeout, err.Error())
		}
		return "", errors.NewQueryError(name, args, cause, stderr.String())
	}

	return stdout.String(), nil
}

// withTimeout bounds a single external query. A zero timeout leaves ctx as is.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
