package git

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/George-Madeley/Tools/internal/errors"
	"github.com/George-Madeley/Tools/internal/models"
)

// CLI queries a repository by running the git binary with -C <repo>, so no
// process-wide working directory change is needed.
type CLI struct {
	RepoPath string
	executor CommandExecutor
	timeout  time.Duration
}

// NewCLI creates a CLI backend using the os/exec executor
func NewCLI(repoPath string, timeout time.Duration) *CLI {
	return NewCLIWithExecutor(repoPath, timeout, NewExecExecutor())
}

// NewCLIWithExecutor creates a CLI backend with a custom executor
func NewCLIWithExecutor(repoPath string, timeout time.Duration, executor CommandExecutor) *CLI {
	if repoPath == "" {
		repoPath = "."
	}
	return &CLI{
		RepoPath: repoPath,
		executor: executor,
		timeout:  timeout,
	}
}

// Query runs git log for spec and returns its raw output.
func (c *CLI) Query(ctx context.Context, spec models.QuerySpec) (models.RawLogBlock, error) {
	output, err := c.run(ctx, logArgs(spec)...)
	if err != nil {
		return "", err
	}
	return models.RawLogBlock(output), nil
}

func logArgs(spec models.QuerySpec) []string {
	args := []string{"log"}

	if spec.AllRefs() {
		args = append(args, "--all")
	} else {
		args = append(args, spec.Ref.Name)
	}

	args = append(args,
		fmt.Sprintf("--format=%s", spec.FormatScheme),
		"--extended-regexp",
		fmt.Sprintf("--author=%s", authorPattern(spec.Author)),
		fmt.Sprintf("--after=%d.hours.ago", spec.HoursAgo),
		"--",
	)

	return args
}

// authorPattern matches author as the whole name or the whole email of git's
// "Name <email>" author line, never a substring of either.
func authorPattern(author string) string {
	quoted := regexp.QuoteMeta(author)
	return fmt.Sprintf("^%s <|<%s>$", quoted, quoted)
}

// DefaultAuthor returns user.name as git resolves it for the repository.
func (c *CLI) DefaultAuthor(ctx context.Context) (string, error) {
	output, err := c.run(ctx, "config", "user.name")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// IsRepository checks that RepoPath is inside a git work tree
func (c *CLI) IsRepository(ctx context.Context) bool {
	output, err := c.run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(output) == "true"
}

func (c *CLI) run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	full := append([]string{"-C", c.RepoPath}, args...)
	output, err := c.executor.ExecuteWithOutput(ctx, "git", full...)
	if err != nil {
		var qe *errors.QueryError
		if errors.As(err, &qe) {
			return "", err
		}
		return "", errors.NewQueryError("git", full, err, "")
	}
	return output, nil
}
