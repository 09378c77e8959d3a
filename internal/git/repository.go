package git

import (
	"context"
	"time"

	"github.com/George-Madeley/Tools/internal/errors"
	"github.com/George-Madeley/Tools/internal/models"
)

// LogQuery retrieves the rendered commit messages matching a QuerySpec.
type LogQuery interface {
	Query(ctx context.Context, spec models.QuerySpec) (models.RawLogBlock, error)
}

// BranchLister enumerates local and remote-tracking branches in listing order.
type BranchLister interface {
	ListBranches(ctx context.Context) ([]models.BranchRef, error)
}

// Backend is a repository the aggregator can query.
type Backend interface {
	LogQuery
	BranchLister

	// DefaultAuthor returns the configured user.name, used when no author is given.
	DefaultAuthor(ctx context.Context) (string, error)
}

// Supported backend names
const (
	BackendCLI   = "cli"
	BackendGoGit = "gogit"
)

// Open returns the named backend scoped to repoPath. Every query it runs is
// bounded by timeout; zero disables the bound.
func Open(kind, repoPath string, timeout time.Duration) (Backend, error) {
	switch kind {
	case BackendCLI, "":
		c := NewCLI(repoPath, timeout)
		if !c.IsRepository(context.Background()) {
			return nil, errors.Wrapf(errors.ErrNotGitRepository, "%s", repoPath)
		}
		return c, nil
	case BackendGoGit:
		return OpenGoGit(repoPath, timeout)
	default:
		return nil, errors.NewConfigError("backend", kind, errors.Errorf("must be %q or %q", BackendCLI, BackendGoGit))
	}
}
