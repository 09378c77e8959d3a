package git

import (
	"context"
	"sort"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/George-Madeley/Tools/internal/errors"
	"github.com/George-Madeley/Tools/internal/models"
)

// GoGit answers the same queries as CLI in-process, without a git binary.
// Authors match when the query equals the commit author's name or email.
type GoGit struct {
	repo    *gogit.Repository
	timeout time.Duration
	now     func() time.Time
}

// OpenGoGit opens the repository containing path.
func OpenGoGit(path string, timeout time.Duration) (*GoGit, error) {
	if path == "" {
		path = "."
	}
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, errors.Wrapf(errors.ErrNotGitRepository, "%s", path)
		}
		return nil, errors.NewQueryError("open repository", []string{path}, err, "")
	}
	return NewGoGit(repo, timeout), nil
}

// NewGoGit wraps an already opened repository.
func NewGoGit(repo *gogit.Repository, timeout time.Duration) *GoGit {
	return &GoGit{
		repo:    repo,
		timeout: timeout,
		now:     time.Now,
	}
}

// ListBranches returns local branches then remote-tracking branches, each
// sorted by name, skipping symbolic refs such as origin/HEAD.
func (g *GoGit) ListBranches(ctx context.Context) ([]models.BranchRef, error) {
	ctx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	refs, err := g.repo.References()
	if err != nil {
		return nil, errors.NewQueryError("list branches", nil, err, "")
	}
	defer refs.Close()

	var locals, remotes []models.BranchRef
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		if branch, ok := parseRefname(ref.Name().String()); ok {
			if branch.IsRemote {
				remotes = append(remotes, branch)
			} else {
				locals = append(locals, branch)
			}
		}
		return nil
	})
	if err != nil {
		return nil, g.queryError(ctx, "list branches", nil, err)
	}

	byName := func(list []models.BranchRef) {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	}
	byName(locals)
	byName(remotes)

	return append(locals, remotes...), nil
}

// Query walks the log from spec.Ref (or every ref) and renders each matching
// commit with spec.FormatScheme.
func (g *GoGit) Query(ctx context.Context, spec models.QuerySpec) (models.RawLogBlock, error) {
	ctx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	since := g.now().Add(-time.Duration(spec.HoursAgo) * time.Hour)
	opts := &gogit.LogOptions{
		Since: &since,
		Order: gogit.LogOrderCommitterTime,
	}

	args := []string{"--all"}
	if spec.AllRefs() {
		opts.All = true
	} else {
		args = []string{spec.Ref.Name}
		hash, err := g.repo.ResolveRevision(plumbing.Revision(spec.Ref.Name))
		if err != nil {
			return "", errors.NewQueryError("log", args, err, "")
		}
		opts.From = *hash
	}

	iter, err := g.repo.Log(opts)
	if err != nil {
		// a repository without any commits has nothing to log
		if spec.AllRefs() && errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", nil
		}
		return "", errors.NewQueryError("log", args, err, "")
	}
	defer iter.Close()

	var b strings.Builder
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.Author.Name != spec.Author && c.Author.Email != spec.Author {
			return nil
		}
		b.WriteString(RenderCommit(spec.FormatScheme, toModel(c)))
		return nil
	})
	if err != nil {
		return "", g.queryError(ctx, "log", args, err)
	}

	return models.RawLogBlock(b.String()), nil
}

// DefaultAuthor returns user.name from the repository, global and system config.
func (g *GoGit) DefaultAuthor(ctx context.Context) (string, error) {
	cfg, err := g.repo.ConfigScoped(gitconfig.SystemScope)
	if err != nil {
		return "", errors.NewQueryError("read config", []string{"user.name"}, err, "")
	}
	return strings.TrimSpace(cfg.User.Name), nil
}

func (g *GoGit) queryError(ctx context.Context, operation string, args []string, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		err = errors.Wrap(errors.ErrQueryTimeout, err.Error())
	}
	return errors.NewQueryError(operation, args, err, "")
}

func toModel(c *object.Commit) models.Commit {
	hash := c.Hash.String()
	return models.Commit{
		Hash:      hash,
		ShortHash: hash[:7],
		Author:    c.Author.Name,
		Email:     c.Author.Email,
		Date:      c.Author.When,
		Message:   c.Message,
	}
}
