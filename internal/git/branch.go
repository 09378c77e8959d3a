package git

import (
	"bufio"
	"context"
	"strings"

	"github.com/George-Madeley/Tools/internal/models"
)

const (
	headsPrefix   = "refs/heads/"
	remotesPrefix = "refs/remotes/"
)

// ListBranches returns all local branches followed by all remote-tracking
// branches, each group in refname order.
func (c *CLI) ListBranches(ctx context.Context) ([]models.BranchRef, error) {
	// %09 is a tab; symbolic refs such as origin/HEAD carry a %(symref)
	output, err := c.run(ctx, "for-each-ref", "--format=%(refname)%09%(symref)", "refs/heads", "refs/remotes")
	if err != nil {
		return nil, err
	}

	return parseBranches(output), nil
}

func parseBranches(output string) []models.BranchRef {
	var locals, remotes []models.BranchRef
	scanner := bufio.NewScanner(strings.NewReader(output))

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		refname, symref, _ := strings.Cut(line, "\t")
		if symref != "" {
			continue
		}

		if branch, ok := parseRefname(strings.TrimSpace(refname)); ok {
			if branch.IsRemote {
				remotes = append(remotes, branch)
			} else {
				locals = append(locals, branch)
			}
		}
	}

	return append(locals, remotes...)
}

// parseRefname maps a full refname to a BranchRef. Anything outside
// refs/heads and refs/remotes, and remote HEAD pointers, are rejected.
func parseRefname(refname string) (models.BranchRef, bool) {
	switch {
	case strings.HasPrefix(refname, headsPrefix):
		name := strings.TrimPrefix(refname, headsPrefix)
		if name == "" {
			return models.BranchRef{}, false
		}
		return models.LocalBranch(name), true

	case strings.HasPrefix(refname, remotesPrefix):
		remote, name, ok := strings.Cut(strings.TrimPrefix(refname, remotesPrefix), "/")
		if !ok || remote == "" || name == "" || name == "HEAD" {
			return models.BranchRef{}, false
		}
		return models.RemoteBranch(remote, name), true
	}

	return models.BranchRef{}, false
}
