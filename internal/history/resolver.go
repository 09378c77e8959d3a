package history

import (
	"context"

	"github.com/George-Madeley/Tools/internal/git"
	"github.com/George-Madeley/Tools/internal/models"
)

// Resolver produces the duplicate-free branch list queried in grouped mode.
type Resolver struct {
	lister git.BranchLister
}

func NewResolver(lister git.BranchLister) *Resolver {
	return &Resolver{lister: lister}
}

// Resolve returns every local branch in listing order, followed by each
// remote-tracking branch whose short name was not already seen. A local
// branch always wins over its remote counterpart; between two remotes with
// the same short name the first listed wins.
func (r *Resolver) Resolve(ctx context.Context) ([]models.BranchRef, error) {
	branches, err := r.lister.ListBranches(ctx)
	if err != nil {
		return nil, err
	}

	return dedupe(branches), nil
}

func dedupe(branches []models.BranchRef) []models.BranchRef {
	var locals, remotes []models.BranchRef
	for _, b := range branches {
		if b.IsRemote {
			remotes = append(remotes, b)
		} else {
			locals = append(locals, b)
		}
	}

	seen := make(map[string]bool, len(branches))
	resolved := make([]models.BranchRef, 0, len(branches))

	for _, b := range locals {
		if seen[b.ShortName()] {
			continue
		}
		seen[b.ShortName()] = true
		resolved = append(resolved, b)
	}
	for _, b := range remotes {
		if seen[b.ShortName()] {
			continue
		}
		seen[b.ShortName()] = true
		resolved = append(resolved, b)
	}

	return resolved
}
