package models

import "strings"

type BranchRef struct {
	Name         string // as listed, e.g. "main" or "origin/main"
	IsRemote     bool
	RemotePrefix string // e.g. "origin/", empty for local branches
}

// LocalBranch builds a ref for a branch under refs/heads.
func LocalBranch(name string) BranchRef {
	return BranchRef{Name: name}
}

// RemoteBranch builds a ref for a remote-tracking branch such as origin/main.
func RemoteBranch(remote, name string) BranchRef {
	prefix := remote + "/"
	return BranchRef{
		Name:         prefix + name,
		IsRemote:     true,
		RemotePrefix: prefix,
	}
}

// ShortName returns the branch name with any remote prefix stripped.
// Refs with equal short names point at the same underlying branch.
func (b BranchRef) ShortName() string {
	if b.IsRemote {
		return strings.TrimPrefix(b.Name, b.RemotePrefix)
	}
	return b.Name
}

// Label is the heading used for this branch in a grouped report.
func (b BranchRef) Label() string {
	return b.Name
}

func (b BranchRef) String() string {
	return b.Name
}
