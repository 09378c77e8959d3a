// Package history turns commit logs into the outline report that commitmsg
// prints and copies.
//
// A run has two shapes. Single-ref mode issues one log query (one branch, or
// every ref) and formats it as a single unlabeled block. Grouped mode resolves
// the repository's branches, dropping remote-tracking branches that mirror a
// local branch of the same name, queries each branch in resolution order and
// keeps only the branches that produced commits, each under its own label.
//
// Reports are deterministic: the same repository state always renders to the
// same string, even when per-branch queries run concurrently.
package history
