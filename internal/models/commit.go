package models

import (
	"strings"
	"time"
)

// Commit is one commit as read by the in-process backend.
type Commit struct {
	Hash      string
	ShortHash string
	Author    string
	Email     string
	Date      time.Time
	Message   string // full message, subject and body
}

// Subject returns the first paragraph of the message joined onto one line,
// the way git's %s shows it.
func (c Commit) Subject() string {
	head, _, _ := strings.Cut(c.normalized(), "\n\n")
	return strings.Join(strings.Split(head, "\n"), " ")
}

// Body returns everything after the subject paragraph.
func (c Commit) Body() string {
	_, rest, _ := strings.Cut(c.normalized(), "\n\n")
	return strings.Trim(rest, "\n")
}

func (c Commit) normalized() string {
	return strings.Trim(strings.ReplaceAll(c.Message, "\r\n", "\n"), "\n")
}
