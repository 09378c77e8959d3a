package models

import (
	"github.com/George-Madeley/Tools/internal/errors"
)

// DefaultFormatScheme renders each commit as a blank line, a "- " marker and
// the raw message. Consecutive commits end up separated by two blank lines.
const DefaultFormatScheme = "\n- %B"

// QuerySpec describes a single log query. Ref is nil when every ref should be
// searched.
type QuerySpec struct {
	Author       string
	HoursAgo     int
	Ref          *BranchRef
	FormatScheme string
}

// NewQuerySpec validates its inputs and returns a QuerySpec, or a ConfigError
// describing the first invalid field.
func NewQuerySpec(author string, hoursAgo int, ref *BranchRef, scheme string) (QuerySpec, error) {
	if err := ValidateWindow(author, hoursAgo); err != nil {
		return QuerySpec{}, err
	}
	if scheme == "" {
		return QuerySpec{}, errors.NewConfigError("format", scheme, errors.New("format scheme must not be empty"))
	}

	spec := QuerySpec{
		Author:       author,
		HoursAgo:     hoursAgo,
		FormatScheme: scheme,
	}
	if ref != nil {
		r := *ref
		spec.Ref = &r
	}
	return spec, nil
}

// ValidateWindow checks the author and time window shared by every query of a run.
func ValidateWindow(author string, hoursAgo int) error {
	if author == "" {
		return errors.NewConfigError("author", nil, errors.New("author must not be empty"))
	}
	if hoursAgo <= 0 {
		return errors.NewConfigError("hours", hoursAgo, errors.New("hours must be greater than zero"))
	}
	return nil
}

// AllRefs reports whether the query spans every ref in the repository.
func (q QuerySpec) AllRefs() bool {
	return q.Ref == nil
}
