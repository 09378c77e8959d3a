package models

import (
	"testing"

	"github.com/George-Madeley/Tools/internal/errors"
)

func TestBranchRefShortName(t *testing.T) {
	tests := map[string]struct {
		ref       BranchRef
		wantShort string
		wantLabel string
	}{
		"local": {
			ref:       LocalBranch("main"),
			wantShort: "main",
			wantLabel: "main",
		},
		"remote": {
			ref:       RemoteBranch("origin", "main"),
			wantShort: "main",
			wantLabel: "origin/main",
		},
		"remote with slash in branch": {
			ref:       RemoteBranch("upstream", "feature/login"),
			wantShort: "feature/login",
			wantLabel: "upstream/feature/login",
		},
		"local with slash keeps full name": {
			ref:       LocalBranch("origin/main"),
			wantShort: "origin/main",
			wantLabel: "origin/main",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.ref.ShortName(); got != tc.wantShort {
				t.Errorf("ShortName() = %q, want %q", got, tc.wantShort)
			}
			if got := tc.ref.Label(); got != tc.wantLabel {
				t.Errorf("Label() = %q, want %q", got, tc.wantLabel)
			}
		})
	}
}

func TestNewQuerySpec(t *testing.T) {
	main := LocalBranch("main")

	tests := map[string]struct {
		author    string
		hours     int
		ref       *BranchRef
		scheme    string
		wantParam string
	}{
		"valid all refs": {author: "alice", hours: 24, scheme: DefaultFormatScheme},
		"valid with ref": {author: "alice", hours: 1, ref: &main, scheme: "%s"},
		"empty author":   {author: "", hours: 24, scheme: DefaultFormatScheme, wantParam: "author"},
		"zero hours":     {author: "alice", hours: 0, scheme: DefaultFormatScheme, wantParam: "hours"},
		"negative hours": {author: "alice", hours: -3, scheme: DefaultFormatScheme, wantParam: "hours"},
		"empty scheme":   {author: "alice", hours: 24, scheme: "", wantParam: "format"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			spec, err := NewQuerySpec(tc.author, tc.hours, tc.ref, tc.scheme)

			if tc.wantParam != "" {
				var ce *errors.ConfigError
				if !errors.As(err, &ce) {
					t.Fatalf("expected ConfigError, got %v", err)
				}
				if ce.Parameter != tc.wantParam {
					t.Errorf("Parameter = %q, want %q", ce.Parameter, tc.wantParam)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if spec.AllRefs() != (tc.ref == nil) {
				t.Errorf("AllRefs() = %v, want %v", spec.AllRefs(), tc.ref == nil)
			}
			if tc.ref != nil && spec.Ref == tc.ref {
				t.Error("QuerySpec should hold its own copy of the ref")
			}
		})
	}
}

func TestReportIsEmpty(t *testing.T) {
	if !(Report{}).IsEmpty() {
		t.Error("zero Report should be empty")
	}
	single := Report{Entries: []ReportEntry{{Block: FormattedBlock{}}}}
	if !single.IsEmpty() {
		t.Error("report with one empty block should be empty")
	}
	filled := Report{Entries: []ReportEntry{{Block: FormattedBlock{"Fix bug"}}}}
	if filled.IsEmpty() {
		t.Error("report with lines should not be empty")
	}
}

func TestCommitSubjectAndBody(t *testing.T) {
	tests := map[string]struct {
		message     string
		wantSubject string
		wantBody    string
	}{
		"subject only":         {"Fix bug\n", "Fix bug", ""},
		"subject and body":     {"Add docs\n\nLine one\nLine two\n", "Add docs", "Line one\nLine two"},
		"wrapped subject":      {"Long\nsubject\n\nbody", "Long subject", "body"},
		"windows line endings": {"Fix bug\r\n\r\nbody\r\n", "Fix bug", "body"},
		"empty":                {"", "", ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := Commit{Message: tc.message}
			if got := c.Subject(); got != tc.wantSubject {
				t.Errorf("Subject() = %q, want %q", got, tc.wantSubject)
			}
			if got := c.Body(); got != tc.wantBody {
				t.Errorf("Body() = %q, want %q", got, tc.wantBody)
			}
		})
	}
}
