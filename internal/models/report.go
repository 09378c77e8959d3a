package models

// RawLogBlock is the unprocessed output of one log query.
type RawLogBlock string

// FormattedBlock holds outline lines: commit summaries unindented, body lines
// indented once.
type FormattedBlock []string

func (f FormattedBlock) IsEmpty() bool {
	return len(f) == 0
}

type ReportEntry struct {
	Label string // branch name, empty in single-ref mode
	Block FormattedBlock
}

type Report struct {
	Grouped bool
	Entries []ReportEntry
}

// IsEmpty reports whether the report carries no formatted lines at all.
func (r Report) IsEmpty() bool {
	for _, e := range r.Entries {
		if !e.Block.IsEmpty() {
			return false
		}
	}
	return true
}
