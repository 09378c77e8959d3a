package history

import (
	"strings"

	"github.com/George-Madeley/Tools/internal/models"
)

// Render produces the exact string handed to delivery. Grouped entries are
// written as label, lines, then a blank separator line; the trailing
// separator is dropped.
func Render(report models.Report) string {
	if !report.Grouped {
		var lines []string
		for _, e := range report.Entries {
			lines = append(lines, e.Block...)
		}
		return strings.Join(lines, "\n")
	}

	sections := make([]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		section := append([]string{e.Label}, e.Block...)
		sections = append(sections, strings.Join(section, "\n"))
	}
	return strings.Join(sections, "\n\n")
}
