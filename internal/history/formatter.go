package history

import (
	"strings"

	"github.com/George-Madeley/Tools/internal/models"
)

// Defaults matching models.DefaultFormatScheme
const (
	DefaultSeparator = "\n\n\n"
	DefaultIndent    = "\t"
)

// Formatter turns raw log output into an outline. Separator splits the output
// into commits; Indent prefixes every line after a commit's first.
//
// Separator has to match what the format scheme emits between commits. The
// default suits "\n- %B"; a scheme such as "%s" never produces it, so every
// commit after the first lands in one chunk and comes out indented.
type Formatter struct {
	Separator string
	Indent    string
}

func NewFormatter() Formatter {
	return Formatter{Separator: DefaultSeparator, Indent: DefaultIndent}
}

// Format never fails; empty input yields an empty block. Within each commit
// the first non-blank line is kept as is, later non-blank lines are indented
// once and blank lines are dropped.
func (f Formatter) Format(raw models.RawLogBlock) models.FormattedBlock {
	sep := f.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	text = strings.Trim(text, "\n")
	if strings.TrimSpace(text) == "" {
		return models.FormattedBlock{}
	}

	block := models.FormattedBlock{}
	for _, chunk := range strings.Split(text, sep) {
		first := true
		for _, line := range strings.Split(chunk, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if first {
				block = append(block, line)
				first = false
				continue
			}
			block = append(block, f.Indent+line)
		}
	}

	return block
}
