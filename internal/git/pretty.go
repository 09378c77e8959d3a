package git

import (
	"strings"

	"github.com/George-Madeley/Tools/internal/models"
)

// RenderCommit expands a git pretty-format scheme for one commit and appends
// the newline git adds after every --format entry. Supported placeholders:
// %B %s %b %H %h %an %ae %n %%. Unknown placeholders are copied verbatim.
func RenderCommit(scheme string, c models.Commit) string {
	var b strings.Builder
	subject, body := c.Subject(), c.Body()

	for i := 0; i < len(scheme); i++ {
		if scheme[i] != '%' || i == len(scheme)-1 {
			b.WriteByte(scheme[i])
			continue
		}

		rest := scheme[i+1:]
		switch {
		case strings.HasPrefix(rest, "an"):
			b.WriteString(c.Author)
			i += 2
		case strings.HasPrefix(rest, "ae"):
			b.WriteString(c.Email)
			i += 2
		case rest[0] == 'B':
			b.WriteString(strings.TrimRight(c.Message, "\n") + "\n")
			i++
		case rest[0] == 's':
			b.WriteString(subject)
			i++
		case rest[0] == 'b':
			if body != "" {
				b.WriteString(body + "\n")
			}
			i++
		case rest[0] == 'H':
			b.WriteString(c.Hash)
			i++
		case rest[0] == 'h':
			b.WriteString(c.ShortHash)
			i++
		case rest[0] == 'n':
			b.WriteByte('\n')
			i++
		case rest[0] == '%':
			b.WriteByte('%')
			i++
		default:
			b.WriteByte('%')
		}
	}

	b.WriteByte('\n')
	return b.String()
}
