package delivery

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/George-Madeley/Tools/internal/history"
	"github.com/George-Madeley/Tools/internal/models"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes reports and status lines. When styled, branch labels and
// status lines are colored; the text itself never changes.
type Printer struct {
	out    io.Writer
	status io.Writer
	styled bool

	labelStyle  lipgloss.Style
	statusStyle lipgloss.Style
	warnStyle   lipgloss.Style
}

// NewPrinter writes reports to out and status lines to status.
func NewPrinter(out, status io.Writer, styled bool) *Printer {
	r := lipgloss.NewRenderer(out)
	s := lipgloss.NewRenderer(status)

	return &Printer{
		out:    out,
		status: status,
		styled: styled,
		labelStyle: r.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true),
		statusStyle: s.NewStyle().
			Foreground(lipgloss.Color("244")),
		warnStyle: s.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true),
	}
}

// PrintReport writes the rendered report followed by a newline. Nothing is
// written for an empty report.
func (p *Printer) PrintReport(report models.Report) error {
	if report.IsEmpty() {
		return nil
	}

	text := history.Render(report)
	if p.styled && report.Grouped {
		text = p.styleLabels(report)
	}

	_, err := fmt.Fprintln(p.out, text)
	return err
}

func (p *Printer) styleLabels(report models.Report) string {
	sections := make([]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		lines := append([]string{p.labelStyle.Render(e.Label)}, e.Block...)
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return strings.Join(sections, "\n\n")
}

// Status writes a progress line such as "Done!".
func (p *Printer) Status(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if p.styled {
		msg = p.statusStyle.Render(msg)
	}
	_, _ = fmt.Fprintln(p.status, msg)
}

// Warn writes a non-fatal problem to the status stream.
func (p *Printer) Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if p.styled {
		msg = p.warnStyle.Render(msg)
	}
	_, _ = fmt.Fprintln(p.status, msg)
}
