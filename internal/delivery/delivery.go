// Package delivery hands a finished report to the user: printed to the
// terminal and copied to a clipboard.
package delivery

import (
	"log/slog"

	"github.com/George-Madeley/Tools/internal/history"
	"github.com/George-Madeley/Tools/internal/logging"
	"github.com/George-Madeley/Tools/internal/models"
)

// Result describes what Deliver managed to do.
type Result struct {
	Rendered string
	Copied   bool
	CopyErr  error
}

// Deliverer prints reports and copies them to a clipboard.
type Deliverer struct {
	printer   *Printer
	clipboard Clipboard
	logger    *slog.Logger
}

func NewDeliverer(printer *Printer, clipboard Clipboard, logger *slog.Logger) *Deliverer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Deliverer{printer: printer, clipboard: clipboard, logger: logger}
}

// Deliver prints the report and copies its rendered text. A clipboard failure
// is reported in Result and as a warning; only a print failure is an error.
func (d *Deliverer) Deliver(report models.Report) (Result, error) {
	res := Result{Rendered: history.Render(report)}

	if err := d.printer.PrintReport(report); err != nil {
		return res, err
	}

	if report.IsEmpty() {
		d.printer.Status("No commits found")
		return res, nil
	}

	if err := d.clipboard.Copy(res.Rendered); err != nil {
		res.CopyErr = err
		d.logger.Warn("clipboard copy failed", "clipboard", d.clipboard.Name(), "error", err)
		d.printer.Warn("Could not copy to clipboard: %v", err)
		return res, nil
	}

	res.Copied = d.clipboard.Name() != ClipboardNone
	d.logger.Debug("copied report", "clipboard", d.clipboard.Name(), "bytes", len(res.Rendered))
	return res, nil
}
