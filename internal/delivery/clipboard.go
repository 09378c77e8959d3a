package delivery

import (
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"

	"github.com/George-Madeley/Tools/internal/errors"
)

// Clipboard modes accepted in configuration
const (
	ClipboardAuto   = "auto"
	ClipboardSystem = "system"
	ClipboardOSC52  = "osc52"
	ClipboardNone   = "none"
)

// Clipboard places text where the user can paste it.
type Clipboard interface {
	Copy(text string) error
	Name() string
}

// SystemClipboard uses the platform clipboard (pbcopy, clip, xclip, xsel,
// wl-copy) through atotto/clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Name() string { return ClipboardSystem }

func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return errors.Wrap(errors.ErrClipboardUnavailable, "no clipboard utility found on this platform")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(errors.ErrClipboardUnavailable, err.Error())
	}
	return nil
}

// OSC52Clipboard asks the terminal itself to set the clipboard, which also
// works over SSH.
type OSC52Clipboard struct {
	Out io.Writer
}

func (OSC52Clipboard) Name() string { return ClipboardOSC52 }

func (c OSC52Clipboard) Copy(text string) error {
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(os.Getenv("TERM"), "screen"):
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(c.Out); err != nil {
		return errors.Wrap(errors.ErrClipboardUnavailable, err.Error())
	}
	return nil
}

// NoClipboard skips copying.
type NoClipboard struct{}

func (NoClipboard) Name() string { return ClipboardNone }
func (NoClipboard) Copy(_ string) error { return nil }

// NewClipboard returns the clipboard for mode. Auto prefers the system
// clipboard, then OSC52 when term is a terminal, then none.
func NewClipboard(mode string, term io.Writer) (Clipboard, error) {
	switch strings.ToLower(mode) {
	case ClipboardSystem:
		return SystemClipboard{}, nil
	case ClipboardOSC52:
		return OSC52Clipboard{Out: term}, nil
	case ClipboardNone:
		return NoClipboard{}, nil
	case ClipboardAuto, "":
		if !clipboard.Unsupported {
			return SystemClipboard{}, nil
		}
		if IsTerminal(term) {
			return OSC52Clipboard{Out: term}, nil
		}
		return NoClipboard{}, nil
	default:
		return nil, errors.NewConfigError("clipboard", mode,
			errors.Errorf("must be one of %s, %s, %s, %s", ClipboardAuto, ClipboardSystem, ClipboardOSC52, ClipboardNone))
	}
}
