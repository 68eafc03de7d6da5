// Package escpos implements the printer sink for ESC/POS thermal
// printers on top of an io.Writer. It owns the command byte sequences
// and transcodes outgoing text to code page 437, the character set
// these printers boot with.
package escpos

import (
	"io"

	"github.com/linky00/pos-writer/pkg/cp437"
	"github.com/linky00/pos-writer/pkg/errors"
	"github.com/linky00/pos-writer/pkg/logging"
	"github.com/linky00/pos-writer/pkg/style"
)

const (
	esc = 0x1B
	gs  = 0x1D
)

// Printer writes ESC/POS commands to an underlying writer. It is not
// safe for concurrent use; a print operation owns the printer for its
// whole duration.
type Printer struct {
	w io.Writer
}

// New creates a printer over w. Call Init before the first print to put
// the device in a known state.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Init resets the printer to its power-on defaults (ESC @)
func (p *Printer) Init() error {
	return p.command("initialize", []byte{esc, '@'})
}

// WriteRaw transcodes text to CP437 and writes it to the device.
// Unrepresentable runes surface as an encoding violation before any
// byte reaches the device.
func (p *Printer) WriteRaw(text string) error {
	payload, err := cp437.Encode(text)
	if err != nil {
		return err
	}

	if _, err := p.w.Write(payload); err != nil {
		return errors.Wrap(err, errors.ErrSinkFailure, "raw write failed")
	}
	return nil
}

// Feed advances the paper by one line (ESC d 1)
func (p *Printer) Feed() error {
	return p.command("feed", []byte{esc, 'd', 1})
}

// FeedLines advances the paper by n lines (ESC d n)
func (p *Printer) FeedLines(n uint8) error {
	return p.command("feed-lines", []byte{esc, 'd', n})
}

// Cut performs a partial paper cut (GS V 0)
func (p *Printer) Cut() error {
	return p.command("cut", []byte{gs, 'V', 0})
}

// SetFont selects a built-in font (ESC M n)
func (p *Printer) SetFont(f style.Font) error {
	var n byte
	switch f {
	case style.FontA:
		n = 0
	case style.FontB:
		n = 1
	case style.FontC:
		n = 2
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown font %d", int(f))
	}
	return p.command("set-font", []byte{esc, 'M', n})
}

// SetSize sets the character scale (GS ! n). Width and height
// multipliers must be between 1 and 8.
func (p *Printer) SetSize(width, height uint8) error {
	if width < 1 || width > 8 || height < 1 || height > 8 {
		return errors.Newf(errors.ErrInvalidInput, "size multipliers must be 1-8, got %dx%d", width, height)
	}
	n := (width-1)<<4 | (height - 1)
	return p.command("set-size", []byte{gs, '!', n})
}

// ResetSize restores the default character scale
func (p *Printer) ResetSize() error {
	return p.command("reset-size", []byte{gs, '!', 0})
}

// SetBold switches emphasized mode (ESC E n)
func (p *Printer) SetBold(on bool) error {
	return p.command("set-bold", []byte{esc, 'E', flag(on)})
}

// SetUnderline sets the underline mode (ESC - n)
func (p *Printer) SetUnderline(mode style.UnderlineMode) error {
	var n byte
	switch mode {
	case style.UnderlineNone:
		n = 0
	case style.UnderlineSingle:
		n = 1
	case style.UnderlineDouble:
		n = 2
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown underline mode %d", int(mode))
	}
	return p.command("set-underline", []byte{esc, '-', n})
}

// SetJustify sets line justification (ESC a n)
func (p *Printer) SetJustify(mode style.JustifyMode) error {
	var n byte
	switch mode {
	case style.JustifyLeft:
		n = 0
	case style.JustifyCenter:
		n = 1
	case style.JustifyRight:
		n = 2
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown justify mode %d", int(mode))
	}
	return p.command("set-justify", []byte{esc, 'a', n})
}

// SetUpsideDown switches upside-down printing (ESC { n)
func (p *Printer) SetUpsideDown(on bool) error {
	return p.command("set-upside-down", []byte{esc, '{', flag(on)})
}

// SetReverse switches white-on-black printing (GS B n)
func (p *Printer) SetReverse(on bool) error {
	return p.command("set-reverse", []byte{gs, 'B', flag(on)})
}

// SetDoubleStrike switches double-strike mode (ESC G n)
func (p *Printer) SetDoubleStrike(on bool) error {
	return p.command("set-double-strike", []byte{esc, 'G', flag(on)})
}

// SetLineSpacing sets the line spacing in motion units (ESC 3 n)
func (p *Printer) SetLineSpacing(spacing uint8) error {
	return p.command("set-line-spacing", []byte{esc, '3', spacing})
}

// ResetLineSpacing restores the default line spacing (ESC 2)
func (p *Printer) ResetLineSpacing() error {
	return p.command("reset-line-spacing", []byte{esc, '2'})
}

func (p *Printer) command(name string, payload []byte) error {
	logger := logging.GetLogger("escpos")
	logger.Trace().Str("command", name).Hex("bytes", payload).Msg("Sending command")

	if _, err := p.w.Write(payload); err != nil {
		return errors.Wrapf(err, errors.ErrSinkFailure, "%s failed", name)
	}
	return nil
}

func flag(on bool) byte {
	if on {
		return 1
	}
	return 0
}
