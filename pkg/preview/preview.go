// Package preview renders print jobs to a terminal instead of a
// printer, approximating the device's text attributes with ANSI
// styling so output can be proofed before burning paper.
package preview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/linky00/pos-writer/pkg/layout"
	"github.com/linky00/pos-writer/pkg/print"
	"github.com/linky00/pos-writer/pkg/style"
)

// Renderer writes styled previews to an output writer
type Renderer struct {
	output io.Writer
	format Format
}

// New creates a renderer. FormatAuto should be resolved with
// DetectFormat before construction; the renderer treats it as plain
// text.
func New(w io.Writer, format Format) *Renderer {
	return &Renderer{output: w, format: format}
}

// Render lays out text the same way the printer would (wrap, then
// optional frame) and writes each line with the style's terminal
// approximation.
func (r *Renderer) Render(st style.Style, text string, box print.Box) error {
	lines := layout.Wrap(text, box.WrapWidth)

	if box.Border != "" {
		chars, err := box.Border.Chars()
		if err != nil {
			return err
		}
		lines = layout.Frame(lines, chars)
	}

	lineStyle := r.lineStyle(st, box)
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.output, lineStyle.Render(line)); err != nil {
			return err
		}
	}
	return nil
}

// lineStyle maps printable attributes onto their closest ANSI
// counterparts. Size, font, upside-down and line spacing have no
// terminal equivalent and are ignored.
func (r *Renderer) lineStyle(st style.Style, box print.Box) lipgloss.Style {
	ls := lipgloss.NewStyle()
	if r.format != FormatTerminal {
		return ls
	}

	for _, d := range st {
		switch d.Kind() {
		case style.KindBold:
			ls = ls.Bold(true)
		case style.KindUnderline:
			if d.UnderlineMode() != style.UnderlineNone {
				ls = ls.Underline(true)
			}
		case style.KindReverse:
			ls = ls.Reverse(true)
		case style.KindDoubleStrike:
			// Double-strike reads as emphasis on paper
			ls = ls.Bold(true)
		case style.KindJustify:
			if box.WrapWidth > 0 {
				ls = ls.Width(box.WrapWidth).Align(justifyPosition(d.JustifyMode()))
			}
		}
	}
	return ls
}

func justifyPosition(mode style.JustifyMode) lipgloss.Position {
	switch mode {
	case style.JustifyCenter:
		return lipgloss.Center
	case style.JustifyRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
