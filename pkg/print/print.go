// Package print composes styling, layout and emission into the two
// top-level printing operations.
package print

import (
	"github.com/linky00/pos-writer/pkg/layout"
	"github.com/linky00/pos-writer/pkg/logging"
	"github.com/linky00/pos-writer/pkg/style"
)

// Sink is the device surface printing needs: the style primitives plus
// raw character output and line advance. A sink is owned by a single
// goroutine for the duration of a print operation; callers reusing one
// sink across goroutines must serialize access themselves.
type Sink interface {
	style.Sink

	// WriteRaw writes already-validated text to the device. Text must be
	// representable in the device's code page; the sink reports anything
	// else as an encoding violation.
	WriteRaw(text string) error

	// Feed advances the paper by one line
	Feed() error
}

// Box configures optional wrapping and framing for LineBox. The zero
// value disables both.
type Box struct {
	// WrapWidth is the column budget in display cells; <= 0 disables
	// wrapping and the text is emitted as a single line.
	WrapWidth int

	// Border selects a frame style; empty means no frame
	Border layout.BorderType
}

// Line applies the style, emits one line of text, and reverts the
// style. Reversion runs on every exit path; an emission error takes
// precedence over a reversion error.
func Line(sink Sink, st style.Style, text string) (err error) {
	if err := st.Apply(sink); err != nil {
		return err
	}
	defer func() {
		if rerr := st.Revert(sink); rerr != nil && err == nil {
			err = rerr
		}
	}()

	return emitLine(sink, text)
}

// LineBox applies the style, wraps the text to the box's column budget,
// optionally frames the wrapped lines, emits each resulting line, and
// reverts the style. As with Line, reversion is guaranteed.
func LineBox(sink Sink, st style.Style, text string, box Box) (err error) {
	logger := logging.GetLogger("print")

	lines := layout.Wrap(text, box.WrapWidth)

	if box.Border != "" {
		chars, cerr := box.Border.Chars()
		if cerr != nil {
			return cerr
		}
		lines = layout.Frame(lines, chars)
	}

	if err := st.Apply(sink); err != nil {
		return err
	}
	defer func() {
		if rerr := st.Revert(sink); rerr != nil && err == nil {
			err = rerr
		}
	}()

	logger.Debug().
		Int("lines", len(lines)).
		Int("wrapWidth", box.WrapWidth).
		Str("border", box.Border.String()).
		Msg("Emitting block")

	for _, line := range lines {
		if err := emitLine(sink, line); err != nil {
			return err
		}
	}

	return nil
}

// emitLine writes one line's characters followed by a line feed
func emitLine(sink Sink, text string) error {
	if err := sink.WriteRaw(text); err != nil {
		return err
	}
	return sink.Feed()
}
