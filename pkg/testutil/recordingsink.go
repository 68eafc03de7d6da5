// Package testutil provides test doubles for the printer sink.
package testutil

import (
	"fmt"
	"strings"

	"github.com/linky00/pos-writer/pkg/errors"
	"github.com/linky00/pos-writer/pkg/style"
)

// RecordingSink implements print.Sink, logging every primitive call as
// a readable command string. Individual commands can be scripted to
// fail by name.
type RecordingSink struct {
	// Commands is the ordered log of primitive calls
	Commands []string

	// FailOn maps a command name (e.g. "feed", "set-bold") to the error
	// its next invocation returns
	FailOn map[string]error
}

// NewRecordingSink creates an empty recording sink
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{
		FailOn: make(map[string]error),
	}
}

// FailCommand scripts the named command to fail with a sink failure
func (s *RecordingSink) FailCommand(name string) {
	s.FailOn[name] = errors.Newf(errors.ErrSinkFailure, "scripted failure for %s", name)
}

func (s *RecordingSink) record(name string, args ...interface{}) error {
	cmd := name
	for _, arg := range args {
		cmd += fmt.Sprintf(" %v", arg)
	}
	s.Commands = append(s.Commands, cmd)

	if err, ok := s.FailOn[name]; ok {
		return err
	}
	return nil
}

func (s *RecordingSink) WriteRaw(text string) error {
	return s.record("write-raw", text)
}

func (s *RecordingSink) Feed() error {
	return s.record("feed")
}

func (s *RecordingSink) SetFont(f style.Font) error {
	return s.record("set-font", f)
}

func (s *RecordingSink) SetSize(width, height uint8) error {
	return s.record("set-size", width, height)
}

func (s *RecordingSink) ResetSize() error {
	return s.record("reset-size")
}

func (s *RecordingSink) SetBold(on bool) error {
	return s.record("set-bold", on)
}

func (s *RecordingSink) SetUnderline(mode style.UnderlineMode) error {
	return s.record("set-underline", mode)
}

func (s *RecordingSink) SetJustify(mode style.JustifyMode) error {
	return s.record("set-justify", mode)
}

func (s *RecordingSink) SetUpsideDown(on bool) error {
	return s.record("set-upside-down", on)
}

func (s *RecordingSink) SetReverse(on bool) error {
	return s.record("set-reverse", on)
}

func (s *RecordingSink) SetDoubleStrike(on bool) error {
	return s.record("set-double-strike", on)
}

func (s *RecordingSink) SetLineSpacing(spacing uint8) error {
	return s.record("set-line-spacing", spacing)
}

func (s *RecordingSink) ResetLineSpacing() error {
	return s.record("reset-line-spacing")
}

// Lines returns the text of each emitted line, in order. A line is a
// write-raw immediately followed by a feed.
func (s *RecordingSink) Lines() []string {
	var lines []string
	for i := 0; i < len(s.Commands)-1; i++ {
		if strings.HasPrefix(s.Commands[i], "write-raw ") && s.Commands[i+1] == "feed" {
			lines = append(lines, strings.TrimPrefix(s.Commands[i], "write-raw "))
		}
	}
	return lines
}
