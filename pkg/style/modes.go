package style

import (
	"fmt"
	"strings"
)

// Font identifies one of the printer's built-in fonts
type Font int

const (
	FontA Font = iota
	FontB
	FontC
)

// String returns the string representation of the font
func (f Font) String() string {
	switch f {
	case FontA:
		return "a"
	case FontB:
		return "b"
	case FontC:
		return "c"
	default:
		return "unknown"
	}
}

// ParseFont parses a string into a Font value
func ParseFont(s string) (Font, error) {
	switch strings.ToLower(s) {
	case "a", "":
		return FontA, nil
	case "b":
		return FontB, nil
	case "c":
		return FontC, nil
	default:
		return FontA, fmt.Errorf("unknown font: %s", s)
	}
}

// UnderlineMode selects underline thickness
type UnderlineMode int

const (
	UnderlineNone UnderlineMode = iota
	UnderlineSingle
	UnderlineDouble
)

// String returns the string representation of the underline mode
func (u UnderlineMode) String() string {
	switch u {
	case UnderlineNone:
		return "none"
	case UnderlineSingle:
		return "single"
	case UnderlineDouble:
		return "double"
	default:
		return "unknown"
	}
}

// ParseUnderlineMode parses a string into an UnderlineMode value
func ParseUnderlineMode(s string) (UnderlineMode, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return UnderlineNone, nil
	case "single":
		return UnderlineSingle, nil
	case "double":
		return UnderlineDouble, nil
	default:
		return UnderlineNone, fmt.Errorf("unknown underline mode: %s", s)
	}
}

// JustifyMode selects line justification
type JustifyMode int

const (
	JustifyLeft JustifyMode = iota
	JustifyCenter
	JustifyRight
)

// String returns the string representation of the justify mode
func (j JustifyMode) String() string {
	switch j {
	case JustifyLeft:
		return "left"
	case JustifyCenter:
		return "center"
	case JustifyRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseJustifyMode parses a string into a JustifyMode value
func ParseJustifyMode(s string) (JustifyMode, error) {
	switch strings.ToLower(s) {
	case "left", "":
		return JustifyLeft, nil
	case "center", "centre":
		return JustifyCenter, nil
	case "right":
		return JustifyRight, nil
	default:
		return JustifyLeft, fmt.Errorf("unknown justify mode: %s", s)
	}
}
