// Package style models printer text attributes as an ordered list of
// directives that can be applied to a sink before output and reverted
// to their defaults afterwards.
package style

import (
	"github.com/linky00/pos-writer/pkg/errors"
)

// Sink is the style-command surface this package drives. The concrete
// printer sink in pkg/escpos satisfies it.
type Sink interface {
	SetFont(Font) error
	SetSize(width, height uint8) error
	ResetSize() error
	SetBold(bool) error
	SetUnderline(UnderlineMode) error
	SetJustify(JustifyMode) error
	SetUpsideDown(bool) error
	SetReverse(bool) error
	SetDoubleStrike(bool) error
	SetLineSpacing(uint8) error
	ResetLineSpacing() error
}

// Kind discriminates directive variants
type Kind int

const (
	KindFont Kind = iota
	KindSize
	KindBold
	KindUnderline
	KindJustify
	KindUpsideDown
	KindReverse
	KindDoubleStrike
	KindLineSpacing
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindFont:
		return "font"
	case KindSize:
		return "size"
	case KindBold:
		return "bold"
	case KindUnderline:
		return "underline"
	case KindJustify:
		return "justify"
	case KindUpsideDown:
		return "upside-down"
	case KindReverse:
		return "reverse"
	case KindDoubleStrike:
		return "double-strike"
	case KindLineSpacing:
		return "line-spacing"
	default:
		return "unknown"
	}
}

// Directive is a single immutable style instruction. Construct one with
// the package-level constructors; the zero value is not meaningful.
type Directive struct {
	kind      Kind
	font      Font
	width     uint8
	height    uint8
	underline UnderlineMode
	justify   JustifyMode
	spacing   uint8
}

// Kind returns the directive's variant
func (d Directive) Kind() Kind {
	return d.kind
}

// Font returns the font payload of a KindFont directive
func (d Directive) Font() Font {
	return d.font
}

// Scale returns the width and height payload of a KindSize directive
func (d Directive) Scale() (width, height uint8) {
	return d.width, d.height
}

// UnderlineMode returns the payload of a KindUnderline directive
func (d Directive) UnderlineMode() UnderlineMode {
	return d.underline
}

// JustifyMode returns the payload of a KindJustify directive
func (d Directive) JustifyMode() JustifyMode {
	return d.justify
}

// Spacing returns the payload of a KindLineSpacing directive
func (d Directive) Spacing() uint8 {
	return d.spacing
}

// SelectFont selects one of the printer's built-in fonts
func SelectFont(f Font) Directive {
	return Directive{kind: KindFont, font: f}
}

// Size scales characters by integer width and height multipliers
func Size(width, height uint8) Directive {
	return Directive{kind: KindSize, width: width, height: height}
}

// Bold enables emphasized printing
func Bold() Directive {
	return Directive{kind: KindBold}
}

// Underline sets the underline mode
func Underline(mode UnderlineMode) Directive {
	return Directive{kind: KindUnderline, underline: mode}
}

// Justify sets line justification
func Justify(mode JustifyMode) Directive {
	return Directive{kind: KindJustify, justify: mode}
}

// UpsideDown enables rotated printing
func UpsideDown() Directive {
	return Directive{kind: KindUpsideDown}
}

// Reverse enables white-on-black printing
func Reverse() Directive {
	return Directive{kind: KindReverse}
}

// DoubleStrike enables double-strike printing
func DoubleStrike() Directive {
	return Directive{kind: KindDoubleStrike}
}

// LineSpacing sets the line spacing in motion units
func LineSpacing(spacing uint8) Directive {
	return Directive{kind: KindLineSpacing, spacing: spacing}
}

// Style is an ordered list of directives. Application order is list
// order; no directive depends on another's state, so any permutation
// produces the same device state.
type Style []Directive

// New builds a style from directives in application order
func New(directives ...Directive) Style {
	return Style(directives)
}

// Apply issues one sink command per directive, in list order. The first
// sink failure aborts the remaining directives and is returned.
func (s Style) Apply(sink Sink) error {
	for _, d := range s {
		if err := applyDirective(sink, d); err != nil {
			return errors.Wrapf(err, errors.ErrStyleApply, "applying %s", d.kind)
		}
	}
	return nil
}

// Revert issues the neutral counterpart for each directive's kind, in
// list order. Reversion ignores the stored value, so it is idempotent.
func (s Style) Revert(sink Sink) error {
	for _, d := range s {
		if err := revertDirective(sink, d.kind); err != nil {
			return errors.Wrapf(err, errors.ErrStyleRevert, "reverting %s", d.kind)
		}
	}
	return nil
}

func applyDirective(sink Sink, d Directive) error {
	switch d.kind {
	case KindFont:
		return sink.SetFont(d.font)
	case KindSize:
		return sink.SetSize(d.width, d.height)
	case KindBold:
		return sink.SetBold(true)
	case KindUnderline:
		return sink.SetUnderline(d.underline)
	case KindJustify:
		return sink.SetJustify(d.justify)
	case KindUpsideDown:
		return sink.SetUpsideDown(true)
	case KindReverse:
		return sink.SetReverse(true)
	case KindDoubleStrike:
		return sink.SetDoubleStrike(true)
	case KindLineSpacing:
		return sink.SetLineSpacing(d.spacing)
	default:
		return errors.Newf(errors.ErrInternal, "unhandled directive kind %d", int(d.kind))
	}
}

func revertDirective(sink Sink, kind Kind) error {
	switch kind {
	case KindFont:
		return sink.SetFont(FontA)
	case KindSize:
		return sink.ResetSize()
	case KindBold:
		return sink.SetBold(false)
	case KindUnderline:
		return sink.SetUnderline(UnderlineNone)
	case KindJustify:
		return sink.SetJustify(JustifyLeft)
	case KindUpsideDown:
		return sink.SetUpsideDown(false)
	case KindReverse:
		return sink.SetReverse(false)
	case KindDoubleStrike:
		return sink.SetDoubleStrike(false)
	case KindLineSpacing:
		return sink.ResetLineSpacing()
	default:
		return errors.Newf(errors.ErrInternal, "unhandled directive kind %d", int(kind))
	}
}
