package layout

import (
	"strings"

	"github.com/linky00/pos-writer/pkg/errors"
)

// BorderType identifies one of the predefined frame styles
type BorderType string

const (
	BorderSingle      BorderType = "single"
	BorderDouble      BorderType = "double"
	BorderLightShade  BorderType = "light-shade"
	BorderMediumShade BorderType = "medium-shade"
	BorderDarkShade   BorderType = "dark-shade"
	BorderBlack       BorderType = "black"
)

// BorderChars holds the eight glyphs needed to draw a rectangular frame
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

var borderTable = map[BorderType]BorderChars{
	BorderSingle: {
		TopLeft:     '┌',
		Top:         '─',
		TopRight:    '┐',
		Left:        '│',
		Right:       '│',
		BottomLeft:  '└',
		Bottom:      '─',
		BottomRight: '┘',
	},
	BorderDouble: {
		TopLeft:     '╔',
		Top:         '═',
		TopRight:    '╗',
		Left:        '║',
		Right:       '║',
		BottomLeft:  '╚',
		Bottom:      '═',
		BottomRight: '╝',
	},
	BorderLightShade: {
		TopLeft:     '░',
		Top:         '░',
		TopRight:    '░',
		Left:        '░',
		Right:       '░',
		BottomLeft:  '░',
		Bottom:      '░',
		BottomRight: '░',
	},
	BorderMediumShade: {
		TopLeft:     '▒',
		Top:         '▒',
		TopRight:    '▒',
		Left:        '▒',
		Right:       '▒',
		BottomLeft:  '▒',
		Bottom:      '▒',
		BottomRight: '▒',
	},
	BorderDarkShade: {
		TopLeft:     '▓',
		Top:         '▓',
		TopRight:    '▓',
		Left:        '▓',
		Right:       '▓',
		BottomLeft:  '▓',
		Bottom:      '▓',
		BottomRight: '▓',
	},
	BorderBlack: {
		TopLeft:     '▄',
		Top:         '▄',
		TopRight:    '▄',
		Left:        '▐',
		Right:       '▌',
		BottomLeft:  '▀',
		Bottom:      '▀',
		BottomRight: '▀',
	},
}

// Chars returns the glyph set for the border type
func (b BorderType) Chars() (BorderChars, error) {
	chars, ok := borderTable[b]
	if !ok {
		return BorderChars{}, errors.Newf(errors.ErrBorderUnknown, "unknown border type: %s", string(b))
	}
	return chars, nil
}

// String returns the string representation of the border type
func (b BorderType) String() string {
	return string(b)
}

// ParseBorderType parses a string into a BorderType value
func ParseBorderType(s string) (BorderType, error) {
	b := BorderType(strings.ToLower(s))
	if _, ok := borderTable[b]; !ok {
		return "", errors.Newf(errors.ErrBorderUnknown, "unknown border type: %s", s)
	}
	return b, nil
}

// BorderTypes returns all predefined border types in display order
func BorderTypes() []BorderType {
	return []BorderType{
		BorderSingle,
		BorderDouble,
		BorderLightShade,
		BorderMediumShade,
		BorderDarkShade,
		BorderBlack,
	}
}
