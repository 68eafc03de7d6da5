package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Frame draws a rectangular border around lines. Every interior line is
// padded to the widest line's cell width with one space between content
// and each edge glyph; the top and bottom rules span the padded interior.
// An empty line set still yields the two rules.
func Frame(lines []string, chars BorderChars) []string {
	maxWidth := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}

	framed := make([]string, 0, len(lines)+2)
	framed = append(framed, rule(chars.TopLeft, chars.Top, chars.TopRight, maxWidth+2))

	for _, line := range lines {
		pad := strings.Repeat(" ", maxWidth-runewidth.StringWidth(line))
		framed = append(framed, string(chars.Left)+" "+line+pad+" "+string(chars.Right))
	}

	framed = append(framed, rule(chars.BottomLeft, chars.Bottom, chars.BottomRight, maxWidth+2))

	return framed
}

func rule(left, fill, right rune, width int) string {
	var b strings.Builder
	b.WriteRune(left)
	b.WriteString(strings.Repeat(string(fill), width))
	b.WriteRune(right)
	return b.String()
}
