// Package layout lays paragraphs out for a fixed-width character-cell
// device: greedy word wrapping to a column budget and optional box
// drawing around the wrapped lines.
package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap splits text into lines no wider than maxWidth display cells using
// greedy word packing. Words are split literally on single spaces, so
// repeated spaces produce empty tokens and tabs are not separators; this
// preserves the caller's exact spacing. A single word wider than
// maxWidth is emitted unsplit on its own line. maxWidth <= 0 disables
// wrapping and yields the whole text as one line.
func Wrap(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range strings.Split(text, " ") {
		wordWidth := runewidth.StringWidth(word)

		sep := 0
		if currentWidth > 0 {
			sep = 1
		}

		if currentWidth+sep+wordWidth > maxWidth {
			if current.Len() == 0 {
				// Oversized word: never split mid-token
				lines = append(lines, word)
				continue
			}
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			currentWidth = wordWidth
			continue
		}

		if sep == 1 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
		currentWidth += sep + wordWidth
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}
