package layout_test

import (
	"testing"

	"github.com/linky00/pos-writer/pkg/layout"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame(t *testing.T) {
	single, err := layout.BorderSingle.Chars()
	require.NoError(t, err)

	t.Run("single_line", func(t *testing.T) {
		got := layout.Frame([]string{"hi"}, single)
		assert.Equal(t, []string{
			"┌────┐",
			"│ hi │",
			"└────┘",
		}, got)
	})

	t.Run("lines_padded_to_widest", func(t *testing.T) {
		got := layout.Frame([]string{"the quick", "brown fox", "jumps"}, single)
		assert.Equal(t, []string{
			"┌───────────┐",
			"│ the quick │",
			"│ brown fox │",
			"│ jumps     │",
			"└───────────┘",
		}, got)
	})

	t.Run("empty_line_set_yields_rule_pair", func(t *testing.T) {
		got := layout.Frame(nil, single)
		assert.Equal(t, []string{"┌──┐", "└──┘"}, got)
	})

	t.Run("double_border", func(t *testing.T) {
		double, err := layout.BorderDouble.Chars()
		require.NoError(t, err)

		got := layout.Frame([]string{"total: 12.50"}, double)
		assert.Equal(t, []string{
			"╔══════════════╗",
			"║ total: 12.50 ║",
			"╚══════════════╝",
		}, got)
	})

	t.Run("black_border_uses_half_blocks", func(t *testing.T) {
		black, err := layout.BorderBlack.Chars()
		require.NoError(t, err)

		got := layout.Frame([]string{"x"}, black)
		assert.Equal(t, []string{
			"▄▄▄▄▄",
			"▐ x ▌",
			"▀▀▀▀▀",
		}, got)
	})
}

func TestFrameIsRectangular(t *testing.T) {
	for _, borderType := range layout.BorderTypes() {
		chars, err := borderType.Chars()
		require.NoError(t, err)

		framed := layout.Frame([]string{"a", "longer line", "mid"}, chars)
		require.Len(t, framed, 5)

		width := runewidth.StringWidth(framed[0])
		for _, line := range framed {
			assert.Equal(t, width, runewidth.StringWidth(line),
				"border %s: line %q breaks the rectangle", borderType, line)
		}
	}
}
