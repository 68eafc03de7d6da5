package cp437_test

import (
	"testing"

	"github.com/linky00/pos-writer/pkg/cp437"
	"github.com/linky00/pos-writer/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeASCII(t *testing.T) {
	got, err := cp437.Encode("Receipt #42\n")
	require.NoError(t, err)
	assert.Equal(t, []byte("Receipt #42\n"), got)
}

func TestEncodeHighHalf(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{
			name:  "accented_latin",
			input: "café",
			want:  []byte{'c', 'a', 'f', 0x82},
		},
		{
			name:  "currency",
			input: "£9 ¥4 ¢1",
			want:  []byte{0x9C, '9', ' ', 0x9D, '4', ' ', 0x9B, '1'},
		},
		{
			name:  "single_border_glyphs",
			input: "┌─┐│└┘",
			want:  []byte{0xDA, 0xC4, 0xBF, 0xB3, 0xC0, 0xD9},
		},
		{
			name:  "double_border_glyphs",
			input: "╔═╗║╚╝",
			want:  []byte{0xC9, 0xCD, 0xBB, 0xBA, 0xC8, 0xBC},
		},
		{
			name:  "shade_glyphs",
			input: "░▒▓",
			want:  []byte{0xB0, 0xB1, 0xB2},
		},
		{
			name:  "block_glyphs",
			input: "▄▐▌▀█",
			want:  []byte{0xDC, 0xDE, 0xDD, 0xDF, 0xDB},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cp437.Encode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeUnmappableRune(t *testing.T) {
	_, err := cp437.Encode("price: 10€")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEncodingViolation))

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "€", details["rune"])
	assert.Equal(t, 9, details["offset"])
}

func TestCanEncode(t *testing.T) {
	assert.True(t, cp437.CanEncode("plain ascii"))
	assert.True(t, cp437.CanEncode("╔═╗ café ░▒▓"))
	assert.False(t, cp437.CanEncode("emoji ☃"))
	assert.False(t, cp437.CanEncode("世界"))
}
