package layout_test

import (
	"testing"

	"github.com/linky00/pos-writer/pkg/errors"
	"github.com/linky00/pos-writer/pkg/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorderChars(t *testing.T) {
	single, err := layout.BorderSingle.Chars()
	require.NoError(t, err)
	assert.Equal(t, '┌', single.TopLeft)
	assert.Equal(t, '─', single.Top)
	assert.Equal(t, '┐', single.TopRight)
	assert.Equal(t, '│', single.Left)
	assert.Equal(t, '│', single.Right)
	assert.Equal(t, '└', single.BottomLeft)
	assert.Equal(t, '─', single.Bottom)
	assert.Equal(t, '┘', single.BottomRight)

	black, err := layout.BorderBlack.Chars()
	require.NoError(t, err)
	assert.Equal(t, '▐', black.Left)
	assert.Equal(t, '▌', black.Right)
	assert.Equal(t, '▀', black.Bottom)

	_, err = layout.BorderType("dotted").Chars()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBorderUnknown))
}

func TestParseBorderType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected layout.BorderType
		wantErr  bool
	}{
		{
			name:     "single",
			input:    "single",
			expected: layout.BorderSingle,
		},
		{
			name:     "case_insensitive",
			input:    "Double",
			expected: layout.BorderDouble,
		},
		{
			name:     "medium_shade",
			input:    "medium-shade",
			expected: layout.BorderMediumShade,
		},
		{
			name:    "unknown",
			input:   "wavy",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := layout.ParseBorderType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrBorderUnknown))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBorderTypesCoverTable(t *testing.T) {
	for _, borderType := range layout.BorderTypes() {
		chars, err := borderType.Chars()
		require.NoError(t, err)
		assert.NotZero(t, chars.TopLeft)
		assert.NotZero(t, chars.BottomRight)
	}
}
