package style_test

import (
	"testing"

	"github.com/linky00/pos-writer/pkg/errors"
	"github.com/linky00/pos-writer/pkg/style"
	"github.com/linky00/pos-writer/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyThenRevert(t *testing.T) {
	sink := testutil.NewRecordingSink()
	st := style.New(style.Bold(), style.Underline(style.UnderlineSingle))

	require.NoError(t, st.Apply(sink))
	require.NoError(t, st.Revert(sink))

	assert.Equal(t, []string{
		"set-bold true",
		"set-underline single",
		"set-bold false",
		"set-underline none",
	}, sink.Commands)
}

func TestApplyDispatchesEveryKind(t *testing.T) {
	sink := testutil.NewRecordingSink()
	st := style.New(
		style.SelectFont(style.FontB),
		style.Size(2, 3),
		style.Bold(),
		style.Underline(style.UnderlineDouble),
		style.Justify(style.JustifyCenter),
		style.UpsideDown(),
		style.Reverse(),
		style.DoubleStrike(),
		style.LineSpacing(40),
	)

	require.NoError(t, st.Apply(sink))

	assert.Equal(t, []string{
		"set-font b",
		"set-size 2 3",
		"set-bold true",
		"set-underline double",
		"set-justify center",
		"set-upside-down true",
		"set-reverse true",
		"set-double-strike true",
		"set-line-spacing 40",
	}, sink.Commands)
}

func TestRevertUsesNeutralValues(t *testing.T) {
	sink := testutil.NewRecordingSink()
	st := style.New(
		style.SelectFont(style.FontC),
		style.Size(4, 4),
		style.Bold(),
		style.Underline(style.UnderlineDouble),
		style.Justify(style.JustifyRight),
		style.UpsideDown(),
		style.Reverse(),
		style.DoubleStrike(),
		style.LineSpacing(60),
	)

	require.NoError(t, st.Revert(sink))

	assert.Equal(t, []string{
		"set-font a",
		"reset-size",
		"set-bold false",
		"set-underline none",
		"set-justify left",
		"set-upside-down false",
		"set-reverse false",
		"set-double-strike false",
		"reset-line-spacing",
	}, sink.Commands)
}

func TestRevertMatchesApplyLength(t *testing.T) {
	styles := []style.Style{
		style.New(),
		style.New(style.Bold()),
		style.New(style.Bold(), style.Bold(), style.Reverse()),
		style.New(style.SelectFont(style.FontB), style.LineSpacing(24), style.Justify(style.JustifyCenter)),
	}

	for _, st := range styles {
		applied := testutil.NewRecordingSink()
		reverted := testutil.NewRecordingSink()

		require.NoError(t, st.Apply(applied))
		require.NoError(t, st.Revert(reverted))

		assert.Len(t, applied.Commands, len(st))
		assert.Len(t, reverted.Commands, len(st))
	}
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	sink := testutil.NewRecordingSink()
	sink.FailCommand("set-underline")

	st := style.New(style.Bold(), style.Underline(style.UnderlineSingle), style.Reverse())
	err := st.Apply(sink)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStyleApply))
	// The failing command is issued, the rest are not
	assert.Equal(t, []string{"set-bold true", "set-underline single"}, sink.Commands)
}

func TestRevertStopsAtFirstFailure(t *testing.T) {
	sink := testutil.NewRecordingSink()
	sink.FailCommand("reset-size")

	st := style.New(style.Size(2, 2), style.Bold())
	err := st.Revert(sink)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStyleRevert))
	assert.Equal(t, []string{"reset-size"}, sink.Commands)
}

func TestOrderIndependence(t *testing.T) {
	// Applying a permutation must touch the same primitives with the
	// same values, only in a different order
	a := style.New(style.Bold(), style.Reverse(), style.SelectFont(style.FontB))
	b := style.New(style.SelectFont(style.FontB), style.Bold(), style.Reverse())

	sinkA := testutil.NewRecordingSink()
	sinkB := testutil.NewRecordingSink()
	require.NoError(t, a.Apply(sinkA))
	require.NoError(t, b.Apply(sinkB))

	assert.ElementsMatch(t, sinkA.Commands, sinkB.Commands)
}

func TestParseModes(t *testing.T) {
	font, err := style.ParseFont("B")
	require.NoError(t, err)
	assert.Equal(t, style.FontB, font)

	_, err = style.ParseFont("z")
	assert.Error(t, err)

	underline, err := style.ParseUnderlineMode("double")
	require.NoError(t, err)
	assert.Equal(t, style.UnderlineDouble, underline)

	justify, err := style.ParseJustifyMode("centre")
	require.NoError(t, err)
	assert.Equal(t, style.JustifyCenter, justify)

	_, err = style.ParseJustifyMode("sideways")
	assert.Error(t, err)
}
