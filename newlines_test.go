package newlines_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/jwodder/newlines"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	assert.Len(t, newlines.Newlines(), newlines.Count)
}

func TestVariantsAscendBySequence(t *testing.T) {
	all := newlines.Newlines()
	assert.True(t, sort.SliceIsSorted(all, func(i, j int) bool {
		return all[i] < all[j]
	}))
	// The numeric order of the constants is exactly the lexicographic order of their sequences.
	assert.True(t, sort.SliceIsSorted(all, func(i, j int) bool {
		return strings.Compare(all[i].Sequence(), all[j].Sequence()) < 0
	}))
}

func TestSequenceRoundTrip(t *testing.T) {
	for _, nl := range newlines.Newlines() {
		got, err := newlines.FromSequence(nl.Sequence())
		require.NoError(t, err)
		assert.Equal(t, nl, got)
	}
}

func TestRune(t *testing.T) {
	for _, nl := range newlines.Newlines() {
		r, ok := nl.Rune()
		if nl == newlines.CrLf {
			assert.False(t, ok)
			continue
		}
		require.True(t, ok)
		got, err := newlines.FromRune(r)
		require.NoError(t, err)
		assert.Equal(t, nl, got)
	}
}

func TestRuneLen(t *testing.T) {
	for _, nl := range newlines.Newlines() {
		assert.Equal(t, len([]rune(nl.Sequence())), nl.RuneLen(), "%v", nl)
	}
}

func TestByteLen(t *testing.T) {
	for _, nl := range newlines.Newlines() {
		assert.Equal(t, len(nl.Sequence()), nl.ByteLen(), "%v", nl)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "LineFeed", newlines.LineFeed.String())
	assert.Equal(t, "CrLf", newlines.CrLf.String())
	assert.Equal(t, "ParagraphSeparator", newlines.ParagraphSeparator.String())
	assert.Equal(t, "Newline(42)", newlines.Newline(42).String())
}

func TestFromRuneInvalid(t *testing.T) {
	for _, r := range []rune{'x', ' ', '\t', 0} {
		_, err := newlines.FromRune(r)
		require.Error(t, err)
		var invalid *newlines.InvalidRuneError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, r, invalid.Rune)
		assert.Contains(t, err.Error(), "is not a newline character")
	}
}

func TestFromSequenceInvalid(t *testing.T) {
	for _, s := range []string{"", "x", "\n\n", "\r\r", "\n\r", "\r\nx", "\xff"} {
		_, err := newlines.FromSequence(s)
		require.Error(t, err, "%q", s)
		var invalid *newlines.InvalidSequenceError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, s, invalid.Sequence)
		assert.Contains(t, err.Error(), "is not a newline sequence")
	}
}

func TestFromRuneCarriageReturnIsNotCrLf(t *testing.T) {
	got, err := newlines.FromRune('\r')
	require.NoError(t, err)
	assert.Equal(t, newlines.CarriageReturn, got)
}
