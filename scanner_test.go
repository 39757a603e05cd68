package newlines_test

import (
	"bufio"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/jwodder/newlines"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type span struct {
	start int
	end   int
	nl    newlines.Newline
}

func collectMatches(m *newlines.Matches) []span {
	var out []span
	for m.Next() {
		out = append(out, span{start: m.Start(), end: m.End(), nl: m.Newline()})
	}
	return out
}

func TestMatches(t *testing.T) {
	text := "foo\r\nbar\rbaz\nqux\u2028tail"
	got := collectMatches(newlines.All.Matches(text))
	assert.Equal(t, []span{
		{start: 3, end: 5, nl: newlines.CrLf},
		{start: 8, end: 9, nl: newlines.CarriageReturn},
		{start: 12, end: 13, nl: newlines.LineFeed},
		{start: 16, end: 19, nl: newlines.LineSeparator},
	}, got)
}

func TestMatchesText(t *testing.T) {
	m := newlines.All.Matches("a\r\nb")
	require.True(t, m.Next())
	assert.Equal(t, "\r\n", m.Text())
	assert.False(t, m.Next())
}

func TestMatchesCrLfOnly(t *testing.T) {
	got := collectMatches(newlines.SetOf(newlines.CrLf).Matches("a\rb\r\nc"))
	assert.Equal(t, []span{{start: 3, end: 5, nl: newlines.CrLf}}, got)
}

func TestMatchesNone(t *testing.T) {
	assert.Empty(t, collectMatches(newlines.All.Matches("no breaks here")))
	assert.Empty(t, collectMatches(newlines.Empty.Matches("foo\nbar")))
}

func TestSplitFunc(t *testing.T) {
	tests := []struct {
		name    string
		set     newlines.Set
		data    string
		atEOF   bool
		advance int
		token   string
		hit     bool // whether a token is produced at all
	}{
		{
			name: "empty data at eof is done",
			set:  newlines.ASCII, atEOF: true,
		},
		{
			name: "terminated line",
			set:  newlines.SetOf(newlines.LineFeed), data: "line\nrest",
			advance: 5, token: "line", hit: true,
		},
		{
			name: "trailing cr needs more input",
			set:  newlines.SetOf(newlines.CarriageReturn, newlines.CrLf), data: "line\r",
		},
		{
			name: "trailing cr at eof is a terminator",
			set:  newlines.SetOf(newlines.CarriageReturn, newlines.CrLf), data: "line\r", atEOF: true,
			advance: 5, token: "line", hit: true,
		},
		{
			name: "cr resolved by following lf",
			set:  newlines.SetOf(newlines.CarriageReturn, newlines.CrLf), data: "line\r\nx",
			advance: 6, token: "line", hit: true,
		},
		{
			name: "cr resolved by following non-lf",
			set:  newlines.SetOf(newlines.CarriageReturn, newlines.CrLf), data: "line\rx",
			advance: 5, token: "line", hit: true,
		},
		{
			name: "crlf only passes bare cr through",
			set:  newlines.SetOf(newlines.CrLf), data: "a\rb", atEOF: true,
			advance: 3, token: "a\rb", hit: true,
		},
		{
			name: "crlf only splits on real crlf",
			set:  newlines.SetOf(newlines.CrLf), data: "a\rb\r\nc",
			advance: 5, token: "a\rb", hit: true,
		},
		{
			name: "unterminated tail at eof",
			set:  newlines.ASCII, data: "tail", atEOF: true,
			advance: 4, token: "tail", hit: true,
		},
		{
			name: "unterminated tail mid-stream waits",
			set:  newlines.ASCII, data: "tail",
		},
		{
			name: "empty set takes everything at eof",
			set:  newlines.Empty, data: "foo\nbar", atEOF: true,
			advance: 7, token: "foo\nbar", hit: true,
		},
		{
			name: "multibyte terminator",
			set:  newlines.SetOf(newlines.LineSeparator), data: "ab\u2028cd",
			advance: 5, token: "ab", hit: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			split := tc.set.SplitFunc()
			advance, token, err := split([]byte(tc.data), tc.atEOF)
			require.NoError(t, err)
			assert.Equal(t, tc.advance, advance)
			if tc.hit {
				assert.Equal(t, tc.token, string(token))
			} else {
				assert.Nil(t, token)
			}
		})
	}
}

func TestSplitFuncWithScanner(t *testing.T) {
	text := "one\r\ntwo\rthree\nfour\u2029five"
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Split(newlines.All.SplitFunc())
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, []string{"one", "two", "three", "four", "five"}, lines)
}

func TestSplitFuncCrLfAcrossReads(t *testing.T) {
	// A one-byte reader forces every CRLF to arrive split across reads, exercising the request-more-input path.
	text := "alpha\r\nbeta\rgamma\r\n"
	sc := bufio.NewScanner(iotest.OneByteReader(strings.NewReader(text)))
	sc.Split(newlines.SetOf(newlines.CarriageReturn, newlines.CrLf).SplitFunc())
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, lines)
}
