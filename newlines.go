// Package newlines provides an exhaustive enumeration of the line-termination sequences recognized by the Unicode
// standard (the seven single-character terminators plus the two-character CR LF sequence), together with a compact set
// type over them supporting set algebra and substring search.
//
// The central subtlety of the domain is that [CarriageReturn] and [CrLf] share a leading character: a '\r' encountered
// in text may open either one. [Set] models this with one packed character slot plus two independent presence flags, so
// the two variants behave as ordinary, distinct set members while the character-level projection used for searching
// ([Set.Pattern]) stays compact.
//
// All types in this package are small, fixed-size values with no heap state. They are copied freely, compared with ==,
// and safe for concurrent read-only use; concurrent mutation of a shared value requires external coordination, same as
// for any Go value.
package newlines

import (
	"strconv"
	"unicode/utf8"
)

// Newline identifies one of the eight recognized line-termination sequences. The constants are declared in ascending
// lexicographic order of their string representations, so comparing two Newline values with < orders them the same way
// [Set.Iter] yields them.
type Newline uint8

const (
	LineFeed           Newline = iota // "\n" (U+000A)
	VerticalTab                       // "\v" (U+000B)
	FormFeed                          // "\f" (U+000C)
	CarriageReturn                    // "\r" (U+000D)
	CrLf                              // "\r\n"
	NextLine                          // U+0085 (NEL)
	LineSeparator                     // U+2028 (LS)
	ParagraphSeparator                // U+2029 (PS)
)

// Count is the number of Newline variants.
const Count = 8

var sequences = [Count]string{
	LineFeed:           "\n",
	VerticalTab:        "\v",
	FormFeed:           "\f",
	CarriageReturn:     "\r",
	CrLf:               "\r\n",
	NextLine:           "\u0085",
	LineSeparator:      "\u2028",
	ParagraphSeparator: "\u2029",
}

var names = [Count]string{
	LineFeed:           "LineFeed",
	VerticalTab:        "VerticalTab",
	FormFeed:           "FormFeed",
	CarriageReturn:     "CarriageReturn",
	CrLf:               "CrLf",
	NextLine:           "NextLine",
	LineSeparator:      "LineSeparator",
	ParagraphSeparator: "ParagraphSeparator",
}

// Newlines returns a fresh slice of all Newline variants in ascending order.
func Newlines() []Newline {
	return []Newline{
		LineFeed,
		VerticalTab,
		FormFeed,
		CarriageReturn,
		CrLf,
		NextLine,
		LineSeparator,
		ParagraphSeparator,
	}
}

// String returns the variant's name, e.g. "LineFeed".
func (nl Newline) String() string {
	if int(nl) < len(names) {
		return names[nl]
	}
	return "Newline(" + strconv.Itoa(int(nl)) + ")"
}

// Sequence returns the characters that make up nl, e.g. "\r\n" for [CrLf].
func (nl Newline) Sequence() string {
	return sequences[nl]
}

// Rune returns nl's single-character form. ok is false for [CrLf], which has no single-character form.
func (nl Newline) Rune() (r rune, ok bool) {
	if nl == CrLf {
		return 0, false
	}
	return nl.lead(), true
}

// RuneLen returns the number of characters in nl's sequence: 2 for [CrLf], 1 for everything else.
func (nl Newline) RuneLen() int {
	if nl == CrLf {
		return 2
	}
	return 1
}

// ByteLen returns the length of nl's sequence in UTF-8 bytes.
func (nl Newline) ByteLen() int {
	return len(nl.Sequence())
}

// lead returns the first character of nl's sequence. This is the character stored in a Set's pattern; it is unique
// across variants except that CarriageReturn and CrLf both lead with '\r'.
func (nl Newline) lead() rune {
	r, _ := utf8.DecodeRuneInString(nl.Sequence())
	return r
}

// FromRune returns the Newline whose sequence is exactly the single character r. The error is of type
// [*InvalidRuneError] when r is not a newline character. Note that a '\r' always converts to [CarriageReturn], never to
// [CrLf]; only context in the surrounding text can distinguish the two.
func FromRune(r rune) (Newline, error) {
	if nl, ok := newlineForRune(r); ok {
		return nl, nil
	}
	return 0, &InvalidRuneError{Rune: r}
}

// FromSequence returns the Newline whose sequence is exactly s. The error is of type [*InvalidSequenceError] when s is
// not one of the eight recognized sequences.
func FromSequence(s string) (Newline, error) {
	if s == "\r\n" {
		return CrLf, nil
	}
	if r, size := utf8.DecodeRuneInString(s); size > 0 && size == len(s) {
		if nl, ok := newlineForRune(r); ok {
			return nl, nil
		}
	}
	return 0, &InvalidSequenceError{Sequence: s}
}

// newlineForRune is the closed char-to-Newline table. It is total over every character the package ever stores in a
// pattern, so a false return deep inside the set machinery indicates a broken invariant, not bad input.
func newlineForRune(r rune) (Newline, bool) {
	switch r {
	case '\n':
		return LineFeed, true
	case '\v':
		return VerticalTab, true
	case '\f':
		return FormFeed, true
	case '\r':
		return CarriageReturn, true
	case '\u0085':
		return NextLine, true
	case '\u2028':
		return LineSeparator, true
	case '\u2029':
		return ParagraphSeparator, true
	}
	return 0, false
}
