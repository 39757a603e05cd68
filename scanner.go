package newlines

import (
	"bufio"
	"bytes"
	"unicode/utf8"
)

// Matches iterates over every occurrence in a string of any member of a [Set], in order of position. Use it via
// [Set.Matches]:
//
//	m := set.Matches(text)
//	for m.Next() {
//		fmt.Println(m.Start(), m.End(), m.Newline())
//	}
type Matches struct {
	set   Set
	text  string
	pos   int
	start int
	end   int
	nl    Newline
}

// Matches returns an iterator over every occurrence of a member of s in text.
func (s Set) Matches(text string) *Matches {
	return &Matches{set: s, text: text}
}

// Next advances to the next occurrence and reports whether one was found.
func (m *Matches) Next() bool {
	start, end, ok := m.set.Search(m.text[m.pos:])
	if !ok {
		m.start, m.end = len(m.text), len(m.text)
		return false
	}
	m.start = m.pos + start
	m.end = m.pos + end
	m.pos = m.end
	nl, err := FromSequence(m.text[m.start:m.end])
	if err != nil {
		panic("newlines: search returned a span that is not a newline sequence")
	}
	m.nl = nl
	return true
}

// Start returns the byte position of the current occurrence.
func (m *Matches) Start() int {
	return m.start
}

// End returns the byte position just after the current occurrence, so the occurrence is text[Start():End()].
func (m *Matches) End() int {
	return m.end
}

// Text returns the matched sequence itself.
func (m *Matches) Text() string {
	return m.text[m.start:m.end]
}

// Newline returns the matched variant.
func (m *Matches) Newline() Newline {
	return m.nl
}

// SplitFunc returns a [bufio.SplitFunc] that tokenizes input into lines terminated by any member of s. Terminators are
// not included in the tokens, and a final unterminated line is returned as its own token. When the set contains CrLf
// but a buffer ends in a bare '\r', the split function requests more input rather than guess whether a '\n' follows.
//
// An empty set yields the entire input as a single token.
func (s Set) SplitFunc() bufio.SplitFunc {
	pat := s.Pattern()
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		from := 0
		for pat != "" {
			i := bytes.IndexAny(data[from:], pat)
			if i < 0 {
				break
			}
			i += from
			r, size := utf8.DecodeRune(data[i:])
			if r == '\r' {
				if i+1 == len(data) && s.crlf && !atEOF {
					// Cannot yet tell CR from CRLF; ask for the next byte.
					return 0, nil, nil
				}
				if s.crlf && i+1 < len(data) && data[i+1] == '\n' {
					return i + 2, data[:i], nil
				}
				if !s.cr {
					// Only CrLf wanted '\r', and no '\n' follows; keep looking.
					from = i + 1
					continue
				}
			}
			return i + size, data[:i], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}
