package newlines

import (
	"strings"
	"unicode/utf8"
)

// Search returns the byte span of the first occurrence of nl's sequence in text. ok is false when there is no
// occurrence. Note that searching for CarriageReturn will match the '\r' of a CR LF pair; use a [Set] when CR and CrLf
// must be distinguished.
func (nl Newline) Search(text string) (start, end int, ok bool) {
	i := strings.Index(text, nl.Sequence())
	if i < 0 {
		return 0, 0, false
	}
	return i, i + nl.ByteLen(), true
}

// SearchLast returns the byte span of the last occurrence of nl's sequence in text. ok is false when there is no
// occurrence.
func (nl Newline) SearchLast(text string) (start, end int, ok bool) {
	i := strings.LastIndex(text, nl.Sequence())
	if i < 0 {
		return 0, 0, false
	}
	return i, i + nl.ByteLen(), true
}

// Search returns the byte span of the first occurrence in text of any member of s. ok is false when there is none.
// When the set contains CrLf, a '\r' immediately followed by '\n' matches as the two-byte CrLf sequence; a bare '\r'
// matches only when CarriageReturn itself is a member.
func (s Set) Search(text string) (start, end int, ok bool) {
	if s.IsEmpty() {
		return 0, 0, false
	}
	pat := s.Pattern()
	from := 0
	for {
		i := strings.IndexAny(text[from:], pat)
		if i < 0 {
			return 0, 0, false
		}
		i += from
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\r' {
			if s.crlf && strings.HasPrefix(text[i+1:], "\n") {
				return i, i + 2, true
			}
			if !s.cr {
				// Only CrLf wanted '\r', and no '\n' follows; keep looking.
				from = i + 1
				continue
			}
		}
		return i, i + size, true
	}
}

// SearchLast returns the byte span of the last occurrence in text of any member of s, with the same CR/CrLf
// disambiguation as [Set.Search]. ok is false when there is none.
func (s Set) SearchLast(text string) (start, end int, ok bool) {
	if s.IsEmpty() {
		return 0, 0, false
	}
	pat := s.Pattern()
	limit := len(text)
	for {
		i := strings.LastIndexAny(text[:limit], pat)
		if i < 0 {
			return 0, 0, false
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case s.crlf && r == '\n' && strings.HasSuffix(text[:i], "\r"):
			// The pattern matched the '\n' of a CR LF pair (LineFeed is a member too); report the longer CrLf span.
			return i - 1, i + 1, true
		case s.crlf && r == '\r' && strings.HasPrefix(text[i+1:], "\n"):
			return i, i + 2, true
		case r == '\r' && !s.cr:
			// Only CrLf wanted '\r', and no '\n' follows; keep looking leftward.
			limit = i
			continue
		default:
			return i, i + size, true
		}
	}
}
