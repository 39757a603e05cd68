package newlines

import (
	"slices"
	"strings"
)

// Set is a set of [Newline] values. The zero value is the empty set.
//
// Internally a Set stores the sorted leading characters of its members (the search pattern) plus two flags recording
// whether CarriageReturn and CrLf are members, since both occupy the single '\r' pattern slot. Everything is held
// inline in a few machine words: Sets are copied by value, compared with ==, and never allocate.
type Set struct {
	// pattern holds the set of leading characters of the members' sequences. '\r' is present iff cr || crlf.
	pattern charSet

	cr   bool // whether CarriageReturn is a member
	crlf bool // whether CrLf is a member
}

// SetOf returns the Set containing exactly the given newlines. Duplicates are ignored and order is irrelevant.
func SetOf(nls ...Newline) Set {
	sorted := slices.Clone(nls)
	slices.Sort(sorted)
	var s Set
	prev := rune(-1)
	for _, nl := range sorted {
		switch nl {
		case CarriageReturn:
			s.cr = true
		case CrLf:
			s.crlf = true
		}
		if r := nl.lead(); r != prev {
			s.pattern.push(r)
			prev = r
		}
	}
	return s
}

// Len returns the number of members. CarriageReturn and CrLf count separately even though they share a pattern slot.
func (s Set) Len() int {
	n := s.pattern.len()
	if s.cr && s.crlf {
		n++
	}
	return n
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	return s.pattern.isEmpty()
}

// Contains reports whether nl is a member of the set.
func (s Set) Contains(nl Newline) bool {
	switch nl {
	case CarriageReturn:
		return s.cr
	case CrLf:
		return s.crlf
	default:
		return s.pattern.contains(nl.lead())
	}
}

// Insert adds nl to the set and reports whether it was not already a member.
func (s *Set) Insert(nl Newline) bool {
	switch nl {
	case CarriageReturn:
		if s.cr {
			return false
		}
		s.cr = true
		if s.crlf {
			return true // '\r' is already in the pattern
		}
	case CrLf:
		if s.crlf {
			return false
		}
		s.crlf = true
		if s.cr {
			return true
		}
	}
	return s.pattern.insert(nl.lead())
}

// Remove deletes nl from the set and reports whether it had been a member.
func (s *Set) Remove(nl Newline) bool {
	switch nl {
	case CarriageReturn:
		if !s.cr {
			return false
		}
		s.cr = false
		if s.crlf {
			return true // CrLf still needs the '\r' pattern slot
		}
	case CrLf:
		if !s.crlf {
			return false
		}
		s.crlf = false
		if s.cr {
			return true
		}
	}
	return s.pattern.remove(nl.lead())
}

// Clear removes all members.
func (s *Set) Clear() {
	*s = Set{}
}

// Extend inserts each of the given newlines into the set.
func (s *Set) Extend(nls ...Newline) {
	for _, nl := range nls {
		s.Insert(nl)
	}
}

// Iter returns a double-ended iterator over the members in ascending order. The iterator operates on a snapshot of s.
func (s Set) Iter() *Iter {
	return &Iter{inner: s.pattern.iter(), cr: s.cr, crlf: s.crlf}
}

// Slice returns the members in ascending order as a fresh slice.
func (s Set) Slice() []Newline {
	out := make([]Newline, 0, s.Len())
	it := s.Iter()
	for nl, ok := it.Next(); ok; nl, ok = it.Next() {
		out = append(out, nl)
	}
	return out
}

// String returns the members in ascending order in Go set notation, e.g. "{LineFeed, CrLf}".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, nl := range s.Slice() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(nl.String())
	}
	b.WriteByte('}')
	return b.String()
}

// Pattern returns the sorted leading characters of the members as a string, suitable for the strings.IndexAny family
// of functions. A '\r' in the pattern may stand for CarriageReturn, CrLf, or both; use [Set.Contains] on those two
// members to disambiguate a raw '\r' found in text by inspecting the character that follows it.
func (s Set) Pattern() string {
	return string(s.pattern.slice())
}
