package newlines

// opMode selects which diff events a set operation keeps at the character level. Difference and symmetric difference
// keep Both('\r') even though both operands hold the character: sharing '\r' does not imply sharing a member (one
// operand may contain only CarriageReturn and the other only CrLf), so '\r' is passed through for the flag-level
// resolution in combine to settle.
type opMode uint8

const (
	opUnion opMode = iota
	opIntersection
	opDifference
	opSymmetricDifference
)

func (m opMode) keep(ev diffEvent) bool {
	switch m {
	case opUnion:
		return true
	case opIntersection:
		return ev.side == diffBoth
	case opDifference:
		return ev.side == diffLeft || (ev.side == diffBoth && ev.r == '\r')
	default: // opSymmetricDifference
		return ev.side != diffBoth || ev.r == '\r'
	}
}

// combine runs one zipper merge of the two patterns, keeps the events m selects, and rebuilds a Set around the already
// combined cr/crlf flags. A surviving '\r' is admitted to the result's pattern only if at least one flag wants it;
// otherwise it resolves to no member and is dropped. Events arrive in ascending order, so the pattern is built with the
// unchecked fast path.
func (s Set) combine(other Set, m opMode, cr, crlf bool) Set {
	out := Set{cr: cr, crlf: crlf}
	d := s.pattern.diff(other.pattern)
	for {
		ev, ok := d.next()
		if !ok {
			return out
		}
		if !m.keep(ev) {
			continue
		}
		if ev.r == '\r' && !cr && !crlf {
			continue
		}
		out.pattern.push(ev.r)
	}
}

// Union returns the set of newlines in s, other, or both. Neither operand is modified.
func (s Set) Union(other Set) Set {
	return s.combine(other, opUnion, s.cr || other.cr, s.crlf || other.crlf)
}

// Intersection returns the set of newlines in both s and other. Neither operand is modified.
func (s Set) Intersection(other Set) Set {
	return s.combine(other, opIntersection, s.cr && other.cr, s.crlf && other.crlf)
}

// Difference returns the set of newlines in s but not in other. Neither operand is modified.
func (s Set) Difference(other Set) Set {
	return s.combine(other, opDifference, s.cr && !other.cr, s.crlf && !other.crlf)
}

// SymmetricDifference returns the set of newlines in exactly one of s and other. Neither operand is modified.
func (s Set) SymmetricDifference(other Set) Set {
	return s.combine(other, opSymmetricDifference, s.cr != other.cr, s.crlf != other.crlf)
}

// Complement returns the set of newlines not in s.
func (s Set) Complement() Set {
	return universe.combine(s, opDifference, !s.cr, !s.crlf)
}

// IsDisjoint reports whether s and other have no members in common. It returns on the first shared member found.
func (s Set) IsDisjoint(other Set) bool {
	d := s.pattern.diff(other.pattern)
	for {
		ev, ok := d.next()
		if !ok {
			return true
		}
		if ev.side != diffBoth {
			continue
		}
		if ev.r == '\r' {
			// Sharing the character is not sharing a member; compare the flag pairs.
			if (s.cr && other.cr) || (s.crlf && other.crlf) {
				return false
			}
			continue
		}
		return false
	}
}

// IsSubsetOf reports whether every member of s is a member of other. It returns on the first counterexample found.
func (s Set) IsSubsetOf(other Set) bool {
	d := s.pattern.diff(other.pattern)
	for {
		ev, ok := d.next()
		if !ok {
			return true
		}
		switch ev.side {
		case diffLeft:
			return false
		case diffBoth:
			if ev.r == '\r' && ((s.cr && !other.cr) || (s.crlf && !other.crlf)) {
				return false
			}
		}
	}
}

// IsSupersetOf reports whether every member of other is a member of s.
func (s Set) IsSupersetOf(other Set) bool {
	return other.IsSubsetOf(s)
}
