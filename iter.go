package newlines

// Iter is a double-ended iterator over the members of a [Set] in ascending order. It traverses a copy taken when the
// iterator was created, so mutating the originating Set does not disturb it. The forward and backward ends advance
// independently toward each other and the iterator is exhausted when they meet.
//
// This is where the shared '\r' slot is expanded back into logical members: when both CarriageReturn and CrLf are
// present, the one stored '\r' yields CarriageReturn then CrLf going forward, and CrLf then CarriageReturn going
// backward.
type Iter struct {
	inner charIter
	cr    bool
	crlf  bool
}

// Len returns the exact number of values remaining, counting both ends.
func (it *Iter) Len() int {
	n := it.inner.remaining()
	if it.cr && it.crlf {
		n++
	}
	return n
}

// Next returns the next member from the front of the iterator. ok is false once the iterator is exhausted.
func (it *Iter) Next() (nl Newline, ok bool) {
	for {
		r, ok := it.inner.peek()
		if !ok {
			return 0, false
		}
		if r == '\r' {
			switch {
			case it.cr:
				it.cr = false
				if !it.crlf {
					it.inner.next()
				}
				// When crlf is still set, '\r' stays put so the next call yields CrLf.
				return CarriageReturn, true
			case it.crlf:
				it.crlf = false
				it.inner.next()
				return CrLf, true
			default:
				// A '\r' with neither flag set resolves to no member at all; skip it.
				it.inner.next()
				continue
			}
		}
		it.inner.next()
		nl, mapped := newlineForRune(r)
		if !mapped {
			panic("newlines: pattern character does not map to a Newline")
		}
		return nl, true
	}
}

// NextBack returns the next member from the back of the iterator, i.e. members in descending order. ok is false once
// the iterator is exhausted.
func (it *Iter) NextBack() (nl Newline, ok bool) {
	for {
		r, ok := it.inner.peekBack()
		if !ok {
			return 0, false
		}
		if r == '\r' {
			switch {
			case it.crlf:
				it.crlf = false
				if !it.cr {
					it.inner.nextBack()
				}
				// When cr is still set, '\r' stays put so the next call yields CarriageReturn.
				return CrLf, true
			case it.cr:
				it.cr = false
				it.inner.nextBack()
				return CarriageReturn, true
			default:
				it.inner.nextBack()
				continue
			}
		}
		it.inner.nextBack()
		nl, mapped := newlineForRune(r)
		if !mapped {
			panic("newlines: pattern character does not map to a Newline")
		}
		return nl, true
	}
}
