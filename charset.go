package newlines

import "slices"

// patternCap is the maximum number of characters a pattern can hold: the count of distinct leading characters among the
// Newline sequences. It is Count-1, not Count, because CarriageReturn and CrLf share '\r'.
const patternCap = Count - 1

// charSet is a sorted set of at most patternCap characters, backed by a fixed-size array. The first n slots hold the
// members in strictly ascending order; the remaining slots are always zero so that values containing a charSet stay
// meaningfully comparable with ==.
type charSet struct {
	runes [patternCap]rune
	n     int
}

func (cs *charSet) len() int {
	return cs.n
}

func (cs *charSet) isEmpty() bool {
	return cs.n == 0
}

func (cs *charSet) slice() []rune {
	return cs.runes[:cs.n]
}

func (cs *charSet) contains(r rune) bool {
	_, ok := slices.BinarySearch(cs.slice(), r)
	return ok
}

// insert adds r to the set and reports whether it was not already present. It panics if the set is full and r is new:
// the capacity is a closed constant of the domain, so overflowing it means a caller has broken an invariant.
func (cs *charSet) insert(r rune) bool {
	i, ok := slices.BinarySearch(cs.slice(), r)
	if ok {
		return false
	}
	if cs.n == patternCap {
		panic("newlines: insert on full charSet")
	}
	copy(cs.runes[i+1:cs.n+1], cs.runes[i:cs.n])
	cs.runes[i] = r
	cs.n++
	return true
}

// remove deletes r from the set and reports whether it had been present. Trailing slots are re-zeroed to preserve ==
// comparability.
func (cs *charSet) remove(r rune) bool {
	i, ok := slices.BinarySearch(cs.slice(), r)
	if !ok {
		return false
	}
	copy(cs.runes[i:cs.n-1], cs.runes[i+1:cs.n])
	cs.n--
	cs.runes[cs.n] = 0
	return true
}

// push appends r without searching or shifting. The caller must guarantee r is greater than every current member, or
// the sortedness invariant is silently violated; it is used only when building from an already-ascending source.
func (cs *charSet) push(r rune) {
	cs.runes[cs.n] = r
	cs.n++
}

func (cs charSet) iter() charIter {
	return charIter{cs: cs}
}

func (cs charSet) diff(other charSet) diffIter {
	return diffIter{left: cs.iter(), right: other.iter()}
}

// charIter is a double-ended cursor over a copy of a charSet. The front index i and the shrinking length cs.n advance
// toward each other; the iterator is exhausted when they meet.
type charIter struct {
	cs charSet
	i  int
}

func (it *charIter) peek() (rune, bool) {
	if it.i < it.cs.n {
		return it.cs.runes[it.i], true
	}
	return 0, false
}

func (it *charIter) peekBack() (rune, bool) {
	if it.cs.n-1 >= it.i {
		return it.cs.runes[it.cs.n-1], true
	}
	return 0, false
}

func (it *charIter) next() (rune, bool) {
	r, ok := it.peek()
	if ok {
		it.i++
	}
	return r, ok
}

func (it *charIter) nextBack() (rune, bool) {
	r, ok := it.peekBack()
	if ok {
		it.cs.n--
	}
	return r, ok
}

func (it *charIter) remaining() int {
	return it.cs.n - it.i
}

// diffSide tags which operand(s) of a diff a character was found in.
type diffSide uint8

const (
	diffLeft diffSide = iota
	diffBoth
	diffRight
)

// diffEvent is one step of a zipper merge over two sorted charSets.
type diffEvent struct {
	r    rune
	side diffSide
}

// diffIter walks two sorted charSets in merge order, yielding every character present in exactly one or both, in
// ascending order, each exactly once. Every binary set operation is built on this single merge.
type diffIter struct {
	left  charIter
	right charIter
}

func (d *diffIter) next() (diffEvent, bool) {
	lc, lok := d.left.peek()
	rc, rok := d.right.peek()
	switch {
	case lok && rok:
		switch {
		case lc < rc:
			d.left.next()
			return diffEvent{r: lc, side: diffLeft}, true
		case lc > rc:
			d.right.next()
			return diffEvent{r: rc, side: diffRight}, true
		default:
			d.left.next()
			d.right.next()
			return diffEvent{r: lc, side: diffBoth}, true
		}
	case lok:
		d.left.next()
		return diffEvent{r: lc, side: diffLeft}, true
	case rok:
		d.right.next()
		return diffEvent{r: rc, side: diffRight}, true
	default:
		return diffEvent{}, false
	}
}
