package newlines

import "strconv"

// InvalidRuneError is returned by [FromRune] when given a character that is not a recognized newline character.
type InvalidRuneError struct {
	Rune rune // The rejected character.
}

// Error implements the error interface.
func (e *InvalidRuneError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "newlines: " + strconv.QuoteRune(e.Rune) + " is not a newline character"
}

// InvalidSequenceError is returned by [FromSequence] when given a string that is not a recognized newline sequence.
type InvalidSequenceError struct {
	Sequence string // The rejected string.
}

// Error implements the error interface.
func (e *InvalidSequenceError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "newlines: " + strconv.Quote(e.Sequence) + " is not a newline sequence"
}
