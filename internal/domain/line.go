package domain

import "bytes"

// Line holds the exact bytes of one input line, including the line
// terminator it was read with (if any). Treat it as immutable.
type Line []byte

const terminators = "\r\n"

// Key returns the comparison key: the content without trailing line
// terminator characters. Other trailing whitespace is kept.
func (l Line) Key() []byte {
	return bytes.TrimRight(l, terminators)
}

// SameKey reports whether two lines compare equal for grouping.
func SameKey(a, b Line) bool {
	return bytes.Equal(a.Key(), b.Key())
}
