package datefmt

import "strings"

// separatorSet holds the four bytes recognized between pattern parts.
const separatorSet = "/.- "

// IsSeparator reports whether b is a recognized separator byte.
func IsSeparator(b byte) bool {
	return strings.IndexByte(separatorSet, b) >= 0
}

// Separators returns the recognized separator bytes in a fixed order.
func Separators() []byte {
	return []byte(separatorSet)
}
