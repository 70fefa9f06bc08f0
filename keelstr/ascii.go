package keelstr

// asciiSpace marks the six ASCII whitespace bytes: space, tab, newline,
// vertical tab, form feed, carriage return.
var asciiSpace = [256]bool{
	' ':  true,
	'\t': true,
	'\n': true,
	'\v': true,
	'\f': true,
	'\r': true,
}

// IsASCIIWhitespace reports whether b is one of the six ASCII whitespace
// bytes.
func IsASCIIWhitespace(b byte) bool {
	return asciiSpace[b]
}
