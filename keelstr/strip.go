// keelstr provides allocation-free prefix, suffix, and whitespace
// primitives over borrowed byte views. A view is an ordinary []byte: the
// functions here only ever narrow a view, never extend or copy it, so a
// result is always backed by the caller's bytes. Everything operates on
// raw bytes with no awareness of multi-byte encodings.
package keelstr

import (
	"bytes"
)

// ConsumePrefix strips expected from the start of *v, reporting whether it
// matched. On a mismatch *v is left unchanged. An empty expected always
// matches and leaves *v as it was.
func ConsumePrefix(v *[]byte, expected []byte) bool {
	if !bytes.HasPrefix(*v, expected) {
		return false
	}
	*v = (*v)[len(expected):]
	return true
}

// ConsumeSuffix strips expected from the end of *v, reporting whether it
// matched. On a mismatch *v is left unchanged.
func ConsumeSuffix(v *[]byte, expected []byte) bool {
	if !bytes.HasSuffix(*v, expected) {
		return false
	}
	*v = (*v)[:len(*v)-len(expected)]
	return true
}

// StripPrefix returns v narrowed past prefix when v starts with it, and v
// unchanged otherwise.
func StripPrefix(v, prefix []byte) []byte {
	if bytes.HasPrefix(v, prefix) {
		return v[len(prefix):]
	}
	return v
}

// StripSuffix returns v narrowed before suffix when v ends with it, and v
// unchanged otherwise.
func StripSuffix(v, suffix []byte) []byte {
	if bytes.HasSuffix(v, suffix) {
		return v[:len(v)-len(suffix)]
	}
	return v
}

// SkipLeadingWhitespace returns the tail of v starting at the first byte
// that is not ASCII whitespace. When v is nothing but whitespace the empty
// tail is returned, never nil (given non-nil input).
func SkipLeadingWhitespace(v []byte) []byte {
	i := 0
	for i < len(v) && asciiSpace[v[i]] {
		i++
	}
	return v[i:]
}

// SkipLeadingWhitespaceString is SkipLeadingWhitespace for strings.
func SkipLeadingWhitespaceString(s string) string {
	i := 0
	for i < len(s) && asciiSpace[s[i]] {
		i++
	}
	return s[i:]
}

// StripASCIIWhitespace returns v with all leading and trailing ASCII
// whitespace removed.
func StripASCIIWhitespace(v []byte) []byte {
	v = SkipLeadingWhitespace(v)
	for len(v) > 0 && asciiSpace[v[len(v)-1]] {
		v = v[:len(v)-1]
	}
	return v
}

// ReplaceCharacter overwrites, in place, every byte of buf equal to remove
// with replaceWith.
func ReplaceCharacter(buf []byte, remove byte, replaceWith byte) {
	for i, b := range buf {
		if b == remove {
			buf[i] = replaceWith
		}
	}
}

// ReplaceCharacters overwrites, in place, every byte of buf whose value
// appears in removeSet with replaceWith.
//
// Warning: this operates on bytes. When removeSet holds bytes of a
// multi-byte (non-ASCII) character, individual bytes of other characters
// can match and the buffer turns into garbage that will break downstream
// code.
func ReplaceCharacters(buf []byte, removeSet []byte, replaceWith byte) {
	if len(removeSet) == 0 {
		return
	}
	var in [256]bool
	for _, b := range removeSet {
		in[b] = true
	}
	for i, b := range buf {
		if in[b] {
			buf[i] = replaceWith
		}
	}
}
