package keelstr

// Predicate reports whether Split should keep a piece.
type Predicate func(piece []byte) bool

// SkipEmpty returns a predicate that drops zero-length pieces.
//
//	Split([]byte(" a , ,,b,"), ',', SkipEmpty())  →  " a ", " ", "b"
func SkipEmpty() Predicate {
	return func(piece []byte) bool {
		return len(piece) != 0
	}
}

// SkipWhitespace returns a predicate that drops pieces that are empty or
// contain only ASCII whitespace.
//
//	Split([]byte(" a , ,,b,"), ',', SkipWhitespace())  →  " a ", "b"
func SkipWhitespace() Predicate {
	return func(piece []byte) bool {
		return len(StripASCIIWhitespace(piece)) != 0
	}
}

// Split cuts text at every occurrence of delim and returns the pieces
// accepted by every predicate. Pieces are subviews of text; nothing is
// copied. With no predicates, splitting empty text yields one empty piece.
func Split(text []byte, delim byte, preds ...Predicate) [][]byte {
	var out [][]byte
	start := 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] != delim {
			continue
		}
		piece := text[start:i]
		if keep(piece, preds) {
			out = append(out, piece)
		}
		start = i + 1
	}
	return out
}

func keep(piece []byte, preds []Predicate) bool {
	for _, pred := range preds {
		if !pred(piece) {
			return false
		}
	}
	return true
}
