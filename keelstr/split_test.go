package keelstr_test

import (
	"reflect"
	"testing"

	"github.com/keelbase/keel-go/keelstr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pieces(in [][]byte) []string {
	out := make([]string, len(in))
	for i, p := range in {
		out[i] = string(p)
	}
	return out
}

func TestSplit(t *testing.T) {
	got := keelstr.Split([]byte("a,b,c"), ',')
	assert.Equal(t, []string{"a", "b", "c"}, pieces(got))

	got = keelstr.Split([]byte(" a , ,,b,"), ',')
	assert.Equal(t, []string{" a ", " ", "", "b", ""}, pieces(got), "empty pieces kept by default")

	got = keelstr.Split([]byte(""), ',')
	assert.Equal(t, []string{""}, pieces(got), "empty text is one empty piece")

	got = keelstr.Split([]byte("abc"), ',')
	assert.Equal(t, []string{"abc"}, pieces(got), "no delimiter")
}

func TestSplitSkipEmpty(t *testing.T) {
	got := keelstr.Split([]byte(" a , ,,b,"), ',', keelstr.SkipEmpty())
	assert.Equal(t, []string{" a ", " ", "b"}, pieces(got))

	got = keelstr.Split([]byte(""), ',', keelstr.SkipEmpty())
	assert.Empty(t, got)
}

func TestSplitSkipWhitespace(t *testing.T) {
	got := keelstr.Split([]byte(" a , ,,b,"), ',', keelstr.SkipWhitespace())
	assert.Equal(t, []string{" a ", "b"}, pieces(got))

	got = keelstr.Split([]byte(" \t , \n "), ',', keelstr.SkipWhitespace())
	assert.Empty(t, got, "all-whitespace pieces dropped")
}

func TestSplitAliasesInput(t *testing.T) {
	text := []byte("a,b")
	got := keelstr.Split(text, ',')
	require.Len(t, got, 2)
	assert.Equal(t,
		reflect.ValueOf(text).Pointer(),
		reflect.ValueOf(got[0]).Pointer(),
		"pieces are subviews of the input")
	text[0] = 'z'
	assert.Equal(t, "z", string(got[0]), "no copy was made")
}
