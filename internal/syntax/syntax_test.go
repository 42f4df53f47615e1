package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func loadCDef(t *testing.T) *Definition {
	t.Helper()
	defs, err := LoadDatabase()
	require.NoError(t, err)
	require.Len(t, defs, 1)
	require.Equal(t, "c", defs[0].Name)
	return &defs[0]
}

func TestSelectForFilename(t *testing.T) {
	defs, err := LoadDatabase()
	require.NoError(t, err)

	require.NotNil(t, SelectForFilename(defs, "main.c"))
	require.NotNil(t, SelectForFilename(defs, "widget.cpp"))
	require.Nil(t, SelectForFilename(defs, "README.md"))
}

func TestClassifyKeywordsAndTypes(t *testing.T) {
	def := loadCDef(t)
	hl, open := Classify(def, []byte("int x = 0;"), false)
	require.False(t, open)
	require.Equal(t, byte(Keyword2), hl[0]) // "int|" -> type keyword
	require.Equal(t, byte(Keyword2), hl[1])
	require.Equal(t, byte(Keyword2), hl[2])
	require.Equal(t, byte(Normal), hl[3]) // space
	require.Equal(t, byte(Normal), hl[4]) // 'x'
}

func TestClassifyNumber(t *testing.T) {
	def := loadCDef(t)
	hl, _ := Classify(def, []byte("x = 42;"), false)
	require.Equal(t, byte(Number), hl[4])
	require.Equal(t, byte(Number), hl[5])
}

func TestClassifySingleLineComment(t *testing.T) {
	def := loadCDef(t)
	hl, open := Classify(def, []byte("x; // trailing"), false)
	require.False(t, open)
	require.Equal(t, byte(Normal), hl[0])
	for i := 3; i < len(hl); i++ {
		require.Equal(t, byte(Comment), hl[i], "index %d", i)
	}
}

func TestClassifyMultiLineCommentCrossesRows(t *testing.T) {
	def := loadCDef(t)

	hl0, open0 := Classify(def, []byte("/* multi"), false)
	require.True(t, open0)
	for _, tag := range hl0 {
		require.Equal(t, byte(MLComment), tag)
	}

	hl1, open1 := Classify(def, []byte("still */ code"), open0)
	require.False(t, open1)
	for i := 0; i < 8; i++ {
		require.Equal(t, byte(MLComment), hl1[i], "index %d", i)
	}
	for i := 8; i < len(hl1); i++ {
		require.Equal(t, byte(Normal), hl1[i], "index %d", i)
	}
}

func TestClassifyStringGatedOnHighlightNumbersFlag(t *testing.T) {
	// spec.md §9: string classification (rules 4/5) is gated on the
	// HIGHLIGHT_NUMBERS flag, not HIGHLIGHT_STRINGS. Preserved verbatim.
	def := &Definition{
		Name:             "nostrings",
		HighlightNumbers: false,
		HighlightStrings: true,
	}
	hl, _ := Classify(def, []byte(`"hi"`), false)
	for _, tag := range hl {
		require.Equal(t, byte(Normal), tag)
	}

	def2 := &Definition{
		Name:             "hasstrings",
		HighlightNumbers: true,
		HighlightStrings: false,
	}
	hl2, _ := Classify(def2, []byte(`"hi"`), false)
	for _, tag := range hl2 {
		require.Equal(t, byte(String), tag)
	}
}

func TestColorCodes(t *testing.T) {
	require.Equal(t, 36, Comment.Color())
	require.Equal(t, 36, MLComment.Color())
	require.Equal(t, 33, Keyword1.Color())
	require.Equal(t, 32, Keyword2.Color())
	require.Equal(t, 35, String.Color())
	require.Equal(t, 31, Number.Color())
	require.Equal(t, 34, Match.Color())
	require.Equal(t, 39, Normal.Color())
}
