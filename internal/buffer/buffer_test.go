package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gokilo/editor/internal/syntax"
	"github.com/stretchr/testify/require"
)

func cDefs(t *testing.T) []syntax.Definition {
	t.Helper()
	defs, err := syntax.LoadDatabase()
	require.NoError(t, err)
	return defs
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Scenario 1 (spec.md §8): load a 3-line file with a tab, check render
// expansion.
func TestLoadExpandsTabs(t *testing.T) {
	path := writeTempFile(t, "in.txt", "ab\n\tcd\nef")
	b := New(nil)
	require.NoError(t, b.Load(path))

	require.Equal(t, 3, b.RowsCount())
	require.Equal(t, "        cd", string(b.Row(1).Render))
	require.Equal(t, 10, b.Row(1).RenderSize())
	require.Equal(t, 0, b.Dirty)
}

// Scenario 2 (spec.md §8): pressing CR mid-row splits it.
func TestInsertNewlineSplitsRow(t *testing.T) {
	b := New(nil)
	b.InsertRow(0, []byte("abcd"))
	b.Dirty = 0
	b.CursorY, b.CursorX = 0, 2

	b.InsertNewlineAtCursor()

	require.Equal(t, "ab", string(b.Row(0).Chars))
	require.Equal(t, "cd", string(b.Row(1).Chars))
	require.Equal(t, 1, b.CursorY)
	require.Equal(t, 0, b.CursorX)
	require.Greater(t, b.Dirty, 0)
}

// Scenario 3 (spec.md §8): deleting at the start of a row joins it with
// the previous one.
func TestDeleteCharAtCursorJoinsRows(t *testing.T) {
	b := New(nil)
	b.InsertRow(0, []byte("ab"))
	b.InsertRow(1, []byte("cd"))
	b.CursorY, b.CursorX = 1, 0

	b.DeleteCharAtCursor()

	require.Equal(t, 1, b.RowsCount())
	require.Equal(t, "abcd", string(b.Row(0).Chars))
	require.Equal(t, 0, b.CursorY)
	require.Equal(t, 2, b.CursorX)
}

func TestDeleteCharAtCursorNoopAtOrigin(t *testing.T) {
	b := New(nil)
	b.InsertRow(0, []byte("abcd"))
	b.CursorY, b.CursorX = 0, 0

	b.DeleteCharAtCursor()

	require.Equal(t, "abcd", string(b.Row(0).Chars))
}

func TestInsertCharAtCursorPastLastRowAppendsRow(t *testing.T) {
	b := New(nil)
	b.CursorY, b.CursorX = 0, 0

	b.InsertCharAtCursor('x')

	require.Equal(t, 1, b.RowsCount())
	require.Equal(t, "x", string(b.Row(0).Chars))
	require.Equal(t, 1, b.CursorX)
}

// Scenario 4 (spec.md §8): an unterminated multi-line comment on row 0
// continues onto row 1.
func TestLoadCarriesOpenCommentAcrossRows(t *testing.T) {
	path := writeTempFile(t, "in.c", "/* multi\nstill */ code")
	b := New(cDefs(t))
	require.NoError(t, b.Load(path))

	require.True(t, b.Row(0).HlOpenComment)
	require.False(t, b.Row(1).HlOpenComment)
	for i := 0; i < 8; i++ {
		require.Equal(t, byte(syntax.MLComment), b.Row(1).Hl[i])
	}
	for i := 8; i < b.Row(1).RenderSize(); i++ {
		require.Equal(t, byte(syntax.Normal), b.Row(1).Hl[i])
	}
}

// Round-trip property (spec.md §8): load then save should only ever
// differ by a stripped \r and a trailing newline on the last line.
func TestRoundTripLoadSave(t *testing.T) {
	path := writeTempFile(t, "roundtrip.txt", "one\r\ntwo\nthree")
	b := New(nil)
	require.NoError(t, b.Load(path))

	n, err := b.Save()
	require.NoError(t, err)
	require.Greater(t, n, 0)
	require.Equal(t, 0, b.Dirty)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "one\ntwo\nthree\n", string(got))
}

func TestSaveFailureLeavesDirtySet(t *testing.T) {
	b := New(nil)
	b.InsertRow(0, []byte("abc"))
	b.Filename = filepath.Join(t.TempDir(), "nope", "still-nope.txt")

	_, err := b.Save()
	require.Error(t, err)
	require.Greater(t, b.Dirty, 0)
}

func TestCursorXRenderXInverses(t *testing.T) {
	r := newRow(0, []byte("a\tb\tcd"))
	r.updateRender()

	for cx := 0; cx <= r.Size(); cx++ {
		rx := r.CursorXToRenderX(cx)
		back := r.RenderXToCursorX(rx)
		require.Equal(t, cx, back, "cx=%d rx=%d", cx, rx)
	}
}
