package editor

import (
	"io"
	"os"
	"testing"

	"github.com/gokilo/editor/internal/buffer"
	"github.com/gokilo/editor/internal/syntax"
	"github.com/gokilo/editor/internal/terminal"
	"github.com/gokilo/editor/internal/viewport"
	"github.com/stretchr/testify/require"
)

func findTestController() *Controller {
	buf := buffer.New(nil)
	buf.InsertRow(0, []byte("no match here"))
	buf.InsertRow(1, []byte("the needle is here"))
	buf.InsertRow(2, []byte("another needle too"))
	view := viewport.New(10, 80)
	c := NewController(nil, buf, view, nil)
	c.find = findState{lastMatchRow: -1, direction: 1}
	return c
}

// Scenario 5 (spec.md §8): typing a query moves the cursor to the first
// match and paints it MATCH; arrow-down continues to the next match.
func TestFindMovesToFirstMatchAndAdvances(t *testing.T) {
	c := findTestController()

	c.onFindKey("needle", 'e')
	require.Equal(t, 1, c.buf.CursorY)
	require.Equal(t, 4, c.buf.CursorX)

	row := c.buf.Row(1)
	require.Equal(t, byte(syntax.Match), row.Hl[4])

	c.onFindKey("needle", terminal.ArrowDown)
	require.Equal(t, 2, c.buf.CursorY)

	// The first match's highlight is restored once the search moves past it.
	require.NotEqual(t, byte(syntax.Match), row.Hl[4])
}

func TestFindWrapsAroundBuffer(t *testing.T) {
	c := findTestController()
	c.find.lastMatchRow = 2 // already on the last matching row

	c.onFindKey("needle", terminal.ArrowDown)
	require.Equal(t, 1, c.buf.CursorY, "search should wrap back to row 0's successor")
}

func TestFindEscResetsSearchState(t *testing.T) {
	c := findTestController()
	c.buf.CursorY, c.buf.CursorX = 0, 0
	c.view.RowOffset, c.view.ColOffset = 0, 0

	c.onFindKey("needle", 'e') // matches row 1
	require.Equal(t, 1, c.buf.CursorY)

	c.onFindKey("needle", terminal.Esc)
	require.Equal(t, -1, c.find.lastMatchRow)
}

func TestPromptCommitsOnEnter(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	buf := buffer.New(nil)
	buf.InsertRow(0, []byte("x"))
	view := viewport.New(3, 20)
	c := NewController(terminal.New(r, io.Discard), buf, view, nil)

	_, err = w.Write([]byte("ab\x7f c\r"))
	require.NoError(t, err)

	got, ok := c.Prompt("Search: %s", nil)
	require.True(t, ok)
	require.Equal(t, "a c", got)
}

func TestPromptEscCancels(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	buf := buffer.New(nil)
	buf.InsertRow(0, []byte("x"))
	view := viewport.New(3, 20)
	c := NewController(terminal.New(r, io.Discard), buf, view, nil)

	_, err = w.Write([]byte("ab\x1b"))
	require.NoError(t, err)
	require.NoError(t, w.Close()) // EOF stands in for the 100ms poll lapsing

	got, ok := c.Prompt("Search: %s", nil)
	require.False(t, ok)
	require.Equal(t, "", got)
}
