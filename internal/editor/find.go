package editor

import (
	"bytes"

	"github.com/gokilo/editor/internal/syntax"
	"github.com/gokilo/editor/internal/terminal"
)

// findState is the static state the find callback carries across keys
// within a single incremental-search session (spec.md §4.G): the row of
// the last match, the search direction, and the row/bytes needed to
// restore a previous match's highlight.
type findState struct {
	lastMatchRow int
	direction    int
	savedRow     int
	savedHl      []byte
}

// Find saves the cursor and scroll position, opens an incremental-search
// prompt, and restores them if the user cancels (spec.md §4.G).
func (c *Controller) Find() {
	savedCursorX, savedCursorY := c.buf.CursorX, c.buf.CursorY
	savedRowOffset, savedColOffset := c.view.RowOffset, c.view.ColOffset

	c.find = findState{lastMatchRow: -1, direction: 1}

	_, ok := c.Prompt("Search: %s (Use ESC/Arrows/Enter)", c.onFindKey)
	if !ok {
		c.buf.CursorX, c.buf.CursorY = savedCursorX, savedCursorY
		c.view.RowOffset, c.view.ColOffset = savedRowOffset, savedColOffset
	}
}

// onFindKey is the Prompt callback driving one step of incremental search
// (spec.md §4.G).
func (c *Controller) onFindKey(query string, key int) {
	if c.find.savedHl != nil {
		if row := c.buf.Row(c.find.savedRow); row != nil {
			copy(row.Hl, c.find.savedHl)
		}
		c.find.savedHl = nil
	}

	switch key {
	case terminal.CR, terminal.Esc:
		c.find.lastMatchRow = -1
		c.find.direction = 1
		return
	case terminal.ArrowRight, terminal.ArrowDown:
		c.find.direction = 1
	case terminal.ArrowLeft, terminal.ArrowUp:
		c.find.direction = -1
	default:
		c.find.lastMatchRow = -1
		c.find.direction = 1
	}

	if query == "" {
		return
	}

	current := c.find.lastMatchRow
	for i := 0; i < c.buf.RowsCount(); i++ {
		current += c.find.direction
		switch {
		case current == -1:
			current = c.buf.RowsCount() - 1
		case current == c.buf.RowsCount():
			current = 0
		}

		row := c.buf.Row(current)
		if row == nil {
			continue
		}
		matchAt := bytes.Index(row.Render, []byte(query))
		if matchAt < 0 {
			continue
		}

		c.find.lastMatchRow = current
		c.buf.CursorY = current
		c.buf.CursorX = row.RenderXToCursorX(matchAt)
		c.view.RowOffset = c.buf.RowsCount()

		c.find.savedRow = current
		c.find.savedHl = append([]byte(nil), row.Hl...)
		for j := matchAt; j < matchAt+len(query) && j < len(row.Hl); j++ {
			row.Hl[j] = byte(syntax.Match)
		}
		return
	}
}
