package buffer

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/gokilo/editor/internal/syntax"
)

// Buffer is the ordered sequence of Rows that makes up a file, plus the
// cursor position into it (spec.md §3 "Buffer", "Cursor"). The Buffer
// exclusively owns its Rows.
type Buffer struct {
	Rows     []*Row
	Dirty    int
	CursorY  int
	CursorX  int
	Filename string

	defs   []syntax.Definition
	syntax *syntax.Definition
}

// New returns an empty buffer. defs is the compiled-in syntax database
// (spec.md §6) used to select a highlighter on Load.
func New(defs []syntax.Definition) *Buffer {
	return &Buffer{defs: defs}
}

// RowsCount is the number of rows currently in the buffer.
func (b *Buffer) RowsCount() int { return len(b.Rows) }

// Syntax returns the active syntax definition, or nil if none matched.
func (b *Buffer) Syntax() *syntax.Definition { return b.syntax }

// Row returns the row at i, or nil if i is out of range.
func (b *Buffer) Row(i int) *Row {
	if i < 0 || i >= len(b.Rows) {
		return nil
	}
	return b.Rows[i]
}

// InsertRow inserts a new row at at (which must lie in [0, RowsCount()])
// containing chars, shifting every row at >= at right by one and fixing
// up Idx (spec.md §4.D insert_row).
func (b *Buffer) InsertRow(at int, chars []byte) {
	if at < 0 || at > len(b.Rows) {
		at = len(b.Rows)
	}
	row := newRow(at, chars)
	b.Rows = append(b.Rows, nil)
	copy(b.Rows[at+1:], b.Rows[at:])
	b.Rows[at] = row
	for i := at + 1; i < len(b.Rows); i++ {
		b.Rows[i].Idx = i
	}
	b.recomputeFrom(at)
	b.Dirty++
}

// DeleteRow removes the row at at, shifting every later row left by one
// and fixing up Idx (spec.md §4.D delete_row).
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.Rows) {
		return
	}
	b.Rows = append(b.Rows[:at], b.Rows[at+1:]...)
	for i := at; i < len(b.Rows); i++ {
		b.Rows[i].Idx = i
	}
	b.Dirty++
}

// recomputeFrom re-renders and re-highlights row at, cascading to later
// rows only while hl_open_comment keeps changing (spec.md §4.E "Cross-row
// continuation"; §9 "implement as a forward iteration with a dirty-next
// flag rather than unbounded recursion").
func (b *Buffer) recomputeFrom(at int) {
	prevOpen := false
	if at > 0 {
		prevOpen = b.Rows[at-1].HlOpenComment
	}
	for i := at; i < len(b.Rows); i++ {
		row := b.Rows[i]
		before := row.HlOpenComment
		row.updateRender()
		after := row.updateHighlight(b.syntax, prevOpen)
		prevOpen = after
		if i > at && before == after {
			break
		}
	}
}

// InsertCharAtCursor inserts c at the cursor, appending an empty row
// first if the cursor is past the last row (spec.md §4.D).
func (b *Buffer) InsertCharAtCursor(c byte) {
	if b.CursorY == len(b.Rows) {
		b.InsertRow(len(b.Rows), nil)
	}
	b.Rows[b.CursorY].InsertChar(b.CursorX, c)
	b.recomputeFrom(b.CursorY)
	b.Dirty++
	b.CursorX++
}

// InsertNewlineAtCursor splits the current row at the cursor, or inserts
// a bare empty row if the cursor sits at column 0 (spec.md §4.D).
func (b *Buffer) InsertNewlineAtCursor() {
	if b.CursorX == 0 {
		b.InsertRow(b.CursorY, nil)
	} else {
		row := b.Rows[b.CursorY]
		tail := append([]byte(nil), row.Chars[b.CursorX:]...)
		row.Chars = row.Chars[:b.CursorX]
		b.InsertRow(b.CursorY+1, tail)
		b.recomputeFrom(b.CursorY)
	}
	b.CursorY++
	b.CursorX = 0
}

// DeleteCharAtCursor deletes the character before the cursor, joining
// with the previous row when the cursor sits at column 0 of a non-first
// row (spec.md §4.D).
func (b *Buffer) DeleteCharAtCursor() {
	if b.CursorY == len(b.Rows) || (b.CursorY == 0 && b.CursorX == 0) {
		return
	}
	row := b.Rows[b.CursorY]
	if b.CursorX > 0 {
		row.DeleteChar(b.CursorX - 1)
		b.recomputeFrom(b.CursorY)
		b.CursorX--
		b.Dirty++
		return
	}
	prev := b.Rows[b.CursorY-1]
	b.CursorX = prev.Size()
	prev.AppendString(row.Chars)
	b.DeleteRow(b.CursorY)
	b.recomputeFrom(b.CursorY - 1)
	b.CursorY--
}

// Load selects a syntax definition by filename, then reads path line by
// line, stripping any trailing \r bytes and appending each line as a new
// row, and finally clears Dirty (spec.md §4.D load_file).
func (b *Buffer) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	b.Filename = path
	b.syntax = syntax.SelectForFilename(b.defs, path)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimRight(scanner.Bytes(), "\r")
		b.InsertRow(len(b.Rows), line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	b.Dirty = 0
	return nil
}

// Save serializes the buffer by concatenating each row's Chars followed
// by \n, truncates the file to exactly that length, and writes it. On
// success Dirty is cleared; on failure it is left intact (spec.md §4.D
// save_file, §7(c)).
func (b *Buffer) Save() (int, error) {
	var payload bytes.Buffer
	for _, row := range b.Rows {
		payload.Write(row.Chars)
		payload.WriteByte('\n')
	}

	path := b.Filename
	if path == "" {
		return 0, fmt.Errorf("save: no filename set")
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := f.Truncate(int64(payload.Len())); err != nil {
		return 0, fmt.Errorf("truncate %s: %w", path, err)
	}
	n, err := f.Write(payload.Bytes())
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}

	b.Dirty = 0
	return n, nil
}

// FiletypeName returns the active syntax definition's name, or "no ft"
// when none is selected (spec.md §6 status bar).
func (b *Buffer) FiletypeName() string {
	if b.syntax == nil {
		return "no ft"
	}
	return b.syntax.Name
}

// DisplayFilename truncates Filename to 20 bytes for the status bar
// (spec.md §6), or returns "[No Name]" when unset.
func (b *Buffer) DisplayFilename() string {
	if b.Filename == "" {
		return "[No Name]"
	}
	name := b.Filename
	if len(name) > 20 {
		name = name[:20]
	}
	return name
}
