// Package viewport maps logical cursor coordinates to rendered-column
// coordinates and tracks the row/column scroll window (spec.md §3/§4.F).
package viewport

import "github.com/gokilo/editor/internal/buffer"

// Viewport is the scroll window onto a Buffer.
type Viewport struct {
	RowOffset  int
	ColOffset  int
	ScreenRows int
	ScreenCols int
	RenderX    int
}

// New builds a Viewport sized for a terminal of screenRows x screenCols.
// screenRows should already exclude the status and message bars
// (spec.md §3 "screen_rows = terminal rows − 2").
func New(screenRows, screenCols int) *Viewport {
	return &Viewport{ScreenRows: screenRows, ScreenCols: screenCols}
}

// Resize updates the screen dimensions, e.g. after a SIGWINCH-style
// re-probe.
func (v *Viewport) Resize(screenRows, screenCols int) {
	v.ScreenRows = screenRows
	v.ScreenCols = screenCols
}

// Scroll recomputes RenderX from the buffer's current row/column and
// clamps RowOffset/ColOffset so the cursor stays on screen (spec.md
// §4.F).
func (v *Viewport) Scroll(b *buffer.Buffer) {
	v.RenderX = 0
	if row := b.Row(b.CursorY); row != nil {
		v.RenderX = row.CursorXToRenderX(b.CursorX)
	}

	if b.CursorY < v.RowOffset {
		v.RowOffset = b.CursorY
	}
	if b.CursorY >= v.RowOffset+v.ScreenRows {
		v.RowOffset = b.CursorY - v.ScreenRows + 1
	}
	if v.RenderX < v.ColOffset {
		v.ColOffset = v.RenderX
	}
	if v.RenderX >= v.ColOffset+v.ScreenCols {
		v.ColOffset = v.RenderX - v.ScreenCols + 1
	}
}

// Move direction constants, mirroring the terminal package's logical
// keys that drive cursor motion.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// MoveCursor applies one cursor movement to b, wrapping at row
// boundaries and clamping the column to the destination row's length
// (spec.md §4.F "Cursor movements").
func MoveCursor(b *buffer.Buffer, dir Direction) {
	row := b.Row(b.CursorY)

	switch dir {
	case Left:
		switch {
		case b.CursorX != 0:
			b.CursorX--
		case b.CursorY > 0:
			b.CursorY--
			if prev := b.Row(b.CursorY); prev != nil {
				b.CursorX = prev.Size()
			}
		}
	case Right:
		switch {
		case row != nil && b.CursorX < row.Size():
			b.CursorX++
		case row != nil && b.CursorX == row.Size():
			b.CursorY++
			b.CursorX = 0
		}
	case Up:
		if b.CursorY > 0 {
			b.CursorY--
		}
	case Down:
		if b.CursorY < b.RowsCount() {
			b.CursorY++
		}
	}

	clampCursorX(b)
}

func clampCursorX(b *buffer.Buffer) {
	row := b.Row(b.CursorY)
	size := 0
	if row != nil {
		size = row.Size()
	}
	if b.CursorX > size {
		b.CursorX = size
	}
}

// Paginate moves the cursor a full screen up or down: it first aligns
// cursor_y to the top/bottom of the viewport, then applies
// ScreenRows-1 unit moves (spec.md §4.F PAGE_UP/PAGE_DOWN).
func Paginate(b *buffer.Buffer, v *Viewport, dir Direction) {
	switch dir {
	case Up:
		b.CursorY = v.RowOffset
	case Down:
		b.CursorY = v.RowOffset + v.ScreenRows - 1
		if b.CursorY > b.RowsCount() {
			b.CursorY = b.RowsCount()
		}
	}
	for i := 0; i < v.ScreenRows-1; i++ {
		MoveCursor(b, dir)
	}
}
