package editor

import (
	"fmt"

	"github.com/gokilo/editor/internal/buffer"
	"github.com/gokilo/editor/internal/syntax"
)

// welcomeMessage is shown centered on an empty, unnamed buffer (spec.md
// §4.A's append-buffer compositor, enriched per the original kilo's
// editorDrawRows welcome banner).
const welcomeMessage = "go-kilo editor"

// drawRows appends one line per editable row to the frame, padding short
// files with '~' and centering a welcome banner when the buffer is empty
// and unnamed. Control bytes are rendered as inverse-video markers rather
// than passed through raw (spec.md §2 non-goals "control bytes are
// displayed as inverse-video markers").
func (c *Controller) drawRows() {
	for y := 0; y < c.view.ScreenRows; y++ {
		fileRow := y + c.view.RowOffset
		if fileRow >= c.buf.RowsCount() {
			if c.buf.RowsCount() == 0 && c.buf.Filename == "" && y == c.view.ScreenRows/3 {
				c.drawWelcome()
			} else {
				c.ab.AppendString("~")
			}
			c.ab.AppendString("\x1b[K\r\n")
			continue
		}

		row := c.buf.Row(fileRow)
		c.drawRow(row)
		c.ab.AppendString("\x1b[K\r\n")
	}
}

func (c *Controller) drawWelcome() {
	msg := welcomeMessage
	if len(msg) > c.view.ScreenCols {
		msg = msg[:c.view.ScreenCols]
	}
	padding := (c.view.ScreenCols - len(msg)) / 2
	if padding > 0 {
		c.ab.AppendString("~")
		padding--
	}
	for ; padding > 0; padding-- {
		c.ab.AppendString(" ")
	}
	c.ab.AppendString(msg)
}

// drawRow appends the visible slice of one row's render bytes, switching
// SGR foreground color on every highlight-class boundary and rendering
// control bytes in inverse video (spec.md §4.E color table, §6 terminal
// output escapes).
func (c *Controller) drawRow(row *buffer.Row) {
	start := c.view.ColOffset
	end := start + c.view.ScreenCols
	if start > row.RenderSize() {
		start = row.RenderSize()
	}
	if end > row.RenderSize() {
		end = row.RenderSize()
	}

	currentColor := -1
	for i := start; i < end; i++ {
		b := row.Render[i]
		cls := syntax.Class(row.Hl[i])

		if (b < 32 && b != '\t') || b == 127 {
			marker := byte('@' + b)
			if b == 127 {
				marker = '?'
			}
			c.ab.AppendString("\x1b[7m")
			c.ab.Append([]byte{marker})
			c.ab.AppendString("\x1b[m")
			if currentColor != -1 {
				c.ab.AppendString(fmt.Sprintf("\x1b[%dm", currentColor))
			}
			continue
		}

		if cls == syntax.Normal {
			if currentColor != -1 {
				c.ab.AppendString("\x1b[39m")
				currentColor = -1
			}
			c.ab.Append([]byte{b})
			continue
		}

		if color := cls.Color(); color != currentColor {
			currentColor = color
			c.ab.AppendString(fmt.Sprintf("\x1b[%dm", color))
		}
		c.ab.Append([]byte{b})
	}
	c.ab.AppendString("\x1b[39m")
}

// drawStatusBar appends the inverse-video status line: filename, line
// count and dirty marker on the left; filetype and cursor position on the
// right, filler spaces between (spec.md §6 "Screen layout").
func (c *Controller) drawStatusBar() {
	modified := ""
	if c.buf.Dirty > 0 {
		modified = " (modified)"
	}
	left := fmt.Sprintf("%s - %d lines%s", c.buf.DisplayFilename(), c.buf.RowsCount(), modified)
	right := fmt.Sprintf("%s | %d/%d", c.buf.FiletypeName(), c.buf.CursorY+1, c.buf.RowsCount())

	if len(left) > c.view.ScreenCols {
		left = left[:c.view.ScreenCols]
	}

	c.ab.AppendString("\x1b[7m")
	c.ab.AppendString(left)
	for col := len(left); col < c.view.ScreenCols; col++ {
		if c.view.ScreenCols-col == len(right) {
			c.ab.AppendString(right)
			break
		}
		c.ab.AppendString(" ")
	}
	c.ab.AppendString("\x1b[m\r\n")
}

// drawMessageBar appends the last line: the current status message, if
// still within its 5-second visibility window (spec.md §6).
func (c *Controller) drawMessageBar() {
	c.ab.AppendString("\x1b[K")
	msg := c.status.Text()
	if len(msg) > c.view.ScreenCols {
		msg = msg[:c.view.ScreenCols]
	}
	c.ab.AppendString(msg)
}
