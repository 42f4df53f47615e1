package editor

import (
	"fmt"
	"log"

	"github.com/gokilo/editor/internal/buffer"
	"github.com/gokilo/editor/internal/terminal"
	"github.com/gokilo/editor/internal/viewport"
)

// quitTimes is QUIT_TIMES (spec.md §4.H): the number of additional
// consecutive Ctrl-Q presses required to discard unsaved changes.
const quitTimes = 1

// Controller is the top-level loop: compose a frame, read a key,
// dispatch an edit or navigation action (spec.md §4.H).
type Controller struct {
	term   *terminal.Terminal
	buf    *buffer.Buffer
	view   *viewport.Viewport
	status StatusMessage
	ab     AppendBuffer
	log    *log.Logger

	quitCountdown int
	find          findState
}

// NewController wires a Terminal, Buffer and Viewport into a Controller.
func NewController(term *terminal.Terminal, buf *buffer.Buffer, view *viewport.Viewport, logger *log.Logger) *Controller {
	return &Controller{
		term:          term,
		buf:           buf,
		view:          view,
		log:           logger,
		quitCountdown: quitTimes,
	}
}

// Tick composes and flushes one frame, then reads and dispatches one
// key. It returns false once the user has quit.
func (c *Controller) Tick() (bool, error) {
	if err := c.RefreshScreen(); err != nil {
		return false, err
	}
	return c.ProcessKeypress()
}

// RefreshScreen recomputes the scroll window and writes one composed
// frame in a single write (spec.md §2 "Data flow per tick").
func (c *Controller) RefreshScreen() error {
	c.view.Scroll(c.buf)

	c.ab.Reset()
	c.ab.AppendString("\x1b[?25l") // hide cursor
	c.ab.AppendString("\x1b[H")    // home

	c.drawRows()
	c.drawStatusBar()
	c.drawMessageBar()

	cursorRow := c.buf.CursorY - c.view.RowOffset + 1
	cursorCol := c.view.RenderX - c.view.ColOffset + 1
	c.ab.AppendString(fmt.Sprintf("\x1b[%d;%dH", cursorRow, cursorCol))
	c.ab.AppendString("\x1b[?25h") // show cursor

	_, err := c.term.Write(c.ab.Bytes())
	return err
}

// ProcessKeypress reads one key and dispatches it per the table in
// spec.md §4.H.
func (c *Controller) ProcessKeypress() (bool, error) {
	key, err := c.term.ReadKey()
	if err != nil {
		return false, err
	}

	switch key {
	case terminal.CR:
		c.buf.InsertNewlineAtCursor()
	case terminal.Ctrl('q'):
		if c.buf.Dirty > 0 && c.quitCountdown > 0 {
			c.status.Set("WARNING!!! File has unsaved changes. "+
				"Press Ctrl-Q %d more times to quit.", c.quitCountdown)
			c.quitCountdown--
			return true, nil
		}
		return false, nil
	case terminal.Ctrl('s'):
		c.save()
	case terminal.Home:
		c.buf.CursorX = 0
	case terminal.End:
		if row := c.buf.Row(c.buf.CursorY); row != nil {
			c.buf.CursorX = row.Size()
		}
	case terminal.Ctrl('f'):
		c.Find()
	case terminal.Del, terminal.Ctrl('h'), terminal.Delete:
		if key == terminal.Delete {
			viewport.MoveCursor(c.buf, viewport.Right)
		}
		c.buf.DeleteCharAtCursor()
	case terminal.PageUp:
		viewport.Paginate(c.buf, c.view, viewport.Up)
	case terminal.PageDown:
		viewport.Paginate(c.buf, c.view, viewport.Down)
	case terminal.ArrowLeft:
		viewport.MoveCursor(c.buf, viewport.Left)
	case terminal.ArrowRight:
		viewport.MoveCursor(c.buf, viewport.Right)
	case terminal.ArrowUp:
		viewport.MoveCursor(c.buf, viewport.Up)
	case terminal.ArrowDown:
		viewport.MoveCursor(c.buf, viewport.Down)
	case terminal.Ctrl('l'), terminal.Esc:
		// no-op
	default:
		if key >= 0 && key < 256 {
			c.buf.InsertCharAtCursor(byte(key))
		}
	}

	// Every non-quit action resets the countdown (spec.md §4.H: "After a
	// non-quit action, reset the quit-times counter").
	c.quitCountdown = quitTimes
	return true, nil
}

func (c *Controller) save() {
	if c.buf.Filename == "" {
		c.status.Set("Can't save! No file name.")
		return
	}
	n, err := c.buf.Save()
	if err != nil {
		c.status.Set("Can't save! I/O error: %s", err)
		if c.log != nil {
			c.log.Printf("save failed: %s", err)
		}
		return
	}
	c.status.Set("%d bytes written to disk", n)
}
