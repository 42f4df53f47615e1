package editor

import "github.com/gokilo/editor/internal/terminal"

// promptCallback fires on every key a Prompt processes, after the input
// buffer has been updated for that key (spec.md §4.G). It is used by Find
// to drive incremental search from a single line-editable prompt.
type promptCallback func(buf string, key int)

// Prompt reads a line at the status bar: format is a status-message format
// string whose single %s expands to the input collected so far. It returns
// the committed input and true, or "" and false if the user cancels with
// ESC (spec.md §4.G).
func (c *Controller) Prompt(format string, cb promptCallback) (string, bool) {
	var buf []byte

	for {
		c.status.Set(format, string(buf))
		if err := c.RefreshScreen(); err != nil {
			return "", false
		}

		key, err := c.term.ReadKey()
		if err != nil {
			return "", false
		}

		switch key {
		case terminal.Del, terminal.Ctrl('h'), terminal.Delete:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case terminal.Esc:
			c.status.Set("")
			if cb != nil {
				cb(string(buf), key)
			}
			return "", false
		case terminal.CR:
			if len(buf) > 0 {
				c.status.Set("")
				if cb != nil {
					cb(string(buf), key)
				}
				return string(buf), true
			}
		default:
			if key >= 32 && key < 127 {
				buf = append(buf, byte(key))
			}
		}

		if cb != nil {
			cb(string(buf), key)
		}
	}
}
