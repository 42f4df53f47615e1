// Package editor wires the terminal, buffer, viewport and syntax packages
// together into the interactive controller loop (spec.md §4.A, §4.G,
// §4.H).
package editor

// AppendBuffer accumulates one frame's worth of bytes so the whole frame
// can be flushed in a single write, avoiding visible tearing (spec.md
// §4.A).
type AppendBuffer struct {
	buf []byte
}

// Append adds raw bytes to the buffer.
func (a *AppendBuffer) Append(p []byte) {
	a.buf = append(a.buf, p...)
}

// AppendString adds a string to the buffer.
func (a *AppendBuffer) AppendString(s string) {
	a.buf = append(a.buf, s...)
}

// Reset empties the buffer for reuse on the next frame.
func (a *AppendBuffer) Reset() {
	a.buf = a.buf[:0]
}

// Bytes returns the accumulated frame.
func (a *AppendBuffer) Bytes() []byte {
	return a.buf
}
