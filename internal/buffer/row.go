// Package buffer holds the ordered sequence of editable Rows that makes
// up a single file, and every mutation spec.md §3/§4.C/§4.D names.
package buffer

import "github.com/gokilo/editor/internal/syntax"

// TabStop is the render-column multiple a tab advances to (spec.md §3).
const TabStop = 8

// Row is one line of the buffer: chars is the authoritative content,
// render is its tab-expanded display form, and hl tags each render byte
// with a highlight class (spec.md §3 invariants).
type Row struct {
	Idx           int
	Chars         []byte
	Render        []byte
	Hl            []byte
	HlOpenComment bool
}

func newRow(idx int, chars []byte) *Row {
	r := &Row{Idx: idx}
	r.Chars = append(r.Chars, chars...)
	return r
}

// Size is the row's logical length in bytes.
func (r *Row) Size() int { return len(r.Chars) }

// RenderSize is the row's rendered length in bytes.
func (r *Row) RenderSize() int { return len(r.Render) }

// InsertChar inserts c at logical column at, clamping at into range.
func (r *Row) InsertChar(at int, c byte) {
	if at < 0 || at > len(r.Chars) {
		at = len(r.Chars)
	}
	r.Chars = append(r.Chars, 0)
	copy(r.Chars[at+1:], r.Chars[at:])
	r.Chars[at] = c
}

// DeleteChar removes the byte at logical column at. A no-op if at is out
// of range.
func (r *Row) DeleteChar(at int) {
	if at < 0 || at >= len(r.Chars) {
		return
	}
	r.Chars = append(r.Chars[:at], r.Chars[at+1:]...)
}

// AppendString appends raw bytes to the end of the row (used to join with
// the next row, spec.md §4.D join-with-next).
func (r *Row) AppendString(s []byte) {
	r.Chars = append(r.Chars, s...)
}

// updateRender rebuilds Render from Chars, expanding tabs to the next
// TabStop boundary.
//
// The pre-sizing pass below mirrors spec.md §9's preserved bug verbatim:
// tabs is reassigned rather than accumulated, so it is never more than 1.
// In Go this only costs an extra append-driven grow on multi-tab rows —
// append never overruns the way a hand-sized C buffer could — so the bug
// survives as a harmless inefficiency rather than the memory hazard it was
// in the original.
func (r *Row) updateRender() {
	tabs := 0
	for _, c := range r.Chars {
		if c == '\t' {
			tabs =+ 1
		}
	}
	r.Render = make([]byte, 0, len(r.Chars)+tabs*(TabStop-1))
	for _, c := range r.Chars {
		if c == '\t' {
			r.Render = append(r.Render, ' ')
			for len(r.Render)%TabStop != 0 {
				r.Render = append(r.Render, ' ')
			}
		} else {
			r.Render = append(r.Render, c)
		}
	}
}

// updateHighlight recomputes Hl from Render via the syntax package and
// returns the row's new HlOpenComment value.
func (r *Row) updateHighlight(def *syntax.Definition, prevOpenComment bool) bool {
	r.Hl, r.HlOpenComment = syntax.Classify(def, r.Render, prevOpenComment)
	return r.HlOpenComment
}

// CursorXToRenderX converts a logical column to a render column, walking
// Chars[0:cx] and expanding each tab to the next TabStop boundary
// (spec.md §4.C).
func (r *Row) CursorXToRenderX(cx int) int {
	rx := 0
	if cx > len(r.Chars) {
		cx = len(r.Chars)
	}
	for i := 0; i < cx; i++ {
		if r.Chars[i] == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

// RenderXToCursorX is the inverse of CursorXToRenderX: it returns the
// first logical column whose accumulated render position exceeds rx, or
// Size() if rx is never exceeded (spec.md §4.C).
func (r *Row) RenderXToCursorX(rx int) int {
	curRx := 0
	for cx := 0; cx < len(r.Chars); cx++ {
		if r.Chars[cx] == '\t' {
			curRx += (TabStop - 1) - (curRx % TabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return len(r.Chars)
}
