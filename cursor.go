package mdlex

import (
	"strings"
	"unicode/utf8"
)

// Pos is a position in the source text.
type Pos struct {
	// Offset is the byte offset from the start of the source.
	Offset int
	// Line is the 1-based line number.
	Line int
	// Column is the 1-based column, counted in runes.
	Column int
}

// Cursor is a forward-only, peekable position over Markdown source.
//
// A Cursor never copies the source. Mark returns a snapshot of the
// current position and Reset restores it, which is how recognizers
// speculate and rewind.
type Cursor struct {
	src string
	pos Pos
}

// Mark is a saved Cursor position.
type Mark struct {
	pos Pos
}

// NewCursor returns a Cursor positioned at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src, pos: Pos{Line: 1, Column: 1}}
}

// newCursorAt returns a Cursor over src positioned at byte offset off.
// Line and column are computed from the skipped prefix so positions stay
// relative to the whole source.
func newCursorAt(src string, off int) *Cursor {
	c := NewCursor(src)
	if off <= 0 {
		return c
	}
	if off > len(src) {
		off = len(src)
	}
	skipped := src[:off]
	c.pos.Offset = off
	c.pos.Line += strings.Count(skipped, "\n")
	lastNL := strings.LastIndexByte(skipped, '\n')
	c.pos.Column = utf8.RuneCountInString(skipped[lastNL+1:]) + 1
	return c
}

// Peek returns the next rune without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	if c.pos.Offset >= len(c.src) {
		return 0, false
	}
	b := c.src[c.pos.Offset]
	if b < utf8.RuneSelf {
		return rune(b), true
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.pos.Offset:])
	return r, true
}

// Next consumes and returns the next rune.
func (c *Cursor) Next() (rune, bool) {
	if c.pos.Offset >= len(c.src) {
		return 0, false
	}
	r, size := rune(c.src[c.pos.Offset]), 1
	if r >= utf8.RuneSelf {
		r, size = utf8.DecodeRuneInString(c.src[c.pos.Offset:])
	}
	c.pos.Offset += size
	if r == '\n' {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
	return r, true
}

// EOF reports whether the cursor is exhausted.
func (c *Cursor) EOF() bool {
	return c.pos.Offset >= len(c.src)
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() int {
	return c.pos.Offset
}

// Pos returns the current position.
func (c *Cursor) Pos() Pos {
	return c.pos
}

// Mark snapshots the current position.
func (c *Cursor) Mark() Mark {
	return Mark{pos: c.pos}
}

// Reset rewinds the cursor to m. Any input consumed since m was taken
// will be read again.
func (c *Cursor) Reset(m Mark) {
	c.pos = m.pos
}

// Slice returns the source consumed since m.
func (c *Cursor) Slice(m Mark) string {
	return c.src[m.pos.Offset:c.pos.Offset]
}

// Pos returns the position m was taken at.
func (m Mark) Pos() Pos {
	return m.pos
}

// skipUntilNewline consumes up to, but not including, the next '\n'.
func (c *Cursor) skipUntilNewline() {
	for {
		r, ok := c.Peek()
		if !ok || r == '\n' {
			return
		}
		c.Next()
	}
}

// consumedEndsWith reports whether the source up to the current position,
// but not before floor, ends with suffix.
func (c *Cursor) consumedEndsWith(floor int, suffix string) bool {
	if floor < 0 {
		floor = 0
	}
	return strings.HasSuffix(c.src[floor:c.pos.Offset], suffix)
}
