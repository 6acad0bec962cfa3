package mdlex

const maxHeadingLevel = 6

const (
	fenceClose      = "\n```"
	quoteTerminator = "\n\n"
)

// finish stamps tok with the span consumed since m.
func (c *Cursor) finish(m Mark, tok Token) Token {
	tok.Pos = m.pos
	tok.End = c.pos.Offset
	return tok
}

// lexText consumes the rest of the line as a paragraph. It never fails.
func lexText(c *Cursor) Token {
	m := c.Mark()
	c.skipUntilNewline()
	return c.finish(m, Token{Kind: KindParagraph, Text: c.Slice(m)})
}

// lexHeading recognizes an ATX heading. The caller guarantees the cursor
// sits on a '#' at the start of a line. Anything that is not a run of one
// to six '#' followed by a space is re-read as a paragraph.
func lexHeading(c *Cursor) Token {
	m := c.Mark()
	level := 0
	for {
		r, ok := c.Peek()
		if !ok || r != '#' {
			break
		}
		c.Next()
		level++
	}
	if r, ok := c.Peek(); !ok || r != ' ' || level > maxHeadingLevel {
		c.Reset(m)
		return lexText(c)
	}
	c.Next()
	body := c.Mark()
	c.skipUntilNewline()
	return c.finish(m, Token{Kind: KindHeading, Level: level, Text: c.Slice(body)})
}

// lexFence reads a fenced code block. The cursor sits just after the
// opening three backticks, m is the mark taken before them. The newline
// ending the info line is dropped, and the body runs until it ends with
// "\n```" or the input ends. An info line cut off by the end of input
// yields no language.
func lexFence(c *Cursor, m Mark) Token {
	lang := c.Mark()
	c.skipUntilNewline()
	tok := Token{Kind: KindCode, Lang: c.Slice(lang)}
	if _, ok := c.Next(); !ok {
		tok.Lang = ""
		return c.finish(m, tok)
	}
	body := c.Mark()
	for {
		if _, ok := c.Next(); !ok {
			tok.Text = c.Slice(body)
			return c.finish(m, tok)
		}
		if c.consumedEndsWith(body.pos.Offset, fenceClose) {
			tok.Text = c.src[body.pos.Offset : c.pos.Offset-len(fenceClose)]
			return c.finish(m, tok)
		}
	}
}

// lexBlockquote consumes a '>' and everything up to the next blank line.
// The blank line is consumed but not part of the text.
func lexBlockquote(c *Cursor) Token {
	m := c.Mark()
	c.Next()
	body := c.Mark()
	for {
		if _, ok := c.Next(); !ok {
			return c.finish(m, Token{Kind: KindBlockquote, Text: c.Slice(body)})
		}
		if c.consumedEndsWith(body.pos.Offset, quoteTerminator) {
			text := c.Slice(body)
			return c.finish(m, Token{Kind: KindBlockquote, Text: text[:len(text)-len(quoteTerminator)]})
		}
	}
}
