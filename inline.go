package mdlex

// lexBacktick dispatches on a run of backticks: one opens a code span,
// two are an empty code span and three open a fenced block.
func lexBacktick(c *Cursor) Token {
	m := c.Mark()
	c.Next()
	if r, ok := c.Peek(); !ok || r != '`' {
		return lexInlineCode(c, m)
	}
	c.Next()
	if r, ok := c.Peek(); !ok || r != '`' {
		return c.finish(m, Token{Kind: KindInlineCode})
	}
	c.Next()
	return lexFence(c, m)
}

// lexInlineCode reads a code span body after its opening backtick. The
// span ends at the closing backtick, which is consumed, or leniently at
// the end of the line or input. A newline ending an unterminated span is
// left for the driver so every line break still yields a Break token.
func lexInlineCode(c *Cursor, m Mark) Token {
	body := c.Mark()
	for {
		r, ok := c.Peek()
		if !ok || r == '\n' {
			return c.finish(m, Token{Kind: KindInlineCode, Text: c.Slice(body)})
		}
		if r == '`' {
			text := c.Slice(body)
			c.Next()
			return c.finish(m, Token{Kind: KindInlineCode, Text: text})
		}
		c.Next()
	}
}

// lexImage handles '!'. Only "![" starts an image; any other '!' and any
// malformed image are re-read as text from the '!'.
func lexImage(c *Cursor) Token {
	m := c.Mark()
	c.Next()
	if r, ok := c.Peek(); !ok || r != '[' {
		c.Reset(m)
		return lexText(c)
	}
	return lexLink(c, m, true)
}

// lexLink recognizes [label](href) and [label][identifier] starting at
// the '['. On any mismatch the cursor is rewound to m and the line is read
// as text from there.
func lexLink(c *Cursor, m Mark, image bool) Token {
	c.Next()
	label, ok := scanBalanced(c, '[', ']')
	if !ok {
		c.Reset(m)
		return lexText(c)
	}
	c.Next()
	tok := Token{Text: label}
	r, _ := c.Peek()
	switch r {
	case '(':
		c.Next()
		href, ok := scanBalanced(c, '(', ')')
		if !ok {
			break
		}
		c.Next()
		tok.Kind, tok.Dest = KindLink, href
		if image {
			tok.Kind = KindImage
		}
		return c.finish(m, tok)
	case '[':
		c.Next()
		id, ok := scanBalanced(c, '[', ']')
		if !ok {
			break
		}
		c.Next()
		tok.Kind, tok.Dest = KindLinkReference, id
		if image {
			tok.Kind = KindImageReference
		}
		return c.finish(m, tok)
	}
	c.Reset(m)
	return lexText(c)
}

// scanBalanced reads up to the first close that is not matched by an
// earlier open and leaves the cursor on it. It fails at the end of the
// line or input.
func scanBalanced(c *Cursor, open, close rune) (string, bool) {
	start := c.Mark()
	depth := 0
	for {
		r, ok := c.Peek()
		if !ok || r == '\n' {
			return "", false
		}
		switch r {
		case close:
			if depth == 0 {
				return c.Slice(start), true
			}
			depth--
		case open:
			depth++
		}
		c.Next()
	}
}
