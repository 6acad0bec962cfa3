package mdlex

// Tokenize splits Markdown source into tokens in source order. It never
// fails: malformed constructs come back as paragraphs or as best-effort
// tokens, and empty input yields no tokens.
func Tokenize(src string) []Token {
	var toks []Token
	_ = tokenize(NewCursor(src), func(tok Token) error {
		toks = append(toks, tok)
		return nil
	})
	return toks
}

// TokenizeBytes is Tokenize over a byte slice.
func TokenizeBytes(src []byte) []Token {
	return Tokenize(string(src))
}

// tokenize drives the recognizers until c is exhausted, handing every
// token to emit. It stops early only if emit fails.
func tokenize(c *Cursor, emit func(Token) error) error {
	lineStart := true
	for {
		r, ok := c.Peek()
		if !ok {
			return nil
		}
		var tok Token
		switch {
		case r == '\n':
			m := c.Mark()
			c.Next()
			if err := emit(c.finish(m, Token{Kind: KindBreak})); err != nil {
				return err
			}
			lineStart = true
			continue
		case r == '#' && lineStart:
			tok = lexHeading(c)
		case r == '`':
			// Backticks and quotes are honoured mid-line too.
			tok = lexBacktick(c)
		case r == '>':
			tok = lexBlockquote(c)
		case r == '[':
			tok = lexLink(c, c.Mark(), false)
		case r == '!':
			tok = lexImage(c)
		default:
			tok = lexText(c)
		}
		if err := emit(tok); err != nil {
			return err
		}
		lineStart = false
	}
}
