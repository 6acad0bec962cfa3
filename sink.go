package mdlex

// Sink receives tokens from Lex as they are recognized.
type Sink interface {
	WriteToken(Token) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Token) error

// WriteToken calls f(tok).
func (f SinkFunc) WriteToken(tok Token) error {
	return f(tok)
}

// Collector is a Sink that keeps every token it receives.
type Collector struct {
	Tokens []Token
}

// WriteToken appends tok.
func (c *Collector) WriteToken(tok Token) error {
	c.Tokens = append(c.Tokens, tok)
	return nil
}

// Reset drops collected tokens but keeps the backing array.
func (c *Collector) Reset() {
	c.Tokens = c.Tokens[:0]
}
