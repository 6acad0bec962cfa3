package mdlex

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

const maxPooledBuffer = 1 << 20

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

var collectorPool = sync.Pool{
	New: func() any {
		return &Collector{}
	},
}

// LexRequest configures Lex.
type LexRequest struct {
	Reader  io.Reader
	Sink    Sink
	Options []Option
}

// Lex reads Markdown from Reader and writes its tokens to Sink.
//
// Reading and validation errors are returned before any token is written.
// An error from the sink stops lexing and is returned.
func Lex(req LexRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("lex: reader is nil")
	}
	if req.Sink == nil {
		return fmt.Errorf("lex: sink is nil")
	}
	cfg := newConfig(req.Options)
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer func() {
		if buf.Cap() <= maxPooledBuffer {
			bufferPool.Put(buf)
		}
	}()
	if _, err := buf.ReadFrom(req.Reader); err != nil {
		return fmt.Errorf("lex: read: %w", err)
	}
	if cfg.validate {
		if err := ValidateInput(buf.Bytes()); err != nil {
			return fmt.Errorf("lex: %w", err)
		}
	}
	// Tokens slice the source, so it must not alias the pooled buffer.
	src := buf.String()
	start := 0
	if cfg.stripFrontMatter {
		_, start = StripFrontMatter(src)
	}
	if err := tokenize(newCursorAt(src, start), req.Sink.WriteToken); err != nil {
		return fmt.Errorf("lex: %w", err)
	}
	return nil
}

// TokenizeReader reads all of r and returns its tokens.
func TokenizeReader(r io.Reader, opts ...Option) ([]Token, error) {
	col := collectorPool.Get().(*Collector)
	col.Reset()
	defer func() {
		clear(col.Tokens)
		col.Reset()
		collectorPool.Put(col)
	}()
	if err := Lex(LexRequest{Reader: r, Sink: col, Options: opts}); err != nil {
		return nil, err
	}
	if len(col.Tokens) == 0 {
		return nil, nil
	}
	out := make([]Token, len(col.Tokens))
	copy(out, col.Tokens)
	return out, nil
}
