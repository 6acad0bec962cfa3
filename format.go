package mdlex

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// FormatOption configures Format.
type FormatOption func(*formatConfig)

type formatConfig struct {
	osc8      bool
	positions bool
}

// WithOSC8 enables or disables OSC 8 hyperlinks on link and image lines.
func WithOSC8(enabled bool) FormatOption {
	return func(cfg *formatConfig) {
		cfg.osc8 = enabled
	}
}

// WithPositions prefixes every line with the token's line:column.
func WithPositions(enabled bool) FormatOption {
	return func(cfg *formatConfig) {
		cfg.positions = enabled
	}
}

// FormatRequest configures Format.
type FormatRequest struct {
	Writer  io.Writer
	Tokens  []Token
	Width   int
	Theme   Theme
	Options []FormatOption
}

// Format writes one line per token in the form returned by Token.String.
// A positive Width truncates each line to that many cells. A nil Theme
// writes plain text.
func Format(req FormatRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("format: writer is nil")
	}
	cfg := formatConfig{}
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	var styles Styles
	if req.Theme != nil {
		styles = req.Theme.Styles()
	}
	w := bufio.NewWriter(req.Writer)
	var line []byte
	for _, tok := range req.Tokens {
		line = line[:0]
		pos := ""
		if cfg.positions {
			line = strconv.AppendInt(line, int64(tok.Pos.Line), 10)
			line = append(line, ':')
			line = strconv.AppendInt(line, int64(tok.Pos.Column), 10)
			line = append(line, ' ')
			pos = string(line)
		}
		body := tok.String()
		if req.Width > 0 {
			body = truncateWithEllipsis(pos+body, req.Width)
			if len(body) >= len(pos) && body[:len(pos)] == pos {
				body = body[len(pos):]
			} else {
				pos, body = body, ""
			}
		}
		if _, err := w.WriteString(styled(styles.Position, pos)); err != nil {
			return fmt.Errorf("format: write: %w", err)
		}
		body = styled(styles.ForToken(tok), body)
		if cfg.osc8 && tok.IsLink() {
			body = hyperlink(tok.Dest, body)
		}
		if _, err := w.WriteString(body); err != nil {
			return fmt.Errorf("format: write: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("format: write: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("format: write: %w", err)
	}
	return nil
}

func styled(s Style, text string) string {
	if s.Prefix == "" || text == "" {
		return text
	}
	return s.Prefix + text + ansiReset
}

// CountKinds returns how many tokens of each kind toks holds.
func CountKinds(toks []Token) map[Kind]int {
	counts := make(map[Kind]int)
	for _, tok := range toks {
		counts[tok.Kind]++
	}
	return counts
}
