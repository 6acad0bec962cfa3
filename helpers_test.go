package mdlex

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ignoreSpans compares tokens by kind and payload only.
var ignoreSpans = cmpopts.IgnoreFields(Token{}, "Pos", "End")

func assertTokens(t *testing.T, got []Token, want ...Token) {
	t.Helper()
	if len(want) == 0 {
		want = nil
	}
	if len(got) == 0 {
		got = nil
	}
	if diff := cmp.Diff(want, got, ignoreSpans); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func tokenStrings(toks []Token) string {
	var b strings.Builder
	for _, tok := range toks {
		b.WriteString(tok.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func readSample(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read %s: %v", path, err)
	}
	return data
}

func paragraph(text string) Token { return Token{Kind: KindParagraph, Text: text} }

func heading(level int, text string) Token {
	return Token{Kind: KindHeading, Level: level, Text: text}
}

func code(lang, body string) Token { return Token{Kind: KindCode, Lang: lang, Text: body} }

func inlineCode(body string) Token { return Token{Kind: KindInlineCode, Text: body} }

func blockquote(text string) Token { return Token{Kind: KindBlockquote, Text: text} }

func link(kind Kind, label, dest string) Token {
	return Token{Kind: kind, Text: label, Dest: dest}
}

var brk = Token{Kind: KindBreak}
