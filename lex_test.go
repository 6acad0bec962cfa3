package mdlex

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"
)

func TestLexRequiresReaderAndSink(t *testing.T) {
	if err := Lex(LexRequest{Sink: &Collector{}}); err == nil || !strings.Contains(err.Error(), "reader is nil") {
		t.Fatalf("expected reader error, got %v", err)
	}
	if err := Lex(LexRequest{Reader: strings.NewReader("x")}); err == nil || !strings.Contains(err.Error(), "sink is nil") {
		t.Fatalf("expected sink error, got %v", err)
	}
}

func TestLexMatchesTokenize(t *testing.T) {
	data := readSample(t, "testdata/basic.md")
	var col Collector
	if err := Lex(LexRequest{Reader: bytes.NewReader(data), Sink: &col}); err != nil {
		t.Fatalf("lex: %v", err)
	}
	if got, want := tokenStrings(col.Tokens), tokenStrings(Tokenize(string(data))); got != want {
		t.Fatalf("lex output differs from Tokenize:\n%s\nwant:\n%s", got, want)
	}
}

func TestLexStopsOnSinkError(t *testing.T) {
	errStop := errors.New("stop")
	seen := 0
	sink := SinkFunc(func(Token) error {
		seen++
		if seen == 2 {
			return errStop
		}
		return nil
	})
	err := Lex(LexRequest{Reader: strings.NewReader("a\nb\nc\n"), Sink: sink})
	if !errors.Is(err, errStop) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if seen != 2 {
		t.Fatalf("expected lexing to stop after 2 tokens, got %d", seen)
	}
}

func TestLexReadError(t *testing.T) {
	errRead := errors.New("boom")
	err := Lex(LexRequest{Reader: iotest.ErrReader(errRead), Sink: &Collector{}})
	if !errors.Is(err, errRead) {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestLexValidation(t *testing.T) {
	var col Collector
	err := Lex(LexRequest{
		Reader:  bytes.NewReader([]byte("ok\n\xff")),
		Sink:    &col,
		Options: []Option{WithValidation(true)},
	})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	var inputErr *InputError
	if !errors.As(err, &inputErr) || inputErr.Offset != 3 {
		t.Fatalf("expected InputError at offset 3, got %#v", err)
	}
	if len(col.Tokens) != 0 {
		t.Fatalf("expected no tokens before validation failure, got %v", col.Tokens)
	}

	// Without validation the same bytes are lexed leniently.
	toks, err := TokenizeReader(bytes.NewReader([]byte("ok\n\xff")))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	assertTokens(t, toks, paragraph("ok"), brk, paragraph("\xff"))
}

func TestTokenizeReaderFrontMatter(t *testing.T) {
	src := "---\ntitle: x\n---\n# Hi\n"
	toks, err := TokenizeReader(strings.NewReader(src), WithFrontMatter(true))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	assertTokens(t, toks, heading(1, "Hi"), brk)
	if want := (Pos{Offset: 17, Line: 4, Column: 1}); toks[0].Pos != want {
		t.Fatalf("expected heading at %+v, got %+v", want, toks[0].Pos)
	}

	toks, err = TokenizeReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if toks[0].Kind != KindParagraph || toks[0].Text != "---" {
		t.Fatalf("expected front matter to be kept, got %v", toks)
	}
}

func TestTokenizeReaderEmpty(t *testing.T) {
	toks, err := TokenizeReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if toks != nil {
		t.Fatalf("expected nil tokens, got %v", toks)
	}
}

// Results must not share storage with the pooled collector.
func TestTokenizeReaderResultsAreIndependent(t *testing.T) {
	first, err := TokenizeReader(strings.NewReader("# one\n"))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if _, err := TokenizeReader(strings.NewReader("two\nthree\nfour\n")); err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	assertTokens(t, first, heading(1, "one"), brk)
}

func TestLexURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/doc.md":
			_, _ = io.WriteString(w, "# Remote\n[a](b)")
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	var col Collector
	err := LexURL(context.Background(), LexURLRequest{
		URL:    srv.URL + "/doc.md",
		Client: srv.Client(),
		Sink:   &col,
	})
	if err != nil {
		t.Fatalf("lex url: %v", err)
	}
	assertTokens(t, col.Tokens, heading(1, "Remote"), brk, link(KindLink, "a", "b"))

	err = LexURL(context.Background(), LexURLRequest{
		URL:    srv.URL + "/missing.md",
		Client: srv.Client(),
		Sink:   &Collector{},
	})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestLexURLRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		req  LexURLRequest
		want string
	}{
		{name: "no url", req: LexURLRequest{Sink: &Collector{}}, want: "URL is required"},
		{name: "no sink", req: LexURLRequest{URL: "http://example.invalid/"}, want: "sink is nil"},
		{name: "scheme", req: LexURLRequest{URL: "ftp://example.invalid/x.md", Sink: &Collector{}}, want: "unsupported scheme"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := LexURL(context.Background(), tc.req)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q error, got %v", tc.want, err)
			}
		})
	}
}

func TestOpenURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ok.md" {
			http.Error(w, "gone", http.StatusGone)
			return
		}
		_, _ = io.WriteString(w, "body")
	}))
	defer srv.Close()

	body, err := OpenURL(context.Background(), srv.Client(), srv.URL+"/ok.md")
	if err != nil {
		t.Fatalf("open url: %v", err)
	}
	data, err := io.ReadAll(body)
	_ = body.Close()
	if err != nil || string(data) != "body" {
		t.Fatalf("unexpected body %q (%v)", data, err)
	}

	if _, err := OpenURL(context.Background(), srv.Client(), srv.URL+"/other.md"); err == nil || !strings.Contains(err.Error(), "410") {
		t.Fatalf("expected status error, got %v", err)
	}
	if _, err := OpenURL(context.Background(), nil, "file:///etc/hosts"); err == nil || !strings.Contains(err.Error(), "unsupported scheme") {
		t.Fatalf("expected scheme error, got %v", err)
	}
}
