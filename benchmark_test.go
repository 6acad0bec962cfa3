package mdlex

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

var benchSamples = []string{"basic", "fallbacks", "nesting"}

func BenchmarkTokenizeSampledata(b *testing.B) {
	for _, name := range benchSamples {
		src := string(readSample(b, "testdata/"+name+".md"))
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(src)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = Tokenize(src)
			}
		})
	}
}

func BenchmarkTokenizeLarge(b *testing.B) {
	var doc strings.Builder
	for _, name := range benchSamples {
		doc.Write(readSample(b, "testdata/"+name+".md"))
		doc.WriteByte('\n')
	}
	for _, copies := range []int{10, 100} {
		src := strings.Repeat(doc.String(), copies)
		b.Run("x"+strconv.Itoa(copies), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(src)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = Tokenize(src)
			}
		})
	}
}

func BenchmarkLexReader(b *testing.B) {
	data := readSample(b, "testdata/basic.md")
	reader := bytes.NewReader(data)
	var col Collector
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reader.Reset(data)
		col.Reset()
		if err := Lex(LexRequest{
			Reader:  reader,
			Sink:    &col,
			Options: []Option{WithValidation(true), WithFrontMatter(true)},
		}); err != nil {
			b.Fatalf("lex: %v", err)
		}
	}
}

func BenchmarkFormat(b *testing.B) {
	toks := Tokenize(string(readSample(b, "testdata/basic.md")))
	for _, width := range []int{0, 60} {
		b.Run("w"+strconv.Itoa(width), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := Format(FormatRequest{
					Writer:  io.Discard,
					Tokens:  toks,
					Width:   width,
					Theme:   DefaultTheme(),
					Options: []FormatOption{WithPositions(true)},
				}); err != nil {
					b.Fatalf("format: %v", err)
				}
			}
		})
	}
}

func BenchmarkLexURL(b *testing.B) {
	data := readSample(b, "testdata/basic.md")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}))
	defer server.Close()

	var col Collector
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		col.Reset()
		if err := LexURL(context.Background(), LexURLRequest{
			URL:    server.URL,
			Client: server.Client(),
			Sink:   &col,
		}); err != nil {
			b.Fatalf("lex url: %v", err)
		}
	}
}
