package mdlex

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// LexURLRequest configures LexURL.
type LexURLRequest struct {
	URL     string
	Client  *http.Client
	Sink    Sink
	Options []Option
}

// LexURL fetches Markdown over HTTP(S) and writes its tokens to Sink.
func LexURL(ctx context.Context, req LexURLRequest) error {
	if req.URL == "" {
		return fmt.Errorf("lex url: URL is required")
	}
	if req.Sink == nil {
		return fmt.Errorf("lex url: sink is nil")
	}
	body, err := OpenURL(ctx, req.Client, req.URL)
	if err != nil {
		return fmt.Errorf("lex url: %w", err)
	}
	defer body.Close()
	return Lex(LexRequest{
		Reader:  body,
		Sink:    req.Sink,
		Options: req.Options,
	})
}

// OpenURL issues a GET for rawURL and returns the response body. Only
// http and https URLs are accepted, and any status outside 2xx is an
// error. A nil client uses http.DefaultClient.
func OpenURL(ctx context.Context, client *http.Client, rawURL string) (io.ReadCloser, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("http %s: status %s", rawURL, resp.Status)
	}
	return resp.Body, nil
}
