package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/nvmw/nvmw/src/internal/ui"
)

// ProgressFunc returns a writer that receives the response body as it is
// read. total is the Content-Length, or -1 when unknown (for instance when
// the transport decompressed the body). The writer is closed once the body
// has been read.
type ProgressFunc func(total int64) io.WriteCloser

// HTTPSource fetches the release index over HTTP.
type HTTPSource struct {
	url        string
	httpClient *http.Client
	progress   ProgressFunc
}

// NewHTTPSource creates a Source that fetches the index from indexURL.
// The client has no timeout of its own; requests are bounded by the
// caller's context.
func NewHTTPSource(indexURL string) *HTTPSource {
	return &HTTPSource{
		url:        indexURL,
		httpClient: &http.Client{},
	}
}

// NewHTTPSourceWithClient creates an HTTPSource with a custom HTTP client.
// The client's transport is replaced per request when a proxy is given.
func NewHTTPSourceWithClient(indexURL string, client *http.Client) *HTTPSource {
	return &HTTPSource{
		url:        indexURL,
		httpClient: client,
	}
}

// SetProgress installs a progress writer factory.
func (s *HTTPSource) SetProgress(fn ProgressFunc) {
	s.progress = fn
}

// URL returns the index URL this source reads.
func (s *HTTPSource) URL() string {
	return s.url
}

// Fetch downloads and decodes the index.
func (s *HTTPSource) Fetch(ctx context.Context, proxyURL *url.URL) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.clientFor(proxyURL)
	ui.Debug("GET %s (proxy: %v)", s.url, proxyURL)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch release index: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch release index: HTTP %d", resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if s.progress != nil {
		if w := s.progress(resp.ContentLength); w != nil {
			defer func() { _ = w.Close() }()
			body = io.TeeReader(resp.Body, w)
		}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read release index: %w", err)
	}

	entries, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse release index: %w", err)
	}
	ui.Debug("release index: %d entries", len(entries))
	return entries, nil
}

// clientFor returns the base client, or a copy whose transport forwards
// through proxyURL.
func (s *HTTPSource) clientFor(proxyURL *url.URL) *http.Client {
	if proxyURL == nil {
		return s.httpClient
	}

	var transport *http.Transport
	if base, ok := s.httpClient.Transport.(*http.Transport); ok && base != nil {
		transport = base.Clone()
	} else {
		transport = http.DefaultTransport.(*http.Transport).Clone()
	}
	transport.Proxy = http.ProxyURL(proxyURL)

	client := *s.httpClient
	client.Transport = transport
	return &client
}
