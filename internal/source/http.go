// internal/source/http.go
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	// defaultMaxBodyBytes caps a single table download.
	defaultMaxBodyBytes = 16 << 20
	userAgent           = "bstreport/1.0"
)

// HTTPFetcher downloads tables over HTTP(S).
type HTTPFetcher struct {
	Client       *http.Client
	MaxBodyBytes int64
}

// NewHTTPFetcher returns an HTTPFetcher with its own client and the given timeout.
// A non-positive timeout selects the default.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &HTTPFetcher{
		Client:       &http.Client{Timeout: timeout},
		MaxBodyBytes: defaultMaxBodyBytes,
	}
}

// FetchText issues a GET and returns the body of a 2xx response.
func (f *HTTPFetcher) FetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request for %s: %v", ErrTransport, url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request to %s failed: %v", ErrTransport, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return "", &StatusError{URL: url, Code: resp.StatusCode, Status: resp.Status}
	}

	limit := f.MaxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response from %s: %v", ErrTransport, url, err)
	}
	if int64(len(body)) > limit {
		return "", fmt.Errorf("%w: response from %s exceeds %d bytes", ErrTransport, url, limit)
	}
	return string(body), nil
}
