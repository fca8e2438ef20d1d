// internal/source/source.go
// Package source fetches the raw comparison tables from remote or local storage.
package source

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrTransport marks failures to reach the storage endpoint at all.
	ErrTransport = errors.New("transport failure")
	// ErrStatus marks responses that arrived with a non-success status.
	ErrStatus = errors.New("unexpected status")
)

// Fetcher returns the text stored at url.
type Fetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) (string, error)

// FetchText calls f.
func (f FetcherFunc) FetchText(ctx context.Context, url string) (string, error) {
	return f(ctx, url)
}

// StatusError carries the HTTP status of a non-success response.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status: %s", e.URL, e.Status)
}

// Is lets errors.Is(err, ErrStatus) match any StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}
