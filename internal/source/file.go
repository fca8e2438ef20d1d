// internal/source/file.go
package source

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// FileFetcher reads tables from the local filesystem. It accepts file:// URLs
// and plain paths; relative paths resolve against Root when set.
type FileFetcher struct {
	Root string
}

// FetchText returns the contents of the referenced file.
func (f FileFetcher) FetchText(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	path, err := f.resolve(ref)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &StatusError{URL: ref, Code: 404, Status: "404 Not Found"}
		}
		return "", fmt.Errorf("%w: unable to read %s: %v", ErrTransport, path, err)
	}
	return string(data), nil
}

func (f FileFetcher) resolve(ref string) (string, error) {
	path := ref
	if strings.HasPrefix(ref, "file://") {
		u, err := url.Parse(ref)
		if err != nil {
			return "", fmt.Errorf("%w: invalid file URL %q: %v", ErrTransport, ref, err)
		}
		path = u.Path
		if u.Host != "" && u.Host != "localhost" {
			path = u.Host + u.Path
		}
	}
	if path == "" {
		return "", fmt.Errorf("%w: empty file reference", ErrTransport)
	}
	if !filepath.IsAbs(path) && f.Root != "" {
		path = filepath.Join(f.Root, path)
	}
	return filepath.Clean(path), nil
}

// Router dispatches http(s) URLs to Remote and everything else to Local.
type Router struct {
	Remote Fetcher
	Local  Fetcher
}

// NewRouter wires an HTTPFetcher and a FileFetcher rooted at dir.
func NewRouter(remote *HTTPFetcher, dir string) *Router {
	return &Router{Remote: remote, Local: FileFetcher{Root: dir}}
}

// FetchText picks the fetcher for ref's scheme.
func (r *Router) FetchText(ctx context.Context, ref string) (string, error) {
	if IsRemote(ref) {
		if r.Remote == nil {
			return "", fmt.Errorf("%w: no remote fetcher configured for %s", ErrTransport, ref)
		}
		return r.Remote.FetchText(ctx, ref)
	}
	if r.Local == nil {
		return "", fmt.Errorf("%w: no local fetcher configured for %s", ErrTransport, ref)
	}
	return r.Local.FetchText(ctx, ref)
}

// IsRemote reports whether ref is an http or https URL.
func IsRemote(ref string) bool {
	lower := strings.ToLower(strings.TrimSpace(ref))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
