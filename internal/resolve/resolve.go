// Package resolve implements the URI resolver (C2): it decodes data: URIs,
// reads file: paths, and fetches http(s): resources, handing back a
// seekable stream plus an initial StreamInfo guess for the sniffer.
package resolve

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/voidlight/voidlight-markitdown/internal/dispatch"
	"github.com/voidlight/voidlight-markitdown/internal/merr"
	"github.com/voidlight/voidlight-markitdown/internal/streaminfo"
)

// Config controls fetch behavior for the http(s) scheme.
type Config struct {
	MaxRedirects int
	FetchTimeout time.Duration
}

// DefaultConfig mirrors spec §5: a redirect limit of 10 and a 30s
// connect+read timeout.
func DefaultConfig() Config {
	return Config{MaxRedirects: 10, FetchTimeout: 30 * time.Second}
}

// Resolver dispatches a URI to the scheme-specific resolution logic.
type Resolver struct {
	cfg    Config
	client *http.Client
}

// New builds a Resolver with its own http.Client configured to cap
// redirects at cfg.MaxRedirects.
func New(cfg Config) *Resolver {
	r := &Resolver{cfg: cfg}
	r.client = &http.Client{
		Timeout: cfg.FetchTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= cfg.MaxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
	return r
}

// Result is what a successful resolution hands to the dispatcher: a
// seekable stream, an initial StreamInfo guess, and a cleanup function the
// caller must invoke once it is done with the stream (closes any spilled
// temp file or open file handle).
type Result struct {
	Stream  dispatch.Stream
	Info    streaminfo.StreamInfo
	Cleanup func() error
}

// Resolve dispatches by URI scheme. Unknown schemes fail with
// UnsupportedURIScheme; network/IO failures fail with URIFetchError.
func (r *Resolver) Resolve(ctx context.Context, rawURI string) (Result, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return Result{}, merr.Wrap(merr.InvalidRequest, "malformed URI", err)
	}

	switch u.Scheme {
	case "data":
		return resolveData(rawURI)
	case "file":
		return resolveFile(u)
	case "http", "https":
		return r.resolveHTTP(ctx, u)
	default:
		return Result{}, merr.New(merr.UnsupportedURIScheme, "unsupported URI scheme: "+u.Scheme)
	}
}
