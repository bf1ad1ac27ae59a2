package resolve

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/voidlight/voidlight-markitdown/internal/merr"
	"github.com/voidlight/voidlight-markitdown/internal/streaminfo"
)

// resolveHTTP issues a GET against u, following redirects up to
// r.cfg.MaxRedirects (enforced by the client's CheckRedirect), and buffers
// the (generally non-seekable) response body into a seekable stream.
func (r *Resolver) resolveHTTP(ctx context.Context, u *url.URL) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Result{}, merr.Wrap(merr.URIFetchError, "failed to build request", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return Result{}, merr.Wrap(merr.URIFetchError, "fetch failed for "+u.String(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, merr.New(merr.URIFetchError, fmt.Sprintf("non-2xx response %d for %s", resp.StatusCode, u.String()))
	}

	stream, cleanup, err := bufferSeekable(resp.Body)
	if err != nil {
		return Result{}, merr.Wrap(merr.URIFetchError, "failed to buffer response body", err)
	}

	finalURL := resp.Request.URL.String()
	mimetype, charset := splitContentType(resp.Header.Get("Content-Type"))
	filename := filenameFromDisposition(resp.Header.Get("Content-Disposition"))
	if filename == "" {
		filename = path.Base(resp.Request.URL.Path)
	}

	info := streaminfo.New(mimetype, "", charset, filename, "", finalURL)
	return Result{Stream: stream, Info: info, Cleanup: cleanup}, nil
}

// splitContentType pulls the base mimetype and charset parameter out of a
// Content-Type header value.
func splitContentType(header string) (mimetype, charset string) {
	if header == "" {
		return "", ""
	}
	mt, params, err := mime.ParseMediaType(header)
	if err != nil {
		return streaminfo.MimetypeBase(header), ""
	}
	return mt, params["charset"]
}

// filenameFromDisposition extracts a filename from a Content-Disposition
// header, if present.
func filenameFromDisposition(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	name := params["filename"]
	return strings.Trim(name, `"`)
}
