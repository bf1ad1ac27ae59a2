package resolve

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/voidlight/voidlight-markitdown/internal/merr"
	"github.com/voidlight/voidlight-markitdown/internal/streaminfo"
)

// resolveFile opens a file: URI. The file handle itself is seekable, so no
// buffering is needed; Cleanup closes it.
func resolveFile(u *url.URL) (Result, error) {
	path := u.Path
	if path == "" {
		// The bare "file:relative/path" form, which url.Parse leaves in
		// Opaque.
		path = u.Opaque
	}
	// Handle the empty-authority form file:///abs/path, where u.Host == ""
	// and u.Path already carries the leading slash, as well as
	// file://host/abs/path, where any host other than "localhost" is
	// rejected as unsupported (we only support local files).
	if u.Host != "" && u.Host != "localhost" {
		return Result{}, merr.New(merr.UnsupportedURIScheme, "file: URIs with a remote host are not supported: "+u.Host)
	}

	decodedPath, err := url.PathUnescape(path)
	if err != nil {
		decodedPath = path
	}

	f, err := os.Open(decodedPath)
	if err != nil {
		return Result{}, merr.Wrap(merr.URIFetchError, "failed to open file: "+decodedPath, err)
	}

	filename := filepath.Base(decodedPath)
	ext := strings.ToLower(filepath.Ext(filename))

	info := streaminfo.New("", ext, "", filename, decodedPath, "")
	return Result{
		Stream: f,
		Info:   info,
		Cleanup: func() error {
			return f.Close()
		},
	}, nil
}
