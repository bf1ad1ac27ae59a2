package resolve

import (
	"bytes"
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/voidlight/voidlight-markitdown/internal/merr"
	"github.com/voidlight/voidlight-markitdown/internal/streaminfo"
)

// resolveData decodes a data: URI per RFC 2397:
// data:[<mediatype>][;base64],<data>
//
// Parsed by hand rather than via net/url, since the payload after the comma
// may itself contain characters (#, ?, %) that url.Parse would otherwise
// try to interpret as URL structure.
func resolveData(rawURI string) (Result, error) {
	const prefix = "data:"
	if !strings.HasPrefix(rawURI, prefix) {
		return Result{}, merr.New(merr.InvalidRequest, "not a data URI")
	}
	rest := rawURI[len(prefix):]

	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return Result{}, merr.New(merr.InvalidRequest, "data URI missing ',' separator")
	}
	meta := rest[:comma]
	payload := rest[comma+1:]

	isBase64 := false
	mediatype := ""
	charset := ""

	parts := strings.Split(meta, ";")
	if len(parts) > 0 && parts[0] != "" {
		mediatype = parts[0]
	}
	for _, p := range parts[1:] {
		if p == "base64" {
			isBase64 = true
			continue
		}
		if strings.HasPrefix(p, "charset=") {
			charset = strings.TrimPrefix(p, "charset=")
			continue
		}
		// Unknown parameters are preserved in the mediatype string but
		// otherwise ignored, per spec §6's data URI grammar note.
		if mediatype != "" {
			mediatype += ";" + p
		}
	}
	if mediatype == "" {
		mediatype = "text/plain"
		if charset == "" {
			charset = "US-ASCII"
		}
	}

	var decoded []byte
	if isBase64 {
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return Result{}, merr.Wrap(merr.InvalidRequest, "invalid base64 in data URI", err)
		}
		decoded = b
	} else {
		unescaped, err := url.QueryUnescape(payload)
		if err != nil {
			return Result{}, merr.Wrap(merr.InvalidRequest, "invalid percent-encoding in data URI", err)
		}
		decoded = []byte(unescaped)
	}

	info := streaminfo.New(mediatype, "", charset, "", "", "")
	return Result{
		Stream:  bytes.NewReader(decoded),
		Info:    info,
		Cleanup: noopCloser,
	}, nil
}
