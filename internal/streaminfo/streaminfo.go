// Package streaminfo defines StreamInfo, the immutable descriptor of "what
// do we know about these bytes" that flows from the URI resolver through
// the content sniffer to the converter dispatcher.
package streaminfo

import "strings"

// StreamInfo is an immutable value. Every field is optional; a zero
// StreamInfo carries no knowledge at all. Consumers must never mutate a
// StreamInfo in place — use CopyAndUpdate to derive a new one.
type StreamInfo struct {
	Mimetype  string
	Extension string
	Charset   string
	Filename  string
	LocalPath string
	URL       string
}

// CopyAndUpdate applies overrides left-to-right on top of s and returns the
// result. A field set (non-empty) in an override replaces the base field;
// an empty override field leaves the prior value untouched. Idempotent when
// applied twice with identical overrides, since re-applying the same
// non-empty values is a no-op.
func (s StreamInfo) CopyAndUpdate(overrides ...StreamInfo) StreamInfo {
	out := s
	for _, o := range overrides {
		if o.Mimetype != "" {
			out.Mimetype = o.Mimetype
		}
		if o.Extension != "" {
			out.Extension = normalizeExtension(o.Extension)
		}
		if o.Charset != "" {
			out.Charset = o.Charset
		}
		if o.Filename != "" {
			out.Filename = o.Filename
		}
		if o.LocalPath != "" {
			out.LocalPath = o.LocalPath
		}
		if o.URL != "" {
			out.URL = o.URL
		}
	}
	return out
}

// normalizeExtension lowercases an extension and ensures a leading dot, so
// that "PDF", "pdf", and ".pdf" are all stored identically.
func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// New builds a StreamInfo, normalizing the extension the same way
// CopyAndUpdate does so callers never need to remember the convention.
func New(mimetype, extension, charset, filename, localPath, url string) StreamInfo {
	return StreamInfo{
		Mimetype:  mimetype,
		Extension: normalizeExtension(extension),
		Charset:   charset,
		Filename:  filename,
		LocalPath: localPath,
		URL:       url,
	}
}

// MimetypeBase strips any ";parameter" suffix from a Content-Type-style
// mimetype string, e.g. "text/html; charset=utf-8" -> "text/html".
func MimetypeBase(mimetype string) string {
	if i := strings.IndexByte(mimetype, ';'); i >= 0 {
		return strings.TrimSpace(mimetype[:i])
	}
	return strings.TrimSpace(mimetype)
}
