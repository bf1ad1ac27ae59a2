// Package sniff refines a seed StreamInfo using the first few KiB of a
// stream: magic-byte matching, charset confidence scoring for text-family
// types, and extension fallback, per spec §4.3.
package sniff

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/voidlight/voidlight-markitdown/internal/streaminfo"
)

// Sniffer refines StreamInfo guesses. It holds no mutable state and is safe
// for concurrent use.
type Sniffer struct {
	extensionTable map[string]string
}

// New returns a Sniffer with the built-in extension->mimetype table.
func New() *Sniffer {
	return &Sniffer{extensionTable: defaultExtensionTable()}
}

// Sniff applies the three-stage precedence described in §4.3: magic bytes,
// then charset detection for text-family types, then extension fallback.
// It never downgrades a confident upstream mimetype declaration unless the
// magic bytes are demonstrably incompatible with it (a ZIP signature under
// a non-archive label is always reclassified).
func (s *Sniffer) Sniff(head []byte, seed streaminfo.StreamInfo) streaminfo.StreamInfo {
	info := seed
	// genericDetect is set when magic-byte detection found no signature and
	// only fell back to text/plain or application/octet-stream; the
	// extension table then still gets a say below.
	genericDetect := false

	if detected := mimetype.Detect(head); detected != nil {
		detectedMime := streaminfo.MimetypeBase(detected.String())
		seedMime := streaminfo.MimetypeBase(seed.Mimetype)

		switch {
		case seedMime == "":
			info.Mimetype = detectedMime
			genericDetect = detectedMime == "text/plain" || detectedMime == "application/octet-stream"
			if info.Extension == "" && !genericDetect {
				info.Extension = detected.Extension()
			}
		case isZipSignature(head) && !isArchiveFamily(seedMime):
			// A ZIP signature under a non-archive label (e.g. a mislabeled
			// .docx/.xlsx served as application/pdf) is demonstrably
			// incompatible; reclassify rather than trust the declaration.
			info.Mimetype = detectedMime
			info.Extension = detected.Extension()
		default:
			// Confident upstream declaration wins; magic bytes are
			// consulted only to fill in a still-missing extension.
			if info.Extension == "" {
				info.Extension = detected.Extension()
			}
		}
	}

	if info.Charset == "" && isTextFamily(info.Mimetype) {
		if charset, confidence := detectCharset(head); confidence >= 0.5 {
			info.Charset = charset
		}
	}

	if info.Mimetype == "" || genericDetect {
		ext := info.Extension
		if ext == "" && info.Filename != "" {
			ext = strings.ToLower(filepath.Ext(info.Filename))
		}
		if mt, ok := s.extensionTable[ext]; ok {
			info.Mimetype = mt
		}
	}

	return info
}

func isZipSignature(head []byte) bool {
	return len(head) >= 4 && head[0] == 'P' && head[1] == 'K' &&
		(head[2] == 0x03 || head[2] == 0x05 || head[2] == 0x07)
}

func isArchiveFamily(mt string) bool {
	switch mt {
	case "application/zip",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
		"application/epub+zip":
		return true
	default:
		return false
	}
}

func isTextFamily(mt string) bool {
	if mt == "" {
		return true // unknown is treated as possibly-text for charset purposes
	}
	return strings.HasPrefix(mt, "text/") ||
		mt == "application/json" ||
		mt == "application/xml" ||
		mt == "application/javascript"
}

func defaultExtensionTable() map[string]string {
	return map[string]string{
		".txt":  "text/plain",
		".md":   "text/markdown",
		".html": "text/html",
		".htm":  "text/html",
		".csv":  "text/csv",
		".json": "application/json",
		".xml":  "application/xml",
		".pdf":  "application/pdf",
		".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		".doc":  "application/msword",
		".xls":  "application/vnd.ms-excel",
		".ppt":  "application/vnd.ms-powerpoint",
		".zip":  "application/zip",
		".png":  "image/png",
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".ogg":  "audio/ogg",
		".wav":  "audio/wav",
	}
}
