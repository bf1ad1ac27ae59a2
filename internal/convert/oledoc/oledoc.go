// Package oledoc provides a metadata-level converter for legacy OLE
// compound file binary documents (.doc, .xls, .ppt). Full parsing of the
// old binary formats is out of scope; this converter surfaces the
// document's stream listing and any SummaryInformation properties it can
// read, via mscfb and msoleps.
package oledoc

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/richardlehane/mscfb"
	"github.com/richardlehane/msoleps"

	"github.com/voidlight/voidlight-markitdown/internal/dispatch"
	"github.com/voidlight/voidlight-markitdown/internal/merr"
	"github.com/voidlight/voidlight-markitdown/internal/streaminfo"
)

const cfbMimetype = "application/x-cfb"

var legacyExtensions = map[string]string{
	".doc": "word document",
	".xls": "spreadsheet",
	".ppt": "presentation",
}

// Converter accepts OLE compound file binary streams by mimetype or a
// legacy Office extension.
type Converter struct{}

// New returns an oledoc Converter.
func New() *Converter { return &Converter{} }

func (c *Converter) Accepts(_ []byte, info streaminfo.StreamInfo) bool {
	if info.Mimetype == cfbMimetype {
		return true
	}
	_, ok := legacyExtensions[info.Extension]
	return ok
}

func (c *Converter) Convert(_ context.Context, stream dispatch.Stream, info streaminfo.StreamInfo, _ dispatch.ConvertOptions) (dispatch.ConverterResult, error) {
	doc, err := mscfb.New(stream)
	if err != nil {
		return dispatch.ConverterResult{}, merr.Wrap(merr.FileConversionErr, "failed to read compound file", err)
	}

	var streams []string
	var summaryBuf []byte
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		streams = append(streams, entry.Name)
		if isSummaryStream(entry.Name) {
			buf := make([]byte, entry.Size)
			if _, rerr := doc.Read(buf); rerr == nil {
				summaryBuf = buf
			}
		}
	}
	sort.Strings(streams)

	title, metadata := extractSummary(summaryBuf)
	if title == "" {
		title = info.Filename
	}

	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}
	if kind, ok := legacyExtensions[info.Extension]; ok {
		fmt.Fprintf(&b, "Legacy %s (OLE compound file). Full conversion of this format is not supported; showing document metadata.\n\n", kind)
	}
	if len(streams) > 0 {
		b.WriteString("## Streams\n\n")
		for _, s := range streams {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	return dispatch.ConverterResult{Markdown: b.String(), Title: title, Metadata: metadata}, nil
}

func isSummaryStream(name string) bool {
	n := strings.TrimLeft(name, "\x05")
	return n == "SummaryInformation" || n == "DocumentSummaryInformation"
}

// extractSummary parses a SummaryInformation property stream, returning the
// document title (if present) and a flattened metadata map. Parse failures
// are swallowed: metadata is best-effort.
func extractSummary(buf []byte) (string, map[string]string) {
	if len(buf) == 0 {
		return "", nil
	}
	file, err := msoleps.New(bytes.NewReader(buf))
	if err != nil {
		return "", nil
	}

	title := ""
	metadata := make(map[string]string)
	for _, prop := range file.Property {
		if prop == nil || prop.Name == "" {
			continue
		}
		val := prop.String()
		metadata[prop.Name] = val
		if strings.EqualFold(prop.Name, "Title") {
			title = val
		}
	}
	if len(metadata) == 0 {
		return title, nil
	}
	return title, metadata
}
