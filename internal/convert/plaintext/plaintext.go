// Package plaintext implements the generic fall-through converter: any
// text-like stream is passed through as Markdown verbatim. It is
// registered at dispatch.PriorityGeneric so more specific converters get
// first refusal.
package plaintext

import (
	"context"
	"io"

	"github.com/voidlight/voidlight-markitdown/internal/dispatch"
	"github.com/voidlight/voidlight-markitdown/internal/streaminfo"
)

// Converter accepts any stream whose sniffed mimetype is text-family, or
// any empty stream (the zero-length boundary case in spec §8 is explicitly
// this converter's responsibility).
type Converter struct{}

// New returns a plaintext Converter.
func New() *Converter { return &Converter{} }

func (c *Converter) Accepts(head []byte, info streaminfo.StreamInfo) bool {
	if len(head) == 0 {
		return true
	}
	mt := info.Mimetype
	return mt == "" || isTextLike(mt)
}

func (c *Converter) Convert(_ context.Context, stream dispatch.Stream, info streaminfo.StreamInfo, _ dispatch.ConvertOptions) (dispatch.ConverterResult, error) {
	data, err := io.ReadAll(stream)
	if err != nil {
		return dispatch.ConverterResult{}, err
	}
	return dispatch.ConverterResult{Markdown: string(data)}, nil
}

func isTextLike(mt string) bool {
	switch mt {
	case "text/plain", "text/markdown", "application/json", "application/xml":
		return true
	}
	return len(mt) >= 5 && mt[:5] == "text/"
}
