package plaintext

import (
	"context"
	"strings"
	"testing"

	"github.com/voidlight/voidlight-markitdown/internal/dispatch"
	"github.com/voidlight/voidlight-markitdown/internal/streaminfo"
)

func TestAcceptsEmptyStream(t *testing.T) {
	c := New()
	if !c.Accepts(nil, streaminfo.StreamInfo{}) {
		t.Fatalf("expected empty stream to be accepted")
	}
}

func TestAcceptsTextFamily(t *testing.T) {
	c := New()
	if !c.Accepts([]byte("hello"), streaminfo.StreamInfo{Mimetype: "text/plain"}) {
		t.Fatalf("expected text/plain to be accepted")
	}
	if c.Accepts([]byte("\x89PNG"), streaminfo.StreamInfo{Mimetype: "image/png"}) {
		t.Fatalf("did not expect image/png to be accepted")
	}
}

func TestConvertZeroLengthInput(t *testing.T) {
	c := New()
	res, err := c.Convert(context.Background(), strings.NewReader(""), streaminfo.StreamInfo{}, dispatch.ConvertOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Markdown != "" {
		t.Fatalf("expected empty markdown, got %q", res.Markdown)
	}
}

func TestConvertPassthrough(t *testing.T) {
	c := New()
	res, err := c.Convert(context.Background(), strings.NewReader("plain text body"), streaminfo.StreamInfo{}, dispatch.ConvertOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Markdown != "plain text body" {
		t.Fatalf("expected passthrough, got %q", res.Markdown)
	}
}
