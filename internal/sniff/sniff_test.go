package sniff

import (
	"testing"

	"github.com/voidlight/voidlight-markitdown/internal/streaminfo"
)

func TestSniffPDFMagicBytes(t *testing.T) {
	s := New()
	head := []byte("%PDF-1.4\n%...")
	info := s.Sniff(head, streaminfo.StreamInfo{})
	if info.Mimetype != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", info.Mimetype)
	}
}

func TestSniffDoesNotDowngradeConfidentDeclaration(t *testing.T) {
	s := New()
	seed := streaminfo.StreamInfo{Mimetype: "text/html"}
	head := []byte("<html><body>hi</body></html>")
	info := s.Sniff(head, seed)
	if info.Mimetype != "text/html" {
		t.Fatalf("expected declared mimetype preserved, got %q", info.Mimetype)
	}
}

func TestSniffReclassifiesMislabeledZip(t *testing.T) {
	s := New()
	seed := streaminfo.StreamInfo{Mimetype: "application/pdf"}
	head := append([]byte{'P', 'K', 0x03, 0x04}, make([]byte, 20)...)
	info := s.Sniff(head, seed)
	if info.Mimetype == "application/pdf" {
		t.Fatalf("expected ZIP signature to override mislabeled pdf, got %q", info.Mimetype)
	}
}

func TestSniffExtensionFallback(t *testing.T) {
	s := New()
	seed := streaminfo.StreamInfo{Filename: "notes.md"}
	info := s.Sniff([]byte("# hello"), seed)
	if info.Mimetype != "text/markdown" {
		t.Fatalf("expected extension fallback to text/markdown, got %q", info.Mimetype)
	}
}

func TestDetectCharsetUTF8BOM(t *testing.T) {
	head := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	cs, conf := detectCharset(head)
	if cs != "utf-8" || conf != 1.0 {
		t.Fatalf("expected utf-8 BOM detection at full confidence, got %q %v", cs, conf)
	}
}
