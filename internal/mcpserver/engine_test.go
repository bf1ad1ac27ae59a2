package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/voidlight/voidlight-markitdown/internal/convert/plaintext"
	"github.com/voidlight/voidlight-markitdown/internal/dispatch"
	"github.com/voidlight/voidlight-markitdown/internal/korean"
	"github.com/voidlight/voidlight-markitdown/internal/resolve"
	"github.com/voidlight/voidlight-markitdown/internal/sniff"
)

func testEngine() *Engine {
	registry := dispatch.NewRegistry()
	registry.Register("plaintext", plaintext.New(), dispatch.PriorityGeneric)
	d := dispatch.New(registry, sniff.New(), nil)
	r := resolve.New(resolve.DefaultConfig())
	return NewEngine(r, d, korean.New())
}

func TestConvertToMarkdownDataURI(t *testing.T) {
	e := testEngine()
	md, err := e.ConvertToMarkdown(context.Background(), "data:text/plain;charset=utf-8,Hello%20World")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if md != "Hello World" {
		t.Fatalf("expected %q, got %q", "Hello World", md)
	}
}

func TestConvertToMarkdownUnsupportedScheme(t *testing.T) {
	e := testEngine()
	_, err := e.ConvertToMarkdown(context.Background(), "ftp://example.com/file")
	if err == nil {
		t.Fatalf("expected an error for an unsupported scheme")
	}
}

func TestConvertKoreanDocumentPrependsFrontmatter(t *testing.T) {
	e := testEngine()
	md, err := e.ConvertKoreanDocument(context.Background(), "data:text/plain;charset=utf-8,%EC%95%88%EB%85%95", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(md, "---\n") {
		t.Fatalf("expected a frontmatter block, got %q", md)
	}
	if !strings.Contains(md, "has_korean: true") {
		t.Fatalf("expected has_korean: true in frontmatter, got %q", md)
	}
}

func TestConvertKoreanDocumentSkipsNormalization(t *testing.T) {
	e := testEngine()
	md, err := e.ConvertKoreanDocument(context.Background(), "data:text/plain;charset=utf-8,Hello", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.HasPrefix(md, "---\n") {
		t.Fatalf("expected no frontmatter when normalization is skipped, got %q", md)
	}
	if md != "Hello" {
		t.Fatalf("expected passthrough markdown, got %q", md)
	}
}
