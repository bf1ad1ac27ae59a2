package htmlconv

import (
	"context"
	"strings"
	"testing"

	"github.com/voidlight/voidlight-markitdown/internal/dispatch"
	"github.com/voidlight/voidlight-markitdown/internal/streaminfo"
)

func TestAcceptsByExtension(t *testing.T) {
	c := New()
	if !c.Accepts(nil, streaminfo.StreamInfo{Extension: ".html"}) {
		t.Fatalf("expected .html extension to be accepted")
	}
	if c.Accepts(nil, streaminfo.StreamInfo{Extension: ".csv"}) {
		t.Fatalf("did not expect .csv to be accepted")
	}
}

func TestConvertHeadingAndParagraph(t *testing.T) {
	c := New()
	res, err := c.Convert(context.Background(), strings.NewReader("<h1>Title</h1><p>Body</p>"), streaminfo.StreamInfo{}, dispatch.ConvertOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Markdown, "# Title") {
		t.Fatalf("expected markdown to contain heading, got:\n%s", res.Markdown)
	}
	if !strings.Contains(res.Markdown, "Body") {
		t.Fatalf("expected markdown to contain body text, got:\n%s", res.Markdown)
	}
}

func TestConvertTitleElement(t *testing.T) {
	c := New()
	res, err := c.Convert(context.Background(), strings.NewReader("<html><head><title>문서 제목</title></head><body><p>내용</p></body></html>"), streaminfo.StreamInfo{}, dispatch.ConvertOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Title != "문서 제목" {
		t.Fatalf("expected title 문서 제목, got %q", res.Title)
	}
}

func TestConvertTable(t *testing.T) {
	c := New()
	html := "<table><tr><th>name</th><th>age</th></tr><tr><td>김철수</td><td>30</td></tr></table>"
	res, err := c.Convert(context.Background(), strings.NewReader(html), streaminfo.StreamInfo{}, dispatch.ConvertOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"name", "age", "김철수", "30", "---"} {
		if !strings.Contains(res.Markdown, want) {
			t.Fatalf("expected markdown to contain %q, got:\n%s", want, res.Markdown)
		}
	}
}

func TestConvertList(t *testing.T) {
	c := New()
	res, err := c.Convert(context.Background(), strings.NewReader("<ul><li>one</li><li>two</li></ul>"), streaminfo.StreamInfo{}, dispatch.ConvertOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Markdown, "- one") || !strings.Contains(res.Markdown, "- two") {
		t.Fatalf("expected markdown to contain list items, got:\n%s", res.Markdown)
	}
}
