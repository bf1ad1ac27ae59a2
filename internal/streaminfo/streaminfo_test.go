package streaminfo

import "testing"

func TestCopyAndUpdatePrecedence(t *testing.T) {
	base := New("text/plain", ".txt", "", "", "", "")
	updated := base.CopyAndUpdate(New("", ".md", "utf-8", "notes.md", "", ""))

	if updated.Mimetype != "text/plain" {
		t.Fatalf("expected base mimetype retained, got %q", updated.Mimetype)
	}
	if updated.Extension != ".md" {
		t.Fatalf("expected override extension, got %q", updated.Extension)
	}
	if updated.Charset != "utf-8" {
		t.Fatalf("expected override charset, got %q", updated.Charset)
	}
}

func TestCopyAndUpdateIdempotent(t *testing.T) {
	base := New("text/html", "html", "utf-8", "page.html", "", "https://example.com")
	override := New("text/html", "html", "utf-8", "page.html", "", "https://example.com")

	once := base.CopyAndUpdate(override)
	twice := once.CopyAndUpdate(override)

	if once != twice {
		t.Fatalf("expected idempotent CopyAndUpdate, got %+v vs %+v", once, twice)
	}
}

func TestExtensionNormalization(t *testing.T) {
	si := New("", "PDF", "", "", "", "")
	if si.Extension != ".pdf" {
		t.Fatalf("expected normalized extension .pdf, got %q", si.Extension)
	}
}

func TestMimetypeBase(t *testing.T) {
	cases := map[string]string{
		"text/html; charset=utf-8": "text/html",
		"application/pdf":          "application/pdf",
		"":                         "",
	}
	for in, want := range cases {
		if got := MimetypeBase(in); got != want {
			t.Errorf("MimetypeBase(%q) = %q, want %q", in, got, want)
		}
	}
}
