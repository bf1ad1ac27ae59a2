package korean

import (
	"testing"

	"golang.org/x/text/encoding/korean"
)

func TestDecodeCascadeUTF8(t *testing.T) {
	got, warning, err := DecodeCascade([]byte("안녕하세요"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "안녕하세요" {
		t.Fatalf("got %q, want 안녕하세요", got)
	}
	if warning != "" {
		t.Fatalf("expected no warning, got %q", warning)
	}
}

func TestDecodeCascadeEUCKR(t *testing.T) {
	encoded, err := korean.EUCKR.NewEncoder().String("한글 텍스트")
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	got, _, err := DecodeCascade([]byte(encoded), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "한글 텍스트" {
		t.Fatalf("got %q, want 한글 텍스트", got)
	}
}

func TestDecodeCascadeHint(t *testing.T) {
	encoded, err := korean.EUCKR.NewEncoder().String("테스트")
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	got, _, err := DecodeCascade([]byte(encoded), "euc-kr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "테스트" {
		t.Fatalf("got %q, want 테스트", got)
	}
}

func TestDecodeCascadeFallbackLossy(t *testing.T) {
	// Invalid byte sequence under every strict decoder: not valid UTF-8,
	// no UTF-16 BOM, and outside the EUC-KR lead-byte range.
	invalid := []byte{0x80, 0x80, 0x80}
	_, warning, err := DecodeCascade(invalid, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warning == "" {
		t.Fatalf("expected a fallback warning")
	}
}
