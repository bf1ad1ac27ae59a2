package korean

import "testing"

func TestConvertHanjaToHangul(t *testing.T) {
	got := ConvertHanjaToHangul("大韓民國")
	want := "대한민국"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestConvertHanjaToHangulPassesThroughUnknown(t *testing.T) {
	got := ConvertHanjaToHangul("안녕 hello 123")
	if got != "안녕 hello 123" {
		t.Fatalf("expected non-Hanja text to pass through unchanged, got %q", got)
	}
}

func TestIsHanja(t *testing.T) {
	if !isHanja('韓') {
		t.Fatalf("expected 韓 to be classified as Hanja")
	}
	if isHanja('한') {
		t.Fatalf("did not expect Hangul syllable to be classified as Hanja")
	}
}
