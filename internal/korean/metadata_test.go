package korean

import "testing"

func TestDetectKoreanRatioPureKorean(t *testing.T) {
	if r := DetectKoreanRatio("안녕하세요"); r != 1.0 {
		t.Fatalf("expected ratio 1.0, got %v", r)
	}
}

func TestDetectKoreanRatioMixed(t *testing.T) {
	r := DetectKoreanRatio("Hello 안녕")
	if !(r > 0.3 && r < 0.4) {
		t.Fatalf("expected ratio strictly between 0.3 and 0.4, got %v", r)
	}
}

func TestDetectKoreanRatioNoKorean(t *testing.T) {
	if r := DetectKoreanRatio("Hello World"); r != 0.0 {
		t.Fatalf("expected ratio 0.0, got %v", r)
	}
}

func TestDetectKoreanRatioEmpty(t *testing.T) {
	if r := DetectKoreanRatio(""); r != 0.0 {
		t.Fatalf("expected ratio 0.0, got %v", r)
	}
}

func TestExtractMetadataFields(t *testing.T) {
	text := "안녕하세요. 반갑습니다."
	morphemes := []Morpheme{
		{Surface: "안녕", POS: "NN"},
		{Surface: "반갑습니다", POS: "VV"},
	}
	sentences := SegmentSentences(text)
	meta := ExtractMetadata(text, morphemes, sentences)

	if !meta.HasKorean {
		t.Fatalf("expected HasKorean true")
	}
	if meta.HasHanja {
		t.Fatalf("did not expect HasHanja true")
	}
	if meta.HasMixedScript {
		t.Fatalf("did not expect HasMixedScript true")
	}
	if meta.SentenceCount != 2 {
		t.Fatalf("expected 2 sentences, got %d", meta.SentenceCount)
	}
	if meta.WordCount != len(morphemes) {
		t.Fatalf("expected word count %d, got %d", len(morphemes), meta.WordCount)
	}
}
