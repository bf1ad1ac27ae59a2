package korean

import "testing"

func TestExtractNouns(t *testing.T) {
	morphemes := []Morpheme{
		{Surface: "학교", POS: "NN"},
		{Surface: "가다", POS: "VV"},
		{Surface: "123", POS: "NUM"},
	}
	nouns := ExtractNouns(morphemes)
	if len(nouns) != 1 || nouns[0].Surface != "학교" {
		t.Fatalf("unexpected nouns: %+v", nouns)
	}
}

func TestSegmentSentences(t *testing.T) {
	sentences := SegmentSentences("안녕하세요. 반갑습니다! 잘 지내세요?")
	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %+v", len(sentences), sentences)
	}
	if sentences[0] != "안녕하세요." {
		t.Fatalf("unexpected first sentence: %q", sentences[0])
	}
}

func TestSegmentSentencesCollapsesEllipsis(t *testing.T) {
	sentences := SegmentSentences("잠시만요... 생각 중입니다.")
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %+v", len(sentences), sentences)
	}
	if sentences[0] != "잠시만요..." {
		t.Fatalf("unexpected first sentence: %q", sentences[0])
	}
}

func TestSegmentSentencesKeepsBracketsIntact(t *testing.T) {
	sentences := SegmentSentences(`그는 "괜찮아. 다 잘될 거야." 라고 말했다.`)
	if len(sentences) != 1 {
		t.Fatalf("expected the quoted period to not split the sentence, got %d: %+v", len(sentences), sentences)
	}
}

func TestExtractKeywordsTopK(t *testing.T) {
	morphemes := []Morpheme{
		{Surface: "학교", POS: "NN"},
		{Surface: "학교", POS: "NN"},
		{Surface: "공부", POS: "NN"},
		{Surface: "가", POS: "NN"}, // length 1, excluded
	}
	kws := ExtractKeywords(morphemes, 1)
	if len(kws) != 1 {
		t.Fatalf("expected 1 keyword, got %d", len(kws))
	}
	if kws[0].Term != "학교" {
		t.Fatalf("expected top keyword 학교, got %q", kws[0].Term)
	}
}

func TestAnalyzeFormalityFormal(t *testing.T) {
	result := AnalyzeFormality([]string{"밥을 먹습니다", "책이 있습니다"})
	if result.Classification != FormalityFormal {
		t.Fatalf("expected formal classification, got %v (%+v)", result.Classification, result.Counts)
	}
}

func TestAnalyzeFormalityInformal(t *testing.T) {
	result := AnalyzeFormality([]string{"간다", "먹었다"})
	if result.Classification != FormalityInformal {
		t.Fatalf("expected informal classification, got %v (%+v)", result.Classification, result.Counts)
	}
}

func TestAnalyzeReadingDifficultyBeginner(t *testing.T) {
	morphemes := []Morpheme{{Surface: "나"}, {Surface: "가다"}}
	sentences := []string{"나는 간다."}
	result := AnalyzeReadingDifficulty("나는 간다.", morphemes, sentences)
	if result.Classification != DifficultyBeginner {
		t.Fatalf("expected beginner, got %v", result.Classification)
	}
}
