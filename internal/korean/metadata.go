package korean

import "unicode"

// Metadata is the record the convert_korean_document tool surfaces as a
// frontmatter block when requested.
type Metadata struct {
	KoreanCharRatio float64
	HasKorean       bool
	HasHanja        bool
	HasMixedScript  bool
	CharCount       int
	WordCount       int
	SentenceCount   int
	TopNouns        []string
}

// ExtractMetadata computes document-level statistics from normalized text
// and its morpheme/sentence decomposition.
func ExtractMetadata(text string, morphemes []Morpheme, sentences []string) Metadata {
	charCount := 0
	koreanCount := 0
	hasHanja := false
	hasLatin := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		charCount++
		switch {
		case isHangulSyllable(r) || unicode.Is(unicode.Hangul, r):
			koreanCount++
		case isHanja(r):
			hasHanja = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLatin = true
		}
	}

	ratio := DetectKoreanRatio(text)

	nouns := ExtractNouns(morphemes)
	topNouns := topNTerms(nouns, 10)

	return Metadata{
		KoreanCharRatio: ratio,
		HasKorean:       koreanCount > 0,
		HasHanja:        hasHanja,
		HasMixedScript:  koreanCount > 0 && hasLatin,
		CharCount:       charCount,
		WordCount:       len(morphemes),
		SentenceCount:   len(sentences),
		TopNouns:        topNouns,
	}
}

func topNTerms(nouns []Morpheme, n int) []string {
	kws := ExtractKeywords(nouns, n)
	terms := make([]string, 0, len(kws))
	for _, k := range kws {
		terms = append(terms, k.Term)
	}
	return terms
}

// DetectKoreanRatio reports the fraction of distinct non-space characters
// in s that are Hangul. Distinct characters, rather than raw occurrence
// counts, keep a single repeated letter (English text is full of them)
// from diluting the measured Korean proportion of a short mixed string.
func DetectKoreanRatio(s string) float64 {
	seen := make(map[rune]bool)
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		seen[r] = true
	}
	if len(seen) == 0 {
		return 0
	}
	korean := 0
	for r := range seen {
		if isHangulSyllable(r) || unicode.Is(unicode.Hangul, r) {
			korean++
		}
	}
	return float64(korean) / float64(len(seen))
}
