package korean

import (
	"math"
	"sort"
	"strings"
)

// ExtractNouns filters morphemes whose POS begins with "N".
func ExtractNouns(morphemes []Morpheme) []Morpheme {
	var nouns []Morpheme
	for _, m := range morphemes {
		if strings.HasPrefix(m.POS, "N") {
			nouns = append(nouns, m)
		}
	}
	return nouns
}

// SegmentSentences splits text on terminators (.?!。？！) while keeping
// quote- and bracket-balanced regions intact. A run of terminators such as
// "..." ends the sentence once and stays, unchanged, with its sentence.
func SegmentSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	var cur strings.Builder
	depth := 0
	// Straight quotes open and close with the same character, so each one
	// toggles between opening and closing its region.
	inQuote := map[rune]bool{}

	flush := func() {
		s := strings.TrimSpace(cur.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		cur.Reset()
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"' || r == '\'':
			if inQuote[r] {
				if depth > 0 {
					depth--
				}
			} else {
				depth++
			}
			inQuote[r] = !inQuote[r]
			cur.WriteRune(r)
		case isOpenBracket(r):
			depth++
			cur.WriteRune(r)
		case isCloseBracket(r):
			if depth > 0 {
				depth--
			}
			cur.WriteRune(r)
		case strings.ContainsRune(terminators, r):
			cur.WriteRune(r)
			// Collapse a run of terminators (e.g. "...") into one break.
			for i+1 < len(runes) && strings.ContainsRune(terminators, runes[i+1]) {
				i++
				cur.WriteRune(runes[i])
			}
			if depth == 0 {
				flush()
			}
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return sentences
}

func isOpenBracket(r rune) bool {
	switch r {
	case '(', '[', '{', '"', '\'', '「', '『', '《':
		return true
	}
	return false
}

func isCloseBracket(r rune) bool {
	switch r {
	case ')', ']', '}', '”', '’', '」', '』', '》':
		return true
	}
	return false
}

// Keyword is a scored term from ExtractKeywords.
type Keyword struct {
	Term  string
	Score float64
}

// ExtractKeywords scores nouns of length >= 2 by raw frequency normalized
// by log-document-length, returning the top K in descending score order.
func ExtractKeywords(morphemes []Morpheme, topK int) []Keyword {
	counts := make(map[string]int)
	total := 0
	for _, m := range ExtractNouns(morphemes) {
		if len([]rune(m.Surface)) < 2 {
			continue
		}
		counts[m.Surface]++
		total++
	}
	if total == 0 {
		return nil
	}
	denom := math.Log(float64(total) + math.E)

	keywords := make([]Keyword, 0, len(counts))
	for term, count := range counts {
		keywords = append(keywords, Keyword{Term: term, Score: float64(count) / denom})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Score != keywords[j].Score {
			return keywords[i].Score > keywords[j].Score
		}
		return keywords[i].Term < keywords[j].Term
	})
	if topK > 0 && len(keywords) > topK {
		keywords = keywords[:topK]
	}
	return keywords
}

// Formality is the classification produced by AnalyzeFormality.
type Formality string

const (
	FormalityFormal   Formality = "formal"
	FormalityPolite   Formality = "polite"
	FormalityInformal Formality = "informal"
)

// FormalityCounts holds the raw ending counts AnalyzeFormality tallies.
type FormalityCounts struct {
	Formal     int
	Polite     int
	Informal   int
	Honorific  int
}

// FormalityResult is the outcome of AnalyzeFormality.
type FormalityResult struct {
	Classification Formality
	Counts         FormalityCounts
}

var (
	formalEndings   = []string{"습니다", "ㅂ니다"}
	politeEndings   = []string{"에요", "예요", "요"}
	informalEndings = []string{"다", "야", "어", "아"}
	honorificMarkers = []string{"시", "님"}
)

// AnalyzeFormality counts sentence-final endings across the given
// sentences and classifies the overall register by majority.
func AnalyzeFormality(sentences []string) FormalityResult {
	var counts FormalityCounts
	for _, s := range sentences {
		trimmed := strings.TrimRight(s, terminators)
		trimmed = strings.TrimSpace(trimmed)
		if trimmed == "" {
			continue
		}
		switch {
		case hasAnySuffix(trimmed, formalEndings):
			counts.Formal++
		case hasAnySuffix(trimmed, politeEndings):
			counts.Polite++
		case hasAnySuffix(trimmed, informalEndings):
			counts.Informal++
		}
		for _, marker := range honorificMarkers {
			if strings.Contains(trimmed, marker) {
				counts.Honorific++
				break
			}
		}
	}

	classification := FormalityInformal
	switch {
	case counts.Formal >= counts.Polite && counts.Formal >= counts.Informal && counts.Formal > 0:
		classification = FormalityFormal
	case counts.Polite >= counts.Formal && counts.Polite >= counts.Informal && counts.Polite > 0:
		classification = FormalityPolite
	}

	return FormalityResult{Classification: classification, Counts: counts}
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// ReadingDifficulty is the classification produced by AnalyzeReadingDifficulty.
type ReadingDifficulty string

const (
	DifficultyBeginner     ReadingDifficulty = "beginner"
	DifficultyIntermediate ReadingDifficulty = "intermediate"
	DifficultyAdvanced     ReadingDifficulty = "advanced"
)

// ReadingDifficultyResult holds the metrics behind the classification.
type ReadingDifficultyResult struct {
	Classification        ReadingDifficulty
	AvgSentenceLenTokens  float64
	ComplexWordRatio      float64
	HanjaRatio            float64
}

// AnalyzeReadingDifficulty buckets a document by average sentence length
// in tokens, the ratio of complex tokens, and the Hanja ratio of all
// characters. A token counts as complex when its surface is at least 4
// characters long or contains Hanja; the number of morphemes per word is
// not counted.
func AnalyzeReadingDifficulty(text string, morphemes []Morpheme, sentences []string) ReadingDifficultyResult {
	avgLen := 0.0
	if len(sentences) > 0 {
		avgLen = float64(len(morphemes)) / float64(len(sentences))
	}

	complex := 0
	for _, m := range morphemes {
		if len([]rune(m.Surface)) >= 4 || containsHanja(m.Surface) {
			complex++
		}
	}
	complexRatio := 0.0
	if len(morphemes) > 0 {
		complexRatio = float64(complex) / float64(len(morphemes))
	}

	hanjaRatio := runeRatio(text, isHanja)

	classification := DifficultyBeginner
	switch {
	case avgLen >= 12 || complexRatio >= 0.3 || hanjaRatio >= 0.05:
		classification = DifficultyAdvanced
	case avgLen >= 6 || complexRatio >= 0.15 || hanjaRatio > 0:
		classification = DifficultyIntermediate
	}

	return ReadingDifficultyResult{
		Classification:       classification,
		AvgSentenceLenTokens: avgLen,
		ComplexWordRatio:     complexRatio,
		HanjaRatio:           hanjaRatio,
	}
}

func containsHanja(s string) bool {
	for _, r := range s {
		if isHanja(r) {
			return true
		}
	}
	return false
}

func runeRatio(s string, pred func(rune) bool) float64 {
	total, matched := 0, 0
	for _, r := range s {
		total++
		if pred(r) {
			matched++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}
