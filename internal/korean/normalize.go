package korean

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// mojibakeTable maps known corrupt byte-decode artifacts (typically
// CP949-as-Latin-1 mis-decodes) to their best-guess repair, a "?" so the
// corruption stays visible rather than silently swallowed. Sequences not
// in the table are left untouched.
var mojibakeTable = map[string]string{
	"占쏙옙": "?",
	"占쏙":  "?",
	"占":   "?",
	"���": "?",
}

var zeroWidthReplacer = strings.NewReplacer(
	"​", "",
	"‌", "",
	"‍", "",
	"\xef\xbb\xbf", "", // U+FEFF zero-width no-break space (byte order mark)
	" ", " ",
)

var (
	multiSpaceRe   = regexp.MustCompile(` {2,}`)
	multiNewlineRe = regexp.MustCompile(`\n{3,}`)
)

// terminators are the sentence-final punctuation marks that stop line-break
// repair from joining two lines.
const terminators = ".?!。？！"

// Normalize applies, in order: NFC normalization, zero-width/NBSP cleanup,
// mojibake repair, whitespace collapse, and Korean line-break repair.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = zeroWidthReplacer.Replace(s)
	s = repairMojibake(s)
	s = collapseWhitespace(s)
	s = repairKoreanLineBreaks(s)
	return s
}

func repairMojibake(s string) string {
	// Longest entries first, so "占쏙옙" is replaced whole before its
	// prefixes "占쏙" and "占" can split it.
	bads := make([]string, 0, len(mojibakeTable))
	for bad := range mojibakeTable {
		bads = append(bads, bad)
	}
	sort.Slice(bads, func(i, j int) bool { return len(bads[i]) > len(bads[j]) })
	for _, bad := range bads {
		s = strings.ReplaceAll(s, bad, mojibakeTable[bad])
	}
	return s
}

func collapseWhitespace(s string) string {
	s = multiSpaceRe.ReplaceAllString(s, " ")
	s = multiNewlineRe.ReplaceAllString(s, "\n\n")
	return s
}

// repairKoreanLineBreaks joins a newline sitting between two Hangul
// syllables with a single space, unless the text immediately before the
// newline ends in a sentence terminator (optionally followed by a closing
// quote or bracket).
func repairKoreanLineBreaks(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\n' {
			b.WriteRune(r)
			continue
		}
		prev := lastNonSpaceRune(runes, i)
		next := nextNonSpaceRune(runes, i)
		if isHangulSyllable(prev) && isHangulSyllable(next) && !endsWithTerminator(runes, i) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func lastNonSpaceRune(runes []rune, idx int) rune {
	for j := idx - 1; j >= 0; j-- {
		if runes[j] != ' ' && runes[j] != '\t' {
			return runes[j]
		}
	}
	return 0
}

func nextNonSpaceRune(runes []rune, idx int) rune {
	for j := idx + 1; j < len(runes); j++ {
		if runes[j] != ' ' && runes[j] != '\t' {
			return runes[j]
		}
	}
	return 0
}

// endsWithTerminator reports whether the text immediately preceding
// position idx ends in a sentence terminator, allowing for one trailing
// closing quote or bracket character.
func endsWithTerminator(runes []rune, idx int) bool {
	j := idx - 1
	for j >= 0 && (runes[j] == ' ' || runes[j] == '\t') {
		j--
	}
	if j < 0 {
		return false
	}
	if isClosingMark(runes[j]) {
		j--
		for j >= 0 && (runes[j] == ' ' || runes[j] == '\t') {
			j--
		}
		if j < 0 {
			return false
		}
	}
	return strings.ContainsRune(terminators, runes[j])
}

func isClosingMark(r rune) bool {
	switch r {
	case '"', '\'', '”', '’', ')', ']', '」', '』', '》':
		return true
	}
	return false
}

func isHangulSyllable(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}
