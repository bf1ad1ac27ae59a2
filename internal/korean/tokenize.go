package korean

import (
	"os/exec"
	"unicode"
)

// tokenizer is implemented by each backend tier. All tiers must agree on
// the Morpheme shape; callers never branch on which tier produced it.
type tokenizer interface {
	Tokenize(text string) []Morpheme
}

// BackendStatus describes the outcome of probing one tokenizer tier.
type BackendStatus struct {
	Tier      Tier
	Available bool
	Reason    string // populated when Available is false
}

// ProcessorStatus reports which tier is active and the probe outcome for
// every tier, in preference order.
type ProcessorStatus struct {
	Active Tier
	Tiers  []BackendStatus
}

type probeResult struct {
	ProcessorStatus
	active tokenizer
}

// probeBackends tries each tier in preference order (kiwi, java, heuristic)
// and binds the Processor to the first one that is actually usable. The
// heuristic tier never fails, so probing always terminates.
func probeBackends() probeResult {
	var statuses []BackendStatus

	if probeKiwi() {
		statuses = append(statuses, BackendStatus{Tier: TierKiwi, Available: true})
		return probeResult{ProcessorStatus{Active: TierKiwi, Tiers: statuses}, newKiwiTokenizer()}
	}
	statuses = append(statuses, BackendStatus{Tier: TierKiwi, Available: false, Reason: "kiwi binary not found on PATH"})

	if ok, reason := probeJava(); ok {
		statuses = append(statuses, BackendStatus{Tier: TierJava, Available: true})
		return probeResult{ProcessorStatus{Active: TierJava, Tiers: statuses}, newJavaTokenizer()}
	} else {
		statuses = append(statuses, BackendStatus{Tier: TierJava, Available: false, Reason: reason})
	}

	statuses = append(statuses, BackendStatus{Tier: TierHeuristic, Available: true})
	return probeResult{ProcessorStatus{Active: TierHeuristic, Tiers: statuses}, heuristicTokenizer{}}
}

// probeKiwi reports the kiwi tier available when an executable named
// "kiwi" is on PATH. No such binary is vendored with this repository.
func probeKiwi() bool {
	_, err := exec.LookPath("kiwi")
	return err == nil
}

// probeJava checks for a java runtime on PATH. Even when present, without
// a bundled analyzer jar the tier has nothing to invoke, so this reports
// unavailable with a distinct reason from "no runtime".
func probeJava() (bool, string) {
	if _, err := exec.LookPath("java"); err != nil {
		return false, "java runtime not found on PATH"
	}
	return false, "java runtime present but no morphological analyzer jar configured"
}

// kiwiTokenizer and javaTokenizer are the hook points for the two optional
// backends. probeJava never reports the java tier available, so
// javaTokenizer is not constructed; kiwiTokenizer is constructed when
// probeKiwi finds a kiwi binary. Neither invokes an external analyzer:
// both return the heuristic tier's output.
type kiwiTokenizer struct{}

func newKiwiTokenizer() tokenizer { return kiwiTokenizer{} }

func (kiwiTokenizer) Tokenize(text string) []Morpheme {
	return heuristicTokenizer{}.Tokenize(text)
}

type javaTokenizer struct{}

func newJavaTokenizer() tokenizer { return javaTokenizer{} }

func (javaTokenizer) Tokenize(text string) []Morpheme {
	return heuristicTokenizer{}.Tokenize(text)
}

// heuristicTokenizer whitespace-splits and tags each token with a coarse
// part-of-speech via character-class rules. Always available.
type heuristicTokenizer struct{}

func (heuristicTokenizer) Tokenize(text string) []Morpheme {
	var morphemes []Morpheme
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= len(runes) {
			break
		}
		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}
		surface := string(runes[start:i])
		morphemes = append(morphemes, Morpheme{
			Surface: surface,
			POS:     classifyPOS(surface),
			Lemma:   surface,
			Start:   start,
			End:     i,
		})
	}
	return morphemes
}

// classifyPOS applies the character-class rules: all-Hangul -> NN,
// all-digit -> NUM, mixed Latin -> FW, else UNK.
func classifyPOS(token string) string {
	hasHangul, hasDigit, hasLatin, hasOther := false, false, false, false
	for _, r := range token {
		switch {
		case isHangulSyllable(r) || unicode.Is(unicode.Hangul, r):
			hasHangul = true
		case unicode.IsDigit(r):
			hasDigit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLatin = true
		default:
			if !unicode.IsPunct(r) {
				hasOther = true
			}
		}
	}
	switch {
	case hasHangul && !hasDigit && !hasLatin && !hasOther:
		return "NN"
	case hasDigit && !hasHangul && !hasLatin && !hasOther:
		return "NUM"
	case hasLatin && !hasHangul:
		return "FW"
	default:
		return "UNK"
	}
}
