package korean

import "testing"

func TestHeuristicTokenizePOS(t *testing.T) {
	morphemes := heuristicTokenizer{}.Tokenize("안녕하세요 123 Hello 혼합123")
	if len(morphemes) != 4 {
		t.Fatalf("expected 4 tokens, got %d: %+v", len(morphemes), morphemes)
	}
	want := []string{"NN", "NUM", "FW", "UNK"}
	for i, m := range morphemes {
		if m.POS != want[i] {
			t.Fatalf("token %d (%q): got POS %q, want %q", i, m.Surface, m.POS, want[i])
		}
		if m.Lemma != m.Surface {
			t.Fatalf("heuristic tier lemma should equal surface, got %q vs %q", m.Lemma, m.Surface)
		}
	}
}

func TestHeuristicTokenizeOffsets(t *testing.T) {
	morphemes := heuristicTokenizer{}.Tokenize("가 나")
	if len(morphemes) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(morphemes))
	}
	if morphemes[0].Start != 0 || morphemes[0].End != 1 {
		t.Fatalf("unexpected offsets for first token: %+v", morphemes[0])
	}
	if morphemes[1].Start != 2 || morphemes[1].End != 3 {
		t.Fatalf("unexpected offsets for second token: %+v", morphemes[1])
	}
}

func TestProbeBackendsAlwaysResolves(t *testing.T) {
	result := probeBackends()
	if result.active == nil {
		t.Fatalf("expected an active tokenizer to always be selected")
	}
	if result.Active != TierHeuristic {
		t.Skip("kiwi or java backend present in this environment")
	}
	if len(result.Tiers) != 3 {
		t.Fatalf("expected probe status for all 3 tiers, got %d", len(result.Tiers))
	}
}
