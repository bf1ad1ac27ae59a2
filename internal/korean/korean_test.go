package korean

import "testing"

func TestProcessorProcessUTF8(t *testing.T) {
	p := New()
	doc, warning, err := p.Process([]byte("안녕하세요. 반갑습니다."), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warning != "" {
		t.Fatalf("expected no decode warning, got %q", warning)
	}
	if len(doc.Sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %+v", len(doc.Sentences), doc.Sentences)
	}
	if !doc.Metadata.HasKorean {
		t.Fatalf("expected HasKorean true")
	}
}

func TestProcessorStatusAlwaysHasActiveTier(t *testing.T) {
	p := New()
	status := p.ProcessorStatus()
	if status.Active == "" {
		t.Fatalf("expected an active tier to be reported")
	}
}
