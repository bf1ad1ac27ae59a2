// Package korean implements the Korean-aware text processing pipeline:
// encoding detection, normalization, tokenization with backend fallback,
// and the derived analyses built on top of the morpheme stream.
package korean

// Morpheme is the single record shape every tokenizer tier produces.
// Downstream analyses (noun extraction, keyword extraction, formality
// analysis) are coded against this record only, never against a specific
// backend's richer output.
type Morpheme struct {
	Surface string
	POS     string
	Lemma   string
	Start   int
	End     int
}

// Tier identifies which tokenizer backend produced a Morpheme stream.
type Tier string

const (
	TierKiwi      Tier = "kiwi"
	TierJava      Tier = "java"
	TierHeuristic Tier = "heuristic"
)

// Options controls how Process runs the pipeline.
type Options struct {
	// CharsetHint, if non-empty, is tried first during decode.
	CharsetHint string
}

// Processor runs the full Korean pipeline: decode, normalize, tokenize,
// and derive analyses. It is safe for concurrent use; the active
// tokenizer tier is selected once at construction.
type Processor struct {
	tokenizer tokenizer
	status    ProcessorStatus
}

// New probes the available tokenizer backends in preference order and
// returns a Processor bound to the first usable tier.
func New() *Processor {
	status := probeBackends()
	return &Processor{tokenizer: status.active, status: status.ProcessorStatus}
}

// ProcessorStatus reports which tokenizer tier is active and why the
// others were skipped.
func (p *Processor) ProcessorStatus() ProcessorStatus {
	return p.status
}

// Document is the full output of running the pipeline over one input.
type Document struct {
	Text      string
	Morphemes []Morpheme
	Sentences []string
	Metadata  Metadata
}

// Process decodes raw bytes, normalizes and tokenizes the result, and
// computes metadata. decodeWarning is non-empty only when the encoding
// cascade had to fall back to lossy replacement.
func (p *Processor) Process(data []byte, opts Options) (Document, string, error) {
	decoded, warning, err := DecodeCascade(data, opts.CharsetHint)
	if err != nil {
		return Document{}, "", err
	}
	normalized := Normalize(decoded)
	morphemes := p.tokenizer.Tokenize(normalized)
	sentences := SegmentSentences(normalized)
	meta := ExtractMetadata(normalized, morphemes, sentences)

	return Document{
		Text:      normalized,
		Morphemes: morphemes,
		Sentences: sentences,
		Metadata:  meta,
	}, warning, nil
}
