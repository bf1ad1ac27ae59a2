package mcpserver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/voidlight/voidlight-markitdown/internal/dispatch"
	"github.com/voidlight/voidlight-markitdown/internal/korean"
	"github.com/voidlight/voidlight-markitdown/internal/merr"
	"github.com/voidlight/voidlight-markitdown/internal/resolve"
)

// ConversionDeadline bounds a single conversion's wall-clock time.
const ConversionDeadline = 120 * time.Second

// Engine wires the resolver, dispatcher, and Korean processor together
// behind the two tool operations the MCP surface exposes. It holds no
// mutable state beyond what its components already guard themselves.
type Engine struct {
	resolver   *resolve.Resolver
	dispatcher *dispatch.Dispatcher
	korean     *korean.Processor
}

// NewEngine builds an Engine from its already-constructed components.
func NewEngine(resolver *resolve.Resolver, dispatcher *dispatch.Dispatcher, kp *korean.Processor) *Engine {
	return &Engine{resolver: resolver, dispatcher: dispatcher, korean: kp}
}

// ConvertToMarkdown resolves uri and dispatches it to the first accepting
// converter, returning the resulting Markdown body.
func (e *Engine) ConvertToMarkdown(ctx context.Context, uri string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, ConversionDeadline)
	defer cancel()

	res, err := e.resolver.Resolve(ctx, uri)
	if err != nil {
		return "", err
	}
	defer res.Cleanup()

	result, _, err := e.dispatcher.Dispatch(ctx, res.Stream, res.Info, dispatch.ConvertOptions{})
	if err != nil {
		return "", mapCancellation(ctx, err)
	}
	return result.Markdown, nil
}

// ConvertKoreanDocument resolves uri, dispatches it through the converter
// registry with Korean mode enabled, then runs the Korean text pipeline
// over the converted Markdown body when normalizeKorean is set, returning
// a metadata frontmatter block followed by the normalized text.
func (e *Engine) ConvertKoreanDocument(ctx context.Context, uri string, normalizeKorean bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, ConversionDeadline)
	defer cancel()

	res, err := e.resolver.Resolve(ctx, uri)
	if err != nil {
		return "", err
	}
	defer res.Cleanup()

	opts := dispatch.ConvertOptions{KoreanMode: true, NormalizeKorean: normalizeKorean}
	result, _, err := e.dispatcher.Dispatch(ctx, res.Stream, res.Info, opts)
	if err != nil {
		return "", mapCancellation(ctx, err)
	}

	if !normalizeKorean {
		return result.Markdown, nil
	}

	doc, warning, err := e.korean.Process([]byte(result.Markdown), korean.Options{})
	if err != nil {
		return "", merr.Wrap(merr.FileConversionErr, "korean processing failed", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "korean_char_ratio: %.4f\n", doc.Metadata.KoreanCharRatio)
	fmt.Fprintf(&b, "has_korean: %t\n", doc.Metadata.HasKorean)
	fmt.Fprintf(&b, "has_hanja: %t\n", doc.Metadata.HasHanja)
	fmt.Fprintf(&b, "has_mixed_script: %t\n", doc.Metadata.HasMixedScript)
	fmt.Fprintf(&b, "char_count: %d\n", doc.Metadata.CharCount)
	fmt.Fprintf(&b, "word_count: %d\n", doc.Metadata.WordCount)
	fmt.Fprintf(&b, "sentence_count: %d\n", doc.Metadata.SentenceCount)
	if len(doc.Metadata.TopNouns) > 0 {
		fmt.Fprintf(&b, "top_nouns: [%s]\n", strings.Join(doc.Metadata.TopNouns, ", "))
	}
	if warning != "" {
		fmt.Fprintf(&b, "decode_warning: %q\n", warning)
	}
	b.WriteString("---\n\n")
	b.WriteString(doc.Text)

	return b.String(), nil
}

func mapCancellation(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return merr.Wrap(merr.Cancelled, "conversion deadline exceeded", ctx.Err())
	}
	return err
}
