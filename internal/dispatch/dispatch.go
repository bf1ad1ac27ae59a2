// Package dispatch implements the converter registry and the priority-order
// dispatch loop: given a rewindable stream and a seed StreamInfo, it sniffs
// the stream head, asks each registered converter in turn whether it
// accepts the stream, and invokes the first acceptor.
package dispatch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/voidlight/voidlight-markitdown/internal/merr"
	"github.com/voidlight/voidlight-markitdown/internal/sniff"
	"github.com/voidlight/voidlight-markitdown/internal/streaminfo"
)

// HeadBufferSize is the number of bytes materialized for sniffing and for
// Converter.Accepts probes, per spec §4.1.
const HeadBufferSize = 8 * 1024

// Priority tiers. Third-party registrations typically use values below
// PrioritySpecific to preempt built-ins.
const (
	PrioritySpecific = 0.0
	PriorityGeneric  = 10.0
)

// Stream is the contract every input to the dispatcher must satisfy:
// seekable and rewindable. Non-seekable inputs (network bodies, stdin) are
// buffered into a seekable wrapper before they reach the dispatcher; see
// internal/resolve for where that buffering happens.
type Stream interface {
	io.Reader
	io.Seeker
}

// ConverterResult is the immutable output of a successful conversion. Empty
// Markdown is legal (e.g. a silent audio file).
type ConverterResult struct {
	Markdown string
	Title    string
	Metadata map[string]string
}

// ConvertOptions carries per-request knobs into a converter.
type ConvertOptions struct {
	KoreanMode      bool
	NormalizeKorean bool
}

// Converter is a capability set, not a base class: accepts probes without
// consuming the stream (the dispatcher rewinds regardless); convert
// consumes the stream and produces a result or a merr.Error.
type Converter interface {
	Accepts(head []byte, info streaminfo.StreamInfo) bool
	Convert(ctx context.Context, stream Stream, info streaminfo.StreamInfo, opts ConvertOptions) (ConverterResult, error)
}

// Registration pairs a Converter with its dispatch priority. Lower priority
// sorts earlier; ties break by registration order.
type Registration struct {
	Name     string
	Converter Converter
	Priority float64

	insertionIndex int
}

// Registry holds the ordered set of converter registrations. It is
// effectively immutable after startup: Register acquires a write lock, but
// this is never on the hot conversion path.
type Registry struct {
	mu            sync.RWMutex
	registrations []Registration
	nextIndex     int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a converter at the given priority. Built-ins are registered
// at construction with their canonical priorities; plugin registrations
// (when enabled) are appended afterward.
func (r *Registry) Register(name string, conv Converter, priority float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registrations = append(r.registrations, Registration{
		Name:           name,
		Converter:      conv,
		Priority:       priority,
		insertionIndex: r.nextIndex,
	})
	r.nextIndex++
}

// Ordered returns a snapshot of registrations sorted by (priority ascending,
// insertion index ascending).
func (r *Registry) Ordered() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Registration, len(r.registrations))
	copy(out, r.registrations)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].insertionIndex < out[j].insertionIndex
	})
	return out
}

// Dispatcher drives the registry against a single stream per conversion
// request. It owns the stream only for the duration of Dispatch.
type Dispatcher struct {
	registry *Registry
	sniffer  *sniff.Sniffer
	logger   *slog.Logger
}

// New builds a Dispatcher over the given registry and sniffer.
func New(registry *Registry, sniffer *sniff.Sniffer, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{registry: registry, sniffer: sniffer, logger: logger}
}

// Dispatch runs the priority-ordered probe/convert loop described in
// spec §4.4. It returns the refined StreamInfo alongside the result so
// callers (e.g. the Korean post-processor) know what was actually decoded.
func (d *Dispatcher) Dispatch(ctx context.Context, stream Stream, seed streaminfo.StreamInfo, opts ConvertOptions) (ConverterResult, streaminfo.StreamInfo, error) {
	pos, err := stream.Seek(0, io.SeekCurrent)
	if err != nil {
		return ConverterResult{}, streaminfo.StreamInfo{}, merr.Wrap(merr.FileConversionErr, "cannot determine stream position", err)
	}

	head := make([]byte, HeadBufferSize)
	n, _ := io.ReadFull(stream, head)
	head = head[:n]
	if _, err := stream.Seek(pos, io.SeekStart); err != nil {
		return ConverterResult{}, streaminfo.StreamInfo{}, merr.Wrap(merr.FileConversionErr, "cannot rewind stream after head read", err)
	}

	info := d.sniffer.Sniff(head, seed)

	for _, reg := range d.registry.Ordered() {
		select {
		case <-ctx.Done():
			return ConverterResult{}, info, merr.Wrap(merr.Cancelled, "conversion cancelled during dispatch", ctx.Err())
		default:
		}

		if _, err := stream.Seek(pos, io.SeekStart); err != nil {
			return ConverterResult{}, info, merr.Wrap(merr.FileConversionErr, "cannot rewind stream before accepts probe", err)
		}
		if !reg.Converter.Accepts(head, info) {
			continue
		}

		if _, err := stream.Seek(pos, io.SeekStart); err != nil {
			return ConverterResult{}, info, merr.Wrap(merr.FileConversionErr, "cannot rewind stream before convert", err)
		}
		result, err := reg.Converter.Convert(ctx, stream, info, opts)
		if err == nil {
			return result, info, nil
		}

		var me *merr.Error
		if errors.As(err, &me) {
			switch me.Kind {
			case merr.UnsupportedFormatErr:
				continue
			case merr.MissingDependencyErr:
				d.logger.Warn("converter missing dependency, skipping", "converter", reg.Name, "error", err)
				continue
			}
		}
		return ConverterResult{}, info, merr.Wrap(merr.FileConversionErr, "converter "+reg.Name+" failed", err)
	}

	return ConverterResult{}, info, merr.New(merr.UnsupportedFormatErr, "no registered converter accepted the stream")
}
