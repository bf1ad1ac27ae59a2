package mcpserver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/voidlight/voidlight-markitdown/internal/merr"
)

// ServerName and ServerVersion are reported in the MCP initialize
// handshake by the SDK's Implementation struct.
const ServerName = "voidlight_markitdown"
const ServerVersion = "1.0.0"

// ConvertToMarkdownInput is the convert_to_markdown tool's parameter
// struct; the SDK derives its JSON Schema by reflection.
type ConvertToMarkdownInput struct {
	URI string `json:"uri" jsonschema:"Source document URI (data:, file:, or http(s):)"`
}

// ConvertKoreanDocumentInput is the convert_korean_document tool's
// parameter struct. NormalizeKorean is a pointer so omission defaults to
// true rather than the zero value false.
type ConvertKoreanDocumentInput struct {
	URI             string `json:"uri" jsonschema:"Source document URI"`
	NormalizeKorean *bool  `json:"normalize_korean,omitempty" jsonschema:"Run Korean normalization, tokenization, and metadata extraction (default true)"`
}

// NewServer builds the MCP server and registers the two tools against
// engine. A fresh *mcp.Server is cheap to build per connection/session;
// engine itself holds no per-session state, so sharing one engine across
// many servers is safe.
func NewServer(engine *Engine, logger *slog.Logger) *mcp.Server {
	if logger == nil {
		logger = slog.Default()
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Instructions: "Converts documents at a data:, file:, or http(s): URI into Markdown. " +
			"Use convert_to_markdown for general documents and convert_korean_document when the " +
			"source is Korean-language text and you want normalization, tokenization, and " +
			"Korean-specific metadata folded into the result.",
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_to_markdown",
		Description: "Convert a document at the given URI to Markdown.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ConvertToMarkdownInput) (*mcp.CallToolResult, any, error) {
		markdown, err := engine.ConvertToMarkdown(ctx, input.URI)
		if err != nil {
			logger.Warn("convert_to_markdown failed", "uri", input.URI, "kind", kindOf(err), "code", diagnosticCode(err))
			return nil, nil, err
		}
		return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: markdown}}}, nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_korean_document",
		Description: "Convert a document to Markdown with Korean-aware normalization, tokenization, and a metadata frontmatter block.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ConvertKoreanDocumentInput) (*mcp.CallToolResult, any, error) {
		normalize := true
		if input.NormalizeKorean != nil {
			normalize = *input.NormalizeKorean
		}
		markdown, err := engine.ConvertKoreanDocument(ctx, input.URI, normalize)
		if err != nil {
			logger.Warn("convert_korean_document failed", "uri", input.URI, "kind", kindOf(err), "code", diagnosticCode(err))
			return nil, nil, err
		}
		return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: markdown}}}, nil, nil
	})

	return server
}

// diagnosticCode maps a tool-call failure to the taxonomy's JSON-RPC code
// for structured logging. The MCP SDK owns the actual wire-level error
// representation once a handler returns a non-nil error, so this code
// never reaches the client directly; it exists so operators can correlate
// a log line with the kind taxonomy in §7 without parsing message text.
func diagnosticCode(err error) int {
	var me *merr.Error
	if errors.As(err, &me) {
		return merr.JSONRPCCode(me.Kind)
	}
	return -32603
}

func kindOf(err error) merr.Kind {
	var me *merr.Error
	if errors.As(err, &me) {
		return me.Kind
	}
	return "Unknown"
}
