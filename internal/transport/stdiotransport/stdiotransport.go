// Package stdiotransport runs an MCP server over stdin/stdout, per spec
// §4.6.3. Framing, session state, and JSON-RPC dispatch are all owned by
// the MCP SDK's StdioTransport; this package only supplies the process
// lifecycle (blocking run, clean return on stream close).
package stdiotransport

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run blocks until the stdio connection closes (EOF on stdin) or ctx is
// cancelled, then returns. The SDK handles line framing and logs nothing
// to stdout on its own; callers must keep their own logging on stderr.
func Run(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
