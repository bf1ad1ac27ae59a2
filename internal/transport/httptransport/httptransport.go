// Package httptransport exposes the MCP SDK's Streamable HTTP and legacy
// SSE handlers behind a gin.Engine, per spec §4.6.4. The SDK owns session
// affinity, the Mcp-Session-Id header, and per-request JSON-RPC dispatch;
// this package's job is routing, the health endpoint, and giving each
// connection its own *mcp.Server bound to the shared, read-only Engine.
package httptransport

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Transport wires the SDK's HTTP handlers into a gin.Engine.
type Transport struct {
	engine *gin.Engine
}

// New builds a Transport. newServer is called once per incoming
// connection (the SDK's own convention, since a *mcp.Server tracks
// connection-scoped MCP state); it should return a fresh server wrapping
// the same shared, read-only engine every time.
func New(newServer func(*http.Request) *mcp.Server) *Transport {
	router := gin.New()
	router.Use(gin.Recovery())

	streamable := mcp.NewStreamableHTTPHandler(newServer, nil)
	sse := mcp.NewSSEHandler(newServer, nil)

	router.Any("/mcp", gin.WrapH(streamable))
	router.Any("/sse", gin.WrapH(sse))
	router.Any("/sse/*rest", gin.WrapH(sse))
	// /messages/ is the legacy SSE POST-back path named by the original
	// implementation; the SDK's SSE handler itself distinguishes the
	// GET (event stream) and POST (message) legs, so aliasing it to the
	// same handler keeps old clients working without a second handler.
	router.Any("/messages/*rest", gin.WrapH(sse))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Transport{engine: router}
}

// Engine returns the underlying gin.Engine for http.Server.Handler.
func (t *Transport) Engine() *gin.Engine {
	return t.engine
}
