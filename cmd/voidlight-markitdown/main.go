// Command voidlight-markitdown runs the document-to-Markdown MCP server.
// With no arguments it speaks STDIO; --http (or its deprecated alias
// --sse) binds an HTTP listener instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/voidlight/voidlight-markitdown/internal/config"
	"github.com/voidlight/voidlight-markitdown/internal/convert/csvconv"
	"github.com/voidlight/voidlight-markitdown/internal/convert/htmlconv"
	"github.com/voidlight/voidlight-markitdown/internal/convert/oledoc"
	"github.com/voidlight/voidlight-markitdown/internal/convert/plaintext"
	"github.com/voidlight/voidlight-markitdown/internal/convert/xlsxconv"
	"github.com/voidlight/voidlight-markitdown/internal/dispatch"
	"github.com/voidlight/voidlight-markitdown/internal/korean"
	"github.com/voidlight/voidlight-markitdown/internal/mcpserver"
	"github.com/voidlight/voidlight-markitdown/internal/pluginloader"
	"github.com/voidlight/voidlight-markitdown/internal/resolve"
	"github.com/voidlight/voidlight-markitdown/internal/sniff"
	"github.com/voidlight/voidlight-markitdown/internal/transport/httptransport"
	"github.com/voidlight/voidlight-markitdown/internal/transport/stdiotransport"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	httpFlag := flag.Bool("http", false, "run the HTTP transport instead of STDIO")
	sseFlag := flag.Bool("sse", false, "deprecated alias for --http")
	host := flag.String("host", "", "HTTP bind address (default 127.0.0.1)")
	port := flag.String("port", "", "HTTP bind port (default 3001)")
	flag.Parse()

	httpMode := *httpFlag || *sseFlag
	if !httpMode && (*host != "" || *port != "") {
		fmt.Fprintln(os.Stderr, "--host and --port only apply with --http/--sse")
		return 1
	}

	cfg := config.LoadConfig()
	if *host != "" {
		cfg.Host = *host
	}
	if *port != "" {
		cfg.Port = *port
	}
	if err := config.ValidateConfig(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		return 1
	}

	logger, closeLog := setupLogger(cfg)
	defer closeLog()
	slog.SetDefault(logger)

	registry := dispatch.NewRegistry()
	registry.Register("csv", csvconv.New(), dispatch.PrioritySpecific)
	registry.Register("xlsx", xlsxconv.New(), dispatch.PrioritySpecific)
	registry.Register("html", htmlconv.New(), dispatch.PrioritySpecific)
	registry.Register("ole-compound", oledoc.New(), dispatch.PrioritySpecific)
	registry.Register("plaintext", plaintext.New(), dispatch.PriorityGeneric)
	pluginloader.DiscoverAndRegister(registry, cfg.EnablePlugins, logger)

	resolver := resolve.New(resolve.Config{MaxRedirects: cfg.MaxRedirects, FetchTimeout: cfg.FetchTimeout})
	dispatcher := dispatch.New(registry, sniff.New(), logger)
	koreanProcessor := korean.New()
	logger.Info("korean tokenizer tier selected", "status", koreanProcessor.ProcessorStatus())
	engine := mcpserver.NewEngine(resolver, dispatcher, koreanProcessor)

	if httpMode {
		return runHTTP(cfg, engine, logger)
	}
	return runStdio(engine, logger)
}

func runStdio(engine *mcpserver.Engine, logger *slog.Logger) int {
	server := mcpserver.NewServer(engine, logger)

	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := stdiotransport.Run(ctx, server); err != nil {
		logger.Error("stdio transport terminated with error", "error", err)
		return 2
	}
	return 0
}

func runHTTP(cfg *config.Config, engine *mcpserver.Engine, logger *slog.Logger) int {
	tr := httptransport.New(func(*http.Request) *mcp.Server {
		return mcpserver.NewServer(engine, logger)
	})

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	httpServer := &http.Server{
		Addr:           addr,
		Handler:        tr.Engine(),
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   0, // SSE streams stay open indefinitely
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http transport starting", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
			return
		}
		serveErr <- nil
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("http transport failed to start", "error", err)
			return 2
		}
	case <-sigChan:
		logger.Info("shutting down http transport")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error("http transport shutdown error", "error", err)
			return 1
		}
	}

	logger.Info("shutdown complete")
	return 0
}

func setupLogger(cfg *config.Config) (*slog.Logger, func()) {
	level := parseLevel(cfg.LogLevel)
	writers := []io.Writer{os.Stderr}
	closer := func() {}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err == nil {
			writers = append(writers, f)
			closer = func() { f.Close() }
		}
	}

	handler := slog.NewJSONHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: level})
	return slog.New(handler), closer
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
