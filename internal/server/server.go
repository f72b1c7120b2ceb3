// Package server runs the huectl MCP tool server on stdio, SSE or
// streamable HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"huectl/internal/config"
	"huectl/pkg/logging"
)

const (
	serverName      = "huectl"
	shutdownTimeout = 5 * time.Second
	keepAlive       = 30 * time.Second

	// StreamableHTTPPath is where the streamable HTTP transport is mounted.
	StreamableHTTPPath = "/mcp"
	sseEndpoint        = "/sse"
	messageEndpoint    = "/message"
)

// ToolServer serves a fixed tool set over the configured transport.
type ToolServer struct {
	config config.ServerConfig
	server *server.MCPServer

	mu       sync.RWMutex
	listener net.Listener
	ready    chan struct{}
}

// NewToolServer creates an MCP server exposing tools.
func NewToolServer(cfg config.ServerConfig, version string, tools []server.ServerTool) *ToolServer {
	if cfg.Transport == "" {
		cfg.Transport = config.TransportStdio
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}

	mcpServer := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	mcpServer.AddTools(tools...)

	return &ToolServer{
		config: cfg,
		server: mcpServer,
		ready:  make(chan struct{}),
	}
}

// MCPServer exposes the underlying server, mainly for in-process clients.
func (s *ToolServer) MCPServer() *server.MCPServer {
	return s.server
}

// Serve blocks until ctx is cancelled or the transport fails.
// stdin and stdout are only used by the stdio transport.
func (s *ToolServer) Serve(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	switch s.config.Transport {
	case config.TransportStdio:
		logging.Info("Server", "Serving MCP tools on stdio")
		close(s.ready)
		err := server.NewStdioServer(s.server).Listen(ctx, stdin, stdout)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
			return fmt.Errorf("stdio transport failed: %w", err)
		}
		return nil
	case config.TransportSSE, config.TransportStreamableHTTP:
		return s.serveHTTP(ctx)
	default:
		return fmt.Errorf("unknown transport %q", s.config.Transport)
	}
}

// Ready is closed once the transport accepts connections.
func (s *ToolServer) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound HTTP address, or "" for stdio or before Ready.
func (s *ToolServer) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *ToolServer) serveHTTP(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Host, fmt.Sprint(s.config.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	mux := http.NewServeMux()
	baseURL := "http://" + listener.Addr().String()
	switch s.config.Transport {
	case config.TransportSSE:
		mux.Handle("/", server.NewSSEServer(
			s.server,
			server.WithBaseURL(baseURL),
			server.WithSSEEndpoint(sseEndpoint),
			server.WithMessageEndpoint(messageEndpoint),
			server.WithKeepAlive(true),
			server.WithKeepAliveInterval(keepAlive),
		))
		logging.Info("Server", "Serving MCP tools over SSE at %s%s", baseURL, sseEndpoint)
	default:
		mux.Handle(StreamableHTTPPath, server.NewStreamableHTTPServer(s.server))
		logging.Info("Server", "Serving MCP tools over streamable HTTP at %s%s", baseURL, StreamableHTTPPath)
	}

	httpServer := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(listener)
	}()
	close(s.ready)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http transport failed: %w", err)
	case <-ctx.Done():
	}

	logging.Info("Server", "Stopping MCP tool server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error("Server", err, "Error shutting down HTTP transport")
		return err
	}
	return nil
}
