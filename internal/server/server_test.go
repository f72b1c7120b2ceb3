package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huectl/internal/config"
	"huectl/internal/tools"
)

var limits = config.PaletteConfig{DefaultCount: 5, MinCount: 2, MaxCount: 8}

func newTestServer(cfg config.ServerConfig) *ToolServer {
	return NewToolServer(cfg, "test", tools.NewColorTools(limits, nil).ServerTools())
}

func handle(t *testing.T, s *ToolServer, msg string) string {
	t.Helper()
	resp := s.MCPServer().HandleMessage(context.Background(), json.RawMessage(msg))
	require.NotNil(t, resp)
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(data)
}

func TestToolServerListsTools(t *testing.T) {
	s := newTestServer(config.ServerConfig{})

	handle(t, s, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1"}}}`)
	out := handle(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/list","params":{}}`)

	for _, name := range []string{"color_parse", "color_contrast", "palette_generate", "palette_harmonies"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "palette_save")
}

func TestToolServerCallsTool(t *testing.T) {
	s := newTestServer(config.ServerConfig{})

	handle(t, s, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1"}}}`)
	out := handle(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"color_parse","arguments":{"color":"6CE"}}}`)

	assert.Contains(t, out, `#66ccee`)
}

func TestServeUnknownTransport(t *testing.T) {
	s := newTestServer(config.ServerConfig{Transport: "carrier-pigeon"})
	err := s.Serve(context.Background(), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transport")
}

func TestServeStreamableHTTP(t *testing.T) {
	s := newTestServer(config.ServerConfig{
		Transport: config.TransportStreamableHTTP,
		Host:      "127.0.0.1",
		Port:      0,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, nil, nil) }()

	select {
	case <-s.Ready():
	case err := <-done:
		t.Fatalf("server exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not become ready")
	}
	require.NotEmpty(t, s.Addr())

	body := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"1"}}}`
	req, err := http.NewRequest(http.MethodPost, "http://"+s.Addr()+StreamableHTTPPath, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	data, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), "huectl")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
