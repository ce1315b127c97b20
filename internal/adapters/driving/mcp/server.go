package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/kanji-cli/internal/logger"
)

// Version is reported to clients during initialisation.
const Version = "0.1.0"

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

const instructions = `Japanese character dictionary backed by kanjidic2 and KanjiVG.
Use search_kanji to find characters by literal or English meaning, then
render_strokes to get a numbered stroke order diagram as SVG.`

// Server wraps an MCP server with the kanji tools and resources registered.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(
			&mcp.Implementation{Name: "kanji", Version: Version},
			&mcp.ServerOptions{Instructions: instructions},
		),
	}
	s.registerTools()
	s.registerResources()
	return s, nil
}

// Run speaks JSON-RPC on stdin/stdout until ctx is done or the client leaves.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("MCP server on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler serves streamable HTTP. Every session shares the one server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		logger.Debug("MCP request %s %s", r.Method, r.URL.Path)
		return s.server
	}, nil)
}

// RunHTTP listens on addr and shuts down gracefully once ctx is done.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler(), ReadHeaderTimeout: readHeaderTimeout}

	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("MCP server shutdown: %v", err)
		}
	})
	defer stop()

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
