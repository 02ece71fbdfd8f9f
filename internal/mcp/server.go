// Package mcp exposes the extracted record collection to coding agents
// over the Model Context Protocol: a stdio server with a search tool
// (keyword or semantic) and a lookup tool (path or id to full record).
package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/project-lexicon/internal/search"
)

// ServerConfig configures the MCP server.
type ServerConfig struct {
	Name    string // server name advertised to clients
	Version string
}

// DefaultServerConfig returns the default server configuration.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Name:    "lexicon-mcp",
		Version: "1.0.0",
	}
}

// Server manages the MCP server lifecycle around a search service.
type Server struct {
	config  *ServerConfig
	service *search.Service
	mcp     *server.MCPServer
}

// NewServer creates an MCP server over an initialized search service.
// The service is owned by the caller; Close does not release it.
func NewServer(config *ServerConfig, service *search.Service) (*Server, error) {
	if config == nil {
		config = DefaultServerConfig()
	}
	if service == nil {
		return nil, fmt.Errorf("search service is required")
	}

	mcpServer := server.NewMCPServer(
		config.Name,
		config.Version,
		server.WithToolCapabilities(true),
	)

	AddSearchTool(mcpServer, service)
	AddLookupTool(mcpServer, service)

	return &Server{
		config:  config,
		service: service,
		mcp:     mcpServer,
	}, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting MCP server on stdio...")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
