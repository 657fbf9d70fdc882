package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/jayshree-infra/website/internal/content"
	"github.com/jayshree-infra/website/internal/inquiry"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the site directory and the
// inquiry composer as tools.
type Server struct {
	dir      *content.Directory
	composer *inquiry.Composer
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server over dir.
func NewServer(dir *content.Directory, composer *inquiry.Composer) *Server {
	s := &Server{
		dir:      dir,
		composer: composer,
	}

	s.mcp = server.NewMCPServer(
		"jayshree",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listCategoriesTool, s.handleListCategories)
	s.mcp.AddTool(getCategoryLinksTool, s.handleGetCategoryLinks)
	s.mcp.AddTool(slugifyTool, s.handleSlugify)
	s.mcp.AddTool(composeInquiryLinkTool, s.handleComposeInquiryLink)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
