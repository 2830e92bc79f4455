// Package mcp exposes the Dragon Ball browser as MCP tools over stdio, so
// the same fetch, translate, and cache path that backs the TUI is available
// to MCP clients.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/waylonwalker/senzu/internal/config"
	"github.com/waylonwalker/senzu/internal/nav"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"dbz_list": {
		def:     listToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleList },
	},
	"dbz_show": {
		def:     showToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleShow },
	},
	"dbz_transformations": {
		def:     transformationsToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleTransformations },
	},
}

var listToolDef = mcp.NewTool("dbz_list",
	mcp.WithDescription("List one page of a Dragon Ball resource category (character, transformation, planet, saga, episode)."),
	mcp.WithString("kind", mcp.Required(), mcp.Description("Resource kind or alias, e.g. character or c")),
	mcp.WithNumber("page", mcp.Description("0-based page index, defaults to 0")),
)

var showToolDef = mcp.NewTool("dbz_show",
	mcp.WithDescription("Fetch the full detail record for one Dragon Ball resource, with descriptions translated."),
	mcp.WithString("kind", mcp.Required(), mcp.Description("Resource kind or alias")),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Resource ID")),
)

var transformationsToolDef = mcp.NewTool("dbz_transformations",
	mcp.WithDescription("List the transformations of one character."),
	mcp.WithNumber("character_id", mcp.Required(), mcp.Description("Character ID")),
)

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with browse tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(core *nav.Core, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"senzu",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(core)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(core *nav.Core, cfg *config.Config, version string) error {
	s := NewServer(core, cfg, version)
	return server.ServeStdio(s)
}
