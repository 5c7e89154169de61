// Package mcp exposes a few dashboard operations as MCP tools so agents
// can add tasks and notes or look up snippets over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/deskhub/deskhub/internal/activity"
	"github.com/deskhub/deskhub/internal/notes"
	"github.com/deskhub/deskhub/internal/snippets"
	"github.com/deskhub/deskhub/internal/tasks"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server exposing the dashboard tools.
type Server struct {
	tasks    *tasks.Store
	notes    *notes.Store
	snippets *snippets.Store
	activity *activity.Store
	mcp      *server.MCPServer
}

// NewServer creates an MCP server over the given stores.
func NewServer(taskStore *tasks.Store, noteStore *notes.Store, snippetStore *snippets.Store, act *activity.Store) *Server {
	s := &Server{
		tasks:    taskStore,
		notes:    noteStore,
		snippets: snippetStore,
		activity: act,
	}

	s.mcp = server.NewMCPServer(
		"deskhub",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(addTaskTool, s.handleAddTask)
	s.mcp.AddTool(listTasksTool, s.handleListTasks)
	s.mcp.AddTool(addNoteTool, s.handleAddNote)
	s.mcp.AddTool(searchSnippetsTool, s.handleSearchSnippets)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
