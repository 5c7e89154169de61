package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/deskhub/deskhub/internal/notes"
	"github.com/deskhub/deskhub/internal/snippets"
	"github.com/deskhub/deskhub/internal/tasks"
)

// handleAddTask creates a task on the board.
func (s *Server) handleAddTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: title"), nil
	}

	created, err := s.tasks.Create(ctx, tasks.Task{
		Title:    title,
		Notes:    request.GetString("notes", ""),
		Category: request.GetString("category", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("creating task failed: %v", err)), nil
	}
	_ = s.activity.Record(ctx, "tasks", "create", created.ID, "added task via agent")

	return mcp.NewToolResultText(fmt.Sprintf(
		"Added task %q to %s (id %s).", created.Title, created.Category, created.ID,
	)), nil
}

// handleListTasks lists board tasks, open ones by default.
func (s *Server) handleListTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := tasks.ListFilter{
		Category: request.GetString("category", ""),
		Limit:    request.GetInt("limit", 20),
	}
	switch request.GetString("status", "open") {
	case "open":
		done := false
		filter.Done = &done
	case "done":
		done := true
		filter.Done = &done
	}

	list, err := s.tasks.List(ctx, filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing tasks failed: %v", err)), nil
	}
	if len(list) == 0 {
		return mcp.NewToolResultText("No matching tasks."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d task(s):\n", len(list)))
	for _, t := range list {
		mark := " "
		if t.Done {
			mark = "x"
		}
		sb.WriteString(fmt.Sprintf("\n[%s] %s (%s, id %s)", mark, t.Title, t.Category, t.ID))
		if t.Notes != "" {
			sb.WriteString("\n    " + t.Notes)
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleAddNote pins a sticky note.
func (s *Server) handleAddNote(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: content"), nil
	}

	created, err := s.notes.Create(ctx, notes.Note{
		Content: content,
		Color:   request.GetString("color", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("creating note failed: %v", err)), nil
	}
	_ = s.activity.Record(ctx, "notes", "create", created.ID, "added sticky note via agent")

	return mcp.NewToolResultText(fmt.Sprintf("Pinned note %s (%s).", created.ID, created.Color)), nil
}

// handleSearchSnippets searches the snippet library.
func (s *Server) handleSearchSnippets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	results, err := s.snippets.Search(ctx, query, request.GetString("language", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	if len(results) == 0 {
		return mcp.NewToolResultText("No matching snippets."), nil
	}

	return mcp.NewToolResultText(formatSnippets(results)), nil
}

// formatSnippets renders search results as fenced code blocks for agent
// consumption.
func formatSnippets(results []snippets.Snippet) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d snippet(s):\n", len(results)))

	for i, snip := range results {
		sb.WriteString(fmt.Sprintf("\n--- Snippet %d: %s", i+1, snip.Title))
		if snip.Tags != "" {
			sb.WriteString(" [" + snip.Tags + "]")
		}
		sb.WriteString(" ---\n")
		sb.WriteString("```" + snip.Language + "\n")
		sb.WriteString(snip.Code)
		if !strings.HasSuffix(snip.Code, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("```\n")
	}
	return sb.String()
}
