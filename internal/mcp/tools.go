package mcp

import "github.com/mark3labs/mcp-go/mcp"

// addTaskTool defines the add_task MCP tool.
var addTaskTool = mcp.NewTool("add_task",
	mcp.WithDescription("Add a task to the dashboard's task board."),
	mcp.WithString("title",
		mcp.Required(),
		mcp.Description("Task title"),
	),
	mcp.WithString("notes",
		mcp.Description("Optional longer description"),
	),
	mcp.WithString("category",
		mcp.Description("Board column to add the task to (default \"inbox\")"),
	),
)

// listTasksTool defines the list_tasks MCP tool.
var listTasksTool = mcp.NewTool("list_tasks",
	mcp.WithDescription("List tasks from the dashboard's task board."),
	mcp.WithString("category",
		mcp.Description("Only list tasks in this board column"),
	),
	mcp.WithString("status",
		mcp.Description("Filter by completion status"),
		mcp.Enum("open", "done", "all"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of tasks to return (default 20)"),
	),
)

// addNoteTool defines the add_note MCP tool.
var addNoteTool = mcp.NewTool("add_note",
	mcp.WithDescription("Pin a sticky note to the dashboard's note board."),
	mcp.WithString("content",
		mcp.Required(),
		mcp.Description("Note text"),
	),
	mcp.WithString("color",
		mcp.Description("Hex color for the note (a palette color is picked when omitted)"),
	),
)

// searchSnippetsTool defines the search_snippets MCP tool.
var searchSnippetsTool = mcp.NewTool("search_snippets",
	mcp.WithDescription("Search saved code snippets by title, code or tags."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Substring to search for"),
	),
	mcp.WithString("language",
		mcp.Description("Only return snippets in this language"),
	),
)
