package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"devfolio/internal/application/commands"
	"devfolio/internal/application/palette"
	"devfolio/internal/domain"
)

// RegisterReadTools adds all read-only document tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store *domain.Store) {
	s.AddTool(listTool(), listHandler(store))
	s.AddTool(treeTool(), treeHandler(store))
	s.AddTool(readDocumentTool(), readDocumentHandler(store))
	s.AddTool(searchTool(), searchHandler(store))
	s.AddTool(searchContentTool(), searchContentHandler(store))
	s.AddTool(resolveTool(), resolveHandler(store))
}

// --- list_documents ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_documents",
		mcp.WithDescription("List the portfolio documents. With a prefix only documents under that path are listed."),
		mcp.WithString("prefix",
			mcp.Description("ID prefix, with or without a leading slash (e.g. works, /works). Omit to list everything."),
		),
	)
}

func listHandler(store *domain.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		docs, err := commands.NewListDocumentsCommand(store, req.GetString("prefix", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(docs, formatDocument)
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the explorer tree of the portfolio."),
	)
}

func treeHandler(store *domain.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		roots, err := commands.NewBuildTreeCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(roots) == 0 {
			return mcp.NewToolResultText("No documents."), nil
		}
		var sb strings.Builder
		if err := commands.WriteTree(&sb, roots); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_document ---

func readDocumentTool() mcp.Tool {
	return mcp.NewTool("read_document",
		mcp.WithDescription("Read the Markdown content of a document by ID or lookup key."),
		mcp.WithString("id",
			mcp.Description("Document ID or key (e.g. about, /works/microbase)"),
			mcp.Required(),
		),
	)
}

func readDocumentHandler(store *domain.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := commands.NewReadDocumentCommand(store, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "# %s\n", doc.Filename)
		fmt.Fprintf(&sb, "id: %s\nlang: %s\npath: %s\n", doc.ID, doc.Lang, doc.Path)
		if len(doc.Tags) > 0 {
			fmt.Fprintf(&sb, "tags: %s\n", strings.Join(doc.Tags, ", "))
		}
		if doc.Thumbnail != "" {
			fmt.Fprintf(&sb, "thumbnail: %s\n", doc.Thumbnail)
		}
		sb.WriteString("\n")
		sb.WriteString(doc.Content)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Find documents by filename or ID, ranked like the command palette."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(store *domain.Store) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if strings.TrimSpace(query) == "" {
			return toolError(fmt.Errorf("query is required"))
		}
		return formatEntities(palette.Filter(store, query), formatDocument)
	}
}

// --- search_content ---

func searchContentTool() mcp.Tool {
	return mcp.NewTool("search_content",
		mcp.WithDescription("Fuzzy search over document IDs, filenames and content. Returns the matching line."),
		mcp.WithString("query",
			mcp.Description("Search query, at least two characters"),
			mcp.Required(),
		),
	)
}

func searchContentHandler(store *domain.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if len(strings.TrimSpace(query)) < commands.MinQueryLength {
			return toolError(fmt.Errorf("query must be at least %d characters", commands.MinQueryLength))
		}

		results, err := commands.NewSearchCommand(store, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s  %s\n", domain.KeyFor(r.Document.ID), r.Document.Filename, r.MatchedText)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- resolve ---

func resolveTool() mcp.Tool {
	return mcp.NewTool("resolve",
		mcp.WithDescription("Show how an identifier resolves: as a workspace open and as a terminal command."),
		mcp.WithString("id",
			mcp.Description("Identifier or terminal text (e.g. about, /about)"),
			mcp.Required(),
		),
	)
}

func resolveHandler(store *domain.Store) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		var sb strings.Builder
		if doc, ok := store.Resolve(id); ok {
			fmt.Fprintf(&sb, "open: %s (%s)\n", doc.ID, doc.SourcePath)
		} else {
			sb.WriteString("open: no match\n")
		}
		if doc, ok := store.LookupCommand(id); ok {
			fmt.Fprintf(&sb, "command: %s\n", doc.Key)
		} else {
			sb.WriteString("command: not found\n")
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatDocument(d domain.Document) string {
	return fmt.Sprintf("%s  %s  [%s]", domain.KeyFor(d.ID), d.Filename, d.Lang.Badge())
}
