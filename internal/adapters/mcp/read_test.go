package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"

	"devfolio/internal/domain"
)

func testStore() *domain.Store {
	return domain.NewStore(map[string]domain.Document{
		"/about":           {ID: "about", Filename: "about.md", Path: "docs > about.md", Content: "Hello, I build databases."},
		"/works/microbase": {ID: "works/microbase", Filename: "microbase.md", Content: "A tiny database engine.", Tags: []string{"db"}, Thumbnail: "/img/microbase.png"},
		"/contact":         {ID: "contact", Filename: "contact.md", SourcePath: "/content/contact.md"},
	})
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok)
	return text.Text, res.IsError
}

func TestListDocuments(t *testing.T) {
	out, isErr := call(t, listHandler(testStore()), nil)
	require.False(t, isErr)
	require.Equal(t, "/about  about.md  [MD]\n/contact  contact.md  [MD]\n/works/microbase  microbase.md  [MD]\n", out)

	out, _ = call(t, listHandler(testStore()), map[string]any{"prefix": "/works"})
	require.Equal(t, "/works/microbase  microbase.md  [MD]\n", out)

	out, _ = call(t, listHandler(testStore()), map[string]any{"prefix": "missing"})
	require.Equal(t, "No results.", out)
}

func TestTree(t *testing.T) {
	out, isErr := call(t, treeHandler(testStore()), nil)
	require.False(t, isErr)
	require.Equal(t, "about.md  (/about)\nworks/\n  microbase.md  (/works/microbase)\ncontact.md  (/contact)\n", out)

	out, _ = call(t, treeHandler(domain.NewStore(nil)), nil)
	require.Equal(t, "No documents.", out)
}

func TestReadDocument(t *testing.T) {
	out, isErr := call(t, readDocumentHandler(testStore()), map[string]any{"id": "/works/microbase"})
	require.False(t, isErr)
	require.Contains(t, out, "# microbase.md")
	require.Contains(t, out, "tags: db")
	require.Contains(t, out, "thumbnail: /img/microbase.png")
	require.Contains(t, out, "A tiny database engine.")

	out, isErr = call(t, readDocumentHandler(testStore()), map[string]any{"id": "nope"})
	require.True(t, isErr)
	require.Contains(t, out, "nope")

	_, isErr = call(t, readDocumentHandler(testStore()), nil)
	require.True(t, isErr)
}

func TestSearch(t *testing.T) {
	out, isErr := call(t, searchHandler(testStore()), map[string]any{"query": "micro"})
	require.False(t, isErr)
	require.Equal(t, "/works/microbase  microbase.md  [MD]\n", out)

	_, isErr = call(t, searchHandler(testStore()), map[string]any{"query": " "})
	require.True(t, isErr)
}

func TestSearchContent(t *testing.T) {
	out, isErr := call(t, searchContentHandler(testStore()), map[string]any{"query": "database"})
	require.False(t, isErr)
	require.Contains(t, out, "/works/microbase  microbase.md  A tiny database engine.")

	_, isErr = call(t, searchContentHandler(testStore()), map[string]any{"query": "d"})
	require.True(t, isErr)
}

func TestResolve(t *testing.T) {
	out, _ := call(t, resolveHandler(testStore()), map[string]any{"id": "contact"})
	require.Equal(t, "open: contact (/content/contact.md)\ncommand: /contact\n", out)

	out, _ = call(t, resolveHandler(testStore()), map[string]any{"id": "/nope"})
	require.Equal(t, "open: no match\ncommand: not found\n", out)
}
