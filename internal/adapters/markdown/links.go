package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"devfolio/internal/domain"
)

var linkParser = goldmark.New(goldmark.WithExtensions(extension.Linkify))

// ExtractLinks returns the link destinations of a Markdown body in document
// order, without duplicates.
func ExtractLinks(content string) []string {
	src := []byte(content)
	root := linkParser.Parser().Parse(text.NewReader(src))

	var links []string
	seen := make(map[string]bool)
	add := func(dest string) {
		dest = strings.TrimSpace(dest)
		if dest == "" || seen[dest] {
			return
		}
		seen[dest] = true
		links = append(links, dest)
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			add(string(node.Destination))
		case *ast.AutoLink:
			add(string(node.URL(src)))
		}
		return ast.WalkContinue, nil
	})

	return links
}

// IsInternal reports whether a link destination addresses a document
func IsInternal(dest string) bool {
	return strings.HasPrefix(dest, domain.KeyPrefix) && !strings.HasPrefix(dest, "//")
}
