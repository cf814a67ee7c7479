package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfolio/internal/domain"
)

func TestCompiler_Compile(t *testing.T) {
	c := NewCompiler()

	out, err := c.Compile("# Micro Base\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n```go\nfunc main() {}\n```\n")
	require.NoError(t, err)

	assert.Contains(t, out, `<h1 id="micro-base">`)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<pre")
	assert.Contains(t, out, "main")
}

func TestCompiler_HighlightCSS(t *testing.T) {
	css, err := NewCompiler().HighlightCSS()
	require.NoError(t, err)
	assert.NotEmpty(t, css)
}

func TestExtractLinks(t *testing.T) {
	content := strings.Join([]string{
		"See [my work](/works/microbase) and [again](/works/microbase).",
		"Mail [me](mailto:me@example.com).",
		"Source at https://github.com/example/repo",
		"![diagram](/img/diagram.png)",
		"[about](about)",
	}, "\n\n")

	links := ExtractLinks(content)
	assert.Equal(t, []string{
		"/works/microbase",
		"mailto:me@example.com",
		"https://github.com/example/repo",
		"about",
	}, links)
}

func TestExtractLinks_None(t *testing.T) {
	assert.Empty(t, ExtractLinks("plain text only"))
	assert.Empty(t, ExtractLinks(""))
}

func TestIsInternal(t *testing.T) {
	tests := map[string]bool{
		"/works/microbase":    true,
		"/":                   true,
		"works":               false,
		"https://example.com": false,
		"//cdn.example.com/x": false,
		"mailto:me@x.com":     false,
	}
	for dest, want := range tests {
		assert.Equal(t, want, IsInternal(dest), dest)
	}
}

func TestTermRenderer_Render(t *testing.T) {
	r := NewTermRenderer("notty")
	doc := domain.Document{Content: "# Hello\n\nSome **bold** words."}

	out := r.Render(doc, 60)
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "bold")

	// cached renderer for the same width
	assert.Equal(t, out, r.Render(doc, 60))
	assert.Len(t, r.renderers, 1)
}

func TestTermRenderer_Empty(t *testing.T) {
	assert.Equal(t, "", NewTermRenderer("").Render(domain.Document{}, 80))
}
