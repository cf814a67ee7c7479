// Package markdown compiles and renders document bodies.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"devfolio/internal/ports"
)

// DefaultHighlightStyle is the chroma style used for code blocks
const DefaultHighlightStyle = "github"

// Compiler implements ports.HTMLCompiler with goldmark
type Compiler struct {
	md    goldmark.Markdown
	style string
}

// Ensure Compiler implements HTMLCompiler
var _ ports.HTMLCompiler = (*Compiler)(nil)

// NewCompiler creates a compiler with GFM, typographer and syntax highlighting
func NewCompiler() *Compiler {
	return &Compiler{
		md:    newGoldmark(),
		style: DefaultHighlightStyle,
	}
}

func newGoldmark() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithStyle(DefaultHighlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// Compile converts a Markdown body to HTML
func (c *Compiler) Compile(source string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to compile markdown: %w", err)
	}
	return buf.String(), nil
}

// HighlightCSS returns the stylesheet for the classes emitted on code blocks
func (c *Compiler) HighlightCSS() (string, error) {
	var sb strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&sb, styles.Get(c.style)); err != nil {
		return "", fmt.Errorf("failed to write highlight css: %w", err)
	}
	return sb.String(), nil
}
