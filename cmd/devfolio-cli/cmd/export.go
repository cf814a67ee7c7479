package cmd

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"devfolio/internal/adapters/markdown"
	"devfolio/internal/domain"
)

var exportOut string

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="{{.CSS}}">
</head>
<body>
<nav>{{range $i, $c := .Crumbs}}{{if $i}} &rsaquo; {{end}}{{$c}}{{end}}</nav>
<article>
{{.Body}}
</article>
</body>
</html>
`))

type page struct {
	Title  string
	CSS    string
	Crumbs []string
	Body   template.HTML
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export documents as HTML",
	Long: `Compile every document to a standalone HTML page.

Pages are written as <out>/<id>.html next to a highlight.css stylesheet
for fenced code blocks.

Examples:
  devfolio-cli export --out site`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		compiler := markdown.NewCompiler()

		css, err := compiler.HighlightCSS()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(exportOut, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOut, err)
		}
		if err := os.WriteFile(filepath.Join(exportOut, "highlight.css"), []byte(css), 0644); err != nil {
			return fmt.Errorf("failed to write stylesheet: %w", err)
		}

		docs := GetContent().Store.Documents()
		for _, doc := range docs {
			if err := exportDocument(compiler, doc); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d documents to %s\n", len(docs), exportOut)
		return nil
	},
}

func exportDocument(compiler *markdown.Compiler, doc domain.Document) error {
	body := doc.Rendered
	if body == "" {
		var err error
		if body, err = compiler.Compile(doc.Content); err != nil {
			return fmt.Errorf("failed to compile %s: %w", doc.ID, err)
		}
	}

	target := filepath.Join(exportOut, filepath.FromSlash(doc.ID)+".html")
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", doc.ID, err)
	}

	css, err := filepath.Rel(filepath.Dir(target), filepath.Join(exportOut, "highlight.css"))
	if err != nil {
		return err
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer f.Close()

	err = pageTemplate.Execute(f, page{
		Title:  doc.Title(),
		CSS:    filepath.ToSlash(css),
		Crumbs: doc.Breadcrumbs(),
		Body:   template.HTML(body),
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	logger.Debug("exported document", zap.String("id", doc.ID), zap.String("file", target))
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "output directory")
	rootCmd.AddCommand(exportCmd)
}
