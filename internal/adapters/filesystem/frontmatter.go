package filesystem

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"devfolio/internal/application"
	"devfolio/internal/domain"
)

var frontMatterPattern = regexp.MustCompile(`(?s)^---\n(?:(.*?)\n)?---\n?(.*)`)

// frontMatter is the metadata block at the top of a content file
type frontMatter struct {
	ID        string   `yaml:"id"`
	Filename  string   `yaml:"filename"`
	Icon      string   `yaml:"icon"`
	Lang      string   `yaml:"lang"`
	PyModule  string   `yaml:"pyModule"`
	Thumbnail string   `yaml:"thumbnail"`
	Tags      []string `yaml:"tags,flow"`
}

// parseFrontMatter splits a file into its metadata and body. Files without a
// metadata block yield an empty frontMatter and the whole text as body.
func parseFrontMatter(content string) (frontMatter, string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	matches := frontMatterPattern.FindStringSubmatch(content)
	if len(matches) != 3 {
		return frontMatter{}, content, nil
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(matches[1]), &fm); err != nil {
		return frontMatter{}, content, fmt.Errorf("failed to parse front matter: %w", err)
	}
	return fm, matches[2], nil
}

// ParseDocument builds a document from a content file. relPath is slash
// separated and relative to the content root. Missing metadata falls back to
// defaults derived from the path.
func ParseDocument(relPath string, raw []byte) (domain.Document, error) {
	fm, body, err := parseFrontMatter(string(raw))
	if err != nil {
		return domain.Document{}, err
	}

	ext := path.Ext(relPath)
	id := strings.TrimSuffix(relPath, ext)
	if fm.ID != "" {
		id = domain.NormalizeID(strings.TrimSpace(fm.ID))
	}
	if err := application.ValidateDocumentID("id", id); err != nil {
		return domain.Document{}, err
	}

	filename := path.Base(relPath)
	if fm.Filename != "" {
		filename = strings.TrimSpace(fm.Filename)
	}

	lang := domain.LangMarkdown
	if strings.EqualFold(ext, ".mdx") {
		lang = domain.LangMDX
	}
	if fm.Lang != "" {
		lang = domain.ParseLang(fm.Lang)
	}

	module := "module"
	if fm.PyModule != "" {
		module = strings.TrimSpace(fm.PyModule)
	}

	return domain.Document{
		ID:        id,
		Key:       domain.KeyFor(id),
		Filename:  filename,
		Path:      "docs > " + filename,
		Icon:      domain.ParseIcon(fm.Icon),
		Lang:      lang,
		Module:    module,
		Content:   body,
		Thumbnail: fm.Thumbnail,
		Tags:      fm.Tags,
	}, nil
}
