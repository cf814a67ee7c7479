package domain

import (
	"strings"
	"time"
)

// KeyPrefix is the separator carried by store lookup keys and terminal commands
const KeyPrefix = "/"

// ProfileID is the distinguished profile document, shown first and opened by default
const ProfileID = "about"

// Document represents one openable content unit
type Document struct {
	ID         string   // e.g., "works/microbase" (never has a leading slash)
	Key        string   // Store lookup key, e.g., "/works/microbase"
	Filename   string   // Display name, e.g., "microbase.md"
	Path       string   // Breadcrumb, e.g., "docs > microbase.md"
	Icon       Icon
	Lang       Lang
	Module     string // Simulated import module name
	Content    string // Raw Markdown body
	Rendered   string // Precompiled HTML, only set for rich content
	Thumbnail  string
	Tags       []string
	SourcePath string // Absolute path of the source file
	ModTime    time.Time
}

// IsRich reports whether the document carries a precompiled representation
func (d Document) IsRich() bool {
	return d.Lang.IsRich() && d.Rendered != ""
}

// Breadcrumbs splits the display path into trimmed segments
func (d Document) Breadcrumbs() []string {
	if d.Path == "" {
		return []string{d.Filename}
	}
	parts := strings.Split(d.Path, ">")
	crumbs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			crumbs = append(crumbs, p)
		}
	}
	return crumbs
}

// Title returns the filename without its content extension
func (d Document) Title() string {
	name := d.Filename
	for _, ext := range []string{".mdx", ".md", ".tsx", ".py", ".json"} {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}

// NormalizeID strips one leading separator from an identifier
func NormalizeID(id string) string {
	return strings.TrimPrefix(id, KeyPrefix)
}

// KeyFor returns the store lookup key for a document ID
func KeyFor(id string) string {
	return KeyPrefix + NormalizeID(id)
}
