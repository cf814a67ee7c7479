package domain

import "strings"

// Lang is the content kind of a document
type Lang int

const (
	LangMarkdown Lang = iota
	LangPython
	LangJavaScript
	LangTypeScript
	LangJSON
	LangMDX
)

var langNames = map[Lang]string{
	LangMarkdown:   "markdown",
	LangPython:     "python",
	LangJavaScript: "javascript",
	LangTypeScript: "typescript",
	LangJSON:       "json",
	LangMDX:        "mdx",
}

var langBadges = map[Lang]string{
	LangMarkdown:   "MD",
	LangPython:     "PY",
	LangJavaScript: "JS",
	LangTypeScript: "TS",
	LangJSON:       "JSON",
	LangMDX:        "MDX",
}

// ParseLang maps a front-matter tag to a Lang, defaulting to markdown
func ParseLang(s string) Lang {
	s = strings.ToLower(strings.TrimSpace(s))
	for lang, name := range langNames {
		if name == s {
			return lang
		}
	}
	return LangMarkdown
}

// String returns the front-matter tag for the lang
func (l Lang) String() string {
	if name, ok := langNames[l]; ok {
		return name
	}
	return langNames[LangMarkdown]
}

// Badge returns the short label shown in the status bar
func (l Lang) Badge() string {
	if badge, ok := langBadges[l]; ok {
		return badge
	}
	return langBadges[LangMarkdown]
}

// IsRich reports whether documents of this kind get a precompiled rendering
func (l Lang) IsRich() bool {
	return l == LangMDX
}

// Icon is the symbolic icon of a document
type Icon int

const (
	IconFileText Icon = iota
	IconUserCircle
	IconMicroscope
	IconBriefcase
	IconEnvelope
	IconFolder
)

type iconInfo struct {
	key   string
	glyph string
}

var icons = map[Icon]iconInfo{
	IconFileText:   {"file-text", "≡"},
	IconUserCircle: {"user-circle", "◉"},
	IconMicroscope: {"microscope", "⚗"},
	IconBriefcase:  {"briefcase", "▣"},
	IconEnvelope:   {"envelope", "✉"},
	IconFolder:     {"folder", "▸"},
}

// ParseIcon maps a front-matter icon key to an Icon, defaulting to file-text
func ParseIcon(s string) Icon {
	s = strings.ToLower(strings.TrimSpace(s))
	for icon, info := range icons {
		if info.key == s {
			return icon
		}
	}
	return IconFileText
}

// String returns the icon key
func (i Icon) String() string {
	if info, ok := icons[i]; ok {
		return info.key
	}
	return icons[IconFileText].key
}

// Glyph returns the terminal glyph used to draw the icon
func (i Icon) Glyph() string {
	if info, ok := icons[i]; ok {
		return info.glyph
	}
	return icons[IconFileText].glyph
}
