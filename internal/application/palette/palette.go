// Package palette implements the quick-open document filter.
package palette

import (
	"cmp"
	"slices"
	"strings"

	"devfolio/internal/application/commands"
	"devfolio/internal/domain"
)

// Palette filters the store by a query and tracks a clamped selection
type Palette struct {
	store    *domain.Store
	query    string
	results  []domain.Document
	selected int
}

// New creates a palette listing every document
func New(store *domain.Store) *Palette {
	p := &Palette{store: store}
	p.SetQuery("")
	return p
}

// Query returns the current filter text
func (p *Palette) Query() string {
	return p.query
}

// SetQuery filters the documents and resets the selection to the first result
func (p *Palette) SetQuery(query string) {
	p.query = query
	p.results = Filter(p.store, query)
	p.selected = 0
}

// Results returns the filtered documents in display order
func (p *Palette) Results() []domain.Document {
	return slices.Clone(p.results)
}

// Index returns the selected position
func (p *Palette) Index() int {
	return p.selected
}

// Down moves the selection forward, stopping at the last result
func (p *Palette) Down() {
	if p.selected < len(p.results)-1 {
		p.selected++
	}
}

// Up moves the selection back, stopping at the first result
func (p *Palette) Up() {
	if p.selected > 0 {
		p.selected--
	}
}

// Selected returns the selected document
func (p *Palette) Selected() (domain.Document, bool) {
	if p.selected < 0 || p.selected >= len(p.results) {
		return domain.Document{}, false
	}
	return p.results[p.selected], true
}

// Reset clears the query
func (p *Palette) Reset() {
	p.SetQuery("")
}

// Filter returns the documents whose filename or ID contains the query,
// case-insensitively. Matches are ranked by fuzzy score then ID; an empty
// query returns every document ordered by ID.
func Filter(store *domain.Store, query string) []domain.Document {
	query = strings.TrimSpace(query)
	docs := store.Documents()

	if query == "" {
		slices.SortFunc(docs, func(a, b domain.Document) int {
			return strings.Compare(a.ID, b.ID)
		})
		return docs
	}

	lower := strings.ToLower(query)
	type ranked struct {
		doc   domain.Document
		score int
	}
	var matches []ranked
	for _, doc := range docs {
		if !strings.Contains(strings.ToLower(doc.Filename), lower) &&
			!strings.Contains(strings.ToLower(doc.ID), lower) {
			continue
		}
		matches = append(matches, ranked{
			doc:   doc,
			score: max(commands.FuzzyScore(doc.Filename, query), commands.FuzzyScore(doc.ID, query)),
		})
	}

	slices.SortFunc(matches, func(a, b ranked) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return strings.Compare(a.doc.ID, b.doc.ID)
	})

	out := make([]domain.Document, len(matches))
	for i, m := range matches {
		out[i] = m.doc
	}
	return out
}
