package commands

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"devfolio/internal/domain"
)

// MinQueryLength is the shortest query the search runs for
const MinQueryLength = 2

// SearchResult is a document with the text that matched and a relevance score
type SearchResult struct {
	Document    domain.Document
	MatchedText string
	Score       int
}

// SearchCommand searches the store with fuzzy matching
type SearchCommand struct {
	store *domain.Store
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(store *domain.Store, query string) *SearchCommand {
	return &SearchCommand{
		store: store,
		Query: query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	query := strings.TrimSpace(c.Query)
	if len(query) < MinQueryLength {
		return nil, nil
	}

	candidates := make([]SearchResult, 0, c.store.Len())
	for _, doc := range c.store.Documents() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		candidates = append(candidates, SearchResult{
			Document:    doc,
			MatchedText: matchingLine(doc.Content, query),
		})
	}

	return FuzzySort(candidates, query), nil
}

// matchingLine returns the first content line containing the query
func matchingLine(content, query string) string {
	lower := strings.ToLower(query)
	for line := range strings.Lines(content) {
		if strings.Contains(strings.ToLower(line), lower) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

// fuzzyCeiling is the highest score an in-order, non-contiguous match gets
const fuzzyCeiling = 99

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		// Bonus if it starts with query
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && isSeparator(target[i-1]) {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		// scattered matches always rank below any substring match
		return min(score, fuzzyCeiling)
	}
	return 0
}

func isSeparator(b byte) bool {
	switch b {
	case ' ', '.', '-', '_', '/':
		return true
	}
	return false
}

// FuzzySort scores results against the query, drops non-matches and sorts by
// score descending, then by document ID.
func FuzzySort(results []SearchResult, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(results))

	for _, r := range results {
		best := max(
			FuzzyScore(r.Document.ID, query),
			FuzzyScore(r.Document.Filename, query),
			FuzzyScore(r.MatchedText, query),
		)
		if best > 0 {
			r.Score = best
			scored = append(scored, r)
		}
	}

	slices.SortStableFunc(scored, func(a, b SearchResult) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return strings.Compare(a.Document.ID, b.Document.ID)
	})

	return scored
}
