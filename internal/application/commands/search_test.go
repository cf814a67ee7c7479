package commands

import (
	"context"
	"testing"

	"devfolio/internal/domain"
)

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		query     string
		wantScore int
		wantMin   int // use this for relative comparisons
	}{
		{
			name:      "exact match",
			target:    "Microbase",
			query:     "Microbase",
			wantScore: 150, // 100 for contains + 50 for prefix
		},
		{
			name:      "prefix match",
			target:    "Microbase Notes",
			query:     "Microbase",
			wantScore: 150, // 100 for contains + 50 for prefix
		},
		{
			name:      "substring match",
			target:    "My Microbase",
			query:     "Microbase",
			wantScore: 100, // contains only
		},
		{
			name:    "fuzzy match all chars at start",
			target:  "Microbase",
			query:   "mic",
			wantMin: 100, // should be high due to prefix
		},
		{
			name:      "no match",
			target:    "Microbase",
			query:     "xyz",
			wantScore: 0,
		},
		{
			name:      "empty query",
			target:    "Microbase",
			query:     "",
			wantScore: 0,
		},
		{
			name:    "case insensitive",
			target:  "MICROBASE",
			query:   "microbase",
			wantMin: 100,
		},
		{
			name:    "ID match",
			target:  "works/microbase",
			query:   "microbase",
			wantMin: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FuzzyScore(tt.target, tt.query)

			if tt.wantScore > 0 {
				if score != tt.wantScore {
					t.Errorf("expected score %d, got %d", tt.wantScore, score)
				}
			} else if tt.wantMin > 0 {
				if score < tt.wantMin {
					t.Errorf("expected score >= %d, got %d", tt.wantMin, score)
				}
			} else {
				if score != 0 {
					t.Errorf("expected score 0, got %d", score)
				}
			}
		})
	}
}

func TestFuzzyScore_Ordering(t *testing.T) {
	query := "microbase"

	exactScore := FuzzyScore("microbase", query)
	prefixScore := FuzzyScore("microbase notes", query)
	containsScore := FuzzyScore("my microbase", query)
	fuzzyScore := FuzzyScore("m.i.c.r.o.b.a.s.e", query)

	if exactScore < prefixScore {
		t.Errorf("exact match should score >= prefix: %d < %d", exactScore, prefixScore)
	}
	if prefixScore < containsScore {
		t.Errorf("prefix match should score >= contains: %d < %d", prefixScore, containsScore)
	}
	if containsScore <= fuzzyScore {
		t.Errorf("contains match should score higher than fuzzy: %d <= %d", containsScore, fuzzyScore)
	}
}

func TestFuzzyScore_ScatteredStaysBelowSubstring(t *testing.T) {
	tests := []struct {
		target string
		query  string
	}{
		{"m.i.c.r.o.b.a.s.e", "microbase"},
		{"d-i-s-t-r-i-b-u-t-e-d s-y-s-t-e-m-s", "distributedsystems"},
		{"a/b/c/d/e/f/g/h/i/j/k/l", "abcdefghijkl"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			score := FuzzyScore(tt.target, tt.query)
			if score == 0 {
				t.Fatalf("FuzzyScore(%q, %q) should match", tt.target, tt.query)
			}
			if score >= FuzzyScore("x "+tt.query, tt.query) {
				t.Errorf("scattered score %d should stay below a substring match", score)
			}
		})
	}
}

func TestFuzzySort(t *testing.T) {
	results := []SearchResult{
		{Document: domain.Document{ID: "misc", Filename: "random.md"}, MatchedText: "nothing"},
		{Document: domain.Document{ID: "works/microbase", Filename: "microbase.md"}},
		{Document: domain.Document{ID: "cooking", Filename: "recipes.md"}},
		{Document: domain.Document{ID: "notes", Filename: "notes.md"}, MatchedText: "old microbase draft"},
	}

	sorted := FuzzySort(results, "microbase")

	if len(sorted) != 2 {
		t.Fatalf("expected 2 results, got %d", len(sorted))
	}
	if sorted[0].Document.ID != "works/microbase" {
		t.Errorf("expected filename prefix match first, got %s", sorted[0].Document.ID)
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Score > sorted[i-1].Score {
			t.Errorf("results not sorted by score: %d > %d at index %d",
				sorted[i].Score, sorted[i-1].Score, i)
		}
	}
}

func TestFuzzySort_TiesByID(t *testing.T) {
	results := []SearchResult{
		{Document: domain.Document{ID: "b", Filename: "same.md"}},
		{Document: domain.Document{ID: "a", Filename: "same.md"}},
	}

	sorted := FuzzySort(results, "same")
	if len(sorted) != 2 || sorted[0].Document.ID != "a" {
		t.Errorf("expected tie broken by ID, got %+v", sorted)
	}
}

func TestSearchCommand_Execute(t *testing.T) {
	store := domain.NewStore(map[string]domain.Document{
		"/about":           {ID: "about", Filename: "about.md", Content: "# Hi\nI build storage engines.\n"},
		"/works/microbase": {ID: "works/microbase", Filename: "microbase.mdx", Content: "An embedded database."},
		"/contact":         {ID: "contact", Filename: "contact.md", Content: "mail me"},
	})

	results, err := NewSearchCommand(store, "storage").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Document.ID != "about" {
		t.Fatalf("results = %+v", results)
	}
	if results[0].MatchedText != "I build storage engines." {
		t.Errorf("matched text = %q", results[0].MatchedText)
	}

	short, err := NewSearchCommand(store, "a").Execute(context.Background())
	if err != nil || short != nil {
		t.Errorf("short query should return nothing, got %v, %v", short, err)
	}
}

func TestSearchCommand_Cancelled(t *testing.T) {
	store := domain.NewStore(map[string]domain.Document{
		"/about": {ID: "about", Filename: "about.md"},
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewSearchCommand(store, "about").Execute(ctx); err == nil {
		t.Error("expected context error")
	}
}
