package matcher

import (
	"reflect"
	"testing"

	"github.com/user/assessment-finder/internal/catalog"
	"github.com/user/assessment-finder/internal/domain"
)

func TestKeywordRankScoring(t *testing.T) {
	items := []domain.Assessment{
		{ID: "1", Title: "Typing Test", Description: "speed and accuracy", Category: domain.CategoryGeneral},
		{ID: "2", Title: "Python Screen", Description: "python programming for backend services", Category: domain.CategoryTechnical},
		{ID: "3", Title: "Backend Exercise", Description: "api design", Category: domain.CategoryTechnical},
	}

	got := KeywordRank(items, "senior python backend developer")
	// Item 2 matches python+backend, item 3 matches backend, item 1 nothing.
	if want := []string{"2", "3", "1"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestKeywordRankCountsDistinctTokensOnce(t *testing.T) {
	items := []domain.Assessment{
		{ID: "1", Title: "Backend Basics", Description: "introductory", Category: domain.CategoryTechnical},
		{ID: "2", Title: "Python Screen", Description: "general skills", Category: domain.CategoryTechnical},
	}

	// "backend" repeated in the query must not outscore two distinct matches.
	got := KeywordRank(items, "backend backend backend python skills")
	if want := []string{"2", "1"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestKeywordRankDeterministic(t *testing.T) {
	items := catalog.FallbackAssessments()
	query := "customer service representative with sales experience"

	first := KeywordRank(items, query)
	second := KeywordRank(items, query)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("keyword ranking is not deterministic")
	}
}

func TestKeywordRankNoiseQueryKeepsOriginalOrder(t *testing.T) {
	items := makeItems(12)

	got := KeywordRank(items, "a an to of the i am")
	if len(got) != 10 {
		t.Fatalf("expected 10 results, got %d", len(got))
	}
	if want := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected original order for all-noise query, got %v", ids(got))
	}
}

func TestKeywordRankEmptyCatalog(t *testing.T) {
	if got := KeywordRank(nil, "anything at all"); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", ids(got))
	}
}

func TestKeywordRankSurfacesRelevantCategories(t *testing.T) {
	items := catalog.FallbackAssessments()
	got := KeywordRank(items, "senior java backend engineer with leadership responsibilities")

	positions := make(map[string]int)
	for i, item := range got {
		if _, ok := positions[item.Category]; !ok {
			positions[item.Category] = i
		}
	}

	technical, ok := positions[domain.CategoryTechnical]
	if !ok {
		t.Fatal("no technical assessment in result")
	}
	leadership, ok := positions[domain.CategoryLeadership]
	if !ok {
		t.Fatal("no leadership assessment in result")
	}
	personality, ok := positions[domain.CategoryPersonality]
	if !ok {
		// Fine: personality items pushed out of the top ten entirely.
		return
	}

	if technical > personality || leadership > personality {
		t.Fatalf("expected technical (%d) and leadership (%d) ahead of personality (%d): %v",
			technical, leadership, personality, ids(got))
	}
}
