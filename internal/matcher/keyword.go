package matcher

import (
	"sort"
	"strings"

	"github.com/user/assessment-finder/internal/domain"
)

// minTokenLen filters short noise words ("a", "the", "for") out of the
// query before scoring.
const minTokenLen = 3

// KeywordRank scores assessments by keyword overlap with the query and
// returns the top maxResults. One point per distinct query token appearing
// as a substring of the item's title, description, or category. The sort is
// stable, so ties keep their original catalog order, and an all-noise query
// simply yields the first maxResults items.
func KeywordRank(items []domain.Assessment, query string) []domain.Assessment {
	tokens := queryTokens(query)

	type scored struct {
		item  domain.Assessment
		score int
	}
	ranked := make([]scored, 0, len(items))
	for _, item := range items {
		text := strings.ToLower(item.Title + " " + item.Description + " " + item.Category)
		score := 0
		for _, tok := range tokens {
			if strings.Contains(text, tok) {
				score++
			}
		}
		ranked = append(ranked, scored{item: item, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	n := len(ranked)
	if n > maxResults {
		n = maxResults
	}
	result := make([]domain.Assessment, 0, n)
	for _, r := range ranked[:n] {
		result = append(result, r.item)
	}
	return result
}

// queryTokens lowercases and splits the query, dropping short tokens and
// duplicates.
func queryTokens(query string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		if len(tok) <= minTokenLen || seen[tok] {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}
	return tokens
}
