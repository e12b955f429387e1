package matcher

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/user/assessment-finder/internal/domain"
	"github.com/user/assessment-finder/internal/monitoring"
)

// maxResults caps how many assessments a ranking returns.
const maxResults = 10

// ContentGenerator produces a completion for a ranking prompt.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Matcher ranks assessments against a job description. The primary tier
// asks a language model for the most relevant item indices; keyword overlap
// scoring backfills an under-sized model answer and replaces it entirely
// when the model is unavailable or fails.
type Matcher struct {
	generator ContentGenerator // nil when no API key is configured
	metrics   *monitoring.Metrics
	logger    *zap.Logger
}

func New(generator ContentGenerator, m *monitoring.Metrics, l *zap.Logger) *Matcher {
	return &Matcher{generator: generator, metrics: m, logger: l}
}

// Match returns up to maxResults assessments drawn from items, most
// relevant first. It never fails: every model-side problem degrades to
// keyword ranking.
func (m *Matcher) Match(ctx context.Context, items []domain.Assessment, jobDescription string) []domain.Assessment {
	if len(items) == 0 {
		return nil
	}

	if m.generator == nil {
		m.metrics.IncFallbacks("no_credentials")
		return KeywordRank(items, jobDescription)
	}

	raw, err := m.generator.GenerateContent(ctx, buildPrompt(items, jobDescription))
	if err != nil {
		m.logger.Warn("model ranking failed, using keyword matching", zap.Error(err))
		m.metrics.IncFallbacks("generate_failed")
		return KeywordRank(items, jobDescription)
	}

	ranked := pickByIndex(items, parseIndices(raw, len(items)))
	if len(ranked) < maxResults {
		ranked = backfill(ranked, KeywordRank(items, jobDescription))
	}
	return ranked
}

// buildPrompt enumerates every assessment with a 1-based index and asks for
// the ten most relevant indices as a comma-separated list.
func buildPrompt(items []domain.Assessment, jobDescription string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s: %s (Category: %s, Difficulty: %s)\n",
			i+1, item.Title, item.Description, item.Category, item.Difficulty)
	}

	return fmt.Sprintf(`I have a job description and need to find the most relevant assessment tests from SHL's catalog.

Job Description: %q

Available Assessments:
%s
Please analyze the job description and identify the 10 most relevant assessments from the list above.
Return only the numbers of the assessments in order of relevance, separated by commas (e.g., "3,10,7,1,5,8,2,9,4,6").`, jobDescription, b.String())
}

// parseIndices converts the model response into zero-based item indices.
// Malformed tokens, out-of-range values and duplicates are dropped; a
// completely garbled response simply yields no indices.
func parseIndices(raw string, itemCount int) []int {
	raw = stripCodeFence(raw)

	seen := make(map[int]bool)
	var indices []int
	for _, tok := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			continue
		}
		idx := n - 1
		if idx < 0 || idx >= itemCount || seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
		if len(indices) == maxResults {
			break
		}
	}
	return indices
}

func pickByIndex(items []domain.Assessment, indices []int) []domain.Assessment {
	picked := make([]domain.Assessment, 0, len(indices))
	for _, idx := range indices {
		picked = append(picked, items[idx])
	}
	return picked
}

// backfill appends keyword-ranked items that the primary tier missed,
// deduplicated by id, until maxResults or the fallback list is exhausted.
func backfill(primary, fallback []domain.Assessment) []domain.Assessment {
	present := make(map[string]bool, len(primary))
	for _, item := range primary {
		present[item.ID] = true
	}

	for _, item := range fallback {
		if len(primary) >= maxResults {
			break
		}
		if present[item.ID] {
			continue
		}
		present[item.ID] = true
		primary = append(primary, item)
	}
	return primary
}

// stripCodeFence removes a markdown code fence that some models wrap their
// answer in.
func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
		if idx := strings.Index(raw, "\n"); idx != -1 && !strings.ContainsAny(raw[:idx], "0123456789") {
			raw = raw[idx+1:]
		}
	}
	return strings.TrimSpace(strings.Trim(raw, "`"))
}
