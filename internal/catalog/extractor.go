package catalog

import (
	"fmt"
	"hash/fnv"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/user/assessment-finder/internal/domain"
)

const maxDescriptionLen = 200

// cardSelectors are tried in order; the first one that yields at least one
// titled item wins. The catalog markup is third-party and changes without
// notice, so these are plausible container patterns rather than a contract.
var cardSelectors = []string{
	".product-card", ".product-item", ".product-listing",
	".catalog-item", ".assessment-card", ".solution-card",
	"article.product", ".product-container", ".card",
}

// Extractor parses catalog markup into normalized assessments.
type Extractor struct {
	catalogURL string
	base       *url.URL
}

func NewExtractor(catalogURL string) *Extractor {
	base, err := url.Parse(catalogURL)
	if err != nil {
		base = nil
	}
	return &Extractor{catalogURL: catalogURL, base: base}
}

// Extract parses markup into assessments. It never fails: unparseable or
// unrecognized markup yields an empty slice and the caller decides what to
// substitute.
func (e *Extractor) Extract(markup string) []domain.Assessment {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	if items := e.extractCards(doc); len(items) > 0 {
		return items
	}
	return e.extractHeadings(doc)
}

// extractCards walks the selector cascade over plausible product-card
// containers.
func (e *Extractor) extractCards(doc *goquery.Document) []domain.Assessment {
	for _, selector := range cardSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}

		var items []domain.Assessment
		sel.Each(func(i int, el *goquery.Selection) {
			title := strings.TrimSpace(el.Find("h2, h3, h4, .title, .product-title").First().Text())
			if title == "" {
				title = strings.TrimSpace(el.Find("strong").First().Text())
			}
			if title == "" {
				return
			}

			description := strings.TrimSpace(el.Find("p, .description, .product-description").Text())
			if description == "" {
				description = truncate(strings.TrimSpace(strings.Replace(el.Text(), title, "", 1)), maxDescriptionLen)
			}
			if description == "" {
				description = "Professional assessment by SHL"
			}

			category := strings.TrimSpace(el.Find(".category, .product-category, .tag").Text())
			if category == "" {
				category = inferCategory(title, description)
			}

			items = append(items, e.newAssessment(len(items), title, description, category, firstHref(el)))
		})

		if len(items) > 0 {
			return items
		}
	}
	return nil
}

// extractHeadings is the generic pass: treat standalone headings as
// candidate titles and pull a description out of their enclosing block.
func (e *Extractor) extractHeadings(doc *goquery.Document) []domain.Assessment {
	var items []domain.Assessment
	doc.Find("h2, h3, h4").Each(func(i int, heading *goquery.Selection) {
		title := strings.TrimSpace(heading.Text())
		if len(title) < 5 {
			return
		}
		if heading.ParentsFiltered("nav, header, footer").Length() > 0 {
			return
		}

		container := heading.Closest("div, section, article")
		if container.Length() == 0 {
			return
		}

		var b strings.Builder
		container.Find("p").Each(func(_ int, p *goquery.Selection) {
			b.WriteString(strings.TrimSpace(p.Text()))
			b.WriteString(" ")
		})
		description := strings.TrimSpace(b.String())
		if description == "" {
			stripped := container.Clone()
			stripped.Find("h1, h2, h3, h4, h5, h6, nav").Remove()
			description = truncate(strings.TrimSpace(stripped.Text()), maxDescriptionLen)
		}
		if description == "" {
			return
		}

		items = append(items, e.newAssessment(len(items), title, description, inferCategory(title, description), firstHref(container)))
	})
	return items
}

func (e *Extractor) newAssessment(ordinal int, title, description, category, href string) domain.Assessment {
	questions, duration := placeholderEstimates(title)
	return domain.Assessment{
		ID:          strconv.Itoa(ordinal + 1),
		Title:       title,
		Description: description,
		Difficulty:  inferDifficulty(description),
		Category:    category,
		URL:         e.resolveURL(href),
		Questions:   questions,
		Duration:    duration,
	}
}

// resolveURL turns a scraped href into an absolute link, defaulting to the
// catalog page itself.
func (e *Extractor) resolveURL(href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return e.catalogURL
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if e.base == nil {
		return e.catalogURL
	}
	ref, err := url.Parse(href)
	if err != nil {
		return e.catalogURL
	}
	return e.base.ResolveReference(ref).String()
}

func firstHref(sel *goquery.Selection) string {
	href, _ := sel.Find("a").First().Attr("href")
	return href
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// inferCategory maps title+description keywords onto the closed category
// set. Priority order matters: the first matching family wins.
func inferCategory(title, description string) string {
	text := strings.ToLower(title + " " + description)

	switch {
	case containsAny(text, "leadership", "management", "executive"):
		return domain.CategoryLeadership
	case containsAny(text, "sales", "customer", "service"):
		return domain.CategorySales
	case containsAny(text, "technical", "developer", "engineering"):
		return domain.CategoryTechnical
	case containsAny(text, "cognitive", "intelligence", "aptitude"):
		return domain.CategoryCognitive
	case containsAny(text, "personality", "behavior", "trait"):
		return domain.CategoryPersonality
	case containsAny(text, "situational", "judgment", "scenario"):
		return domain.CategorySituational
	default:
		return domain.CategoryGeneral
	}
}

// inferDifficulty reads difficulty cues out of a description.
func inferDifficulty(description string) string {
	text := strings.ToLower(description)

	switch {
	case containsAny(text, "advanced", "expert", "difficult", "complex", "senior", "leadership"):
		return domain.DifficultyHard
	case containsAny(text, "intermediate", "moderate", "standard", "professional"):
		return domain.DifficultyMedium
	default:
		return domain.DifficultyEasy
	}
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// placeholderEstimates fabricates question count and duration when the
// catalog page exposes neither. Values are derived from the title so that
// repeated scrapes of the same catalog stay stable: questions in [20,50),
// duration in [30,90) minutes.
func placeholderEstimates(title string) (int, string) {
	h := fnv.New32a()
	h.Write([]byte(title))
	n := h.Sum32()

	questions := 20 + int(n%30)
	minutes := 30 + int((n>>8)%60)
	return questions, fmt.Sprintf("%d mins", minutes)
}
