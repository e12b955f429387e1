package catalog

import "github.com/user/assessment-finder/internal/domain"

const catalogRootURL = "https://www.shl.com/solutions/products/product-catalog/"

// FallbackAssessments is the hand-curated catalog used when scraping fails
// or yields nothing. It spans every category and difficulty so downstream
// ranking always has something meaningful to work with.
func FallbackAssessments() []domain.Assessment {
	return []domain.Assessment{
		{
			ID:          "1",
			Title:       "SHL Verify Cognitive Ability",
			Description: "Measures critical reasoning through verbal, numerical, and inductive tests to predict job performance and learning ability.",
			Difficulty:  domain.DifficultyMedium,
			Category:    domain.CategoryCognitive,
			Questions:   30,
			Duration:    "45 mins",
			URL:         catalogRootURL,
		},
		{
			ID:          "2",
			Title:       "SHL Personality Assessment (OPQ)",
			Description: "Provides a comprehensive assessment of workplace behaviors and preferences to predict job performance and cultural fit.",
			Difficulty:  domain.DifficultyEasy,
			Category:    domain.CategoryPersonality,
			Questions:   25,
			Duration:    "35 mins",
			URL:         catalogRootURL,
		},
		{
			ID:          "3",
			Title:       "SHL Situational Judgement Test",
			Description: "Evaluates decision-making skills in workplace scenarios to predict job performance and cultural fit.",
			Difficulty:  domain.DifficultyMedium,
			Category:    domain.CategorySituational,
			Questions:   20,
			Duration:    "30 mins",
			URL:         catalogRootURL,
		},
		{
			ID:          "4",
			Title:       "SHL Coding Assessment",
			Description: "Measures hands-on programming and software engineering skills for developer roles, including senior backend and frontend positions.",
			Difficulty:  domain.DifficultyHard,
			Category:    domain.CategoryTechnical,
			Questions:   15,
			Duration:    "60 mins",
			URL:         catalogRootURL,
		},
		{
			ID:          "5",
			Title:       "SHL Leadership Assessment",
			Description: "Measures leadership potential and competencies for senior management and executive roles.",
			Difficulty:  domain.DifficultyHard,
			Category:    domain.CategoryLeadership,
			Questions:   35,
			Duration:    "50 mins",
			URL:         catalogRootURL,
		},
		{
			ID:          "6",
			Title:       "SHL Sales Assessment",
			Description: "Evaluates sales aptitude and skills for sales and business development roles.",
			Difficulty:  domain.DifficultyMedium,
			Category:    domain.CategorySales,
			Questions:   25,
			Duration:    "40 mins",
			URL:         catalogRootURL,
		},
		{
			ID:          "7",
			Title:       "SHL Customer Service Assessment",
			Description: "Measures customer service skills and aptitude for service-oriented roles.",
			Difficulty:  domain.DifficultyEasy,
			Category:    domain.CategorySales,
			Questions:   20,
			Duration:    "30 mins",
			URL:         catalogRootURL,
		},
		{
			ID:          "8",
			Title:       "SHL Numerical Reasoning",
			Description: "Assesses ability to analyze and interpret numerical data and make logical decisions.",
			Difficulty:  domain.DifficultyMedium,
			Category:    domain.CategoryCognitive,
			Questions:   18,
			Duration:    "25 mins",
			URL:         catalogRootURL,
		},
		{
			ID:          "9",
			Title:       "SHL Verbal Reasoning",
			Description: "Evaluates ability to understand and analyze written information to draw logical conclusions.",
			Difficulty:  domain.DifficultyMedium,
			Category:    domain.CategoryCognitive,
			Questions:   30,
			Duration:    "35 mins",
			URL:         catalogRootURL,
		},
		{
			ID:          "10",
			Title:       "SHL Inductive Reasoning",
			Description: "Measures logical thinking ability and problem-solving skills using abstract patterns.",
			Difficulty:  domain.DifficultyHard,
			Category:    domain.CategoryCognitive,
			Questions:   24,
			Duration:    "30 mins",
			URL:         catalogRootURL,
		},
		{
			ID:          "11",
			Title:       "SHL Mechanical Reasoning",
			Description: "Assesses understanding of mechanical concepts and physical principles for technical and engineering roles.",
			Difficulty:  domain.DifficultyMedium,
			Category:    domain.CategoryTechnical,
			Questions:   20,
			Duration:    "25 mins",
			URL:         catalogRootURL,
		},
		{
			ID:          "12",
			Title:       "SHL Workplace Behavior Assessment",
			Description: "Evaluates workplace behaviors and preferences to predict job performance and cultural fit.",
			Difficulty:  domain.DifficultyEasy,
			Category:    domain.CategoryPersonality,
			Questions:   40,
			Duration:    "45 mins",
			URL:         catalogRootURL,
		},
		{
			ID:          "13",
			Title:       "SHL General Ability Screen",
			Description: "A broad screening of core workplace skills for entry-level candidates across all roles.",
			Difficulty:  domain.DifficultyEasy,
			Category:    domain.CategoryGeneral,
			Questions:   22,
			Duration:    "20 mins",
			URL:         catalogRootURL,
		},
	}
}
