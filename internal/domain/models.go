package domain

import "time"

// Difficulty levels assigned to assessments. Extraction never produces
// values outside this set.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Assessment categories. Inference defaults to CategoryGeneral.
const (
	CategoryLeadership  = "Leadership"
	CategorySales       = "Sales & Customer Service"
	CategoryTechnical   = "Technical"
	CategoryCognitive   = "Cognitive"
	CategoryPersonality = "Personality"
	CategorySituational = "Situational Judgment"
	CategoryGeneral     = "General"
)

// Assessment is a normalized catalog record.
type Assessment struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Category    string `json:"category"`
	URL         string `json:"url"`
	Questions   int    `json:"questions"`
	Duration    string `json:"duration"`
}

// Snapshot is one immutable capture of the catalog. It is replaced
// wholesale on refresh, never mutated in place.
type Snapshot struct {
	Assessments []Assessment `json:"assessments"`
	FetchedAt   time.Time    `json:"fetched_at"`
}

// MatchRequest is the payload for the assessments API.
type MatchRequest struct {
	JobDescription string `json:"jobDescription"`
}

// CacheStatus reports whether a snapshot is held and how many items it has.
type CacheStatus struct {
	HasAssessments  bool `json:"has_assessments"`
	AssessmentCount int  `json:"assessment_count"`
}
