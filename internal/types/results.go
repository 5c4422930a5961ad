package types

import "encoding/json"

// FactorBreakdown holds the five independent factor scores, each in [0,100].
// Fields are float64 so fractional scores (fuzzy skill ratios, salary
// penalties) serialize at their native precision; whole values marshal
// without forced decimals.
type FactorBreakdown struct {
	SkillMatch      float64 `json:"skill_match"`
	LocationMatch   float64 `json:"location_match"`
	SalaryMatch     float64 `json:"salary_match"`
	ExperienceMatch float64 `json:"experience_match"`
	RoleMatch       float64 `json:"role_match"`
}

// MatchResult is the scored outcome for one job posting.
type MatchResult struct {
	JobID                json.RawMessage `json:"job_id"`
	MatchScore           float64         `json:"match_score"`
	Breakdown            FactorBreakdown `json:"breakdown"`
	MissingSkills        []string        `json:"missing_skills"`
	RecommendationReason string          `json:"recommendation_reason"`
}

// MatchesResponse is the response body for POST /application.
type MatchesResponse struct {
	Matches []MatchResult `json:"matches"`
}
