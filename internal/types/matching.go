// Package types provides type definitions for structured data exchanged with the job matching engine.
package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// Candidate describes the person being matched against job postings.
// It carries no identity beyond the request it arrived in.
type Candidate struct {
	Skills             []string `json:"skills" validate:"required"`
	PreferredLocations []string `json:"preferred_locations" validate:"required"`
	PreferredRoles     []string `json:"preferred_roles" validate:"required"`
	ExpectedSalary     int      `json:"expected_salary" validate:"gte=0"`
	ExperienceYears    int      `json:"experience_years" validate:"gte=0"`
}

// JobPosting describes one job to score the candidate against.
// JobID is kept as raw JSON so the wire value (string, number, bool, null)
// survives verbatim into the match result without type coercion.
type JobPosting struct {
	JobID              json.RawMessage `json:"job_id" validate:"required"`
	RequiredSkills     []string        `json:"required_skills" validate:"required"`
	Location           string          `json:"location"`
	SalaryRange        []int           `json:"salary_range,omitempty"`
	ExperienceRequired string          `json:"experience_required,omitempty"`
	Title              string          `json:"title,omitempty"`
}

// ApplicationInput is the request body shared by the /application and
// /explain endpoints: one candidate plus the job postings to score.
type ApplicationInput struct {
	Candidate Candidate    `json:"candidate" validate:"required"`
	Jobs      []JobPosting `json:"jobs" validate:"required,dive"`
}

// Validate validates the ApplicationInput using the validator.
func (a *ApplicationInput) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}
