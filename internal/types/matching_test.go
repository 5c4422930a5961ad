package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() ApplicationInput {
	return ApplicationInput{
		Candidate: Candidate{
			Skills:             []string{"Python"},
			PreferredLocations: []string{"Bangalore"},
			PreferredRoles:     []string{"Backend Developer"},
			ExpectedSalary:     75000,
			ExperienceYears:    2,
		},
		Jobs: []JobPosting{
			{
				JobID:          json.RawMessage(`"job-1"`),
				RequiredSkills: []string{"Python"},
				Location:       "Bangalore",
			},
		},
	}
}

func TestApplicationInput_Valid(t *testing.T) {
	input := validInput()
	assert.NoError(t, input.Validate())
}

func TestApplicationInput_EmptyJobsListIsValid(t *testing.T) {
	input := validInput()
	input.Jobs = []JobPosting{}
	assert.NoError(t, input.Validate())
}

func TestApplicationInput_MissingCandidateSkills(t *testing.T) {
	input := validInput()
	input.Candidate.Skills = nil
	assert.Error(t, input.Validate())
}

func TestApplicationInput_NegativeSalary(t *testing.T) {
	input := validInput()
	input.Candidate.ExpectedSalary = -1
	assert.Error(t, input.Validate())
}

func TestApplicationInput_NegativeExperience(t *testing.T) {
	input := validInput()
	input.Candidate.ExperienceYears = -1
	assert.Error(t, input.Validate())
}

func TestApplicationInput_JobMissingID(t *testing.T) {
	input := validInput()
	input.Jobs[0].JobID = nil
	assert.Error(t, input.Validate())
}

func TestJobPosting_JobIDRoundTrip(t *testing.T) {
	tests := []string{`"job-1"`, `42`, `3.5`, `true`, `null`}
	for _, raw := range tests {
		var job JobPosting
		require.NoError(t, json.Unmarshal([]byte(`{"job_id": `+raw+`, "required_skills": [], "location": "Remote"}`), &job))

		data, err := json.Marshal(job)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"job_id":`+raw, "job_id %s must survive verbatim", raw)
	}
}

func TestJobPosting_OptionalFields(t *testing.T) {
	var job JobPosting
	require.NoError(t, json.Unmarshal([]byte(`{"job_id": 1, "required_skills": [], "location": "Remote", "salary_range": null, "experience_required": null, "title": null}`), &job))

	assert.Nil(t, job.SalaryRange)
	assert.Empty(t, job.ExperienceRequired)
	assert.Empty(t, job.Title)
}
