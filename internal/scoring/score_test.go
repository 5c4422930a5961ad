package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func testCandidate() types.Candidate {
	return types.Candidate{
		Skills:             []string{"Python", "FastAPI", "Docker", "React"},
		PreferredLocations: []string{"Bangalore", "Hyderabad"},
		PreferredRoles:     []string{"Backend Developer"},
		ExpectedSalary:     75000,
		ExperienceYears:    1,
	}
}

func testJob(id string) types.JobPosting {
	return types.JobPosting{
		JobID:              json.RawMessage(`"` + id + `"`),
		RequiredSkills:     []string{"Python", "FastAPI", "PostgreSQL"},
		Location:           "Bangalore",
		SalaryRange:        []int{50000, 100000},
		ExperienceRequired: "0-2 years",
		Title:              "Backend Developer",
	}
}

func TestScoreJob_WeightedAggregate(t *testing.T) {
	result := ScoreJob(testCandidate(), testJob("job-1"))

	// skill 66.67 @ 0.40, everything else 100.
	assert.InDelta(t, 2.0/3.0*100, result.Breakdown.SkillMatch, 0.001)
	assert.Equal(t, 100.0, result.Breakdown.LocationMatch)
	assert.Equal(t, 100.0, result.Breakdown.SalaryMatch)
	assert.Equal(t, 100.0, result.Breakdown.ExperienceMatch)
	assert.Equal(t, 100.0, result.Breakdown.RoleMatch)
	assert.Equal(t, 86.7, result.MatchScore)
	assert.Equal(t, []string{"PostgreSQL"}, result.MissingSkills)
}

func TestScoreJob_ScoresWithinBounds(t *testing.T) {
	jobs := []types.JobPosting{
		testJob("job-1"),
		{JobID: json.RawMessage(`1`), RequiredSkills: []string{"COBOL"}, Location: "Oslo"},
		{JobID: json.RawMessage(`2`), RequiredSkills: nil, Location: "Remote", SalaryRange: []int{0, 0}},
		{JobID: json.RawMessage(`3`), RequiredSkills: []string{}, Location: "", ExperienceRequired: "30+", Title: "CTO"},
	}

	for _, job := range jobs {
		result := ScoreJob(testCandidate(), job)
		for _, score := range []float64{
			result.Breakdown.SkillMatch,
			result.Breakdown.LocationMatch,
			result.Breakdown.SalaryMatch,
			result.Breakdown.ExperienceMatch,
			result.Breakdown.RoleMatch,
			result.MatchScore,
		} {
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	}
}

func TestScoreJob_JobIDPreservedVerbatim(t *testing.T) {
	job := testJob("job-1")
	job.JobID = json.RawMessage(`42`)

	result := ScoreJob(testCandidate(), job)

	assert.Equal(t, json.RawMessage(`42`), result.JobID)
}

func TestScoreJob_RecommendationReason(t *testing.T) {
	result := ScoreJob(testCandidate(), testJob("job-1"))

	assert.Equal(t,
		"Matching 2/3 skills with a location score of 100, and experience score of 100",
		result.RecommendationReason)
}

func TestScoreJob_RecommendationReasonNoSkills(t *testing.T) {
	job := testJob("job-1")
	job.RequiredSkills = []string{}

	result := ScoreJob(testCandidate(), job)

	assert.Equal(t, neutralScore, result.Breakdown.SkillMatch)
	assert.Equal(t,
		"Skill requirements not specified, location score of 100 and experience score of 100",
		result.RecommendationReason)
}

func TestScoreJob_MissingSkillsSerializesAsEmptyList(t *testing.T) {
	job := testJob("job-1")
	job.RequiredSkills = nil

	result := ScoreJob(testCandidate(), job)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"missing_skills":[]`)
}

func TestScoreAll_OrderPreserved(t *testing.T) {
	jobs := make([]types.JobPosting, 0, 20)
	for i := 0; i < 20; i++ {
		job := testJob("job")
		job.JobID, _ = json.Marshal(i)
		jobs = append(jobs, job)
	}

	results := ScoreAll(testCandidate(), jobs)

	require.Len(t, results, 20)
	for i, result := range results {
		assert.Equal(t, jobs[i].JobID, result.JobID)
	}
}

func TestScoreAll_Idempotent(t *testing.T) {
	candidate := testCandidate()
	jobs := []types.JobPosting{testJob("a"), testJob("b")}

	first, err := json.Marshal(ScoreAll(candidate, jobs))
	require.NoError(t, err)
	second, err := json.Marshal(ScoreAll(candidate, jobs))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestScoreAll_EmptyJobs(t *testing.T) {
	results := ScoreAll(testCandidate(), nil)
	assert.Empty(t, results)
}
