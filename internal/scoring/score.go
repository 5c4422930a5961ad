package scoring

import (
	"fmt"
	"math"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/types"
)

// Fixed weights for the factor scores. They sum to 1.00 exactly.
const (
	skillWeight      = 0.40
	locationWeight   = 0.20
	salaryWeight     = 0.15
	experienceWeight = 0.15
	roleWeight       = 0.10
)

// ScoreJob scores one candidate against one job posting.
func ScoreJob(candidate types.Candidate, job types.JobPosting) types.MatchResult {
	skillScore, missing := computeSkillScore(candidate, job.RequiredSkills)
	locationScore := computeLocationScore(candidate.PreferredLocations, job.Location)
	salaryScore := computeSalaryScore(candidate.ExpectedSalary, job.SalaryRange)
	experienceScore := computeExperienceScore(candidate.ExperienceYears, job.ExperienceRequired)
	roleScore := computeRoleScore(candidate.PreferredRoles, job.Title)

	matchScore := (skillWeight * skillScore) +
		(locationWeight * locationScore) +
		(salaryWeight * salaryScore) +
		(experienceWeight * experienceScore) +
		(roleWeight * roleScore)

	// Rounded half away from zero to one decimal place.
	matchScore = math.Round(matchScore*10) / 10

	matched := len(job.RequiredSkills) - len(missing)

	return types.MatchResult{
		JobID:      job.JobID,
		MatchScore: matchScore,
		Breakdown: types.FactorBreakdown{
			SkillMatch:      skillScore,
			LocationMatch:   locationScore,
			SalaryMatch:     salaryScore,
			ExperienceMatch: experienceScore,
			RoleMatch:       roleScore,
		},
		MissingSkills:        missing,
		RecommendationReason: buildReason(matched, len(job.RequiredSkills), locationScore, experienceScore),
	}
}

// ScoreAll scores the candidate against every job, one result per job in
// input order. Jobs have no data dependency on each other, so scoring fans
// out across cores; results are written by index to keep ordering stable.
func ScoreAll(candidate types.Candidate, jobs []types.JobPosting) []types.MatchResult {
	results := make([]types.MatchResult, len(jobs))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, job := range jobs {
		g.Go(func() error {
			results[i] = ScoreJob(candidate, job)
			return nil
		})
	}
	_ = g.Wait() // scoring is pure and never errors

	return results
}

// buildReason generates the recommendation prose for one match. The
// placeholder values are the raw factor scores as produced by the scorers.
func buildReason(matched, total int, locationScore, experienceScore float64) string {
	if total == 0 {
		return fmt.Sprintf(
			"Skill requirements not specified, location score of %s and experience score of %s",
			formatScore(locationScore), formatScore(experienceScore),
		)
	}
	return fmt.Sprintf(
		"Matching %d/%d skills with a location score of %s, and experience score of %s",
		matched, total, formatScore(locationScore), formatScore(experienceScore),
	)
}

// formatScore renders a factor score at its native precision: whole values
// without decimals, fractional values in full.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
