package scoring

import (
	"math"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	// skillMatchThreshold is the minimum partial-ratio similarity for a
	// required skill to count as matched.
	skillMatchThreshold = 80

	// neutralScore is used when a factor cannot be assessed because the
	// job left the relevant field unspecified.
	neutralScore = 50.0

	// overExperiencedScore is the flat score for candidates above the
	// required experience range.
	overExperiencedScore = 80.0

	// remoteLocation is the sentinel location value that scores a partial
	// match for any candidate.
	remoteLocation = "Remote"
)

// computeSkillScore scores required skills against the candidate's skills
// and collects the required skills that failed to match, in their original
// order. With no required skills the score is neutral: nothing to assess.
func computeSkillScore(candidate types.Candidate, required []string) (float64, []string) {
	missing := make([]string, 0)
	matched := 0

	for _, req := range required {
		best := 0
		for _, skill := range candidate.Skills {
			if score := similarity(req, skill); score > best {
				best = score
			}
		}
		if best >= skillMatchThreshold {
			matched++
		} else {
			missing = append(missing, req)
		}
	}

	if len(required) == 0 {
		return neutralScore, missing
	}
	return float64(matched) / float64(len(required)) * 100, missing
}

// computeLocationScore compares locations by exact string equality: full
// score on a preferred-location hit, partial score for remote jobs.
func computeLocationScore(preferred []string, location string) float64 {
	for _, loc := range preferred {
		if loc == location {
			return 100
		}
	}
	if location == remoteLocation {
		return 80
	}
	return 0
}

// computeSalaryScore scores the candidate's expected salary against the
// job's salary band. Outside the band the penalty is linear in the
// shortfall or excess relative to the violated bound. A zero upper bound
// scores 0: any positive ask overshoots the band entirely.
func computeSalaryScore(expected int, salaryRange []int) float64 {
	if len(salaryRange) != 2 {
		return neutralScore
	}

	lo, hi := salaryRange[0], salaryRange[1]
	switch {
	case lo <= expected && expected <= hi:
		return 100
	case expected < lo:
		// expected is validated non-negative, so lo > 0 here.
		ratio := float64(lo-expected) / float64(lo)
		return math.Max(0, 100-ratio*100)
	default:
		if hi == 0 {
			return 0
		}
		ratio := float64(expected-hi) / float64(hi)
		return math.Max(0, 100-ratio*100)
	}
}

// computeExperienceScore scores the candidate's years of experience against
// the job's free-text requirement. Unparseable requirements score neutral;
// over-experience is only mildly penalized.
func computeExperienceScore(years int, requirement string) float64 {
	expRange, ok := ParseExperience(requirement)
	if !ok {
		return neutralScore
	}

	switch {
	case expRange.Min <= years && years <= expRange.Max:
		return 100
	case years < expRange.Min:
		// years is validated non-negative, so Min > 0 here.
		ratio := float64(expRange.Min-years) / float64(expRange.Min)
		return math.Max(0, 100-ratio*100)
	default:
		return overExperiencedScore
	}
}

// computeRoleScore is the best partial-ratio similarity between the job
// title and any preferred role. An empty title scores neutral; an empty
// preferred-role list scores 0, there is nothing to compare against.
func computeRoleScore(preferredRoles []string, title string) float64 {
	if title == "" {
		return neutralScore
	}

	best := 0
	for _, role := range preferredRoles {
		if score := similarity(role, title); score > best {
			best = score
		}
	}
	return float64(best)
}
