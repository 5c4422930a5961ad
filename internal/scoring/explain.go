package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// ErrJobNotFound indicates an explain lookup for a job_id that none of the
// scored jobs carried.
var ErrJobNotFound = errors.New("job not found")

const explanationTemplate = `Job ID %s explanation:

Skills match: %.1f%% — %d skills missing.
Location match: %s%%.
Experience match: %s%%.
Salary match: %s%%.
Role match: %s%%.

Overall match score: %.1f%%.`

// Explain scores every job and renders the breakdown of the one whose
// job_id matches. Wire job_ids are opaque scalars while the requested id
// arrives as a string, so both sides are compared after coercion to a
// canonical string form.
func Explain(candidate types.Candidate, jobs []types.JobPosting, jobID string) (string, error) {
	for _, m := range ScoreAll(candidate, jobs) {
		if JobIDString(m.JobID) != jobID {
			continue
		}
		b := m.Breakdown
		return fmt.Sprintf(explanationTemplate,
			jobID,
			b.SkillMatch, len(m.MissingSkills),
			formatScore(b.LocationMatch),
			formatScore(b.ExperienceMatch),
			formatScore(b.SalaryMatch),
			formatScore(b.RoleMatch),
			m.MatchScore,
		), nil
	}
	return "", ErrJobNotFound
}

// JobIDString coerces a raw wire job_id to its canonical string form: JSON
// strings are unquoted, everything else (numbers, booleans, null) compares
// by its literal text.
func JobIDString(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return trimmed
}
