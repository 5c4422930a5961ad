package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// ExperienceRange is the parsed form of a free-text experience requirement.
type ExperienceRange struct {
	Min int
	Max int
}

// openEndedMax caps "N+" requirements, which have no effective upper bound.
const openEndedMax = 40

var (
	rangePattern = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)
	plusPattern  = regexp.MustCompile(`(\d+)\s*\+`)
)

// ParseExperience turns a free-text experience requirement ("0-2 years",
// "3+", "fresher") into a numeric range. Rules are tried in fixed priority
// order; the first match wins and min <= max is not validated. The second
// return value reports whether the text was parseable at all.
func ParseExperience(text string) (ExperienceRange, bool) {
	s := normalize(text)
	if s == "" {
		return ExperienceRange{}, false
	}

	if m := rangePattern.FindStringSubmatch(s); m != nil {
		minYears, _ := strconv.Atoi(m[1])
		maxYears, _ := strconv.Atoi(m[2])
		return ExperienceRange{Min: minYears, Max: maxYears}, true
	}

	if m := plusPattern.FindStringSubmatch(s); m != nil {
		minYears, _ := strconv.Atoi(m[1])
		return ExperienceRange{Min: minYears, Max: openEndedMax}, true
	}

	if strings.Contains(s, "fresher") || strings.Contains(s, "entry") {
		return ExperienceRange{Min: 0, Max: 1}, true
	}

	return ExperienceRange{}, false
}
