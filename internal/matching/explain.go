package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hireloop/talent-matcher/internal/catalog"
	"github.com/hireloop/talent-matcher/internal/skills"
)

const (
	maxMatchedShown = 3
	maxBonusShown   = 2
	maxMissingShown = 2
)

// Explain composes a short pipe-delimited justification for a match. Each
// clause is omitted when there is nothing to say, so empty candidates and
// requirement-free jobs still produce a sensible string.
func Explain(candidate *catalog.CandidateProfile, job *catalog.Job, breakdown ScoreBreakdown) string {
	cand := skills.NormalizeSet(candidate.Skills)
	required := skills.NormalizeSet(job.Requirements)
	nice := skills.NormalizeSet(job.NiceToHave)

	var parts []string

	if matched := intersect(cand, required); len(matched) > 0 {
		parts = append(parts, "Key skills: "+joinTop(matched, maxMatchedShown))
	}

	if bonus := intersect(cand, nice); len(bonus) > 0 {
		parts = append(parts, "Bonus skills: "+joinTop(bonus, maxBonusShown))
	}

	if candidate.ExperienceYears > 0 {
		switch {
		case breakdown.Experience >= 0.9:
			parts = append(parts, fmt.Sprintf("Experience: %d years (excellent fit)", candidate.ExperienceYears))
		case breakdown.Experience >= 0.7:
			parts = append(parts, fmt.Sprintf("Experience: %d years (good fit)", candidate.ExperienceYears))
		default:
			parts = append(parts, fmt.Sprintf("Experience: %d years (needs review)", candidate.ExperienceYears))
		}
	}

	if missing := subtract(required, cand); len(missing) > 0 {
		parts = append(parts, "Missing: "+joinTop(missing, maxMissingShown))
	}

	switch {
	case breakdown.Final >= autoThreshold:
		parts = append(parts, "Strong match")
	case breakdown.Final >= reviewThreshold:
		parts = append(parts, "Good potential")
	default:
		parts = append(parts, "Requires review")
	}

	return strings.Join(parts, " | ")
}

func intersect(a, b map[string]bool) []string {
	var out []string
	for skill := range a {
		if b[skill] {
			out = append(out, skill)
		}
	}
	sort.Strings(out)
	return out
}

func subtract(a, b map[string]bool) []string {
	var out []string
	for skill := range a {
		if !b[skill] {
			out = append(out, skill)
		}
	}
	sort.Strings(out)
	return out
}

func joinTop(list []string, limit int) string {
	if len(list) > limit {
		list = list[:limit]
	}
	return strings.Join(list, ", ")
}
