// Package matching implements the candidate-to-job scoring engine: four
// independent sub-scores fused into one bounded score, confidence banding,
// explanations, skill-gap analysis and the match orchestrator.
package matching

import (
	"math"
	"regexp"
	"strconv"

	"github.com/hireloop/talent-matcher/internal/catalog"
	"github.com/hireloop/talent-matcher/internal/skills"
)

// Fusion weights. Skill overlap dominates; the embedding carries context the
// explicit skill lists miss.
const (
	semanticWeight   = 0.3
	skillWeight      = 0.4
	experienceWeight = 0.2
	lexicalWeight    = 0.1
)

// Skill sub-score weights.
const (
	requiredWeight   = 0.7
	niceToHaveWeight = 0.2
	categoryWeight   = 0.1

	// categoryCreditPerBucket scales the per-category partial credit before
	// the categoryWeight is applied.
	categoryCreditPerBucket = 0.3
)

const neutralExperienceScore = 0.8

var digits = regexp.MustCompile(`\d+`)

// ScoreBreakdown carries the four sub-scores and their fusion. All fields
// are in [0, 1].
type ScoreBreakdown struct {
	Semantic   float64 `json:"semantic_score"`
	Skill      float64 `json:"skill_score"`
	Experience float64 `json:"experience_score"`
	Lexical    float64 `json:"tfidf_score"`
	Final      float64 `json:"final_score"`
}

// NewScoreBreakdown clamps each sub-score into [0, 1] and computes the fused
// score. Callers report Final*100 as the similarity percentage, so the
// result can never leave [0, 100].
func NewScoreBreakdown(semantic, skill, experience, lexical float64) ScoreBreakdown {
	b := ScoreBreakdown{
		Semantic:   clamp01(semantic),
		Skill:      clamp01(skill),
		Experience: clamp01(experience),
		Lexical:    clamp01(lexical),
	}
	b.Final = clamp01(semanticWeight*b.Semantic +
		skillWeight*b.Skill +
		experienceWeight*b.Experience +
		lexicalWeight*b.Lexical)
	return b
}

// SkillScore combines exact requirement overlap, nice-to-have overlap and
// category partial credit, capped at 1.0. A job without requirements scores
// 0 here; the other sub-scores still rank it.
func SkillScore(candidateSkills []string, job *catalog.Job) float64 {
	if len(job.Requirements) == 0 {
		return 0
	}

	cand := skills.NormalizeSet(candidateSkills)
	required := skills.NormalizeSet(job.Requirements)
	nice := skills.NormalizeSet(job.NiceToHave)

	requiredScore := overlapRatio(cand, required)
	niceScore := overlapRatio(cand, nice)

	score := requiredWeight*requiredScore +
		niceToHaveWeight*niceScore +
		categoryWeight*categoryCredit(cand, required)

	if score > 1 {
		return 1
	}
	return score
}

func overlapRatio(cand, target map[string]bool) float64 {
	if len(target) == 0 {
		return 0
	}
	matched := 0
	for skill := range target {
		if cand[skill] {
			matched++
		}
	}
	return float64(matched) / float64(len(target))
}

// categoryCredit awards partial credit when the candidate and the job
// requirements share a taxonomy bucket without an exact token match. Each
// overlapping bucket contributes independently, scaled by how much of the
// job's in-bucket demand the candidate covers; contributions sum without an
// intermediate cap since the final skill score is capped anyway.
func categoryCredit(cand, required map[string]bool) float64 {
	var credit float64
	for _, name := range skills.CategoryNames() {
		candIn, reqIn := 0, 0
		for _, skill := range skills.Categories[name] {
			if cand[skill] {
				candIn++
			}
			if required[skill] {
				reqIn++
			}
		}
		if candIn > 0 && reqIn > 0 {
			credit += categoryCreditPerBucket * float64(min(candIn, reqIn)) / float64(reqIn)
		}
	}
	return credit
}

// ExperienceScore rates how the candidate's years fit the job's requirement
// string ("5+" or "3-6"). Strings with no digits fall back to a neutral
// score instead of failing the match.
func ExperienceScore(candidateYears int, requirement string) float64 {
	numbers := digits.FindAllString(requirement, -1)
	if len(numbers) == 0 {
		return neutralExperienceScore
	}

	years := float64(candidateYears)

	if len(numbers) == 1 {
		required, _ := strconv.Atoi(numbers[0])
		switch {
		case candidateYears >= required:
			return 1.0
		case years >= float64(required)*0.8:
			return 0.8
		default:
			return math.Max(0.3, years/float64(required))
		}
	}

	minYears, _ := strconv.Atoi(numbers[0])
	maxYears, _ := strconv.Atoi(numbers[1])
	switch {
	case candidateYears >= minYears && candidateYears <= maxYears:
		return 1.0
	case years >= float64(minYears)*0.8:
		return 0.9
	case years <= float64(maxYears)*1.2:
		return 0.8
	default:
		return math.Max(0.3, math.Min(years/float64(minYears), float64(maxYears)/years))
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
