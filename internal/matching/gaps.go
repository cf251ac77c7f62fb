package matching

import (
	"fmt"
	"strings"

	"github.com/hireloop/talent-matcher/internal/catalog"
	"github.com/hireloop/talent-matcher/internal/skills"
)

const maxRecommendations = 3

// TrainingRecommendation suggests how a candidate can close one skill gap.
type TrainingRecommendation struct {
	Skill              string   `json:"skill"`
	Priority           string   `json:"priority"`
	SuggestedResources []string `json:"suggested_resources"`
	EstimatedTime      string   `json:"estimated_time"`
}

// SkillGapReport is the derived, non-persistent gap analysis for one
// candidate/job pair.
type SkillGapReport struct {
	MissingRequiredSkills   []string                 `json:"missing_required_skills"`
	MissingNiceToHave       []string                 `json:"missing_nice_to_have"`
	MatchingSkills          []string                 `json:"matching_skills"`
	TrainingRecommendations []TrainingRecommendation `json:"training_recommendations"`
	ReadinessScore          float64                  `json:"readiness_score"`
	SkillMatchPercentage    float64                  `json:"skill_match_percentage"`
}

// AnalyzeGaps computes normalized set differences between candidate skills
// and job requirements plus training suggestions for the most important
// gaps. A job with no requirements yields a zero readiness score.
func AnalyzeGaps(candidate *catalog.CandidateProfile, job *catalog.Job) *SkillGapReport {
	cand := skills.NormalizeSet(candidate.Skills)
	required := skills.NormalizeSet(job.Requirements)
	nice := skills.NormalizeSet(job.NiceToHave)

	missingRequired := subtract(required, cand)
	missingNice := subtract(nice, cand)
	matching := intersect(cand, required)

	recommendations := make([]TrainingRecommendation, 0, maxRecommendations)
	for _, skill := range missingRequired {
		if len(recommendations) == maxRecommendations {
			break
		}
		recommendations = append(recommendations, recommendFor(skill, "High"))
	}
	for _, skill := range missingNice {
		if len(recommendations) == maxRecommendations {
			break
		}
		recommendations = append(recommendations, recommendFor(skill, "Medium"))
	}

	readiness := 0.0
	if len(required) > 0 {
		readiness = float64(len(matching)) / float64(len(required))
	}

	return &SkillGapReport{
		MissingRequiredSkills:   missingRequired,
		MissingNiceToHave:       missingNice,
		MatchingSkills:          matching,
		TrainingRecommendations: recommendations,
		ReadinessScore:          readiness,
		SkillMatchPercentage:    readiness * 100,
	}
}

// recommendFor picks canned learning resources by skill family. Missing
// required skills are high priority with a longer time estimate; nice-to-have
// gaps are medium.
func recommendFor(skill, priority string) TrainingRecommendation {
	title := titleCase(skill)

	var resources []string
	switch skill {
	case "python", "java", "javascript":
		resources = []string{
			fmt.Sprintf("Codecademy %s Course", title),
			fmt.Sprintf("LeetCode %s Practice", title),
			fmt.Sprintf("%s Official Documentation", title),
		}
	case "aws", "gcp", "azure":
		upper := strings.ToUpper(skill)
		resources = []string{
			fmt.Sprintf("%s Cloud Practitioner Certification", upper),
			fmt.Sprintf("%s Free Tier Hands-on Practice", upper),
			fmt.Sprintf("A Cloud Guru %s Course", upper),
		}
	case "docker", "kubernetes":
		resources = []string{
			fmt.Sprintf("%s Official Tutorial", title),
			fmt.Sprintf("Hands-on %s Labs", title),
			fmt.Sprintf("CNCF %s Certification", title),
		}
	default:
		resources = []string{
			fmt.Sprintf("Online course: %s Fundamentals", title),
			fmt.Sprintf("Hands-on projects with %s", title),
		}
	}

	estimated := "2-3 months"
	if priority != "High" {
		estimated = "1-2 months"
	}

	return TrainingRecommendation{
		Skill:              title,
		Priority:           priority,
		SuggestedResources: resources,
		EstimatedTime:      estimated,
	}
}

func titleCase(skill string) string {
	words := strings.Fields(skill)
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
