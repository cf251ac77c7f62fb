package embedding

import (
	"strings"

	"github.com/hireloop/talent-matcher/internal/catalog"
)

// JobText concatenates the fields of a job into one string for embedding.
// The title is repeated to weight it more heavily than the body text.
func JobText(job *catalog.Job) string {
	parts := []string{
		job.Title,
		job.Title,
		job.Summary,
		strings.Join(job.Requirements, " "),
		strings.Join(job.NiceToHave, " "),
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// SkillText concatenates requirements and nice-to-haves, lower-cased. This
// is the lexical (TF-IDF) representation of a job.
func SkillText(job *catalog.Job) string {
	return strings.ToLower(strings.TrimSpace(
		strings.Join(job.Requirements, " ") + " " + strings.Join(job.NiceToHave, " "),
	))
}

// CandidateText concatenates skills and resume text, repeating the skills
// for weight.
func CandidateText(c *catalog.CandidateProfile) string {
	skills := strings.Join(c.Skills, " ")
	return strings.TrimSpace(skills + " " + skills + " " + c.ResumeText)
}

// CandidateSkillText is the lexical representation of a candidate.
func CandidateSkillText(c *catalog.CandidateProfile) string {
	return strings.ToLower(strings.Join(c.Skills, " "))
}
