package matching

import (
	"strings"
	"testing"

	"github.com/hireloop/talent-matcher/internal/catalog"
)

func TestExplainMentionsMatchesAndGaps(t *testing.T) {
	t.Parallel()

	candidate := &catalog.CandidateProfile{
		Name:            "Jane",
		Skills:          []string{"Python", "AWS"},
		ExperienceYears: 5,
	}
	job := &catalog.Job{
		ID:              "backend-py",
		Requirements:    []string{"Python", "Django", "AWS"},
		ExperienceYears: "3-6",
	}

	breakdown := NewScoreBreakdown(0.2, SkillScore(candidate.Skills, job), ExperienceScore(5, "3-6"), 0.1)
	explanation := Explain(candidate, job, breakdown)

	for _, want := range []string{"python", "aws", "django"} {
		if !strings.Contains(strings.ToLower(explanation), want) {
			t.Fatalf("expected %q in explanation %q", want, explanation)
		}
	}

	if !strings.Contains(explanation, " | ") {
		t.Fatalf("expected pipe-delimited clauses, got %q", explanation)
	}
	if !strings.Contains(explanation, "Experience: 5 years") {
		t.Fatalf("expected experience clause, got %q", explanation)
	}
}

func TestExplainDegradesGracefully(t *testing.T) {
	t.Parallel()

	candidate := &catalog.CandidateProfile{Name: "Empty"}
	job := &catalog.Job{ID: "open-role"}

	explanation := Explain(candidate, job, NewScoreBreakdown(0, 0, 0.8, 0))

	if explanation == "" {
		t.Fatalf("explanation must never be empty")
	}
	if strings.Contains(explanation, "Key skills") || strings.Contains(explanation, "Missing") {
		t.Fatalf("skill clauses should be omitted for empty inputs, got %q", explanation)
	}
	if !strings.Contains(explanation, "Requires review") {
		t.Fatalf("expected low-score verdict, got %q", explanation)
	}
}

func TestExplainVerdicts(t *testing.T) {
	t.Parallel()

	candidate := &catalog.CandidateProfile{Skills: []string{"Go"}}
	job := &catalog.Job{Requirements: []string{"Go"}}

	tests := []struct {
		name    string
		final   float64
		verdict string
	}{
		{name: "strong", final: 0.85, verdict: "Strong match"},
		{name: "good", final: 0.65, verdict: "Good potential"},
		{name: "weak", final: 0.2, verdict: "Requires review"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			breakdown := ScoreBreakdown{Final: tc.final}
			explanation := Explain(candidate, job, breakdown)
			if !strings.Contains(explanation, tc.verdict) {
				t.Fatalf("expected verdict %q in %q", tc.verdict, explanation)
			}
		})
	}
}

func TestExplainLimitsShownSkills(t *testing.T) {
	t.Parallel()

	candidate := &catalog.CandidateProfile{
		Skills: []string{"Python", "Java", "Go", "Rust", "Scala"},
	}
	job := &catalog.Job{
		Requirements: []string{"Python", "Java", "Go", "Rust", "Scala"},
	}

	explanation := Explain(candidate, job, NewScoreBreakdown(0.5, 1, 0.8, 0.3))

	clause := ""
	for _, part := range strings.Split(explanation, " | ") {
		if strings.HasPrefix(part, "Key skills: ") {
			clause = part
		}
	}
	if clause == "" {
		t.Fatalf("expected key skills clause in %q", explanation)
	}
	if got := len(strings.Split(strings.TrimPrefix(clause, "Key skills: "), ", ")); got > 3 {
		t.Fatalf("expected at most 3 skills shown, got %d in %q", got, clause)
	}
}
