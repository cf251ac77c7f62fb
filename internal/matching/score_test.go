package matching

import (
	"math"
	"testing"

	"github.com/hireloop/talent-matcher/internal/catalog"
)

func TestExperienceScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		years       int
		requirement string
		expect      float64
	}{
		{name: "meets single threshold", years: 6, requirement: "5+", expect: 1.0},
		{name: "just under single threshold", years: 4, requirement: "5+", expect: 0.8},
		{name: "well under single threshold", years: 1, requirement: "5+", expect: 0.3},
		{name: "inside range", years: 5, requirement: "3-6", expect: 1.0},
		{name: "slightly under range", years: 4, requirement: "5-8", expect: 0.9},
		{name: "slightly over range", years: 7, requirement: "3-6", expect: 0.9},
		{name: "zero years against range", years: 0, requirement: "3-6", expect: 0.8},
		{name: "missing requirement", years: 4, requirement: "", expect: 0.8},
		{name: "unparseable requirement", years: 4, requirement: "senior level", expect: 0.8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExperienceScore(tc.years, tc.requirement)
			if math.Abs(got-tc.expect) > 1e-9 {
				t.Fatalf("ExperienceScore(%d, %q) = %v, want %v", tc.years, tc.requirement, got, tc.expect)
			}
		})
	}
}

func TestExperienceScoreBounds(t *testing.T) {
	t.Parallel()

	for years := 0; years <= 40; years++ {
		for _, requirement := range []string{"", "2+", "10+", "1-3", "3-6", "0-2", "nonsense"} {
			got := ExperienceScore(years, requirement)
			if got < 0.3 || got > 1.0 {
				t.Fatalf("ExperienceScore(%d, %q) = %v out of [0.3, 1.0]", years, requirement, got)
			}
		}
	}
}

func TestSkillScoreScenario(t *testing.T) {
	t.Parallel()

	job := &catalog.Job{
		ID:           "backend-py",
		Requirements: []string{"Python", "Django", "AWS"},
	}

	got := SkillScore([]string{"Python", "AWS"}, job)

	// 0.7 * 2/3 required overlap + 0.1 * (0.3 programming + 0.3 cloud) category credit.
	want := 0.7*(2.0/3.0) + 0.1*0.6
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("SkillScore = %v, want %v", got, want)
	}
}

func TestSkillScoreNiceToHave(t *testing.T) {
	t.Parallel()

	job := &catalog.Job{
		Requirements: []string{"Go"},
		NiceToHave:   []string{"Kubernetes", "Terraform"},
	}

	withBonus := SkillScore([]string{"Go", "K8s"}, job)
	withoutBonus := SkillScore([]string{"Go"}, job)

	if withBonus <= withoutBonus {
		t.Fatalf("nice-to-have match should raise the score: %v <= %v", withBonus, withoutBonus)
	}
}

func TestSkillScoreCategoryCreditOnly(t *testing.T) {
	t.Parallel()

	job := &catalog.Job{Requirements: []string{"GCP"}}

	// No exact token match, but both sides have a cloud skill.
	got := SkillScore([]string{"AWS"}, job)
	if got <= 0 {
		t.Fatalf("expected partial category credit, got %v", got)
	}
	if got >= 0.7 {
		t.Fatalf("category credit alone should stay below a full required match, got %v", got)
	}
}

func TestSkillScoreDegradedInputs(t *testing.T) {
	t.Parallel()

	noRequirements := &catalog.Job{ID: "open"}
	if got := SkillScore([]string{"Python"}, noRequirements); got != 0 {
		t.Fatalf("job without requirements should score 0, got %v", got)
	}

	demanding := &catalog.Job{Requirements: []string{"Go", "Rust"}}
	if got := SkillScore(nil, demanding); got != 0 {
		t.Fatalf("skill-less candidate should score 0, got %v", got)
	}
}

func TestSkillScoreCapped(t *testing.T) {
	t.Parallel()

	job := &catalog.Job{
		Requirements: []string{"Python", "AWS", "Docker"},
		NiceToHave:   []string{"Kubernetes"},
	}

	got := SkillScore([]string{"Python", "AWS", "Docker", "Kubernetes", "Terraform", "GCP"}, job)
	if got > 1.0 {
		t.Fatalf("skill score exceeds cap: %v", got)
	}
}

func TestNewScoreBreakdownClampsNegativeSemantic(t *testing.T) {
	t.Parallel()

	b := NewScoreBreakdown(-0.42, 0, 0, -0.1)

	if b.Semantic != 0 || b.Lexical != 0 {
		t.Fatalf("negative sub-scores must clamp to 0: %+v", b)
	}
	if b.Final < 0 {
		t.Fatalf("final score is negative: %v", b.Final)
	}
}

func TestNewScoreBreakdownBounded(t *testing.T) {
	t.Parallel()

	b := NewScoreBreakdown(5, 5, 5, 5)
	if b.Final > 1 {
		t.Fatalf("final score exceeds 1: %v", b.Final)
	}

	pct := b.Final * 100
	if pct < 0 || pct > 100 {
		t.Fatalf("percentage out of range: %v", pct)
	}
}
