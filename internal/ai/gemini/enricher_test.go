package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/hireloop/talent-matcher/internal/catalog"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testCandidate() *catalog.CandidateProfile {
	return &catalog.CandidateProfile{
		Name:            "Jane",
		Skills:          []string{"Python", "AWS"},
		ExperienceYears: 5,
	}
}

func testJob() *catalog.Job {
	return &catalog.Job{
		ID:           "backend-py",
		Title:        "Backend Engineer",
		Requirements: []string{"Python", "Django", "AWS"},
	}
}

func TestEnricherExplain(t *testing.T) {
	stub := &stubGenerator{response: "Jane covers Python and AWS but is missing Django."}
	enricher := NewEnricher(stub, zap.NewNop(), 0)

	fallback := "Key skills: aws, python | Missing: django | Good potential"
	got, err := enricher.Explain(context.Background(), testCandidate(), testJob(), fallback)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != stub.response {
		t.Fatalf("unexpected explanation: %q", got)
	}

	if !strings.Contains(stub.lastPrompt, fallback) {
		t.Fatalf("expected the deterministic summary in the prompt")
	}
	if !strings.Contains(stub.lastPrompt, "backend-py") {
		t.Fatalf("expected the job payload in the prompt")
	}
	if !strings.Contains(stub.lastPrompt, "Jane") {
		t.Fatalf("expected the candidate payload in the prompt")
	}
}

func TestEnricherExplainGeneratorError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("rate limited")}
	enricher := NewEnricher(stub, zap.NewNop(), 0)

	_, err := enricher.Explain(context.Background(), testCandidate(), testJob(), "fallback")
	if err == nil {
		t.Fatalf("expected the generator error to surface so callers can fall back")
	}
}

func TestEnricherExplainRequiresInputs(t *testing.T) {
	enricher := NewEnricher(&stubGenerator{response: "ok"}, zap.NewNop(), 0)

	if _, err := enricher.Explain(context.Background(), nil, testJob(), "x"); err == nil {
		t.Fatalf("expected error for nil candidate")
	}
	if _, err := enricher.Explain(context.Background(), testCandidate(), nil, "x"); err == nil {
		t.Fatalf("expected error for nil job")
	}
}
