// Package gemini backs the optional explanation enricher with the Gemini
// API. It never replaces the deterministic explanation: callers fall back
// to it on any error.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/hireloop/talent-matcher/internal/catalog"
	"github.com/hireloop/talent-matcher/internal/util"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Enricher rewrites deterministic match explanations via Gemini.
type Enricher struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewEnricher(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Enricher {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Enricher{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Explain asks the model to rewrite the deterministic explanation. The
// fallback string is part of the prompt so the model cannot drift from the
// computed assessment.
func (e *Enricher) Explain(ctx context.Context, candidate *catalog.CandidateProfile, job *catalog.Job, fallback string) (string, error) {
	if candidate == nil {
		return "", fmt.Errorf("candidate is required")
	}
	if job == nil {
		return "", fmt.Errorf("job is required")
	}

	candidatePayload := map[string]any{
		"name":             candidate.Name,
		"skills":           candidate.Skills,
		"experience_years": candidate.ExperienceYears,
	}

	candidateJSON, err := json.MarshalIndent(candidatePayload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal candidate payload: %w", err)
	}

	jobJSON, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal job payload: %w", err)
	}

	prompt := buildPrompt(string(candidateJSON), string(jobJSON), fallback)

	e.logger.Debug("gemini enrichment request",
		zap.String("job_id", job.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	e.logger.Debug("gemini enrichment response",
		zap.String("job_id", job.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, e.maxLogLen)),
	)

	return strings.TrimSpace(raw), nil
}

func buildPrompt(candidateJSON, jobJSON, summary string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Candidate:\n{{CANDIDATE_JSON}}\n\nJob:\n{{JOB_JSON}}\n\nMatch summary:\n{{SUMMARY}}\n\nRewritten summary:"
	}
	prompt := strings.ReplaceAll(template, "{{CANDIDATE_JSON}}", candidateJSON)
	prompt = strings.ReplaceAll(prompt, "{{JOB_JSON}}", jobJSON)
	prompt = strings.ReplaceAll(prompt, "{{SUMMARY}}", summary)
	return prompt
}
