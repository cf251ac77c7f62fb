// Package ai defines the optional LLM enrichment seam. Enrichment is a
// strict fallback wrapper: the deterministic explanation is always computed
// first, and any enricher failure returns it untouched.
package ai

import (
	"context"

	"github.com/hireloop/talent-matcher/internal/catalog"
)

// Enricher rewrites a deterministic match explanation into richer prose.
type Enricher interface {
	Explain(ctx context.Context, candidate *catalog.CandidateProfile, job *catalog.Job, fallback string) (string, error)
}
