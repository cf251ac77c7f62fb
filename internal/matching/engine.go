package matching

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/hireloop/talent-matcher/internal/ai"
	"github.com/hireloop/talent-matcher/internal/catalog"
	"github.com/hireloop/talent-matcher/internal/embedding"
	"github.com/hireloop/talent-matcher/internal/index"
)

// ErrNotReady is returned when a match is requested before any catalog has
// been loaded.
var ErrNotReady = errors.New("job index is not built")

// Engine is the match orchestrator. It owns the job index and is safe for
// concurrent Match calls; LoadJobs swaps in a freshly built index
// atomically, so readers never observe a partial rebuild.
type Engine struct {
	embedder embedding.Embedder
	logger   *zap.Logger
	enricher ai.Enricher

	idx atomic.Pointer[index.Index]
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithEnricher attaches an optional LLM explanation enricher. The engine
// falls back to the deterministic explanation whenever the enricher fails.
func WithEnricher(enricher ai.Enricher) Option {
	return func(e *Engine) { e.enricher = enricher }
}

// New creates an engine. Callers own the instance and must call LoadJobs
// before matching.
func New(embedder embedding.Embedder, opts ...Option) *Engine {
	e := &Engine{
		embedder: embedder,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LoadJobs builds the index from the whole catalog and swaps it in. On
// error the previous index, if any, keeps serving.
func (e *Engine) LoadJobs(jobs *catalog.Jobs) error {
	built, err := index.Build(jobs, e.embedder)
	if err != nil {
		return fmt.Errorf("building job index: %w", err)
	}

	e.idx.Store(built)
	e.logger.Info("job index rebuilt",
		zap.Int("jobs", built.Len()),
		zap.Int("embedding_dim", e.embedder.Dim()),
	)
	return nil
}

// Jobs returns the currently served catalog snapshot, or nil before LoadJobs.
func (e *Engine) Jobs() *catalog.Jobs {
	idx := e.idx.Load()
	if idx == nil {
		return nil
	}
	return idx.Jobs()
}

// Match returns up to topK jobs for the candidate, ordered by fused score
// descending. The shortlist is oversampled to 2*topK before reranking so
// jobs that score well on skills or experience but not on raw embedding
// similarity still surface.
func (e *Engine) Match(ctx context.Context, candidate *catalog.CandidateProfile, topK int) (MatchResults, error) {
	idx := e.idx.Load()
	if idx == nil {
		return nil, ErrNotReady
	}
	if candidate == nil {
		return nil, errors.New("candidate is required")
	}
	if topK <= 0 || idx.Len() == 0 {
		return MatchResults{}, nil
	}

	query := e.embedder.Embed(embedding.CandidateText(candidate))
	shortlist := idx.Search(query, min(2*topK, idx.Len()))

	candidateTFIDF := idx.TransformSkillText(embedding.CandidateSkillText(candidate))

	results := make(MatchResults, 0, len(shortlist))
	for _, hit := range shortlist {
		job := idx.Job(hit.JobIndex)

		breakdown := NewScoreBreakdown(
			hit.Score,
			SkillScore(candidate.Skills, job),
			ExperienceScore(candidate.ExperienceYears, job.ExperienceYears),
			idx.LexicalScore(candidateTFIDF, hit.JobIndex),
		)

		results = append(results, &MatchResult{
			JobID:           job.ID,
			Title:           job.Title,
			Department:      job.Department,
			SimilarityScore: breakdown.Final * 100,
			ConfidenceBand:  Classify(breakdown.Final),
			Explanation:     e.explain(ctx, candidate, job, breakdown),
			JobDetails:      job,
			ScoreBreakdown:  breakdown,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SimilarityScore > results[j].SimilarityScore
	})
	if topK < len(results) {
		results = results[:topK]
	}

	e.logger.Debug("match completed",
		zap.String("candidate", candidate.Name),
		zap.Int("shortlist", len(shortlist)),
		zap.Int("returned", len(results)),
	)
	return results, nil
}

// AnalyzeSkillGaps reports gaps between the candidate and one job.
func (e *Engine) AnalyzeSkillGaps(candidate *catalog.CandidateProfile, job *catalog.Job) *SkillGapReport {
	return AnalyzeGaps(candidate, job)
}

// explain produces the deterministic explanation and optionally lets the
// enricher rewrite it. Enricher failures are logged and absorbed.
func (e *Engine) explain(ctx context.Context, candidate *catalog.CandidateProfile, job *catalog.Job, breakdown ScoreBreakdown) string {
	explanation := Explain(candidate, job, breakdown)
	if e.enricher == nil {
		return explanation
	}

	enriched, err := e.enricher.Explain(ctx, candidate, job, explanation)
	if err != nil || strings.TrimSpace(enriched) == "" {
		e.logger.Debug("explanation enrichment failed; using deterministic explanation",
			zap.String("job_id", job.ID),
			zap.Error(err),
		)
		return explanation
	}
	return enriched
}
