// Package index provides exact inner-product retrieval over job embeddings
// plus a TF-IDF view of job skill text for lexical reranking. At catalog
// scale (tens to low thousands of jobs) a flat scan beats any approximate
// structure, so search is exhaustive and exact.
package index

import (
	"fmt"
	"sort"

	"github.com/hireloop/talent-matcher/internal/catalog"
	"github.com/hireloop/talent-matcher/internal/embedding"
)

// Index is an immutable snapshot built from a whole catalog. Rebuilds create
// a fresh Index; a half-built one is never observable.
type Index struct {
	jobs     *catalog.Jobs
	vectors  [][]float32
	tfidf    *Vectorizer
	jobTFIDF [][]float64
}

// Hit is a single nearest-neighbor result.
type Hit struct {
	JobIndex int
	Score    float64
}

// Build embeds every job and fits the TF-IDF vectorizer over the catalog's
// skill text. It is all-or-nothing: any failure returns an error and no
// partial index.
func Build(jobs *catalog.Jobs, embedder embedding.Embedder) (*Index, error) {
	if jobs.Len() == 0 {
		return nil, catalog.ErrEmptyCatalog
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder is required")
	}

	vectors := make([][]float32, 0, jobs.Len())
	skillTexts := make([]string, 0, jobs.Len())
	for _, job := range jobs.Items {
		vec := embedder.Embed(embedding.JobText(job))
		if len(vec) != embedder.Dim() {
			return nil, fmt.Errorf("embedding job %q: got %d dimensions, want %d", job.ID, len(vec), embedder.Dim())
		}
		vectors = append(vectors, vec)
		skillTexts = append(skillTexts, embedding.SkillText(job))
	}

	tfidf := FitVectorizer(skillTexts)
	jobTFIDF := make([][]float64, len(skillTexts))
	for i, text := range skillTexts {
		jobTFIDF[i] = tfidf.Transform(text)
	}

	return &Index{
		jobs:     jobs,
		vectors:  vectors,
		tfidf:    tfidf,
		jobTFIDF: jobTFIDF,
	}, nil
}

// Search returns up to k jobs ordered by descending inner product with the
// query vector. An empty index yields an empty slice.
func (x *Index) Search(query []float32, k int) []Hit {
	if x == nil || len(x.vectors) == 0 || k <= 0 {
		return nil
	}

	hits := make([]Hit, 0, len(x.vectors))
	for i, vec := range x.vectors {
		hits = append(hits, Hit{JobIndex: i, Score: embedding.Dot(query, vec)})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })

	if k < len(hits) {
		hits = hits[:k]
	}
	return hits
}

// Len returns the number of indexed jobs.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.vectors)
}

// Job returns the job at the given index position.
func (x *Index) Job(i int) *catalog.Job {
	return x.jobs.Items[i]
}

// Jobs returns the catalog snapshot backing the index.
func (x *Index) Jobs() *catalog.Jobs {
	return x.jobs
}

// TransformSkillText maps candidate skill text into the fitted TF-IDF space.
func (x *Index) TransformSkillText(text string) []float64 {
	return x.tfidf.Transform(text)
}

// LexicalScore is the cosine similarity between a transformed candidate
// vector and the precomputed job vector, floored at 0.
func (x *Index) LexicalScore(candidate []float64, jobIdx int) float64 {
	score := Cosine(candidate, x.jobTFIDF[jobIdx])
	if score < 0 {
		return 0
	}
	return score
}
