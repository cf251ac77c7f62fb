package index

import (
	"math"
	"sort"

	"github.com/hireloop/talent-matcher/internal/embedding"
)

// MaxVocabulary bounds the TF-IDF vocabulary size. Terms are kept by
// collection frequency, lexicographic on ties, so fitting is deterministic.
const MaxVocabulary = 1000

// stopWords filters common English function words before n-gram extraction.
var stopWords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"all": true, "also": true, "an": true, "and": true, "any": true,
	"are": true, "as": true, "at": true, "be": true, "because": true,
	"been": true, "before": true, "being": true, "below": true, "between": true,
	"both": true, "but": true, "by": true, "can": true, "did": true,
	"do": true, "does": true, "doing": true, "down": true, "during": true,
	"each": true, "few": true, "for": true, "from": true, "further": true,
	"had": true, "has": true, "have": true, "having": true, "he": true,
	"her": true, "here": true, "hers": true, "him": true, "his": true,
	"how": true, "i": true, "if": true, "in": true, "into": true,
	"is": true, "it": true, "its": true, "just": true, "me": true,
	"more": true, "most": true, "my": true, "no": true, "nor": true,
	"not": true, "now": true, "of": true, "off": true, "on": true,
	"once": true, "only": true, "or": true, "other": true, "our": true,
	"out": true, "over": true, "own": true, "same": true, "she": true,
	"should": true, "so": true, "some": true, "such": true, "than": true,
	"that": true, "the": true, "their": true, "them": true, "then": true,
	"there": true, "these": true, "they": true, "this": true, "those": true,
	"through": true, "to": true, "too": true, "under": true, "until": true,
	"up": true, "very": true, "was": true, "we": true, "were": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
	"who": true, "whom": true, "why": true, "will": true, "with": true,
	"you": true, "your": true, "yours": true,
}

// Vectorizer holds a TF-IDF vocabulary fitted over a job corpus. Transform
// reuses the fitted vocabulary, so candidate vectors live in the same space
// as the precomputed job vectors.
type Vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// FitVectorizer learns a vocabulary of unigrams and bigrams over the given
// documents, with smoothed inverse document frequencies.
func FitVectorizer(docs []string) *Vectorizer {
	counts := make(map[string]int)
	docFreq := make(map[string]int)

	for _, doc := range docs {
		terms := ngrams(doc)
		seen := make(map[string]bool, len(terms))
		for _, term := range terms {
			counts[term]++
			if !seen[term] {
				docFreq[term]++
				seen[term] = true
			}
		}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > MaxVocabulary {
		terms = terms[:MaxVocabulary]
	}

	v := &Vectorizer{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for i, term := range terms {
		v.vocab[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
	return v
}

// Transform maps a document into the fitted vocabulary space as an
// L2-normalized TF-IDF vector. Out-of-vocabulary text maps to the zero
// vector.
func (v *Vectorizer) Transform(doc string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, term := range ngrams(doc) {
		if col, ok := v.vocab[term]; ok {
			vec[col] += v.idf[col]
		}
	}

	var sum float64
	for _, x := range vec {
		sum += x * x
	}
	if sum > 0 {
		norm := math.Sqrt(sum)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Size returns the number of terms in the fitted vocabulary.
func (v *Vectorizer) Size() int { return len(v.idf) }

// Cosine returns the cosine similarity of two vectors from Transform. Both
// are already unit length, so the dot product suffices.
func Cosine(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// ngrams tokenizes a document, drops stop words and single characters, and
// returns unigrams plus adjacent bigrams.
func ngrams(doc string) []string {
	raw := embedding.Tokenize(doc)
	tokens := raw[:0:0]
	for _, t := range raw {
		if len(t) < 2 || stopWords[t] {
			continue
		}
		tokens = append(tokens, t)
	}

	terms := make([]string, 0, 2*len(tokens))
	for i, t := range tokens {
		terms = append(terms, t)
		if i+1 < len(tokens) {
			terms = append(terms, t+" "+tokens[i+1])
		}
	}
	return terms
}
