package index

import (
	"math"
	"testing"
)

func TestVectorizerSelfSimilarity(t *testing.T) {
	t.Parallel()

	docs := []string{
		"python django postgresql",
		"go kubernetes docker",
		"react typescript css",
	}
	v := FitVectorizer(docs)

	vec := v.Transform(docs[0])
	if got := Cosine(vec, vec); math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected self-similarity 1, got %v", got)
	}
}

func TestVectorizerOutOfVocabulary(t *testing.T) {
	t.Parallel()

	v := FitVectorizer([]string{"python django", "go docker"})

	vec := v.Transform("haskell prolog")
	for i, x := range vec {
		if x != 0 {
			t.Fatalf("expected zero vector for out-of-vocabulary text, got %v at %d", x, i)
		}
	}
}

func TestVectorizerSkipsStopWords(t *testing.T) {
	t.Parallel()

	v := FitVectorizer([]string{"the python and the go"})

	related := v.Transform("python go")
	var sum float64
	for _, x := range related {
		sum += x * x
	}
	if sum == 0 {
		t.Fatalf("expected content words to survive stop-word filtering")
	}

	stopOnly := v.Transform("the and the")
	for i, x := range stopOnly {
		if x != 0 {
			t.Fatalf("expected stop-word-only text to map to zero vector, got %v at %d", x, i)
		}
	}
}

func TestVectorizerVocabularyCap(t *testing.T) {
	t.Parallel()

	v := FitVectorizer([]string{"python django flask"})
	if v.Size() > MaxVocabulary {
		t.Fatalf("vocabulary exceeds cap: %d", v.Size())
	}
}

func TestVectorizerIsDeterministic(t *testing.T) {
	t.Parallel()

	docs := []string{"python aws lambda", "go kubernetes", "python terraform aws"}

	a := FitVectorizer(docs).Transform("python aws")
	b := FitVectorizer(docs).Transform("python aws")

	if len(a) != len(b) {
		t.Fatalf("vector lengths differ: %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vectors differ at %d: %v != %v", i, a[i], b[i])
		}
	}
}
