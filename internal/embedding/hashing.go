package embedding

import (
	"hash/fnv"
	"math"
	"regexp"
	"strings"
)

// DefaultDim matches the output width of common sentence-embedding models.
const DefaultDim = 384

var tokenPattern = regexp.MustCompile(`[a-z0-9]+(?:[+#.][a-z0-9]+)*[+#]*`)

// HashingEmbedder is a deterministic local encoder. Unigram and bigram
// tokens are feature-hashed into a fixed-width vector with a sign hash and
// the result is L2-normalized. It needs no model files and no network,
// and identical text always produces the identical vector.
type HashingEmbedder struct {
	dim int
}

// NewHashingEmbedder creates an embedder with the given output dimension,
// falling back to DefaultDim for non-positive values.
func NewHashingEmbedder(dim int) *HashingEmbedder {
	if dim <= 0 {
		dim = DefaultDim
	}
	return &HashingEmbedder{dim: dim}
}

func (e *HashingEmbedder) Dim() int { return e.dim }

// Embed encodes the text. Empty or token-free text yields the zero vector,
// which scores 0 against everything.
func (e *HashingEmbedder) Embed(text string) []float32 {
	vec := make([]float32, e.dim)

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return vec
	}

	for i, token := range tokens {
		e.accumulate(vec, token)
		if i+1 < len(tokens) {
			e.accumulate(vec, token+" "+tokens[i+1])
		}
	}

	normalize(vec)
	return vec
}

func (e *HashingEmbedder) accumulate(vec []float32, feature string) {
	h := fnv.New64a()
	h.Write([]byte(feature))
	sum := h.Sum64()

	idx := int(sum % uint64(e.dim))
	if sum&(1<<63) != 0 {
		vec[idx]--
	} else {
		vec[idx]++
	}
}

// Tokenize lower-cases the text and extracts word tokens, keeping tech
// spellings like "c++", "c#" and "node.js" intact.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}

// Dot returns the inner product of two equal-length vectors. For unit
// vectors this is the cosine similarity.
func Dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
