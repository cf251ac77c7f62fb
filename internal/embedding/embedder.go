// Package embedding turns free text into L2-normalized dense vectors so
// that inner product between two vectors equals their cosine similarity.
package embedding

// Embedder generates a fixed-length dense vector from text.
type Embedder interface {
	Embed(text string) []float32
	Dim() int
}
