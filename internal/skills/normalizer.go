// Package skills normalizes skill names and maps them onto a fixed
// category taxonomy used for partial-credit matching.
package skills

import "strings"

// synonyms maps common abbreviations and alternate spellings to canonical
// skill tokens. Targets are canonical themselves, so Normalize is idempotent.
var synonyms = map[string]string{
	"js":           "javascript",
	"ts":           "typescript",
	"k8s":          "kubernetes",
	"tf":           "tensorflow",
	"ml":           "machine learning",
	"ai":           "artificial intelligence",
	"dl":           "deep learning",
	"cv":           "computer vision",
	"nlp":          "natural language processing",
	"aws ec2":      "aws",
	"aws s3":       "aws",
	"gcp bigquery": "gcp",
	"react.js":     "react",
	"node.js":      "nodejs",
	"vue.js":       "vue",
}

// Normalize lower-cases and trims a skill name and resolves known synonyms.
// Unknown tokens pass through unchanged.
func Normalize(skill string) string {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := synonyms[skill]; ok {
		return canonical
	}
	return skill
}

// NormalizeSet normalizes every skill in the list into a set, dropping empties.
func NormalizeSet(list []string) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, skill := range list {
		normalized := Normalize(skill)
		if normalized == "" {
			continue
		}
		set[normalized] = true
	}
	return set
}
