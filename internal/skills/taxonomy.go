package skills

import (
	"sort"
	"strings"
)

// Categories groups known skills into buckets. Two candidates sharing a
// bucket with a job requirement earn partial credit even without an exact
// token match.
var Categories = map[string][]string{
	"programming":      {"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust", "scala"},
	"cloud":            {"aws", "gcp", "azure", "cloud", "ec2", "s3", "lambda", "bigquery"},
	"data":             {"sql", "nosql", "mongodb", "postgresql", "mysql", "redis", "elasticsearch"},
	"ml_ai":            {"tensorflow", "pytorch", "scikit-learn", "machine learning", "deep learning", "nlp", "computer vision"},
	"devops":           {"docker", "kubernetes", "terraform", "jenkins", "ci/cd", "ansible", "prometheus"},
	"frontend":         {"react", "angular", "vue", "html", "css", "javascript", "typescript"},
	"backend":          {"microservices", "api", "rest", "graphql", "flask", "django", "spring"},
	"data_engineering": {"spark", "kafka", "airflow", "etl", "data pipeline", "hadoop"},
}

// extraLanguages and extraFrameworks extend the extraction vocabulary beyond
// the category buckets.
var (
	extraLanguages  = []string{"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust", "scala", "php", "ruby"}
	extraFrameworks = []string{"react", "angular", "vue", "django", "flask", "spring", "express", "fastapi"}
)

// CategoryNames returns the taxonomy bucket names in a stable order.
func CategoryNames() []string {
	names := make([]string, 0, len(Categories))
	for name := range Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extract scans arbitrary text for known skill vocabulary terms and returns
// every term found as a substring of the lower-cased text, sorted and
// deduplicated.
func Extract(text string) []string {
	lower := strings.ToLower(text)
	found := make(map[string]bool)

	for _, bucket := range Categories {
		for _, skill := range bucket {
			if strings.Contains(lower, skill) {
				found[skill] = true
			}
		}
	}
	for _, lang := range extraLanguages {
		if strings.Contains(lower, lang) {
			found[lang] = true
		}
	}
	for _, framework := range extraFrameworks {
		if strings.Contains(lower, framework) {
			found[framework] = true
		}
	}

	result := make([]string, 0, len(found))
	for skill := range found {
		result = append(result, skill)
	}
	sort.Strings(result)
	return result
}
