package matching

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hireloop/talent-matcher/internal/catalog"
)

// MatchResult is one scored candidate/job pair. Created fresh per request
// and never mutated afterwards; ordering by SimilarityScore descending
// defines rank.
type MatchResult struct {
	JobID           string         `json:"job_id"`
	Title           string         `json:"title"`
	Department      string         `json:"department"`
	SimilarityScore float64        `json:"similarity_score"`
	ConfidenceBand  Band           `json:"confidence_band"`
	Explanation     string         `json:"explanation"`
	JobDetails      *catalog.Job   `json:"job_details"`
	ScoreBreakdown  ScoreBreakdown `json:"score_breakdown"`
}

// MatchResults is an ordered result list with display helpers.
type MatchResults []*MatchResult

// CountByBand tallies results per confidence band.
func (m MatchResults) CountByBand() map[Band]int {
	counts := make(map[Band]int)
	for _, result := range m {
		counts[result.ConfidenceBand]++
	}
	return counts
}

// ReportByBand groups brief result summaries by confidence band for display.
func (m MatchResults) ReportByBand() map[Band][]map[string]string {
	report := make(map[Band][]map[string]string)
	for _, result := range m {
		report[result.ConfidenceBand] = append(report[result.ConfidenceBand], map[string]string{
			"job_id":      result.JobID,
			"title":       result.Title,
			"department":  result.Department,
			"score":       fmt.Sprintf("%.1f", result.SimilarityScore),
			"explanation": result.Explanation,
		})
	}
	return report
}

// DumpToTmpFile writes the results as indented JSON into a temp file and
// returns its path.
func (m MatchResults) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return "", err
	}
	return file.Name(), nil
}
