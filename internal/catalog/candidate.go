package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// CandidateProfile is a transient per-request record. The engine assigns it
// no identity; callers own persistence.
type CandidateProfile struct {
	Name            string   `json:"name" mapstructure:"name"`
	Skills          []string `json:"skills" mapstructure:"skills"`
	ExperienceYears int      `json:"experience_years" mapstructure:"experience_years"`
	ResumeText      string   `json:"resume_text" mapstructure:"resume_text"`
}

// LoadCandidateFromFile reads a candidate profile from a JSON file.
func LoadCandidateFromFile(path string) (*CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading candidate file: %w", err)
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parsing candidate file %q: %w", path, err)
	}

	var candidate CandidateProfile
	if err := mapstructure.Decode(record, &candidate); err != nil {
		return nil, fmt.Errorf("decoding candidate record: %w", err)
	}

	return &candidate, nil
}
