// Package catalog defines the job catalog and candidate profile records the
// match engine operates on, plus loading helpers for JSON catalogs.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// ErrEmptyCatalog is returned when a catalog source contains no jobs. The
// engine cannot serve any request without jobs, so callers should treat it
// as fatal configuration.
var ErrEmptyCatalog = errors.New("job catalog is empty")

// Job is an immutable-per-load position record.
type Job struct {
	ID              string   `json:"job_id" mapstructure:"job_id"`
	Title           string   `json:"title" mapstructure:"title"`
	Department      string   `json:"department" mapstructure:"department"`
	Location        string   `json:"location" mapstructure:"location"`
	Requirements    []string `json:"requirements" mapstructure:"requirements"`
	NiceToHave      []string `json:"nice_to_have,omitempty" mapstructure:"nice_to_have"`
	Summary         string   `json:"summary" mapstructure:"summary"`
	ExperienceYears string   `json:"experience_years" mapstructure:"experience_years"`
	EmploymentType  string   `json:"employment_type" mapstructure:"employment_type"`
}

// Jobs is an ordered job catalog.
type Jobs struct {
	Items []*Job
}

// Load decodes loosely-typed job records into a catalog. Duplicate ids and
// empty catalogs are rejected: the index is rebuilt wholesale from the
// result, so a bad catalog must fail before any build starts.
func Load(records []map[string]any) (*Jobs, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}

	var items []*Job
	if err := mapstructure.Decode(records, &items); err != nil {
		return nil, fmt.Errorf("decoding job records: %w", err)
	}

	seen := make(map[string]bool, len(items))
	for _, job := range items {
		if job.ID == "" {
			return nil, fmt.Errorf("job %q has no job_id", job.Title)
		}
		if seen[job.ID] {
			return nil, fmt.Errorf("duplicate job_id %q in catalog", job.ID)
		}
		seen[job.ID] = true
	}

	return &Jobs{Items: items}, nil
}

// LoadFromFile reads a JSON array of job records from disk.
func LoadFromFile(path string) (*Jobs, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening job catalog: %w", err)
	}
	defer file.Close()

	var records []map[string]any
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		return nil, fmt.Errorf("parsing job catalog %q: %w", path, err)
	}

	return Load(records)
}

func (j *Jobs) Len() int {
	if j == nil {
		return 0
	}
	return len(j.Items)
}

func (j *Jobs) FindByID(id string) *Job {
	for _, job := range j.Items {
		if job.ID == id {
			return job
		}
	}
	return nil
}

func (j *Jobs) IDs() []string {
	ids := make([]string, 0, j.Len())
	for _, job := range j.Items {
		ids = append(ids, job.ID)
	}
	return ids
}

// ReportByDepartment groups brief job summaries by department for display.
func (j *Jobs) ReportByDepartment() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, job := range j.Items {
		key := job.Department
		if key == "" {
			key = "unassigned"
		}
		report[key] = append(report[key], map[string]string{
			"job_id":     job.ID,
			"title":      job.Title,
			"location":   job.Location,
			"experience": job.ExperienceYears,
			"employment": job.EmploymentType,
		})
	}
	return report
}
