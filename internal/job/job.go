// Package job defines the job posting records consumed by the scoring engine
// and the collection operations used by the filtering pipeline.
package job

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	JobKeyField     = "Key"
	JobCompanyField = "Company"
)

// Job is a single scraped job posting. Only these four fields matter to the
// engine; identity and deduplication belong to the scraper.
type Job struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`

	// Result is attached by the scorer.
	Result *Result `json:"result,omitempty"`
}

// Result holds the outcome of scoring a job against a profile.
type Result struct {
	Total     int          `json:"total"`
	Grade     string       `json:"grade"`
	Breakdown Breakdown    `json:"breakdown"`
	Company   *CompanyMeta `json:"company,omitempty"`
}

// Breakdown lists the independent sub-scores making up the total.
type Breakdown struct {
	Seniority int `json:"seniority"`
	Domain    int `json:"domain"`
	RoleType  int `json:"role_type"`
	Location  int `json:"location"`
	Technical int `json:"technical"`
	Company   int `json:"company_classification"`
}

// CompanyMeta carries the classification metadata for audit. It is returned
// unchanged from the classifier so callers can explain every decision.
type CompanyMeta struct {
	Type         string                       `json:"company_type"`
	Confidence   float64                      `json:"confidence"`
	Source       string                       `json:"source"`
	Signals      map[string]map[string]string `json:"signals,omitempty"`
	Filtered     bool                         `json:"filtered"`
	FilterReason string                       `json:"filter_reason"`
}

// Jobs is a mutable collection of postings passed through the filter steps.
type Jobs struct {
	Items []*Job
}

// Key identifies a posting within a run: normalized title + company.
func (j *Job) Key() string {
	return strings.ToLower(strings.TrimSpace(j.Title)) + " @ " + strings.ToLower(strings.TrimSpace(j.Company))
}

func (j *Job) GetStringField(name string) string {
	switch name {
	case JobKeyField:
		return j.Key()
	case JobCompanyField:
		return j.Company

	default:
		return ""
	}
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

func (j *Jobs) FindByKey(key string) *Job {
	for _, posting := range j.Items {
		if posting.Key() == key {
			return posting
		}
	}
	return nil
}

// Exclude removes jobs whose named field equals one of the targets and
// returns the keys of the removed jobs.
func (j *Jobs) Exclude(name string, targets []string) []string {
	var excluded []string
	for _, target := range targets {
		for idx, posting := range j.Items {
			if posting.GetStringField(name) == target {
				j.RemoveByIndex(idx)
				excluded = append(excluded, posting.Key())
				break
			}
		}
	}
	return excluded
}

// RemoveByIndex removes a job from the list by index. Does not preserve order.
func (j *Jobs) RemoveByIndex(idx int) {
	j.Items[idx] = j.Items[len(j.Items)-1]
	j.Items = j.Items[:len(j.Items)-1]
}

// ReportByCompany groups scored postings per company for the final report.
func (j *Jobs) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, posting := range j.Items {
		entry := map[string]string{
			"title":    posting.Title,
			"location": posting.Location,
		}
		if posting.Result != nil {
			entry["score"] = fmt.Sprintf("%d", posting.Result.Total)
			entry["grade"] = posting.Result.Grade
			if posting.Result.Company != nil {
				entry["company_type"] = posting.Result.Company.Type
				entry["filtered"] = fmt.Sprintf("%t", posting.Result.Company.Filtered)
				if posting.Result.Company.Filtered {
					entry["filter_reason"] = posting.Result.Company.FilterReason
				}
			}
		}
		report[posting.Company] = append(report[posting.Company], entry)
	}
	return report
}

func (j *Jobs) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "scored_jobs_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(j); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// LoadFromFile reads a jobs file produced by the scraper.
func LoadFromFile(path string) (*Jobs, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if stat.Size() == 0 {
		return &Jobs{}, nil
	}

	var jobs Jobs
	if err := json.NewDecoder(file).Decode(&jobs); err != nil {
		return nil, fmt.Errorf("decoding jobs file %q: %w", path, err)
	}
	return &jobs, nil
}

// SeenJobs records postings already reported in previous runs.
type SeenJobs struct {
	Items []*SeenJob
}

type SeenJob struct {
	Key     string    `json:"key"`
	Company string    `json:"company"`
	SeenAt  time.Time `json:"seen_at"`
}

func (j *Jobs) ToSeen() *SeenJobs {
	seen := &SeenJobs{}
	for _, posting := range j.Items {
		seen.Items = append(seen.Items, &SeenJob{
			Key:     posting.Key(),
			Company: posting.Company,
			SeenAt:  time.Now().UTC(),
		})
	}
	return seen
}

func GetSeenJobsFromFile(path string) (*SeenJobs, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &SeenJobs{}, nil
		}
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if stat.Size() == 0 {
		return &SeenJobs{}, nil
	}

	var seen SeenJobs
	if err := json.NewDecoder(file).Decode(&seen); err != nil {
		return nil, err
	}
	return &seen, nil
}

func (s *SeenJobs) Append(other *SeenJobs) {
	s.Items = append(s.Items, other.Items...)
}

func (s *SeenJobs) Keys() []string {
	keys := make([]string, 0)
	for _, item := range s.Items {
		keys = append(keys, item.Key)
	}
	return keys
}

func (s *SeenJobs) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return err
	}
	return nil
}
