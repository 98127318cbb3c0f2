package filtering

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ovsov/jobgrader/internal/job"
)

type suppressedFilter struct {
	enabled bool
}

// NewSuppressed creates a filter that removes postings suppressed by the
// company filter decision.
func NewSuppressed() Filter {
	return &suppressedFilter{}
}

func (f *suppressedFilter) Name() string { return "suppressed" }

func (f *suppressedFilter) Disable(string) {}

func (f *suppressedFilter) IsEnabled() bool { return true }

func (f *suppressedFilter) Validate(cfg *Config) error {
	f.enabled = cfg != nil && cfg.DropFiltered
	return nil
}

func (f *suppressedFilter) Apply(_ context.Context, deps Deps, jobs *job.Jobs) (*job.Jobs, Step, error) {
	initial := jobs.Len()
	if !f.enabled {
		return jobs, Step{Initial: initial, Dropped: 0, Left: jobs.Len()}, nil
	}

	var dropped []string
	kept := make([]*job.Job, 0, initial)
	for _, posting := range jobs.Items {
		if posting.Result != nil && posting.Result.Company != nil && posting.Result.Company.Filtered {
			dropped = append(dropped, posting.Key())
			if deps.Logger != nil {
				deps.Logger.Info("dropping suppressed posting",
					zap.String("job", posting.Key()),
					zap.String("filter_reason", posting.Result.Company.FilterReason),
				)
			}
			continue
		}
		kept = append(kept, posting)
	}
	jobs.Items = kept

	return jobs, Step{Initial: initial, Dropped: len(dropped), Left: jobs.Len()}, nil
}

func (f *suppressedFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: true, Details: map[string]string{
		"drop_filtered": strconv.FormatBool(f.enabled),
	}}
}

type minScoreFilter struct {
	minScore int
}

// NewMinScore creates a filter that removes postings below the configured
// minimum total score.
func NewMinScore() Filter {
	return &minScoreFilter{}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Disable(string) {}

func (f *minScoreFilter) IsEnabled() bool { return true }

func (f *minScoreFilter) Validate(cfg *Config) error {
	f.minScore = 0
	if cfg != nil {
		if cfg.MinScore < 0 {
			return fmt.Errorf("minimum score must not be negative, got %d", cfg.MinScore)
		}
		f.minScore = cfg.MinScore
	}
	return nil
}

func (f *minScoreFilter) Apply(_ context.Context, deps Deps, jobs *job.Jobs) (*job.Jobs, Step, error) {
	initial := jobs.Len()
	if f.minScore == 0 {
		return jobs, Step{Initial: initial, Dropped: 0, Left: jobs.Len()}, nil
	}

	var dropped []string
	kept := make([]*job.Job, 0, initial)
	for _, posting := range jobs.Items {
		if posting.Result != nil && posting.Result.Total < f.minScore {
			dropped = append(dropped, posting.Key())
			continue
		}
		kept = append(kept, posting)
	}
	jobs.Items = kept

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding postings below minimum score",
			zap.Int("min_score", f.minScore),
			zap.Strings("excluded_jobs", dropped),
			zap.Int("jobs_left", jobs.Len()),
		)
	}

	return jobs, Step{Initial: initial, Dropped: len(dropped), Left: jobs.Len()}, nil
}

func (f *minScoreFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: true, Details: map[string]string{
		"min_score": strconv.Itoa(f.minScore),
	}}
}

type seenFileFilter struct {
	path string
}

// NewSeenFile creates a filter that removes postings recorded in the seen
// file from previous runs.
func NewSeenFile() Filter {
	return &seenFileFilter{}
}

func (f *seenFileFilter) Name() string { return "seen_file" }

func (f *seenFileFilter) Disable(string) {}

func (f *seenFileFilter) IsEnabled() bool { return true }

func (f *seenFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.SeenFile)
	}
	return nil
}

func (f *seenFileFilter) Apply(_ context.Context, deps Deps, jobs *job.Jobs) (*job.Jobs, Step, error) {
	initial := jobs.Len()
	if f.path == "" {
		return jobs, Step{Initial: initial, Dropped: 0, Left: jobs.Len()}, nil
	}

	seen, err := job.GetSeenJobsFromFile(f.path)
	if err != nil {
		return jobs, Step{}, fmt.Errorf("getting seen jobs from file: %w", err)
	}

	removed := jobs.Exclude(job.JobKeyField, seen.Keys())
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding postings from seen file",
			zap.String("path", f.path),
			zap.Strings("excluded_jobs", removed),
			zap.Int("jobs_left", jobs.Len()),
		)
	}

	return jobs, Step{Initial: initial, Dropped: len(removed), Left: jobs.Len()}, nil
}

func (f *seenFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
