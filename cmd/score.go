package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ovsov/jobgrader/internal/company"
	"github.com/ovsov/jobgrader/internal/filtering"
	"github.com/ovsov/jobgrader/internal/job"
	"github.com/ovsov/jobgrader/internal/logger"
	"github.com/ovsov/jobgrader/internal/scoring"
	"github.com/ovsov/jobgrader/internal/store"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptReportByCompany  = "Report by company"
	PromptJobsToFile       = "Dump scored jobs to file"
	PromptAppendToSeenFile = "Append all jobs to seen file"
	PromptExit             = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptReportByCompany, PromptJobsToFile, PromptAppendToSeenFile, PromptExit},
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score scraped job postings against the configured profile",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("jobs", "f", "", "jobs file produced by the scraper (required)")
	scoreCmd.Flags().BoolP("auto-approve", "y", false, "print the report without the interactive prompt")
	scoreCmd.Flags().StringP("seen-file", "s", "", "special file with jobs reported in previous runs. Default is unset.")

	scoreCmd.MarkFlagRequired("jobs")
	viper.BindPFlag("seen-file", scoreCmd.Flags().Lookup("seen-file"))
}

// score is the main command for the cli.
func score(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the jobgrader", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Profile == nil {
		logger.Fatal("a scoring profile is required under the profile key")
	}

	jobsFile := cmd.Flag("jobs").Value.String()
	jobs, err := job.LoadFromFile(jobsFile)
	if err != nil {
		logger.Fatal("loading jobs", zap.Error(err), zap.String("file", jobsFile))
	}

	logger.Info("loaded jobs", zap.Int("count", jobs.Len()))

	if jobs.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no jobs found in file"))
		return
	}

	scorer, closeStore := prepareScorer(config, logger)
	defer closeStore()

	for _, posting := range jobs.Items {
		posting.Result = scorer.Score(posting)
		logger.Debug("scored",
			zap.String("job", posting.Key()),
			zap.Int("total", posting.Result.Total),
			zap.String("grade", posting.Result.Grade),
			zap.String("description", truncateDescription(posting.Description)),
		)
	}

	filtered, err := runFilters(ctx, config, jobs, logger)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	jobs = filtered

	if jobs.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no jobs left after filters"))
		return
	}

	if cmd.Flag("auto-approve").Value.String() == "true" {
		pretty, _ := json.MarshalIndent(jobs.ReportByCompany(), "", "  ")
		fmt.Println(string(pretty))
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		logger.Info("current list of jobs", zap.Int("count", jobs.Len()))

		if err := handleAction(action, logger, jobs); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, jobs *job.Jobs) error {
	switch action {
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(jobs.ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("jobs count", jobs.Len()))
		return nil
	case PromptJobsToFile:
		filename, err := jobs.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToSeenFile:
		seenFile := strings.TrimSpace(viper.GetString("seen-file"))
		if seenFile == "" {
			logger.Warn("seen file is not configured", zap.String("hint", "set the seen-file key or the --seen-file flag"))
			return nil
		}

		seen, err := job.GetSeenJobsFromFile(seenFile)
		if err != nil {
			return err
		}

		seen.Append(jobs.ToSeen())

		if err := seen.ToFile(seenFile); err != nil {
			return err
		}

		logger.Info("appended to seen file", zap.String("filename", seenFile))

		jobs.Exclude(job.JobKeyField, seen.Keys())
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// prepareScorer wires the curated lists, the optional SQLite store and the
// classification cache into a scorer. Missing lists or a broken database
// degrade to in-memory operation instead of aborting the run.
func prepareScorer(config *Config, logger *zap.Logger) (*scoring.Scorer, func()) {
	classifier, closeStore := prepareClassifier(config, logger)
	return scoring.NewScorer(config.Profile, classifier, logger), closeStore
}

func prepareClassifier(config *Config, logger *zap.Logger) (*company.Classifier, func()) {
	lists := &company.Lists{}
	if config.CompaniesFile != "" {
		loaded, err := company.LoadLists(config.CompaniesFile)
		if err != nil {
			logger.Warn("loading company lists failed, classifying without them", zap.Error(err))
		} else {
			lists = loaded
		}
	}

	closeStore := func() {}
	var persistence company.Store
	if config.DBPath != "" {
		s, err := store.Open(config.DBPath)
		if err != nil {
			logger.Warn("opening classification database failed, continuing in memory",
				zap.String("path", config.DBPath),
				zap.Error(err),
			)
		} else {
			persistence = s
			closeStore = func() {
				if count, err := s.AutoCount(); err == nil {
					logger.Debug("stored classifications", zap.Int("count", count))
				}
				if err := s.Close(); err != nil {
					logger.Warn("closing classification database", zap.Error(err))
				}
			}
		}
	}

	return company.NewClassifier(lists, persistence, company.NewCache(), logger), closeStore
}

func runFilters(ctx context.Context, config *Config, jobs *job.Jobs, logger *zap.Logger) (*job.Jobs, error) {
	steps := []filtering.Filter{
		filtering.NewSuppressed(),
		filtering.NewMinScore(),
		filtering.NewSeenFile(),
	}

	cfg := &filtering.Config{
		MinScore:     config.MinScore,
		DropFiltered: config.DropFiltered,
		SeenFile:     viper.GetString("seen-file"),
	}

	for _, status := range filtering.Describe(steps) {
		logger.Debug("filter status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.Any("details", status.Details),
		)
	}

	return filtering.Run(ctx, cfg, filtering.Deps{Logger: logger}, steps, jobs)
}

func truncateDescription(s string) string {
	return logger.TruncateForLog(s, 120)
}
