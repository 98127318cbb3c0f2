package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ovsov/jobgrader/internal/company"
	"github.com/ovsov/jobgrader/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [company name]",
	Short: "Classify a single employer as software or hardware focused",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		classify(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringP("title", "t", "", "job title to use as extra evidence")
	classifyCmd.Flags().String("description", "", "job description to use as extra evidence")
}

func classify(cmd *cobra.Command, companyName string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil {
		logger.Fatal("config is required")
	}

	classifier, closeStore := prepareClassifier(config, logger)
	defer closeStore()

	var domainKeywords []string
	if config.Profile != nil {
		domainKeywords = config.Profile.DomainKeywordList()
	}

	result := classifier.Classify(company.Request{
		Company:        companyName,
		Title:          cmd.Flag("title").Value.String(),
		Description:    cmd.Flag("description").Value.String(),
		DomainKeywords: domainKeywords,
	})

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("encoding classification", zap.Error(err))
	}

	fmt.Println(string(pretty))
}
