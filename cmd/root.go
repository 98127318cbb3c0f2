package cmd

import (
	"log"

	"github.com/ovsov/jobgrader/internal/scoring"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "jobgrader"
)

type Config struct {
	// DBPath is the SQLite database holding company classifications and
	// manual overrides. Empty disables persistence.
	DBPath string `mapstructure:"db-path"`
	// CompaniesFile is the curated company lists JSON document.
	CompaniesFile string `mapstructure:"companies-file"`

	MinScore     int    `mapstructure:"min-score"`
	DropFiltered bool   `mapstructure:"drop-filtered"`
	SeenFile     string `mapstructure:"seen-file"`

	Profile *scoring.Profile `mapstructure:"profile"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobgrader scores scraped job postings against a profile and filters them by employer type",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("db-path", "JOBGRADER_DB_PATH"); err != nil {
		log.Fatalf("binding JOBGRADER_DB_PATH environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobgrader.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config is needed only for the score and classify commands. If neither
	// was called we can skip initialization.
	if scoreCmd.CalledAs() == "" && classifyCmd.CalledAs() == "" {
		return
	}

	// We can't proceed if the config file parsed with error.
	if err := readConfig(); err != nil {
		log.Fatal(err)
	}
}

func readConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	return viper.ReadInConfig()
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
