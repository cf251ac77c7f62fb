package cmd

import (
	"encoding/json"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hireloop/talent-matcher/internal/catalog"
	"github.com/hireloop/talent-matcher/internal/logger"
	"github.com/hireloop/talent-matcher/internal/matching"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Report skill gaps between a candidate and one job",
	Run: func(cmd *cobra.Command, _ []string) {
		gaps(cmd)
	},
}

func init() {
	rootCmd.AddCommand(gapsCmd)

	gapsCmd.Flags().StringP("candidate", "c", "", "candidate profile: a JSON file or plain resume text file")
	gapsCmd.Flags().String("job", "", "job id from the catalog")
}

func gaps(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil || config.Catalog == "" {
		logger.Fatal("job catalog path is required under the catalog key")
	}

	jobs, err := catalog.LoadFromFile(config.Catalog)
	if err != nil {
		logger.Fatal("loading job catalog", zap.Error(err), zap.String("path", config.Catalog))
	}

	jobID := cmd.Flag("job").Value.String()
	job := jobs.FindByID(jobID)
	if job == nil {
		logger.Fatal("job not found in catalog",
			zap.String("job_id", jobID),
			zap.Strings("known_jobs", jobs.IDs()),
		)
	}

	candidate, err := loadCandidate(cmd.Flag("candidate").Value.String())
	if err != nil {
		logger.Fatal("loading candidate profile", zap.Error(err))
	}

	report := matching.AnalyzeGaps(candidate, job)

	pretty, _ := json.MarshalIndent(report, "", "  ")
	logger.Info(string(pretty),
		zap.String("candidate", candidate.Name),
		zap.String("job_id", job.ID),
	)
}
