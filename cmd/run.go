package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hireloop/talent-matcher/internal/ai"
	"github.com/hireloop/talent-matcher/internal/ai/gemini"
	"github.com/hireloop/talent-matcher/internal/catalog"
	"github.com/hireloop/talent-matcher/internal/embedding"
	"github.com/hireloop/talent-matcher/internal/logger"
	"github.com/hireloop/talent-matcher/internal/matching"
	"github.com/hireloop/talent-matcher/internal/secrets"
)

const (
	PromptShowMatches   = "Show matches with score breakdowns"
	PromptReportByBand  = "Report by confidence band"
	PromptMatchesToFile = "Dump matches to file"
	PromptExit          = "Exit"

	defaultTopK = 5
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowMatches, PromptReportByBand, PromptMatchesToFile, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Match a candidate against the job catalog",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("candidate", "c", "", "candidate profile: a JSON file or plain resume text file")
	runCmd.Flags().IntP("top-k", "k", 0, "number of matches to return")
	runCmd.Flags().BoolP("auto-approve", "y", false, "print matches and exit without the interactive menu")

	viper.BindPFlag("top-k", runCmd.Flags().Lookup("top-k"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the talent-matcher", zap.String("version", version))

	if config == nil || config.Catalog == "" {
		logger.Fatal("job catalog path is required under the catalog key")
	}

	jobs, err := catalog.LoadFromFile(config.Catalog)
	if err != nil {
		logger.Fatal("loading job catalog", zap.Error(err), zap.String("path", config.Catalog))
	}

	logger.Info("loaded job catalog", zap.Int("jobs", jobs.Len()))

	candidate, err := loadCandidate(cmd.Flag("candidate").Value.String())
	if err != nil {
		logger.Fatal("loading candidate profile", zap.Error(err))
	}

	engine := matching.New(
		embedding.NewHashingEmbedder(0),
		matching.WithLogger(logger),
		matching.WithEnricher(prepareEnricher(ctx, config.AI, logger)),
	)

	if err := engine.LoadJobs(jobs); err != nil {
		logger.Fatal("building job index", zap.Error(err))
	}

	topK := viper.GetInt("top-k")
	if topK <= 0 {
		topK = config.TopK
	}
	if topK <= 0 {
		topK = defaultTopK
	}

	matches, err := engine.Match(ctx, candidate, topK)
	if err != nil {
		logger.Fatal("matching failed", zap.Error(err))
	}

	logger.Info("matching completed",
		zap.String("candidate", candidate.Name),
		zap.Int("matches", len(matches)),
		zap.Any("bands", matches.CountByBand()),
	)

	if len(matches) == 0 {
		logger.Info("exiting", zap.String("reason", "no matches found"))
		return
	}

	if cmd.Flag("auto-approve").Value.String() == "true" {
		printMatches(logger, matches)
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, matches); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, matches matching.MatchResults) error {
	switch action {
	case PromptShowMatches:
		printMatches(logger, matches)
		return nil
	case PromptReportByBand:
		pretty, _ := json.MarshalIndent(matches.ReportByBand(), "", "  ")
		logger.Info(string(pretty), zap.Int("matches", len(matches)))
		return nil
	case PromptMatchesToFile:
		filename, err := matches.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump matches to file: %w", err)
		}
		logger.Info("dumping matches to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func printMatches(logger *zap.Logger, matches matching.MatchResults) {
	for rank, match := range matches {
		logger.Info("match",
			zap.Int("rank", rank+1),
			zap.String("job_id", match.JobID),
			zap.String("title", match.Title),
			zap.Float64("score", match.SimilarityScore),
			zap.String("band", string(match.ConfidenceBand)),
			zap.String("explanation", match.Explanation),
			zap.Float64("semantic", match.ScoreBreakdown.Semantic),
			zap.Float64("skill", match.ScoreBreakdown.Skill),
			zap.Float64("experience", match.ScoreBreakdown.Experience),
			zap.Float64("lexical", match.ScoreBreakdown.Lexical),
		)
	}
}

// loadCandidate reads the profile from a JSON file, or builds one from raw
// resume text for any other extension.
func loadCandidate(path string) (*catalog.CandidateProfile, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("candidate file is required (--candidate)")
	}

	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return catalog.LoadCandidateFromFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading resume text: %w", err)
	}
	return catalog.ProfileFromText(string(data)), nil
}

// prepareEnricher builds the optional Gemini explanation enricher. Any
// configuration problem disables enrichment instead of failing the run.
func prepareEnricher(ctx context.Context, config *AIConfig, log *zap.Logger) ai.Enricher {
	if config == nil || !config.Enabled {
		return nil
	}

	provider := strings.TrimSpace(strings.ToLower(config.Provider))
	if provider != "" && provider != "gemini" {
		log.Warn("skipping explanation enrichment", zap.String("reason", "unsupported provider"), zap.String("provider", config.Provider))
		return nil
	}

	if config.Gemini == nil {
		log.Warn("skipping explanation enrichment", zap.String("reason", "gemini configuration is missing"))
		return nil
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.Gemini.APIKeyFile,
	})
	if err != nil {
		log.Warn("skipping explanation enrichment",
			zap.Error(err),
			zap.String("hint", "set ai.gemini.api-key-file or GEMINI_API_KEY_FILE"),
		)
		return nil
	}

	genLogger := logger.WithCommonFields(log, "gemini", config.Gemini.Model)

	generator, err := gemini.NewGenerator(ctx, apiKey, config.Gemini.Model, config.Gemini.MaxRetries, genLogger)
	if err != nil {
		log.Warn("skipping explanation enrichment", zap.Error(err))
		return nil
	}

	return gemini.NewEnricher(generator, genLogger, config.Gemini.MaxLogLength)
}
