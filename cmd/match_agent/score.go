package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one resume against a job posting",
	Long: `Scores a resume against a job posting across skill, experience, education
and keyword dimensions and prints the match result as JSON.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runScore,
}

var (
	scoreConfigPath string
	scoreResume     string
	scoreJob        string
	scoreJobURL     string
	scoreVocab      string
	scoreAPIKey     string
	scoreUseModel   bool
	scoreUseBrowser bool
	scoreTimeout    int
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume document (txt, md, pdf, docx)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	scoreCmd.Flags().StringVar(&scoreVocab, "vocab", "", "Path to vocabulary file overriding the embedded one")
	scoreCmd.Flags().BoolVar(&scoreUseModel, "use-model", false, "Enable the external model assessment")
	scoreCmd.Flags().BoolVar(&scoreUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	scoreCmd.Flags().IntVar(&scoreTimeout, "timeout", 0, "External model timeout in seconds")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergeConfig(scoreConfigPath, func(cfg *config.Config) {
		if cmd.Flags().Changed("resume") {
			cfg.Resume = scoreResume
		}
		if cmd.Flags().Changed("job") {
			cfg.Job = scoreJob
		}
		if cmd.Flags().Changed("job-url") {
			cfg.JobURL = scoreJobURL
		}
		if cmd.Flags().Changed("vocab") {
			cfg.Vocab = scoreVocab
		}
		if cmd.Flags().Changed("api-key") {
			cfg.APIKey = scoreAPIKey
		}
		if cmd.Flags().Changed("use-model") {
			cfg.UseModel = scoreUseModel
		}
		if cmd.Flags().Changed("use-browser") {
			cfg.UseBrowser = scoreUseBrowser
		}
		if cmd.Flags().Changed("timeout") {
			cfg.TimeoutSeconds = scoreTimeout
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = scoreVerbose
		}
	})
	if err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	resumeText, err := loadResumeText(cfg.Resume)
	if err != nil {
		return err
	}
	jobText, err := loadJobText(ctx, cfg)
	if err != nil {
		return err
	}

	eng, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}

	result, err := eng.Evaluate(ctx, types.MatchInput{
		ResumeText: resumeText,
		JobText:    jobText,
	}, types.MatchOptions{
		UseExternalModel: cfg.UseModel,
		TimeoutSeconds:   cfg.TimeoutSeconds,
		Verbose:          cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintMatchResult(result)
	}

	return printJSON(result)
}
