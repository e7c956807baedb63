package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/answers"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

var answersCmd = &cobra.Command{
	Use:   "answers",
	Short: "Draft answers for application questions from a resume and job posting",
	Long: `Scores the resume against the job posting, then drafts an answer for
each supplied question grounded in the matched skills. Questions come
from repeated --question flags or a file with one question per line.`,
	RunE: runAnswers,
}

var (
	answersConfigFile    string
	answersResume        string
	answersJob           string
	answersJobURL        string
	answersVocab         string
	answersQuestions     []string
	answersQuestionsFile string
	answersUseModel      bool
	answersUseBrowser    bool
	answersTimeout       int
	answersVerbose       bool
	answersAPIKey        string
)

func init() {
	answersCmd.Flags().StringVar(&answersConfigFile, "config", "", "Path to configuration file")
	answersCmd.Flags().StringVarP(&answersResume, "resume", "r", "", "Path to resume document")
	answersCmd.Flags().StringVarP(&answersJob, "job", "j", "", "Path to job posting text file")
	answersCmd.Flags().StringVar(&answersJobURL, "job-url", "", "URL to fetch job posting from")
	answersCmd.Flags().StringVar(&answersVocab, "vocab", "", "Path to vocabulary file overriding the embedded one")
	answersCmd.Flags().StringArrayVarP(&answersQuestions, "question", "q", nil, "Application question (repeatable)")
	answersCmd.Flags().StringVar(&answersQuestionsFile, "questions-file", "", "File with one question per line")
	answersCmd.Flags().BoolVar(&answersUseModel, "use-model", false, "Refine the qualitative assessment with the external model")
	answersCmd.Flags().BoolVar(&answersUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	answersCmd.Flags().IntVar(&answersTimeout, "timeout", 0, "Model call timeout in seconds")
	answersCmd.Flags().BoolVarP(&answersVerbose, "verbose", "v", false, "Print detailed debug information")
	answersCmd.Flags().StringVar(&answersAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY)")

	rootCmd.AddCommand(answersCmd)
}

func runAnswers(cmd *cobra.Command, _ []string) error {
	cfg, err := mergeConfig(answersConfigFile, func(cfg *config.Config) {
		if cmd.Flags().Changed("resume") {
			cfg.Resume = answersResume
		}
		if cmd.Flags().Changed("job") {
			cfg.Job = answersJob
		}
		if cmd.Flags().Changed("job-url") {
			cfg.JobURL = answersJobURL
		}
		if cmd.Flags().Changed("vocab") {
			cfg.Vocab = answersVocab
		}
		if cmd.Flags().Changed("use-model") {
			cfg.UseModel = answersUseModel
		}
		if cmd.Flags().Changed("use-browser") {
			cfg.UseBrowser = answersUseBrowser
		}
		if cmd.Flags().Changed("timeout") {
			cfg.TimeoutSeconds = answersTimeout
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = answersVerbose
		}
		if cmd.Flags().Changed("api-key") {
			cfg.APIKey = answersAPIKey
		}
	})
	if err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	questions, err := collectQuestions(answersQuestions, answersQuestionsFile)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return fmt.Errorf("at least one --question or a --questions-file is required")
	}

	ctx := context.Background()

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

	match, err := eng.Evaluate(ctx, types.MatchInput{
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

	v, err := loadVocabulary(cfg.Vocab)
	if err != nil {
		return fmt.Errorf("failed to load vocabulary: %w", err)
	}
	profile := extraction.ExtractProfile(resumeText, v)

	result := answers.Generate(questions, match, profile)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintProfile("RESUME PROFILE", profile)
		fmt.Fprintf(os.Stderr, "Generated %d answers (overall score %d)\n", len(result.Answers), match.OverallScore)
	}

	return printJSON(result)
}

// collectQuestions merges flag questions with the optional file,
// preserving order and skipping blank lines.
func collectQuestions(flagQuestions []string, path string) ([]string, error) {
	questions := make([]string, 0, len(flagQuestions))
	for _, q := range flagQuestions {
		if q = strings.TrimSpace(q); q != "" {
			questions = append(questions, q)
		}
	}
	if path == "" {
		return questions, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open questions file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			questions = append(questions, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions file: %w", err)
	}
	return questions, nil
}
