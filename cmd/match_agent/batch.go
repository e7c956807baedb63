package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a directory of resumes against one job posting",
	Long: `Scores every resume document in a directory against a single job posting
and prints the ranked results as JSON, best match first.`,
	RunE: runBatch,
}

var (
	batchConfigPath string
	batchResumeDir  string
	batchJob        string
	batchJobURL     string
	batchVocab      string
	batchAPIKey     string
	batchUseModel   bool
	batchUseBrowser bool
	batchWorkers    int
	batchTimeout    int
	batchVerbose    bool
)

// resumeExtensions are the document types picked up from the batch directory.
var resumeExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".pdf":  true,
	".docx": true,
}

func init() {
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	batchCmd.Flags().StringVarP(&batchResumeDir, "resume-dir", "d", "", "Directory containing resume documents")
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	batchCmd.Flags().StringVar(&batchJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	batchCmd.Flags().StringVar(&batchVocab, "vocab", "", "Path to vocabulary file overriding the embedded one")
	batchCmd.Flags().BoolVar(&batchUseModel, "use-model", false, "Enable the external model assessment")
	batchCmd.Flags().BoolVar(&batchUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	batchCmd.Flags().IntVar(&batchWorkers, "max-workers", 0, "Maximum concurrent evaluations (default 4)")
	batchCmd.Flags().IntVar(&batchTimeout, "timeout", 0, "External model timeout in seconds")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed debug information")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergeConfig(batchConfigPath, func(cfg *config.Config) {
		if cmd.Flags().Changed("resume-dir") {
			cfg.ResumeDir = batchResumeDir
		}
		if cmd.Flags().Changed("job") {
			cfg.Job = batchJob
		}
		if cmd.Flags().Changed("job-url") {
			cfg.JobURL = batchJobURL
		}
		if cmd.Flags().Changed("vocab") {
			cfg.Vocab = batchVocab
		}
		if cmd.Flags().Changed("api-key") {
			cfg.APIKey = batchAPIKey
		}
		if cmd.Flags().Changed("use-model") {
			cfg.UseModel = batchUseModel
		}
		if cmd.Flags().Changed("use-browser") {
			cfg.UseBrowser = batchUseBrowser
		}
		if cmd.Flags().Changed("max-workers") {
			cfg.MaxWorkers = batchWorkers
		}
		if cmd.Flags().Changed("timeout") {
			cfg.TimeoutSeconds = batchTimeout
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = batchVerbose
		}
	})
	if err != nil {
		return err
	}

	if cfg.ResumeDir == "" {
		return fmt.Errorf("--resume-dir is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	items, err := collectResumes(cfg.ResumeDir)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no resume documents found in %s", cfg.ResumeDir)
	}

	jobText, err := loadJobText(ctx, cfg)
	if err != nil {
		return err
	}

	eng, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}

	var onProgress engine.ProgressFunc
	if cfg.Verbose {
		onProgress = func(completed, total int, name string) {
			fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", completed, total, name)
		}
	}

	result, err := eng.EvaluateAll(ctx, items, jobText, types.MatchOptions{
		UseExternalModel: cfg.UseModel,
		TimeoutSeconds:   cfg.TimeoutSeconds,
		MaxWorkers:       cfg.MaxWorkers,
		Verbose:          cfg.Verbose,
	}, onProgress)
	if err != nil {
		return fmt.Errorf("batch evaluation failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintBatch(result)
	}

	return printJSON(result)
}

// collectResumes loads every supported document in dir, sorted by name so
// runs are reproducible.
func collectResumes(dir string) ([]engine.BatchItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory: %w", err)
	}

	var items []engine.BatchItem
	for _, entry := range entries {
		if entry.IsDir() || !resumeExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		text, err := loadResumeText(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		items = append(items, engine.BatchItem{Name: entry.Name(), ResumeText: text})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}
