package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ats"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var atsCheckCmd = &cobra.Command{
	Use:   "ats-check",
	Short: "Simulate how an applicant tracking system parses a resume",
	Long: `Runs formatting checks against a resume document and reports issues,
warnings and passed checks with an ATS compatibility score. When a job
posting is supplied, keyword coverage is scored and blended in.`,
	RunE: runATSCheck,
}

var (
	atsResume     string
	atsJob        string
	atsJobURL     string
	atsVocab      string
	atsUseBrowser bool
	atsVerbose    bool
)

func init() {
	atsCheckCmd.Flags().StringVarP(&atsResume, "resume", "r", "", "Path to resume document (required)")
	atsCheckCmd.Flags().StringVarP(&atsJob, "job", "j", "", "Path to job posting text file (optional)")
	atsCheckCmd.Flags().StringVar(&atsJobURL, "job-url", "", "URL to fetch job posting from (optional)")
	atsCheckCmd.Flags().StringVar(&atsVocab, "vocab", "", "Path to vocabulary file overriding the embedded one")
	atsCheckCmd.Flags().BoolVar(&atsUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	atsCheckCmd.Flags().BoolVarP(&atsVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = atsCheckCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(atsCheckCmd)
}

func runATSCheck(_ *cobra.Command, _ []string) error {
	if atsJob != "" && atsJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	// The simulation inspects raw formatting, so the resume is read
	// without cleaning.
	resumeText, err := rawResumeText(atsResume)
	if err != nil {
		return err
	}

	var jobText string
	if atsJob != "" || atsJobURL != "" {
		jobText, err = loadJobText(context.Background(), config.Config{
			Job:        atsJob,
			JobURL:     atsJobURL,
			UseBrowser: atsUseBrowser,
			Verbose:    atsVerbose,
		})
		if err != nil {
			return err
		}
	}

	v, err := loadVocabulary(atsVocab)
	if err != nil {
		return fmt.Errorf("failed to load vocabulary: %w", err)
	}

	report := ats.Analyze(resumeText, jobText, v)

	if atsVerbose {
		observability.NewPrinter(os.Stderr).PrintATSReport(report)
	}

	return printJSON(report)
}
