package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/coverletter"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Generate a tailored cover letter from a resume and job posting",
	Long: `Drafts a cover letter personalized with skills, experience and
achievements extracted from the resume, focused on what the posting asks
for. Three tones are available: professional, enthusiastic and
confident.`,
	RunE: runCoverLetter,
}

var (
	coverResume        string
	coverJob           string
	coverJobURL        string
	coverCompany       string
	coverJobTitle      string
	coverHiringManager string
	coverTone          string
	coverVocab         string
	coverUseBrowser    bool
	coverVerbose       bool
)

func init() {
	coverLetterCmd.Flags().StringVarP(&coverResume, "resume", "r", "", "Path to resume document (required)")
	coverLetterCmd.Flags().StringVarP(&coverJob, "job", "j", "", "Path to job posting text file")
	coverLetterCmd.Flags().StringVar(&coverJobURL, "job-url", "", "URL to fetch job posting from")
	coverLetterCmd.Flags().StringVar(&coverCompany, "company", "", "Company name used in the letter")
	coverLetterCmd.Flags().StringVar(&coverJobTitle, "job-title", "", "Job title used in the letter")
	coverLetterCmd.Flags().StringVar(&coverHiringManager, "hiring-manager", "", "Hiring manager name for the greeting")
	coverLetterCmd.Flags().StringVar(&coverTone, "tone", "professional", "Writing tone: professional, enthusiastic or confident")
	coverLetterCmd.Flags().StringVar(&coverVocab, "vocab", "", "Path to vocabulary file overriding the embedded one")
	coverLetterCmd.Flags().BoolVar(&coverUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	coverLetterCmd.Flags().BoolVarP(&coverVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = coverLetterCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetter(_ *cobra.Command, _ []string) error {
	if coverJob == "" && coverJobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if coverJob != "" && coverJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	tone, err := coverletter.ParseTone(coverTone)
	if err != nil {
		return err
	}

	resumeText, err := loadResumeText(coverResume)
	if err != nil {
		return err
	}

	jobText, err := loadJobText(context.Background(), config.Config{
		Job:        coverJob,
		JobURL:     coverJobURL,
		UseBrowser: coverUseBrowser,
		Verbose:    coverVerbose,
	})
	if err != nil {
		return err
	}

	v, err := loadVocabulary(coverVocab)
	if err != nil {
		return fmt.Errorf("failed to load vocabulary: %w", err)
	}

	letter := coverletter.Generate(resumeText, jobText, v, coverletter.Options{
		Company:       coverCompany,
		JobTitle:      coverJobTitle,
		HiringManager: coverHiringManager,
		Tone:          tone,
	})

	if coverVerbose {
		fmt.Fprintf(os.Stderr, "Generated %s cover letter (%d words)\n", letter.Tone, letter.WordCount)
	}

	return printJSON(letter)
}
