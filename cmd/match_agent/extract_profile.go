package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/autofill"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var extractProfileCmd = &cobra.Command{
	Use:   "extract-profile",
	Short: "Extract an application-form profile from a resume document",
	Long: `Pulls name, contact details, work history, education and skills out of
a resume so they can be pasted into application forms. The output
includes the list of fillable fields and an extraction confidence.`,
	RunE: runExtractProfile,
}

var (
	profileResume  string
	profileVocab   string
	profileVerbose bool
)

func init() {
	extractProfileCmd.Flags().StringVarP(&profileResume, "resume", "r", "", "Path to resume document (required)")
	extractProfileCmd.Flags().StringVar(&profileVocab, "vocab", "", "Path to vocabulary file overriding the embedded one")
	extractProfileCmd.Flags().BoolVarP(&profileVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = extractProfileCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(extractProfileCmd)
}

func runExtractProfile(_ *cobra.Command, _ []string) error {
	resumeText, err := rawResumeText(profileResume)
	if err != nil {
		return err
	}

	v, err := loadVocabulary(profileVocab)
	if err != nil {
		return fmt.Errorf("failed to load vocabulary: %w", err)
	}

	profile := autofill.ExtractProfile(resumeText, v)

	if profileVerbose {
		observability.NewPrinter(os.Stderr).PrintAutofillProfile(profile)
	}

	return printJSON(profile)
}
