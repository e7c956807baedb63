// Package main provides the entry point for the resume-matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Resume to job posting match scoring",
	Long:  "match_agent scores resumes against job postings across skill, experience, education and keyword dimensions, with optional model-backed assessment, batch ranking, ATS simulation and application helpers.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
