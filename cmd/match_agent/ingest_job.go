package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Ingest a job posting from a text file or URL",
	Long:  "Ingest a job posting from either a text file or URL, clean the content, and write cleaned text with metadata and a schema-validated posting JSON.",
	RunE:  runIngestJob,
}

var (
	ingestTextFile   string
	ingestURL        string
	ingestOutDir     string
	ingestUseBrowser bool
	ingestVerbose    bool
)

func init() {
	ingestJobCmd.Flags().StringVarP(&ingestTextFile, "text-file", "t", "", "Path to text file containing job posting")
	ingestJobCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch job posting from")
	ingestJobCmd.Flags().StringVarP(&ingestOutDir, "out", "o", "", "Output directory (required)")
	ingestJobCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	ingestJobCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = ingestJobCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(_ *cobra.Command, _ []string) error {
	// Validate mutually exclusive flags
	if ingestTextFile == "" && ingestURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if ingestTextFile != "" && ingestURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	var (
		cleanedText string
		jobPosting  *types.JobPosting
		metadata    *ingestion.Metadata
		err         error
	)

	if ingestTextFile != "" {
		cleanedText, metadata, err = ingestion.IngestFromFile(ingestTextFile)
		if err != nil {
			return fmt.Errorf("failed to ingest from file: %w", err)
		}
	} else {
		cleanedText, jobPosting, metadata, err = ingestion.IngestFromURL(context.Background(), ingestURL, ingestUseBrowser, ingestVerbose)
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
	}

	if err := ingestion.WriteOutput(ingestOutDir, cleanedText, metadata); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Successfully ingested job posting\n")
	fmt.Fprintf(os.Stdout, "Cleaned text: %s/job_posting.cleaned.txt\n", ingestOutDir)
	fmt.Fprintf(os.Stdout, "Metadata: %s/job_posting.meta.json\n", ingestOutDir)

	// The posting schema requires a title; pages where none was found
	// still produce cleaned text and metadata.
	if jobPosting == nil || jobPosting.Title == "" {
		return nil
	}

	postingPath := filepath.Join(ingestOutDir, "job_posting.json")
	if err := writeValidatedPosting(postingPath, jobPosting); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Posting: %s\n", postingPath)
	return nil
}

// writeValidatedPosting writes the structured posting only after it passes
// the posting schema.
func writeValidatedPosting(path string, posting *types.JobPosting) error {
	data, err := marshalIndent(posting)
	if err != nil {
		return err
	}

	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "job_posting.schema.json"))
	if schemaPath != "" {
		schemaContent, err := os.ReadFile(schemaPath)
		if err != nil {
			return fmt.Errorf("failed to read posting schema: %w", err)
		}
		if err := schemas.ValidateJSONString(string(schemaContent), string(data)); err != nil {
			return fmt.Errorf("posting failed schema validation: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write posting file: %w", err)
	}
	return nil
}
