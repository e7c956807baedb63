package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/docext"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// loadVocabulary returns the override file when set, otherwise the
// embedded default.
func loadVocabulary(path string) (*vocab.Vocabulary, error) {
	if path == "" {
		return vocab.Default()
	}
	return vocab.Load(path)
}

// loadResumeText reads one resume document and cleans its text.
func loadResumeText(path string) (string, error) {
	raw, err := docext.ReadDocument(path)
	if err != nil {
		return "", fmt.Errorf("failed to load resume %s: %w", path, err)
	}
	return ingestion.CleanText(raw), nil
}

// rawResumeText reads a resume document without cleaning, preserving
// the original formatting.
func rawResumeText(path string) (string, error) {
	raw, err := docext.ReadDocument(path)
	if err != nil {
		return "", fmt.Errorf("failed to load resume %s: %w", path, err)
	}
	return raw, nil
}

// loadJobText resolves the job posting text from a file or URL.
func loadJobText(ctx context.Context, cfg config.Config) (string, error) {
	if cfg.Job != "" {
		text, _, err := ingestion.IngestFromFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to ingest job file: %w", err)
		}
		return text, nil
	}
	text, _, _, err := ingestion.IngestFromURL(ctx, cfg.JobURL, cfg.UseBrowser, cfg.Verbose)
	if err != nil {
		return "", fmt.Errorf("failed to ingest job URL: %w", err)
	}
	return text, nil
}

// buildEngine constructs the evaluation engine. The model client is only
// created when the external assessment is enabled.
func buildEngine(ctx context.Context, cfg config.Config) (*engine.Engine, error) {
	v, err := loadVocabulary(cfg.Vocab)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}

	var client llm.Client
	if cfg.UseModel {
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required with --use-model")
		}
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create model client: %w", err)
		}
	}

	return engine.New(v, client), nil
}

// mergeConfig loads an optional config file and applies the explicitly
// set CLI flags on top of it.
func mergeConfig(configPath string, apply func(cfg *config.Config)) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	apply(&cfg)
	return cfg, nil
}

// marshalIndent wraps the marshal error with CLI-friendly context.
func marshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return data, nil
}

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	data, err := marshalIndent(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
