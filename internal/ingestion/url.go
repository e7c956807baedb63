package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/posting"
	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	// ErrHTTPRequestFailed is returned when HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// pageFetcher caches postings so scoring several resumes against one URL
// in a single run fetches the page once.
var pageFetcher = fetch.NewCachedFetcher(nil)

// IngestFromURL fetches a job posting page, extracts its structured fields and
// main text, cleans the text, and returns it with posting and metadata.
// Platform detection selects board-specific selectors for the extraction.
// If useBrowser is true, falls back to headless browser for SPA sites with
// insufficient content. If verbose is true, logs the extraction steps.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser bool, verbose bool) (string, *types.JobPosting, *Metadata, error) {
	platform := fetch.DetectPlatform(urlStr)
	if verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected platform: %s", platform)
	}

	result, err := pageFetcher.Fetch(ctx, urlStr)
	if err != nil {
		return "", nil, nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes (cached: %t)", len(result.HTML), result.FromCache)
	}

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	textContent, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(textContent))
	}

	html := result.HTML

	// SPA boards render the posting client-side; the initial HTML carries
	// only the shell.
	if useBrowser && fetch.ShouldUseBrowser(textContent) {
		if verbose {
			log.Printf("[VERBOSE] Content too short (%d chars < %d), falling back to browser rendering...",
				len(textContent), fetch.MinContentLength)
		}

		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr, verbose)
		if browserErr != nil {
			if verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, using HTTP content", browserErr)
			}
		} else {
			rendered, renderErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...)
			if renderErr == nil {
				textContent = rendered
				html = browserHTML
				if verbose {
					log.Printf("[VERBOSE] Browser extracted text: %d chars", len(textContent))
				}
			} else if verbose {
				log.Printf("[VERBOSE] Browser content extraction failed: %v", renderErr)
			}
		}
	}

	jobPosting, err := posting.Extract(html, urlStr)
	if err != nil {
		if verbose {
			log.Printf("[VERBOSE] Structured extraction failed: %v, keeping main text only", err)
		}
		jobPosting = &types.JobPosting{
			Description: textContent,
			URL:         urlStr,
			Platform:    string(platform),
		}
	}

	cleanedText := CleanText(textContent)
	if cleanedText == "" {
		cleanedText = CleanText(jobPosting.Description)
	}
	if verbose {
		log.Printf("[VERBOSE] Cleaned text: %d chars", len(cleanedText))
	}

	metadata := NewMetadata(cleanedText, urlStr)
	metadata.Platform = string(platform)
	metadata.Title = jobPosting.Title
	metadata.Company = jobPosting.Company
	metadata.Location = jobPosting.Location

	return cleanedText, jobPosting, metadata, nil
}
