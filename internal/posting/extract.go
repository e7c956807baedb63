// Package posting extracts structured job postings from job board pages.
// Each supported board has its own selector table; unrecognized pages fall
// back to generic heuristics. Extraction lives outside the scoring engine,
// which only ever sees the resulting plain text.
package posting

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/types"
)

// fieldSelectors maps each posting field to an ordered list of CSS
// selectors; the first one that yields text wins.
type fieldSelectors struct {
	title       []string
	company     []string
	location    []string
	description []string
}

var platformSelectors = map[fetch.Platform]fieldSelectors{
	fetch.PlatformLinkedIn: {
		title:       []string{".job-details-jobs-unified-top-card__job-title", ".jobs-unified-top-card__job-title", "h1.t-24"},
		company:     []string{".job-details-jobs-unified-top-card__company-name", ".jobs-unified-top-card__company-name"},
		location:    []string{".job-details-jobs-unified-top-card__bullet", ".jobs-unified-top-card__bullet"},
		description: []string{".jobs-description__content", ".jobs-box__html-content", "#job-details"},
	},
	fetch.PlatformIndeed: {
		title:       []string{".jobsearch-JobInfoHeader-title", "h1[data-testid='jobsearch-JobInfoHeader-title']"},
		company:     []string{"[data-testid='inlineHeader-companyName']", ".jobsearch-InlineCompanyRating-companyHeader"},
		location:    []string{"[data-testid='job-location']"},
		description: []string{"#jobDescriptionText", ".jobsearch-jobDescriptionText"},
	},
	fetch.PlatformGlassdoor: {
		title:       []string{"[data-test='job-title']", ".job-title", "h1"},
		company:     []string{"[data-test='employer-name']", ".employer-name"},
		location:    []string{"[data-test='location']", ".location"},
		description: []string{".jobDescriptionContent", "[data-test='job-description']"},
	},
	fetch.PlatformZipRecruiter: {
		title:       []string{"h1.job_title", ".job-title"},
		company:     []string{".t-company-name", ".hiring-company-link"},
		location:    []string{".t-location", ".job-location"},
		description: []string{".job_description", ".jobDescriptionSection"},
	},
	fetch.PlatformLever: {
		title:       []string{".posting-headline h2", "h1"},
		company:     []string{".main-header-logo img"},
		location:    []string{".posting-categories .location", ".workplaceTypes"},
		description: []string{"[data-qa='job-description']", ".posting-page"},
	},
	fetch.PlatformGreenhouse: {
		title:       []string{".app-title", "h1"},
		company:     []string{".company-name"},
		location:    []string{".location"},
		description: []string{"#content", ".job-description"},
	},
	fetch.PlatformWorkday: {
		title:       []string{"[data-automation-id='jobPostingHeader']", "h1"},
		company:     []string{"[data-automation-id='company']"},
		location:    []string{"[data-automation-id='locations']"},
		description: []string{"[data-automation-id='jobDescription']", ".job-description"},
	},
}

var genericSelectors = fieldSelectors{
	title:       []string{"h1", ".job-title", "title"},
	company:     []string{".company-name", ".company", "[itemprop='hiringOrganization']"},
	location:    []string{".location", ".job-location", "[itemprop='jobLocation']"},
	description: []string{".job-description", "#job-description", ".description", "main", "article"},
}

// Extract parses a job board page into a structured posting. It returns
// an error only when the HTML cannot be parsed or yields no description
// at all; missing title, company or location are tolerated.
func Extract(html, urlStr string) (*types.JobPosting, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse posting HTML: %w", err)
	}

	platform := fetch.DetectPlatform(urlStr)
	selectors, ok := platformSelectors[platform]
	if !ok {
		selectors = genericSelectors
	}

	result := &types.JobPosting{
		Title:       firstText(doc, selectors.title),
		Company:     firstText(doc, selectors.company),
		Location:    firstText(doc, selectors.location),
		Description: firstText(doc, selectors.description),
		URL:         urlStr,
		Platform:    string(platform),
	}

	// Lever pages carry the company only in the header logo alt text.
	if result.Company == "" && platform == fetch.PlatformLever {
		if alt, exists := doc.Find(".main-header-logo img").Attr("alt"); exists {
			result.Company = strings.TrimSpace(alt)
		}
	}

	if result.Description == "" {
		// Last resort: strip the page down to its main text.
		text, textErr := fetch.ExtractMainText(html,
			fetch.PlatformContentSelectors(platform),
			fetch.PlatformNoiseSelectors(platform)...)
		if textErr == nil {
			result.Description = text
		}
	}

	if result.Description == "" {
		return nil, fmt.Errorf("no job description found at %s", urlStr)
	}

	return result, nil
}

// firstText returns the trimmed text of the first selector that matches
// a non-empty element.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		selection := doc.Find(selector)
		if selection.Length() == 0 {
			continue
		}
		text := strings.TrimSpace(selection.First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}
