// Package fetch - browser.go provides headless browser rendering for
// JavaScript-heavy job boards (LinkedIn, Glassdoor, Workday) whose
// postings are not present in the initial HTML.
package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the minimum extracted text length to consider HTTP fetch successful.
// If content is shorter, we should fall back to browser rendering.
const MinContentLength = 500

// defaultBrowserTimeout bounds a full render including the settle waits.
const defaultBrowserTimeout = 30 * time.Second

// ShouldUseBrowser returns true if the extracted text is too short,
// indicating the page is likely a JavaScript-rendered SPA.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// browserFlags returns the Chrome launch flags for CI and container use.
func browserFlags() []chromedp.ExecAllocatorOption {
	return append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
}

// consentButtonSelector matches the accept buttons of common cookie
// banners. Must stay standard CSS: querySelector rejects extensions
// like :contains, and one invalid member invalidates the whole list.
const consentButtonSelector = `button[id*="accept"], button[class*="accept"], button[aria-label*="accept"], button[data-testid*="accept"]`

// consentClickTimeout bounds the banner click. Click polls until a node
// matches, so on bannerless pages it would otherwise wait out the full
// page deadline.
const consentClickTimeout = 2 * time.Second

// dismissCookieBanner clicks a consent button if one appears, without
// failing when none is present.
func dismissCookieBanner() chromedp.ActionFunc {
	return func(ctx context.Context) error {
		clickCtx, cancel := context.WithTimeout(ctx, consentClickTimeout)
		defer cancel()
		_ = chromedp.Click(consentButtonSelector, chromedp.NodeVisible).Do(clickCtx)
		return nil
	}
}

// WithBrowser renders a page in a headless browser and returns the rendered HTML.
// Requires Chrome/Chromium to be installed on the system.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("[BROWSER] Starting headless browser for: %s", url)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, browserFlags()...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Job boards render the posting body after the initial load.
		chromedp.Sleep(3*time.Second),
		dismissCookieBanner(),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] Rendered HTML: %d bytes", len(html))
	}

	return html, nil
}

// BrowserSimple is WithBrowser with the default timeout.
func BrowserSimple(ctx context.Context, url string, verbose bool) (string, error) {
	return WithBrowser(ctx, url, defaultBrowserTimeout, verbose)
}
