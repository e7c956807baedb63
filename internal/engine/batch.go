package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/types"
)

// defaultBatchWorkers bounds concurrency when MaxWorkers is unset.
const defaultBatchWorkers = 4

// BatchItem is one resume in a batch run.
type BatchItem struct {
	Name       string `json:"name"`
	ResumeText string `json:"-"`
}

// BatchItemResult pairs a resume with its evaluation.
type BatchItemResult struct {
	Name   string             `json:"name"`
	Result *types.MatchResult `json:"result"`
}

// BatchResult is a completed batch run, ordered best match first.
type BatchResult struct {
	RunID string            `json:"run_id"`
	Items []BatchItemResult `json:"items"`
}

// ProgressFunc is called after each item completes. Calls may arrive from
// concurrent workers; implementations must be safe for that.
type ProgressFunc func(completed, total int, name string)

// EvaluateAll scores every resume against one job posting. Items are
// evaluated concurrently; the result order is by descending overall
// score with name as the tiebreaker, so identical runs produce identical
// output.
func (e *Engine) EvaluateAll(ctx context.Context, items []BatchItem, jobText string, opts types.MatchOptions, onProgress ProgressFunc) (*BatchResult, error) {
	if err := e.validate.Struct(&opts); err != nil {
		return nil, fmt.Errorf("invalid match options: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no resumes to evaluate")
	}

	workers := opts.MaxWorkers
	if workers <= 0 {
		workers = defaultBatchWorkers
	}

	results := make([]BatchItemResult, len(items))
	completed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	// Progress bookkeeping runs inside the worker goroutines; guard it.
	progress := make(chan string)
	progressDone := make(chan struct{})
	go func() {
		defer close(progressDone)
		for name := range progress {
			completed++
			if onProgress != nil {
				onProgress(completed, len(items), name)
			}
		}
	}()

	for i, item := range items {
		g.Go(func() error {
			result, err := e.Evaluate(gctx, types.MatchInput{
				ResumeText: item.ResumeText,
				JobText:    jobText,
			}, opts)
			if err != nil {
				return fmt.Errorf("evaluating %s: %w", item.Name, err)
			}
			results[i] = BatchItemResult{Name: item.Name, Result: result}
			progress <- item.Name
			return nil
		})
	}

	err := g.Wait()
	close(progress)
	<-progressDone
	if err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Result.OverallScore != results[j].Result.OverallScore {
			return results[i].Result.OverallScore > results[j].Result.OverallScore
		}
		return results[i].Name < results[j].Name
	})

	return &BatchResult{
		RunID: uuid.NewString(),
		Items: results,
	}, nil
}
