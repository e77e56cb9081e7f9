// Package pipeline orchestrates the extraction run: it fetches each profile
// page, locates candidate sections, asks the model for structured fields,
// and appends the reconciled record to the output.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/provscan"
)

// Pipeline processes profile URLs sequentially. URLs are independent: a
// failure at any stage marks that URL failed and the run moves on, so every
// input URL ends as exactly one output row or one failed URL.
type Pipeline struct {
	Fetcher   provscan.Fetcher
	Sections  provscan.SectionExtractor
	Completer provscan.Completer
	Writer    provscan.RecordWriter

	// Pacer, when set, enforces the pause before each fetch.
	Pacer provscan.Pacer

	// Records, when set, mirrors each written row into the inventory
	// database. Insert failures are advisory.
	Records provscan.RecordService

	// Archive and Converter, when both set, save a markdown copy of each
	// fetched page. Archive failures are advisory.
	Archive   provscan.ArchiveWriter
	Converter provscan.Converter

	// Content, when set, replaces heuristic section extraction: the page's
	// main text is sent to the model as the only candidate region.
	Content provscan.ContentExtractor

	Logger *slog.Logger
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Attempted  int
	Succeeded  int
	FailedURLs []string
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Stage     string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run processes the URLs in order. The progress callback, if provided,
// receives events as the run proceeds. Run returns an error only when the
// context is canceled; per-URL failures are reported in the Result.
func (p *Pipeline) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	result := &Result{}
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if p.Pacer != nil {
			if err := p.Pacer.Wait(ctx); err != nil {
				return result, err
			}
		}

		result.Attempted++
		stage, err := p.processURL(ctx, url)

		if err != nil {
			// A canceled run stops; a failed URL does not.
			if ctx.Err() != nil {
				return result, ctx.Err()
			}

			result.FailedURLs = append(result.FailedURLs, url)
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: i + 1,
					Total:     total,
					URL:       url,
					Stage:     stage,
					Error:     err,
				})
			}
			continue
		}

		result.Succeeded++
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: i + 1,
				Total:     total,
				URL:       url,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// processURL runs one URL through every stage. It returns the name of the
// stage that failed along with the error.
func (p *Pipeline) processURL(ctx context.Context, url string) (string, error) {
	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "fetch", err
	}

	p.archivePage(ctx, url, html)

	sections, err := p.extractSections(html)
	if err != nil {
		return "extract", err
	}

	prompt := provscan.BuildPrompt(sections)

	completion, err := p.Completer.Complete(ctx, prompt)
	if err != nil {
		return "complete", err
	}

	rec, err := provscan.Reconcile(url, sections.LastModified, completion)
	if err != nil {
		return "reconcile", err
	}

	if err := p.Writer.WriteRecord(ctx, rec); err != nil {
		return "write", err
	}

	if p.Records != nil {
		if err := p.Records.CreateRecord(ctx, rec); err != nil {
			p.logWarn("inventory insert failed", "url", url, "err", err)
		}
	}

	return "", nil
}

// extractSections produces the candidate regions for the prompt, either via
// heuristic section extraction or, in raw mode, via main-content extraction.
func (p *Pipeline) extractSections(html string) (*provscan.Sections, error) {
	if p.Content != nil {
		text, err := p.Content.ExtractText(html)
		if err != nil {
			return nil, fmt.Errorf("extracting page text: %w", err)
		}
		return &provscan.Sections{FullText: text}, nil
	}

	return p.Sections.ExtractSections(html), nil
}

// archivePage saves a markdown copy of the fetched page when archiving is
// configured. Failures are logged, never propagated.
func (p *Pipeline) archivePage(ctx context.Context, url, html string) {
	if p.Archive == nil || p.Converter == nil {
		return
	}

	md, err := p.Converter.Convert(html)
	if err != nil {
		p.logWarn("archive conversion failed", "url", url, "err", err)
		return
	}

	if err := p.Archive.SavePage(ctx, url, md); err != nil {
		p.logWarn("archive save failed", "url", url, "err", err)
	}
}

func (p *Pipeline) logWarn(msg string, args ...any) {
	if p.Logger != nil {
		p.Logger.Warn(msg, args...)
	}
}
