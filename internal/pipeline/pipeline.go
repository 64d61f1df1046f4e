// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires the triage stages into one sequential daily run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/pdiddy/arxiv-triage/internal/extract"
	"github.com/pdiddy/arxiv-triage/internal/feed"
	"github.com/pdiddy/arxiv-triage/internal/fetch"
	"github.com/pdiddy/arxiv-triage/internal/rank"
	"github.com/pdiddy/arxiv-triage/internal/report"
	"github.com/pdiddy/arxiv-triage/internal/review"
	"github.com/pdiddy/arxiv-triage/internal/summarize"
	"github.com/pdiddy/arxiv-triage/internal/window"
	"github.com/pdiddy/arxiv-triage/pkg/types"
)

// Deps holds the service handles one run needs, constructed by the caller
// and injected here; no stage reaches for globals.
type Deps struct {
	// Clock supplies the wall-clock time the date window derives from.
	Clock func() time.Time

	// Zone is the feed's civil time zone.
	Zone *time.Location

	// Client carries feed queries and PDF downloads.
	Client *http.Client

	Embedder  rank.Embedder
	Generator summarize.Generator
	Extractor extract.Extractor

	// Examples are the few-shot pairs shown to the generation service.
	Examples []summarize.Example
}

// Run executes one triage pass: window, feed query, ranking, review
// prompt, then the sequential fetch/extract/summarize loop, ending with
// the Markdown report on out. Progress and degradation messages go to w.
//
// Only dependency wiring problems return an error. Every runtime failure
// is absorbed at its stage boundary: feed or ranking trouble degrades to
// "no candidates", a per-paper failure becomes a failure marker in the
// report, and the run completes either way.
func Run(ctx context.Context, deps Deps, cfg types.PipelineConfig, out, w io.Writer) error {
	if deps.Clock == nil || deps.Zone == nil || deps.Client == nil ||
		deps.Embedder == nil || deps.Generator == nil || deps.Extractor == nil {
		return fmt.Errorf("pipeline dependencies incomplete")
	}

	fmt.Fprintf(w, "Research interests: %s\n", cfg.Rank.Interest)

	cutoff := cfg.Feed.CutoffHour
	if cutoff <= 0 {
		cutoff = window.DefaultCutoffHour
	}
	win := window.Compute(deps.Clock(), cutoff, deps.Zone)
	fmt.Fprintf(w, "Submission window: %s to %s\n", win.Start, win.End)

	records, err := feed.Fetch(ctx, deps.Client, cfg.Feed, win)
	if err != nil {
		fmt.Fprintf(w, "feed query failed: %v\n", err)
		records = nil
	}
	fmt.Fprintf(w, "Feed returned %d entries\n", len(records))

	ranked, err := rank.Rank(ctx, deps.Embedder, cfg.Rank.Interest, records, w)
	if err != nil {
		fmt.Fprintf(w, "ranking failed: %v\n", err)
		ranked = nil
	}

	if len(ranked) == 0 {
		fmt.Fprintln(w, "No candidate papers to summarize.")
		report.Write(out, nil)
		return nil
	}

	prompt, selectedIDs := review.Build(cfg.Rank.Interest, ranked, cfg.Rank.TopK)

	reviewText, session, err := deps.Generator.Generate(ctx, prompt, nil)
	if err != nil {
		fmt.Fprintf(w, "review generation failed: %v\n", err)
	} else {
		fmt.Fprintf(out, "\n--- Top Relevant Papers ---\n\n%s\n", reviewText)
	}

	results := make([]types.SummaryResult, 0, len(selectedIDs))
	for i, id := range selectedIDs {
		fmt.Fprintf(w, "\n--- Processing paper %d/%d: %s ---\n", i+1, len(selectedIDs), id)

		text, nextSession, ok := summarizePaper(ctx, deps, cfg, id, session, w)
		session = nextSession

		r := types.SummaryResult{PaperID: id, Text: text, Failed: !ok}
		results = append(results, r)
	}

	fmt.Fprintln(w)
	report.Write(out, results)
	return nil
}

// summarizePaper runs one paper's fetch → extract → summarize iteration.
// The downloaded artifact is removed on every exit path so repeated runs
// do not accumulate files.
func summarizePaper(ctx context.Context, deps Deps, cfg types.PipelineConfig, paperID string, session *summarize.Session, w io.Writer) (string, *summarize.Session, bool) {
	pdfURL := fetch.ResolvePDFURL(paperID, cfg.Fetch.PDFBase)
	if pdfURL == "" {
		fmt.Fprintf(w, "cannot resolve PDF URL for %s\n", paperID)
		return "", session, false
	}
	fmt.Fprintf(w, "PDF URL: %s\n", pdfURL)

	path, ok := fetch.Download(deps.Client, pdfURL, cfg.Fetch, w)
	if !ok {
		return "", session, false
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(w, "warning: could not delete %s: %v\n", path, err)
		} else {
			fmt.Fprintf(w, "deleted artifact: %s\n", path)
		}
	}()

	text, err := deps.Extractor.Extract(path)
	if err != nil {
		fmt.Fprintf(w, "text extraction failed: %v\n", err)
		return "", session, false
	}

	return summarize.Summarize(ctx, deps.Generator, text, deps.Examples, session, w)
}
